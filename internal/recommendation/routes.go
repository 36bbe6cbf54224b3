// internal/recommendation/routes.go
package recommendation

import "strings"

// FallbackCourseRoute is returned when no keyword matches a course-search query.
const FallbackCourseRoute = "/study-centre/upskilling"

type routeEntry struct {
	keyword     string
	destination string
}

// CourseRoute is a resolved navigation target for a course-search query.
type CourseRoute struct {
	Destination string `json:"destination"`
	Keyword     string `json:"matchedKeyword,omitempty"`
	Matched     bool   `json:"matched"`
	Internal    bool   `json:"internal"`
}

// ResolveCourseRoute maps a free-text query to a content route. Keywords are tried
// in table order and the first one contained in the lowercased query wins; an
// unmatched or empty query gets the fallback route.
func (e *Engine) ResolveCourseRoute(query string) CourseRoute {
	q := normalizeText(query)
	if q != "" {
		for _, entry := range e.rules.routes {
			if strings.Contains(q, entry.keyword) {
				return newCourseRoute(entry.destination, entry.keyword)
			}
		}
	}
	return newCourseRoute(e.rules.fallbackRoute, "")
}

func newCourseRoute(destination, keyword string) CourseRoute {
	return CourseRoute{
		Destination: destination,
		Keyword:     keyword,
		Matched:     keyword != "",
		Internal:    strings.HasPrefix(destination, "/"),
	}
}

// Order matters: specific credential codes come before the generic words that
// would otherwise capture them (2391 before "testing", 2919 before "charging").
func defaultCourseRoutes() []routeEntry {
	const (
		bs7671       = "/study-centre/upskilling/bs7671-course"
		testing      = "/study-centre/upskilling/inspection-testing-course"
		evCharging   = "/study-centre/upskilling/ev-charging-course"
		renewables   = "/study-centre/upskilling/renewable-energy-course"
		faultFinding = "/study-centre/upskilling/fault-finding-course"
		smartHome    = "/study-centre/upskilling/smart-home-course"
		dataCabling  = "/study-centre/upskilling/data-cabling-course"
		emergency    = "/study-centre/upskilling/emergency-lighting-course"
		fireAlarm    = "/study-centre/upskilling/fire-alarm-course"
		industrial   = "/study-centre/upskilling/industrial-electrical"
		design       = "/study-centre/upskilling/design-course"
		am2          = "/study-centre/apprentice/am2"
		level3       = "/study-centre/apprentice/level3"
		level2       = "/study-centre/apprentice/level2"
		hnc          = "/study-centre/apprentice/hnc"
		leadership   = "/study-centre/general-upskilling/leadership"
		cscs         = "/study-centre/general-upskilling/cscs-card"
		firstAid     = "/study-centre/general-upskilling/first-aid"
	)

	return []routeEntry{
		{"2391", testing},
		{"2394", testing},
		{"2395", testing},
		{"18th edition", bs7671},
		{"bs 7671", bs7671},
		{"2382", bs7671},
		{"2919", evCharging},
		{"ev charging", evCharging},
		{"electric vehicle", evCharging},
		{"2399", renewables},
		{"solar", renewables},
		{"heat pump", renewables},
		{"battery", renewables},
		{"renewable", renewables},
		{"2396", design},
		{"electrical design", design},
		{"am2", am2},
		{"nvq", level3},
		{"level 3", level3},
		{"experienced worker", level3},
		{"level 2", level2},
		{"hnc", hnc},
		{"fault", faultFinding},
		{"inspection", testing},
		{"testing", testing},
		{"smart home", smartHome},
		{"automation", smartHome},
		{"data cabling", dataCabling},
		{"structured cabling", dataCabling},
		{"emergency lighting", emergency},
		{"fire alarm", fireAlarm},
		{"three phase", industrial},
		{"motor control", industrial},
		{"instrumentation", industrial},
		{"industrial", industrial},
		{"smsts", leadership},
		{"sssts", leadership},
		{"supervision", leadership},
		{"leadership", leadership},
		{"cscs", cscs},
		{"health and safety", cscs},
		{"first aid", firstAid},
	}
}
