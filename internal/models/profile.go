// internal/models/profile.go
package models

// Qualification is a formally awarded credential as stored by the profile service.
// DateAchieved is an ISO-8601 date (or RFC3339 timestamp) and may be absent.
type Qualification struct {
	QualificationName string  `json:"qualification_name"`
	DateAchieved      *string `json:"date_achieved"`
}

// Skill is a self-rated competency.
type Skill struct {
	SkillName       string  `json:"skill_name"`
	SkillLevel      string  `json:"skill_level"`
	YearsExperience float64 `json:"years_experience"`
}

type WorkHistoryEntry struct {
	JobTitle    *string `json:"job_title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// WorkerProfile is everything the recommendation engine reads about one worker.
type WorkerProfile struct {
	UserID            string             `json:"userId,omitempty"`
	CertificationTier string             `json:"certificationTier"`
	Qualifications    []Qualification    `json:"qualifications"`
	Skills            []Skill            `json:"skills"`
	WorkHistory       []WorkHistoryEntry `json:"workHistory"`
}

// Tier parses the free-text certification tier carried on the profile.
func (p *WorkerProfile) Tier() CertificationTier {
	if p == nil {
		return TierUnknown
	}
	return ParseTier(p.CertificationTier)
}
