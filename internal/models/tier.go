// internal/models/tier.go
package models

import "strings"

type CertificationTier string

const (
	TierEntry               CertificationTier = "entry"
	TierMate                CertificationTier = "mate"
	TierQualified           CertificationTier = "qualified"
	TierApproved            CertificationTier = "approved"
	TierSupervisor          CertificationTier = "supervisor"
	TierExperiencedNoFormal CertificationTier = "experienced_no_formal"
	TierLabourer            CertificationTier = "labourer"
	TierUnknown             CertificationTier = ""
)

var knownTiers = map[CertificationTier]struct{}{
	TierEntry:               {},
	TierMate:                {},
	TierQualified:           {},
	TierApproved:            {},
	TierSupervisor:          {},
	TierExperiencedNoFormal: {},
	TierLabourer:            {},
}

// tierAliases maps alternative spellings onto a tier in the closed set.
var tierAliases = map[CertificationTier]CertificationTier{
	"apprentice": TierEntry,
}

// ParseTier maps a raw tier identifier onto the closed tier set. Case, surrounding
// whitespace and hyphen/space separators are ignored; "apprentice" is read as
// entry. Anything else is TierUnknown.
func ParseTier(raw string) CertificationTier {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	tier := CertificationTier(s)
	if alias, ok := tierAliases[tier]; ok {
		return alias
	}
	if _, ok := knownTiers[tier]; ok {
		return tier
	}
	return TierUnknown
}

func (t CertificationTier) Known() bool {
	_, ok := knownTiers[t]
	return ok
}
