// Package eligibility implements the eligibility rules for government
// services. Evaluation is a pure function over closed enums: the residency
// axis runs first, then the age axis for age-restricted services, and each
// rule's proposed status is folded through the severity order so a later
// rule can tighten a verdict but never relax it. Conditions accumulate in
// evaluation order and are not deduplicated.
package eligibility

import (
	"github.com/wanjiru/huduma-guide/internal/types"
)

// Condition sentences, in the exact wording shown to users.
const (
	reasonForeignRestricted = "This service is only available to Kenyan citizens and residents"
	reasonResidentDocuments = "Additional documentation may be required for permanent residents"
	reasonMinimumDrivingAge = "You must be at least 18 years old to apply for a driving license"
	reasonMinorConsent      = "Parental consent and accompanying documents required for minors"
	reasonMeetsRequirements = "You meet the basic eligibility requirements for this service"
)

// ageRestricted is the set of services with per-age rules. An unknown
// service id is not in the set, so the permissive default applies - that is
// deliberate: unknown services degrade to the default catalog entry rather
// than erroring.
var ageRestricted = map[types.ServiceID]bool{
	types.ServiceDrivingLicense: true,
	types.ServicePassport:       true,
	types.ServiceKRAPIN:         true,
}

// Evaluate derives the eligibility verdict for a service given the
// applicant's age bracket and residency status. The returned verdict always
// carries at least one condition sentence.
func Evaluate(service types.ServiceID, age types.AgeBracket, residency types.ResidencyStatus) types.EligibilityVerdict {
	status := types.StatusEligible
	var conditions []string

	// Residency axis.
	switch residency {
	case types.ResidencyForeign:
		status = types.Stricter(status, types.StatusNotEligible)
		conditions = append(conditions, reasonForeignRestricted)
	case types.ResidencyResident:
		status = types.Stricter(status, types.StatusConditionallyEligible)
		conditions = append(conditions, reasonResidentDocuments)
	}

	// Age axis. Runs even when residency already ruled the applicant out,
	// so the verdict lists every independently failing condition.
	if age == types.AgeUnder18 && ageRestricted[service] {
		if service == types.ServiceDrivingLicense {
			status = types.Stricter(status, types.StatusNotEligible)
			conditions = append(conditions, reasonMinimumDrivingAge)
		} else {
			status = types.Stricter(status, types.StatusConditionallyEligible)
			conditions = append(conditions, reasonMinorConsent)
		}
	}

	if len(conditions) == 0 {
		conditions = append(conditions, reasonMeetsRequirements)
	}

	return types.EligibilityVerdict{
		Status:      status,
		Conditions:  conditions,
		IsRuleBased: true,
	}
}
