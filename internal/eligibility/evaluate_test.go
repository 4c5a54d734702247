package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjiru/huduma-guide/internal/types"
)

func TestEvaluate_ForeignAlwaysNotEligible(t *testing.T) {
	for _, service := range types.ServiceIDs {
		for _, age := range []types.AgeBracket{types.AgeUnder18, types.Age18To35, types.Age36To60, types.AgeOver60} {
			verdict := Evaluate(service, age, types.ResidencyForeign)
			assert.Equal(t, types.StatusNotEligible, verdict.Status,
				"service=%s age=%s", service, age)
			assert.Contains(t, verdict.Conditions[0], "only available to Kenyan citizens")
		}
	}
}

func TestEvaluate_ResidentConditional(t *testing.T) {
	verdict := Evaluate(types.ServicePassport, types.Age18To35, types.ResidencyResident)

	assert.Equal(t, types.StatusConditionallyEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 1)
	assert.Contains(t, verdict.Conditions[0], "permanent residents")
}

func TestEvaluate_MinorDrivingLicenseNotEligible(t *testing.T) {
	for _, residency := range []types.ResidencyStatus{types.ResidencyCitizen, types.ResidencyDual} {
		verdict := Evaluate(types.ServiceDrivingLicense, types.AgeUnder18, residency)

		assert.Equal(t, types.StatusNotEligible, verdict.Status)
		require.Len(t, verdict.Conditions, 1)
		assert.Contains(t, verdict.Conditions[0], "at least 18 years old")
	}
}

func TestEvaluate_MinorPassportAndPINConditional(t *testing.T) {
	for _, service := range []types.ServiceID{types.ServicePassport, types.ServiceKRAPIN} {
		for _, residency := range []types.ResidencyStatus{types.ResidencyCitizen, types.ResidencyDual} {
			verdict := Evaluate(service, types.AgeUnder18, residency)

			assert.Equal(t, types.StatusConditionallyEligible, verdict.Status,
				"service=%s residency=%s", service, residency)
			assert.Contains(t, verdict.Conditions, "Parental consent and accompanying documents required for minors")
		}
	}
}

func TestEvaluate_MinorUnrestrictedServiceEligible(t *testing.T) {
	verdict := Evaluate(types.ServiceBirthCertificate, types.AgeUnder18, types.ResidencyCitizen)

	assert.Equal(t, types.StatusEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 1)
	assert.Contains(t, verdict.Conditions[0], "meet the basic eligibility requirements")
}

func TestEvaluate_CitizenAdultEligibleWithSingleCondition(t *testing.T) {
	for _, residency := range []types.ResidencyStatus{types.ResidencyCitizen, types.ResidencyDual} {
		for _, service := range types.ServiceIDs {
			verdict := Evaluate(service, types.Age36To60, residency)

			assert.Equal(t, types.StatusEligible, verdict.Status,
				"service=%s residency=%s", service, residency)
			assert.Len(t, verdict.Conditions, 1)
		}
	}
}

// Both axes fire independently: the residency check runs first and sets the
// floor at not_eligible, and the age check for a minor's driving license
// still appends its own condition.
func TestEvaluate_BothAxesAccumulate(t *testing.T) {
	verdict := Evaluate(types.ServiceDrivingLicense, types.AgeUnder18, types.ResidencyForeign)

	assert.Equal(t, types.StatusNotEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 2)
	assert.Contains(t, verdict.Conditions[0], "only available to Kenyan citizens")
	assert.Contains(t, verdict.Conditions[1], "at least 18 years old")
}

// A stricter status from an earlier axis is never relaxed by a later,
// looser rule: a foreign minor applying for a passport stays not_eligible
// even though the age rule alone would only be conditional.
func TestEvaluate_StatusNeverRelaxed(t *testing.T) {
	verdict := Evaluate(types.ServicePassport, types.AgeUnder18, types.ResidencyForeign)

	assert.Equal(t, types.StatusNotEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 2)
}

func TestEvaluate_ResidentMinorEscalatesOrder(t *testing.T) {
	verdict := Evaluate(types.ServiceKRAPIN, types.AgeUnder18, types.ResidencyResident)

	assert.Equal(t, types.StatusConditionallyEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 2)
	assert.Contains(t, verdict.Conditions[0], "permanent residents")
	assert.Contains(t, verdict.Conditions[1], "minors")
}

func TestEvaluate_UnknownServicePermissiveDefault(t *testing.T) {
	verdict := Evaluate("unknown-service-id", types.AgeUnder18, types.ResidencyCitizen)

	assert.Equal(t, types.StatusEligible, verdict.Status)
	require.Len(t, verdict.Conditions, 1)
}

func TestEvaluate_ConditionsNeverEmpty(t *testing.T) {
	ages := []types.AgeBracket{types.AgeUnder18, types.Age18To35, types.Age36To60, types.AgeOver60}
	residencies := []types.ResidencyStatus{types.ResidencyCitizen, types.ResidencyDual, types.ResidencyResident, types.ResidencyForeign}

	for _, service := range types.ServiceIDs {
		for _, age := range ages {
			for _, residency := range residencies {
				verdict := Evaluate(service, age, residency)
				assert.NotEmpty(t, verdict.Conditions,
					"service=%s age=%s residency=%s", service, age, residency)
				assert.True(t, verdict.IsRuleBased)
			}
		}
	}
}
