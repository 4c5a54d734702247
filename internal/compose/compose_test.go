package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/eligibility"
	"github.com/wanjiru/huduma-guide/internal/types"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func composeFor(t *testing.T, req *types.ServiceRequest) *types.ServiceProfile {
	t.Helper()
	c := loadCatalog(t)
	verdict := eligibility.Evaluate(req.Service, req.AgeBracket, req.Residency)
	return Compose(req, verdict, c.Entry(req.Service), c.Offices())
}

// Scenario: minor applying for a driving license in Nairobi.
func TestCompose_MinorDrivingLicenseNairobi(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Nairobi",
		Service:         types.ServiceDrivingLicense,
		AgeBracket:      types.AgeUnder18,
		Residency:       types.ResidencyCitizen,
		ApplicationType: types.ApplicationNew,
	}

	profile := composeFor(t, req)

	assert.Equal(t, types.StatusNotEligible, profile.Eligibility.Status)
	require.Len(t, profile.Eligibility.Conditions, 1)
	assert.Contains(t, profile.Eligibility.Conditions[0], "at least 18 years old")
	assert.Equal(t, "NTSA Office", profile.Location.Office)
	assert.Equal(t, "NTSA Times Tower, Haile Selassie Avenue", profile.Location.Address)
}

// Scenario: resident renewing a passport in Mombasa; baseline sections are
// copied verbatim from the passport catalog entry.
func TestCompose_ResidentPassportMombasa(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Mombasa",
		Service:         types.ServicePassport,
		AgeBracket:      types.Age18To35,
		Residency:       types.ResidencyResident,
		ApplicationType: types.ApplicationRenewal,
	}

	c := loadCatalog(t)
	verdict := eligibility.Evaluate(req.Service, req.AgeBracket, req.Residency)
	entry := c.Entry(req.Service)
	profile := Compose(req, verdict, entry, c.Offices())

	assert.Equal(t, types.StatusConditionallyEligible, profile.Eligibility.Status)
	assert.Equal(t, "Immigration Department", profile.Location.Office)
	assert.Equal(t, "Immigration Office, Treasury Square", profile.Location.Address)

	assert.Equal(t, entry.Cost.Amount, profile.Cost.Amount)
	assert.Equal(t, entry.Cost.Breakdown, profile.Cost.Breakdown)
	assert.Equal(t, entry.ProcessingTime.Standard, profile.ProcessingTime.Standard)
	assert.Equal(t, entry.Documents, profile.RequiredDocuments.Items)
	assert.Equal(t, entry.Steps, profile.ProcessSteps.Steps)
}

// Scenario: unknown service in an unknown county falls back to the default
// catalog entry and the capital-region office.
func TestCompose_UnknownServiceAndCountyFallsBack(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Unknown",
		Service:         "unknown-service-id",
		AgeBracket:      types.Age36To60,
		Residency:       types.ResidencyCitizen,
		ApplicationType: types.ApplicationNew,
	}

	profile := composeFor(t, req)

	assert.Equal(t, "National ID (Huduma Namba)", profile.ServiceName)
	assert.Equal(t, types.StatusEligible, profile.Eligibility.Status)
	assert.Equal(t, "Huduma Centre, GPO Building, Kenyatta Avenue", profile.Location.Address)
	// The profile still reports the county the user asked for.
	assert.Equal(t, types.County("Unknown"), profile.County)
}

func TestCompose_DecisionFactorsFixedOrder(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Kisumu",
		Service:         types.ServiceNHIF,
		AgeBracket:      types.AgeOver60,
		Residency:       types.ResidencyDual,
		ApplicationType: types.ApplicationCorrection,
	}

	profile := composeFor(t, req)

	assert.Equal(t, []string{
		"County: Kisumu",
		"Age category: over-60",
		"Residency status: dual",
		"Application type: correction",
	}, profile.DecisionExplanation.Factors)
	assert.Equal(t, DataSource, profile.DecisionExplanation.Source)
	assert.Contains(t, profile.DecisionExplanation.Rule, "National Hospital Insurance Fund")
}

func TestCompose_Deterministic(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Nakuru",
		Service:         types.ServiceBirthCertificate,
		AgeBracket:      types.Age18To35,
		Residency:       types.ResidencyCitizen,
		ApplicationType: types.ApplicationNew,
	}

	first := composeFor(t, req)
	second := composeFor(t, req)

	assert.Equal(t, first, second)
}

// Mutating a returned profile must not leak into the catalog baseline.
func TestCompose_DoesNotAliasCatalogData(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Nairobi",
		Service:         types.ServiceNationalID,
		AgeBracket:      types.Age18To35,
		Residency:       types.ResidencyCitizen,
		ApplicationType: types.ApplicationNew,
	}

	c := loadCatalog(t)
	verdict := eligibility.Evaluate(req.Service, req.AgeBracket, req.Residency)

	profile := Compose(req, verdict, c.Entry(req.Service), c.Offices())
	profile.RequiredDocuments.Items[0].Name = "mutated"
	profile.Cost.Breakdown[0].Cost = "KES 0"
	profile.ProcessSteps.Steps[0].Title = "mutated"
	profile.Guidance.Tips[0] = "mutated"
	profile.Limitations[0] = "mutated"

	fresh := Compose(req, verdict, c.Entry(req.Service), c.Offices())
	assert.Equal(t, "Original Birth Certificate", fresh.RequiredDocuments.Items[0].Name)
	assert.Equal(t, "KES 500", fresh.Cost.Breakdown[0].Cost)
	assert.Equal(t, "Gather Documents", fresh.ProcessSteps.Steps[0].Title)
	assert.NotEqual(t, "mutated", fresh.Guidance.Tips[0])
	assert.NotEqual(t, "mutated", fresh.Limitations[0])
}

func TestCompose_RuleBasedMarkers(t *testing.T) {
	req := &types.ServiceRequest{
		County:          "Nairobi",
		Service:         types.ServiceKRAPIN,
		AgeBracket:      types.Age36To60,
		Residency:       types.ResidencyCitizen,
		ApplicationType: types.ApplicationNew,
	}

	profile := composeFor(t, req)

	assert.True(t, profile.Location.IsRuleBased)
	assert.True(t, profile.Cost.IsRuleBased)
	assert.True(t, profile.ProcessingTime.IsRuleBased)
	assert.True(t, profile.RequiredDocuments.IsRuleBased)
	assert.True(t, profile.Eligibility.IsRuleBased)
	assert.True(t, profile.ProcessSteps.IsRuleBased)
	assert.True(t, profile.Guidance.IsAIGenerated)
}
