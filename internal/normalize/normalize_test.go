package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wanjiru/huduma-guide/internal/types"
)

func TestService(t *testing.T) {
	tests := []struct {
		label string
		want  types.ServiceID
	}{
		{"passport", types.ServicePassport},
		{"Driving Licence", types.ServiceDrivingLicense},
		{"dl", types.ServiceDrivingLicense},
		{"huduma namba", types.ServiceNationalID},
		{"kra-pin", types.ServiceKRAPIN},
		{"national-id", types.ServiceNationalID},
		{"logbook", types.ServiceVehicleRegistration},
		{"unicorn license", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Service(tt.label), "label=%q", tt.label)
	}
}

func TestAgeBracket(t *testing.T) {
	tests := []struct {
		label string
		want  types.AgeBracket
	}{
		{"under-18", types.AgeUnder18},
		{"16", types.AgeUnder18},
		{"18", types.Age18To35},
		{"35", types.Age18To35},
		{"36", types.Age36To60},
		{"42", types.Age36To60},
		{"60", types.Age36To60},
		{"61", types.AgeOver60},
		{"over 60", types.AgeOver60},
		{"minor", types.AgeUnder18},
		{"-3", ""},
		{"soon", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBracket(tt.label), "label=%q", tt.label)
	}
}

func TestResidency(t *testing.T) {
	assert.Equal(t, types.ResidencyCitizen, Residency("Kenyan Citizen"))
	assert.Equal(t, types.ResidencyCitizen, Residency("kenyan_citizen"))
	assert.Equal(t, types.ResidencyResident, Residency("Permanent Resident"))
	assert.Equal(t, types.ResidencyForeign, Residency("foreign_national"))
	assert.Equal(t, types.ResidencyDual, Residency("dual citizen"))
	assert.Equal(t, types.ResidencyStatus(""), Residency("martian"))
}

func TestApplicationType(t *testing.T) {
	assert.Equal(t, types.ApplicationNew, ApplicationType("first_time"))
	assert.Equal(t, types.ApplicationRenewal, ApplicationType("renew"))
	assert.Equal(t, types.ApplicationReplacement, ApplicationType("lost"))
	assert.Equal(t, types.ApplicationCorrection, ApplicationType("amendment"))
	assert.Equal(t, types.ApplicationType(""), ApplicationType("other"))
}

func TestCounty(t *testing.T) {
	assert.Equal(t, types.County("Nairobi"), County("nairobi"))
	assert.Equal(t, types.County("Uasin Gishu"), County(" uasin gishu "))
	// Unknown counties pass through so the profile can echo them.
	assert.Equal(t, types.County("Atlantis"), County("Atlantis"))
}

func TestInferService(t *testing.T) {
	tests := []struct {
		query string
		want  types.ServiceID
	}{
		{"How do I renew my passport?", types.ServicePassport},
		{"I need a driving license in Kisumu", types.ServiceDrivingLicense},
		{"where do i get my id card", types.ServiceNationalID},
		{"help with my KRA PIN please", types.ServiceKRAPIN},
		{"I paid for nothing", ""},
		{"what is the weather today", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferService(tt.query), "query=%q", tt.query)
	}
}

func TestInferService_EqualLengthAliasesStable(t *testing.T) {
	// "pension" and "logbook" are the same length; the alphabetical
	// tiebreak keeps the winner independent of map iteration order.
	query := "transfer the logbook and sort out my pension"
	want := InferService(query)
	assert.Equal(t, types.ServiceVehicleRegistration, want)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, InferService(query))
	}
}

func TestRequest_FullStructuredInput(t *testing.T) {
	req := Request(&LooseRequest{
		County:          "mombasa",
		Service:         "passport",
		Age:             "27",
		Residency:       "permanent resident",
		ApplicationType: "renewal",
	})

	assert.Equal(t, types.County("Mombasa"), req.County)
	assert.Equal(t, types.ServicePassport, req.Service)
	assert.Equal(t, types.Age18To35, req.AgeBracket)
	assert.Equal(t, types.ResidencyResident, req.Residency)
	assert.Equal(t, types.ApplicationRenewal, req.ApplicationType)
	assert.True(t, req.Complete())
}

func TestRequest_FreeTextOnlyDegradesToDefaults(t *testing.T) {
	req := Request(&LooseRequest{Query: "how much is a birth certificate?"})

	assert.Equal(t, types.ServiceBirthCertificate, req.Service)
	assert.Equal(t, DefaultCounty, req.County)
	assert.Equal(t, DefaultAgeBracket, req.AgeBracket)
	assert.Equal(t, DefaultResidency, req.Residency)
	assert.Equal(t, DefaultApplicationType, req.ApplicationType)
}

func TestRequest_EmptyInputGetsDefaultService(t *testing.T) {
	req := Request(&LooseRequest{Query: "hello there, can you help me?"})

	assert.Equal(t, types.ServiceNationalID, req.Service)
	assert.True(t, req.Complete())
}
