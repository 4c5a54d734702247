// Package types provides type definitions for structured data used throughout the huduma-guide system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// County identifies one of Kenya's 47 counties.
type County string

// Counties lists the 47 Kenyan counties accepted in a ServiceRequest.
var Counties = []County{
	"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Kiambu", "Machakos",
	"Kajiado", "Uasin Gishu", "Kilifi", "Nyeri", "Kakamega", "Meru",
	"Kwale", "Migori", "Bungoma", "Kericho", "Trans Nzoia", "Nandi",
	"Narok", "Bomet", "Laikipia", "Turkana", "Garissa", "Mandera",
	"Wajir", "Marsabit", "Isiolo", "Samburu", "West Pokot", "Baringo",
	"Elgeyo Marakwet", "Tana River", "Lamu", "Taita Taveta", "Embu",
	"Tharaka Nithi", "Kitui", "Makueni", "Nyandarua", "Murang'a",
	"Kirinyaga", "Homa Bay", "Siaya", "Kisii", "Nyamira", "Vihiga",
	"Busia",
}

// KnownCounty reports whether name matches a county, ignoring case.
func KnownCounty(name string) (County, bool) {
	for _, c := range Counties {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// ServiceID identifies a government service in the catalog.
type ServiceID string

// Service identifiers known to the catalog.
const (
	ServiceNationalID          ServiceID = "national-id"
	ServicePassport            ServiceID = "passport"
	ServiceBirthCertificate    ServiceID = "birth-certificate"
	ServiceDeathCertificate    ServiceID = "death-certificate"
	ServiceNHIF                ServiceID = "nhif"
	ServiceNSSF                ServiceID = "nssf"
	ServiceDrivingLicense      ServiceID = "driving-license"
	ServiceVehicleRegistration ServiceID = "vehicle-registration"
	ServiceKRAPIN              ServiceID = "kra-pin"
	ServiceBusinessPermit      ServiceID = "business-permit"
	ServiceTitleDeed           ServiceID = "title-deed"
	ServiceMarriageCertificate ServiceID = "marriage-certificate"
)

// ServiceIDs lists every service identifier in catalog order.
var ServiceIDs = []ServiceID{
	ServiceNationalID, ServicePassport, ServiceBirthCertificate,
	ServiceDeathCertificate, ServiceNHIF, ServiceNSSF,
	ServiceDrivingLicense, ServiceVehicleRegistration, ServiceKRAPIN,
	ServiceBusinessPermit, ServiceTitleDeed, ServiceMarriageCertificate,
}

// AgeBracket is the applicant's age range.
type AgeBracket string

// Age brackets accepted in a ServiceRequest.
const (
	AgeUnder18 AgeBracket = "under-18"
	Age18To35  AgeBracket = "18-35"
	Age36To60  AgeBracket = "36-60"
	AgeOver60  AgeBracket = "over-60"
)

// ResidencyStatus is the applicant's residency classification.
type ResidencyStatus string

// Residency statuses accepted in a ServiceRequest.
const (
	ResidencyCitizen  ResidencyStatus = "citizen"
	ResidencyDual     ResidencyStatus = "dual"
	ResidencyResident ResidencyStatus = "resident"
	ResidencyForeign  ResidencyStatus = "foreign"
)

// ApplicationType distinguishes first applications from follow-ups.
type ApplicationType string

// Application types accepted in a ServiceRequest.
const (
	ApplicationNew         ApplicationType = "new"
	ApplicationRenewal     ApplicationType = "renewal"
	ApplicationReplacement ApplicationType = "replacement"
	ApplicationCorrection  ApplicationType = "correction"
)

// MinQueryLength is the minimum free-text length that can stand in for
// missing structured fields.
const MinQueryLength = 5

// ServiceRequest is the canonical input to the guidance engine.
// Either every enum field is populated, or Query carries enough free text
// for the normalizer to infer the missing fields.
type ServiceRequest struct {
	County          County          `json:"county" validate:"omitempty"`
	Service         ServiceID       `json:"service" validate:"omitempty"`
	AgeBracket      AgeBracket      `json:"age" validate:"omitempty,oneof=under-18 18-35 36-60 over-60"`
	Residency       ResidencyStatus `json:"residency" validate:"omitempty,oneof=citizen dual resident foreign"`
	ApplicationType ApplicationType `json:"application_type" validate:"omitempty,oneof=new renewal replacement correction"`
	Query           string          `json:"query,omitempty"`
}

// Validate checks the ServiceRequest field constraints and the
// structured-or-free-text invariant.
func (r *ServiceRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}

	if r.Complete() {
		return nil
	}
	if len(strings.TrimSpace(r.Query)) > MinQueryLength {
		return nil
	}
	return fmt.Errorf("incomplete request: all structured fields are required unless a free-text query longer than %d characters is provided", MinQueryLength)
}

// Complete reports whether every structured field is populated.
func (r *ServiceRequest) Complete() bool {
	return r.County != "" && r.Service != "" && r.AgeBracket != "" &&
		r.Residency != "" && r.ApplicationType != ""
}
