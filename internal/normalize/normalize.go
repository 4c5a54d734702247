// Package normalize translates loose external input (form labels, point
// ages, free-text queries) into the canonical ServiceRequest the evaluator
// and composer consume, and shapes composed profiles back into the
// external response form. The mappings are fixed heuristic tables; anything
// the tables cannot place degrades to the catalog defaults instead of
// erroring.
package normalize

import (
	"strconv"
	"strings"

	"github.com/wanjiru/huduma-guide/internal/types"
)

// serviceAliases maps common names and abbreviations to service ids.
var serviceAliases = map[string]types.ServiceID{
	"national id":          types.ServiceNationalID,
	"national-id":          types.ServiceNationalID,
	"id":                   types.ServiceNationalID,
	"id card":              types.ServiceNationalID,
	"huduma namba":         types.ServiceNationalID,
	"passport":             types.ServicePassport,
	"e-passport":           types.ServicePassport,
	"birth certificate":    types.ServiceBirthCertificate,
	"birth-certificate":    types.ServiceBirthCertificate,
	"death certificate":    types.ServiceDeathCertificate,
	"death-certificate":    types.ServiceDeathCertificate,
	"nhif":                 types.ServiceNHIF,
	"shif":                 types.ServiceNHIF,
	"health insurance":     types.ServiceNHIF,
	"nssf":                 types.ServiceNSSF,
	"pension":              types.ServiceNSSF,
	"driving license":      types.ServiceDrivingLicense,
	"driving-license":      types.ServiceDrivingLicense,
	"driving licence":      types.ServiceDrivingLicense,
	"dl":                   types.ServiceDrivingLicense,
	"smart dl":             types.ServiceDrivingLicense,
	"vehicle registration": types.ServiceVehicleRegistration,
	"vehicle-registration": types.ServiceVehicleRegistration,
	"logbook":              types.ServiceVehicleRegistration,
	"kra pin":              types.ServiceKRAPIN,
	"kra-pin":              types.ServiceKRAPIN,
	"pin":                  types.ServiceKRAPIN,
	"itax":                 types.ServiceKRAPIN,
	"business permit":      types.ServiceBusinessPermit,
	"business-permit":      types.ServiceBusinessPermit,
	"title deed":           types.ServiceTitleDeed,
	"title-deed":           types.ServiceTitleDeed,
	"marriage certificate": types.ServiceMarriageCertificate,
	"marriage-certificate": types.ServiceMarriageCertificate,
}

// residencyLabels maps open-ended residency descriptions to canonical enums.
var residencyLabels = map[string]types.ResidencyStatus{
	"citizen":            types.ResidencyCitizen,
	"kenyan":             types.ResidencyCitizen,
	"kenyan citizen":     types.ResidencyCitizen,
	"kenyan_citizen":     types.ResidencyCitizen,
	"dual":               types.ResidencyDual,
	"dual citizen":       types.ResidencyDual,
	"resident":           types.ResidencyResident,
	"permanent resident": types.ResidencyResident,
	"pr":                 types.ResidencyResident,
	"foreign":            types.ResidencyForeign,
	"foreigner":          types.ResidencyForeign,
	"foreign national":   types.ResidencyForeign,
	"foreign_national":   types.ResidencyForeign,
}

// applicationLabels maps loose application-type descriptions to enums.
var applicationLabels = map[string]types.ApplicationType{
	"new":         types.ApplicationNew,
	"first time":  types.ApplicationNew,
	"first-time":  types.ApplicationNew,
	"first_time":  types.ApplicationNew,
	"renewal":     types.ApplicationRenewal,
	"renew":       types.ApplicationRenewal,
	"replacement": types.ApplicationReplacement,
	"replace":     types.ApplicationReplacement,
	"lost":        types.ApplicationReplacement,
	"damaged":     types.ApplicationReplacement,
	"correction":  types.ApplicationCorrection,
	"amendment":   types.ApplicationCorrection,
	"correct":     types.ApplicationCorrection,
}

// Service resolves a loose service label to a catalog id. Unknown labels
// return the empty id so the caller can fall back to free-text inference.
func Service(label string) types.ServiceID {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return ""
	}
	if id, ok := serviceAliases[key]; ok {
		return id
	}
	// A label that already is a catalog id passes through unchanged.
	for _, id := range types.ServiceIDs {
		if string(id) == key {
			return id
		}
	}
	return ""
}

// AgeBracket resolves a loose age description - a bracket label or a point
// age like "16" - to a canonical bracket. Unknown input returns the empty
// bracket.
func AgeBracket(label string) types.AgeBracket {
	key := strings.ToLower(strings.TrimSpace(label))
	switch key {
	case "under-18", "under 18", "minor":
		return types.AgeUnder18
	case "18-35":
		return types.Age18To35
	case "36-60":
		return types.Age36To60
	case "over-60", "over 60", "60+":
		return types.AgeOver60
	}

	if age, err := strconv.Atoi(key); err == nil {
		return bracketForAge(age)
	}
	return ""
}

// bracketForAge buckets a point age into the canonical brackets.
func bracketForAge(age int) types.AgeBracket {
	switch {
	case age < 0:
		return ""
	case age < 18:
		return types.AgeUnder18
	case age <= 35:
		return types.Age18To35
	case age <= 60:
		return types.Age36To60
	default:
		return types.AgeOver60
	}
}

// Residency resolves a loose residency label to a canonical status.
func Residency(label string) types.ResidencyStatus {
	key := strings.ToLower(strings.TrimSpace(label))
	if status, ok := residencyLabels[key]; ok {
		return status
	}
	return ""
}

// ApplicationType resolves a loose application-type label.
func ApplicationType(label string) types.ApplicationType {
	key := strings.ToLower(strings.TrimSpace(label))
	if at, ok := applicationLabels[key]; ok {
		return at
	}
	return ""
}

// County resolves a county name case-insensitively. Unknown names are
// passed through as-is: the office lookup handles its own fallback, and
// the profile should echo what the user asked for.
func County(name string) types.County {
	if county, ok := types.KnownCounty(strings.TrimSpace(name)); ok {
		return county
	}
	return types.County(strings.TrimSpace(name))
}

// InferService scans free text for a service mention. Single-word aliases
// must appear as whole words so "id" does not fire inside "paid"; the
// longest matching alias wins so "driving license" beats the "id" it
// contains, and equal lengths break alphabetically so the result never
// depends on map iteration order. Returns the empty id when nothing
// matches.
func InferService(query string) types.ServiceID {
	text := strings.ToLower(query)
	var bestAlias string
	var best types.ServiceID
	for alias, id := range serviceAliases {
		matched := false
		if strings.ContainsAny(alias, " -") {
			matched = strings.Contains(text, alias)
		} else {
			matched = containsWord(text, alias)
		}
		if !matched {
			continue
		}
		if len(alias) > len(bestAlias) || (len(alias) == len(bestAlias) && alias < bestAlias) {
			bestAlias = alias
			best = id
		}
	}
	return best
}

func containsWord(text, word string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if field == word {
			return true
		}
	}
	return false
}
