package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/wanjiru/huduma-guide/internal/types"
)

// FallbackCounty is the office record substituted when a request names a
// county the table does not cover. Routing everyone else to the capital is
// a documented approximation, not an error.
const FallbackCounty = types.County("Nairobi")

// CountyOffices holds the office addresses for one county, keyed by the
// authority that runs them.
type CountyOffices struct {
	County      types.County `json:"county"`
	Huduma      string       `json:"huduma"`
	Immigration string       `json:"immigration"`
	NTSA        string       `json:"ntsa"`
}

// OfficeTable resolves (county, service) pairs to a physical office.
type OfficeTable struct {
	counties map[types.County]*CountyOffices
	hours    string
	phone    string
}

type officeDocument struct {
	Hours    string          `json:"hours"`
	Phone    string          `json:"phone"`
	Counties []CountyOffices `json:"counties"`
}

func loadOffices(data string) (*OfficeTable, error) {
	var doc officeDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse office table: %w", err)
	}

	table := &OfficeTable{
		counties: make(map[types.County]*CountyOffices, len(doc.Counties)),
		hours:    doc.Hours,
		phone:    doc.Phone,
	}
	for i := range doc.Counties {
		c := doc.Counties[i]
		table.counties[c.County] = &c
	}

	if _, ok := table.counties[FallbackCounty]; !ok {
		return nil, fmt.Errorf("office table is missing the fallback county %s", FallbackCounty)
	}

	return table, nil
}

// Lookup resolves the office for a county and service. Passport work routes
// to the immigration office, transport services to NTSA, everything else to
// the general-purpose Huduma Centre. Unknown counties fall back to the
// Nairobi record.
func (t *OfficeTable) Lookup(county types.County, service types.ServiceID) types.Location {
	offices, ok := t.counties[county]
	if !ok {
		offices = t.counties[FallbackCounty]
	}

	var address string
	switch service {
	case types.ServicePassport:
		address = offices.Immigration
	case types.ServiceDrivingLicense, types.ServiceVehicleRegistration:
		address = offices.NTSA
	default:
		address = offices.Huduma
	}

	return types.Location{
		Office:      OfficeName(service),
		Address:     address,
		Hours:       t.hours,
		Phone:       t.phone,
		IsRuleBased: true,
	}
}

// ByCounty returns the office record for county. The boolean reports
// whether the county is actually covered; an uncovered county returns the
// fallback record.
func (t *OfficeTable) ByCounty(county types.County) (CountyOffices, bool) {
	offices, ok := t.counties[county]
	if !ok {
		offices = t.counties[FallbackCounty]
	}
	return *offices, ok
}

// Hours returns the shared office hours line.
func (t *OfficeTable) Hours() string { return t.hours }

// Phone returns the shared office phone line.
func (t *OfficeTable) Phone() string { return t.phone }

// Covered reports whether the table has a record for county.
func (t *OfficeTable) Covered(county types.County) bool {
	_, ok := t.counties[county]
	return ok
}

// OfficeName returns the display name of the office handling a service.
func OfficeName(service types.ServiceID) string {
	switch service {
	case types.ServicePassport:
		return "Immigration Department"
	case types.ServiceDrivingLicense, types.ServiceVehicleRegistration:
		return "NTSA Office"
	case types.ServiceNHIF:
		return "NHIF Office / Huduma Centre"
	case types.ServiceKRAPIN:
		return "Online (iTax Portal)"
	default:
		return "Huduma Centre"
	}
}
