// Package catalog provides the static reference data for government
// services: per-service cost schedules, processing times, document
// checklists, procedure steps and baseline guidance, plus the county
// office table. Data is embedded, schema-validated at load, and immutable
// afterwards; a Catalog is constructed once and passed to whatever needs
// it rather than exposed as a package singleton.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/wanjiru/huduma-guide/internal/schemas"
	"github.com/wanjiru/huduma-guide/internal/types"
)

//go:embed data/services.json
var servicesJSON string

//go:embed data/services.schema.json
var servicesSchema string

//go:embed data/offices.json
var officesJSON string

//go:embed data/offices.schema.json
var officesSchema string

// DefaultServiceID is substituted when a request names a service the
// catalog does not know. A first-time National ID application is the most
// common request, so an unknown-service query still returns something
// useful instead of an error.
const DefaultServiceID = types.ServiceNationalID

// Entry is one service's baseline reference record.
type Entry struct {
	ID             types.ServiceID      `json:"id"`
	DisplayName    string               `json:"display_name"`
	Category       string               `json:"category"`
	Authority      string               `json:"authority"`
	PortalURL      string               `json:"portal_url,omitempty"`
	Cost           types.Cost           `json:"cost"`
	ProcessingTime types.ProcessingTime `json:"processing_time"`
	Documents      []types.DocumentItem `json:"documents"`
	Steps          []types.ProcessStep  `json:"steps"`
	Guidance       types.Guidance       `json:"guidance"`
	Limitations    []string             `json:"limitations"`
}

// Catalog holds the loaded service entries and county office table.
type Catalog struct {
	entries map[types.ServiceID]*Entry
	order   []types.ServiceID
	offices *OfficeTable
}

// Load parses and validates the embedded catalog data. An invalid embedded
// document is a build defect, so Load failing is fatal to the process.
func Load() (*Catalog, error) {
	if err := schemas.ValidateJSONString(servicesSchema, servicesJSON); err != nil {
		return nil, fmt.Errorf("service catalog failed schema validation: %w", err)
	}
	if err := schemas.ValidateJSONString(officesSchema, officesJSON); err != nil {
		return nil, fmt.Errorf("office table failed schema validation: %w", err)
	}

	var raw []Entry
	if err := json.Unmarshal([]byte(servicesJSON), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse service catalog: %w", err)
	}

	c := &Catalog{entries: make(map[types.ServiceID]*Entry, len(raw))}
	for i := range raw {
		entry := raw[i]
		if _, exists := c.entries[entry.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog entry: %s", entry.ID)
		}
		c.entries[entry.ID] = &entry
		c.order = append(c.order, entry.ID)
	}

	if _, ok := c.entries[DefaultServiceID]; !ok {
		return nil, fmt.Errorf("catalog is missing the default entry %s", DefaultServiceID)
	}

	offices, err := loadOffices(officesJSON)
	if err != nil {
		return nil, err
	}
	c.offices = offices

	return c, nil
}

// Entry returns a deep copy of the entry for id, substituting the default
// National ID entry when the id is unknown. Callers own the returned value
// and may mutate it freely.
func (c *Catalog) Entry(id types.ServiceID) *Entry {
	entry, ok := c.entries[id]
	if !ok {
		entry = c.entries[DefaultServiceID]
	}
	return entry.clone()
}

// Known reports whether id names a real catalog entry.
func (c *Catalog) Known(id types.ServiceID) bool {
	_, ok := c.entries[id]
	return ok
}

// Services returns the entries in catalog order, deep-copied.
func (c *Catalog) Services() []*Entry {
	out := make([]*Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].clone())
	}
	return out
}

// Offices returns the county office table.
func (c *Catalog) Offices() *OfficeTable {
	return c.offices
}

// clone returns a deep copy so catalog baselines survive caller mutation.
func (e *Entry) clone() *Entry {
	dup := *e
	dup.Cost.Breakdown = append([]types.CostItem(nil), e.Cost.Breakdown...)
	dup.Documents = append([]types.DocumentItem(nil), e.Documents...)
	dup.Steps = append([]types.ProcessStep(nil), e.Steps...)
	dup.Guidance.Tips = append([]string(nil), e.Guidance.Tips...)
	dup.Guidance.Warnings = append([]string(nil), e.Guidance.Warnings...)
	dup.Limitations = append([]string(nil), e.Limitations...)
	return &dup
}
