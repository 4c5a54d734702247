package normalize

import (
	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// Defaults substituted for fields the input leaves open. Together they
// describe the most common request - a first-time adult citizen applicant
// in the capital - so a bare free-text query still resolves to a sensible
// profile.
const (
	DefaultCounty          = types.County("Nairobi")
	DefaultAgeBracket      = types.Age18To35
	DefaultResidency       = types.ResidencyCitizen
	DefaultApplicationType = types.ApplicationNew
)

// LooseRequest is the external request shape before normalization: every
// field is an open string as it arrives from a form or chat surface.
type LooseRequest struct {
	County          string `json:"county,omitempty"`
	Service         string `json:"service,omitempty"`
	Age             string `json:"age,omitempty"`
	Residency       string `json:"residency,omitempty"`
	ApplicationType string `json:"application_type,omitempty"`
	Query           string `json:"query,omitempty"`
}

// Request translates a loose request into the canonical ServiceRequest.
// Fields the heuristic tables cannot place fall back to the documented
// defaults; a service named nowhere degrades to the catalog default entry.
func Request(loose *LooseRequest) *types.ServiceRequest {
	req := &types.ServiceRequest{
		County:          County(loose.County),
		Service:         Service(loose.Service),
		AgeBracket:      AgeBracket(loose.Age),
		Residency:       Residency(loose.Residency),
		ApplicationType: ApplicationType(loose.ApplicationType),
		Query:           loose.Query,
	}

	if req.Service == "" {
		req.Service = InferService(loose.Query)
	}
	if req.Service == "" {
		req.Service = catalog.DefaultServiceID
	}
	if req.County == "" {
		req.County = DefaultCounty
	}
	if req.AgeBracket == "" {
		req.AgeBracket = DefaultAgeBracket
	}
	if req.Residency == "" {
		req.Residency = DefaultResidency
	}
	if req.ApplicationType == "" {
		req.ApplicationType = DefaultApplicationType
	}

	return req
}
