package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wanjiru/huduma-guide/internal/guide"
	"github.com/wanjiru/huduma-guide/internal/normalize"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// ServiceSummary is one row of the /v1/services listing
type ServiceSummary struct {
	ID          types.ServiceID `json:"id"`
	DisplayName string          `json:"display_name"`
	Category    string          `json:"category"`
	Authority   string          `json:"authority"`
	PortalURL   string          `json:"portal_url,omitempty"`
}

// OfficesResponse is the response for /v1/offices/{county}
type OfficesResponse struct {
	County      types.County `json:"county"`
	Covered     bool         `json:"covered"`
	Huduma      string       `json:"huduma"`
	Immigration string       `json:"immigration"`
	NTSA        string       `json:"ntsa"`
	Hours       string       `json:"hours"`
	Phone       string       `json:"phone"`
}

// validateLoose enforces the structured-or-free-text contract at the API
// boundary: a request may omit structured fields only when its query text
// is long enough for service inference.
func validateLoose(loose *normalize.LooseRequest) error {
	structured := loose.County != "" || loose.Service != "" || loose.Age != "" ||
		loose.Residency != "" || loose.ApplicationType != ""
	if !structured && len(strings.TrimSpace(loose.Query)) < types.MinQueryLength {
		return &ErrValidation{
			Field:   "query",
			Message: "provide structured fields or a free-text query of at least 5 characters",
		}
	}
	return nil
}

// handleResolve resolves a request into a full service profile
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var loose normalize.LooseRequest
	if err := json.NewDecoder(r.Body).Decode(&loose); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validateLoose(&loose); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.engine.Resolve(r.Context(), &loose, nil)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleResolveStream resolves a request and streams stages via SSE: the
// rule-based profile is sent as soon as it is composed, the narrative
// follows when the model is done.
func (s *Server) handleResolveStream(w http.ResponseWriter, r *http.Request) {
	var loose normalize.LooseRequest
	if err := json.NewDecoder(r.Body).Decode(&loose); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validateLoose(&loose); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.engine.Resolve(r.Context(), &loose, func(event guide.ProgressEvent) {
		sse.WriteEvent(event.Stage, event) //nolint:errcheck
	})

	sse.WriteComplete("completed")
}

// handleListServices lists the service catalog
func (s *Server) handleListServices(w http.ResponseWriter, _ *http.Request) {
	entries := s.engine.Catalog().Services()
	summaries := make([]ServiceSummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, ServiceSummary{
			ID:          entry.ID,
			DisplayName: entry.DisplayName,
			Category:    entry.Category,
			Authority:   entry.Authority,
			PortalURL:   entry.PortalURL,
		})
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleListCounties lists the counties accepted in requests
func (s *Server) handleListCounties(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.Counties)
}

// handleCountyOffices returns the office addresses for a county. Unknown
// counties return the Nairobi fallback record with covered=false rather
// than an error, matching the engine's substitution behavior.
func (s *Server) handleCountyOffices(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("county")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "County is required")
		return
	}

	county := normalize.County(name)
	table := s.engine.Catalog().Offices()
	offices, covered := table.ByCounty(county)

	s.jsonResponse(w, http.StatusOK, OfficesResponse{
		County:      offices.County,
		Covered:     covered,
		Huduma:      offices.Huduma,
		Immigration: offices.Immigration,
		NTSA:        offices.NTSA,
		Hours:       table.Hours(),
		Phone:       table.Phone(),
	})
}
