// Package compose assembles the final service profile from the catalog
// baseline, the resolved office location and the eligibility verdict.
// Composition is pure: identical inputs produce identical profiles, and
// the catalog baselines are copied rather than referenced so a caller may
// mutate the returned profile freely.
package compose

import (
	"fmt"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// DataSource names the reference dataset cited in every decision
// explanation.
const DataSource = "Kenya Government Services Directory 2024"

// Compose builds the complete ServiceProfile for a request. The entry is
// expected to come from the catalog (already substituted with the default
// for unknown ids) and is copied verbatim; only the location, verdict and
// decision explanation vary per request.
func Compose(req *types.ServiceRequest, verdict types.EligibilityVerdict, entry *catalog.Entry, offices *catalog.OfficeTable) *types.ServiceProfile {
	location := offices.Lookup(req.County, req.Service)

	cost := entry.Cost
	cost.Breakdown = append([]types.CostItem(nil), entry.Cost.Breakdown...)
	cost.IsRuleBased = true

	processing := entry.ProcessingTime
	processing.IsRuleBased = true

	guidance := entry.Guidance
	guidance.Tips = append([]string(nil), entry.Guidance.Tips...)
	guidance.Warnings = append([]string(nil), entry.Guidance.Warnings...)
	guidance.IsAIGenerated = true

	return &types.ServiceProfile{
		ServiceName:    entry.DisplayName,
		County:         req.County,
		Location:       location,
		Cost:           cost,
		ProcessingTime: processing,
		RequiredDocuments: types.RequiredDocuments{
			Items:       append([]types.DocumentItem(nil), entry.Documents...),
			IsRuleBased: true,
		},
		Eligibility: verdict,
		ProcessSteps: types.ProcessSteps{
			Steps:       append([]types.ProcessStep(nil), entry.Steps...),
			IsRuleBased: true,
		},
		Guidance:            guidance,
		DecisionExplanation: explain(req, entry),
		Limitations:         append([]string(nil), entry.Limitations...),
	}
}

// explain records the rule source and the request factors that were
// considered. The factor order (county, age, residency, application type)
// is a stability contract for display and tests.
func explain(req *types.ServiceRequest, entry *catalog.Entry) types.DecisionExplanation {
	return types.DecisionExplanation{
		Rule: fmt.Sprintf("Service requirements determined by %s guidelines", entry.Authority),
		Factors: []string{
			fmt.Sprintf("County: %s", req.County),
			fmt.Sprintf("Age category: %s", req.AgeBracket),
			fmt.Sprintf("Residency status: %s", req.Residency),
			fmt.Sprintf("Application type: %s", req.ApplicationType),
		},
		Source: DataSource,
	}
}
