package types

// EligibilityStatus is the engine's verdict on whether an applicant may use
// a service. Statuses form a severity order: NotEligible dominates
// ConditionallyEligible, which dominates Eligible.
type EligibilityStatus string

// Eligibility statuses, loosest to strictest.
const (
	StatusEligible              EligibilityStatus = "eligible"
	StatusConditionallyEligible EligibilityStatus = "conditionally_eligible"
	StatusNotEligible           EligibilityStatus = "not_eligible"
)

// severity maps each status to its rank in the dominance order.
var severity = map[EligibilityStatus]int{
	StatusEligible:              0,
	StatusConditionallyEligible: 1,
	StatusNotEligible:           2,
}

// Stricter returns the stricter of the two statuses. Folding every rule's
// proposed status through Stricter guarantees a verdict is never relaxed by
// a later, looser rule.
func Stricter(a, b EligibilityStatus) EligibilityStatus {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

// EligibilityVerdict is the evaluator's decision with supporting reasons.
// Conditions is ordered by rule evaluation and is never empty.
type EligibilityVerdict struct {
	Status      EligibilityStatus `json:"status"`
	Conditions  []string          `json:"conditions"`
	IsRuleBased bool              `json:"is_rule_based"`
}

// Location is the resolved physical office for a request.
type Location struct {
	Office      string `json:"office"`
	Address     string `json:"address"`
	Hours       string `json:"hours"`
	Phone       string `json:"phone"`
	IsRuleBased bool   `json:"is_rule_based"`
}

// CostItem is one line of a cost breakdown.
type CostItem struct {
	Item string `json:"item"`
	Cost string `json:"cost"`
}

// Cost is a service's fee schedule.
type Cost struct {
	Amount      string     `json:"amount"`
	Breakdown   []CostItem `json:"breakdown"`
	IsRuleBased bool       `json:"is_rule_based"`
}

// ProcessingTime is a service's expected turnaround.
type ProcessingTime struct {
	Standard    string `json:"standard"`
	Expedited   string `json:"expedited,omitempty"`
	IsRuleBased bool   `json:"is_rule_based"`
}

// DocumentItem is one entry in a service's document checklist.
type DocumentItem struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Note     string `json:"note,omitempty"`
}

// RequiredDocuments is the full document checklist for a service.
type RequiredDocuments struct {
	Items       []DocumentItem `json:"items"`
	IsRuleBased bool           `json:"is_rule_based"`
}

// ProcessStep is one procedural step of a service application.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// ProcessSteps is the ordered application procedure for a service.
type ProcessSteps struct {
	Steps       []ProcessStep `json:"steps"`
	IsRuleBased bool          `json:"is_rule_based"`
}

// Guidance is plain-language advice for a service. Unlike the rule-based
// sections it may be replaced or regenerated by the narrative generator,
// so it carries the IsAIGenerated marker instead of IsRuleBased.
type Guidance struct {
	Explanation   string   `json:"explanation"`
	Tips          []string `json:"tips"`
	Warnings      []string `json:"warnings"`
	IsAIGenerated bool     `json:"is_ai_generated"`
}

// DecisionExplanation records which rule fired and which request factors
// were considered, for display alongside the profile.
type DecisionExplanation struct {
	Rule    string   `json:"rule"`
	Factors []string `json:"factors"`
	Source  string   `json:"source"`
}

// ServiceProfile is the engine's complete output for one request. Every
// rule-based section traces back to exactly one catalog entry; the verdict
// and decision explanation are computed fresh per request.
type ServiceProfile struct {
	ServiceName         string              `json:"service_name"`
	County              County              `json:"county"`
	Location            Location            `json:"location"`
	Cost                Cost                `json:"cost"`
	ProcessingTime      ProcessingTime      `json:"processing_time"`
	RequiredDocuments   RequiredDocuments   `json:"required_documents"`
	Eligibility         EligibilityVerdict  `json:"eligibility"`
	ProcessSteps        ProcessSteps        `json:"process_steps"`
	Guidance            Guidance            `json:"guidance"`
	DecisionExplanation DecisionExplanation `json:"decision_explanation"`
	Limitations         []string            `json:"limitations"`
}
