package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ChatRequest is an incoming free-text chat message.
type ChatRequest struct {
	Message   string    `json:"message" validate:"required,min=1"`
	SessionID uuid.UUID `json:"session_id,omitempty"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ChecklistItem is one actionable item in a chat reply's checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ChatResponse is the assistant's reply to a chat message. Reply may be an
// AI fallback message when the narrative generator is unavailable; the
// checklist and explanation are always derived from the rule-based profile.
type ChatResponse struct {
	SessionID   uuid.UUID       `json:"session_id"`
	Reply       string          `json:"reply"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Explanation string          `json:"explanation,omitempty"`
}
