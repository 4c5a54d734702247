package db

import (
	"time"

	"github.com/google/uuid"
)

// Message roles stored in chat_messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session is one chat conversation.
type Session struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Message is one turn of a chat conversation. Metadata carries the
// structured payload that accompanied an assistant reply (checklist,
// decision explanation) as raw JSON.
type Message struct {
	ID        uuid.UUID      `json:"id"`
	SessionID uuid.UUID      `json:"session_id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Resolution is a stored record of one guidance resolution, kept for
// auditing which rule produced which answer.
type Resolution struct {
	ID          uuid.UUID      `json:"id"`
	Service     string         `json:"service"`
	County      string         `json:"county"`
	Status      string         `json:"status"`
	Request     map[string]any `json:"request,omitempty"`
	Profile     map[string]any `json:"profile,omitempty"`
	AIGenerated bool           `json:"ai_generated"`
	CreatedAt   time.Time      `json:"created_at"`
}
