package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/wanjiru/huduma-guide/internal/db"
	"github.com/wanjiru/huduma-guide/internal/normalize"
	"github.com/wanjiru/huduma-guide/internal/types"
)

// handleChat answers a free-text message: the engine matches it to a
// service, builds the profile, and the checklist and explanation come
// straight from the rule-based sections. Both sides of the exchange are
// persisted when a database is configured.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	result := s.engine.Resolve(r.Context(), &normalize.LooseRequest{Query: req.Message}, nil)
	profile := result.Profile

	reply, _ := s.engine.ChatReply(r.Context(), profile, req.Message)

	response := types.ChatResponse{
		SessionID:   req.SessionID,
		Reply:       reply,
		Checklist:   checklistFromDocuments(profile),
		Explanation: explanationText(profile),
	}

	if database := s.engine.Database(); database != nil {
		sessionID, err := s.ensureSession(r, database, req.SessionID)
		if err != nil {
			log.Printf("Chat persistence unavailable: %v", err)
		} else {
			response.SessionID = sessionID
			s.persistExchange(r, database, sessionID, req.Message, response)
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleChatHistory returns a session's messages in order
func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	database := s.engine.Database()
	if database == nil {
		err := &ErrPersistenceUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	idStr := r.URL.Query().Get("session_id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session_id format")
		return
	}

	session, err := database.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if session == nil {
		notFound := &ErrSessionNotFound{SessionID: sessionID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	messages, err := database.History(r.Context(), sessionID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"messages":   messages,
	})
}

// ensureSession reuses the request's session or creates a new one.
func (s *Server) ensureSession(r *http.Request, database *db.DB, sessionID uuid.UUID) (uuid.UUID, error) {
	if sessionID != uuid.Nil {
		session, err := database.GetSession(r.Context(), sessionID)
		if err != nil {
			return uuid.Nil, err
		}
		if session != nil {
			return sessionID, nil
		}
		// Unknown session ids fall through to a fresh session rather
		// than erroring, so expired clients keep working.
	}
	return database.CreateSession(r.Context())
}

// persistExchange stores the user message and assistant reply.
func (s *Server) persistExchange(r *http.Request, database *db.DB, sessionID uuid.UUID, message string, response types.ChatResponse) {
	if err := database.SaveMessage(r.Context(), sessionID, db.RoleUser, message, nil); err != nil {
		log.Printf("Failed to save user message: %v", err)
		return
	}
	metadata := map[string]any{
		"checklist":   response.Checklist,
		"explanation": response.Explanation,
	}
	if err := database.SaveMessage(r.Context(), sessionID, db.RoleAssistant, response.Reply, metadata); err != nil {
		log.Printf("Failed to save assistant message: %v", err)
	}
}

// checklistFromDocuments turns the profile's document list into an
// actionable checklist.
func checklistFromDocuments(profile *types.ServiceProfile) []types.ChecklistItem {
	items := make([]types.ChecklistItem, 0, len(profile.RequiredDocuments.Items))
	for i, doc := range profile.RequiredDocuments.Items {
		text := doc.Name
		if !doc.Required {
			text += " (if applicable)"
		}
		items = append(items, types.ChecklistItem{
			ID:   fmt.Sprintf("doc-%d", i+1),
			Text: text,
		})
	}
	return items
}

// explanationText summarizes why the engine answered the way it did.
func explanationText(profile *types.ServiceProfile) string {
	return fmt.Sprintf("%s (factors: %s)",
		profile.DecisionExplanation.Rule,
		strings.Join(profile.DecisionExplanation.Factors, "; "))
}
