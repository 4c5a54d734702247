package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjiru/huduma-guide/internal/catalog"
	"github.com/wanjiru/huduma-guide/internal/guide"
	"github.com/wanjiru/huduma-guide/internal/llm"
	"github.com/wanjiru/huduma-guide/internal/narrative"
	"github.com/wanjiru/huduma-guide/internal/types"
)

type cannedClient struct {
	response string
}

func (c *cannedClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.response, nil
}
func (c *cannedClient) GetModel(_ llm.ModelTier) string { return "canned" }
func (c *cannedClient) Close() error                    { return nil }

func chatServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	opts := guide.Options{}
	if client != nil {
		opts.Generator = narrative.NewGenerator(client, false)
	}

	s, err := New(Config{Port: 0, Engine: guide.NewEngine(cat, opts)})
	require.NoError(t, err)
	return s
}

func TestChatWithGeneratedReply(t *testing.T) {
	s := chatServer(t, &cannedClient{response: "Apply for your passport at Nyayo House."})
	rec := doJSON(t, s, http.MethodPost, "/v1/chat", map[string]string{
		"message": "how do I get a passport?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Apply for your passport at Nyayo House.", resp.Reply)
	assert.NotEmpty(t, resp.Checklist)
	assert.Contains(t, resp.Explanation, "factors:")
}

func TestChatFallbackWithoutGenerator(t *testing.T) {
	s := chatServer(t, nil)
	rec := doJSON(t, s, http.MethodPost, "/v1/chat", map[string]string{
		"message": "how do I get a national id?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// The rule-based checklist survives even when no model is configured.
	assert.Equal(t, narrative.FallbackReply, resp.Reply)
	assert.NotEmpty(t, resp.Checklist)
}

func TestChatChecklistMarksOptionalDocuments(t *testing.T) {
	s := chatServer(t, nil)
	rec := doJSON(t, s, http.MethodPost, "/v1/chat", map[string]string{
		"message": "I need to apply for a passport",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, item := range resp.Checklist {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Text)
		assert.False(t, item.Completed)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	s := chatServer(t, nil)
	rec := doJSON(t, s, http.MethodPost, "/v1/chat", map[string]string{"message": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHistoryWithoutDatabase(t *testing.T) {
	s := chatServer(t, nil)
	rec := doJSON(t, s, http.MethodGet, "/v1/chat/history?session_id=123", nil)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
