package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/sqlai/server/internal/agent"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAssistant struct {
	chatFunc       func(ctx context.Context, message string) (*agent.ChatResponse, error)
	structuredFunc func(ctx context.Context, message string) (*agent.StructuredResponse, error)
	messages       []string
}

func (m *mockAssistant) Chat(ctx context.Context, message string) (*agent.ChatResponse, error) {
	m.messages = append(m.messages, message)
	return m.chatFunc(ctx, message)
}

func (m *mockAssistant) ChatStructured(ctx context.Context, message string) (*agent.StructuredResponse, error) {
	m.messages = append(m.messages, message)
	return m.structuredFunc(ctx, message)
}

func setupRouter(assistant Assistant) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), assistant)

	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestChatHandler(t *testing.T) {
	assistant := &mockAssistant{
		chatFunc: func(_ context.Context, message string) (*agent.ChatResponse, error) {
			return &agent.ChatResponse{UserMessage: message, AssistantResponse: "Try Mouse A.", ProductsFound: true}, nil
		},
	}

	w := post(setupRouter(assistant), "/api/chat", `{"message":"wireless mouse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_message":"wireless mouse","assistant_response":"Try Mouse A.","products_found":true}`, w.Body.String())
	assert.Equal(t, []string{"wireless mouse"}, assistant.messages)
}

func TestChatHandler_EmptyMessageIsAccepted(t *testing.T) {
	assistant := &mockAssistant{
		chatFunc: func(_ context.Context, message string) (*agent.ChatResponse, error) {
			return &agent.ChatResponse{UserMessage: message}, nil
		},
	}

	w := post(setupRouter(assistant), "/api/chat", `{"message":""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, assistant.messages)
}

func TestChatHandler_MissingMessage(t *testing.T) {
	assistant := &mockAssistant{}

	for _, body := range []string{`{}`, `not json`} {
		w := post(setupRouter(assistant), "/api/chat", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	assert.Empty(t, assistant.messages)
}

func TestChatHandler_Failure(t *testing.T) {
	assistant := &mockAssistant{
		chatFunc: func(_ context.Context, _ string) (*agent.ChatResponse, error) {
			return nil, fmt.Errorf("failed to generate response: %w", context.DeadlineExceeded)
		},
	}

	w := post(setupRouter(assistant), "/api/chat", `{"message":"mouse"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "server_error", body["error"])
}

func TestStructuredHandler_ReturnsModelJSON(t *testing.T) {
	payload := `{"recommendations":[{"productName":"Mouse A","reason":"cheap","confidence":"high"}],"summary":"ok"}`
	assistant := &mockAssistant{
		structuredFunc: func(_ context.Context, _ string) (*agent.StructuredResponse, error) {
			return &agent.StructuredResponse{Payload: json.RawMessage(payload)}, nil
		},
	}

	w := post(setupRouter(assistant), "/api/chat/structured", `{"message":"gaming mouse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, w.Body.String())
}

func TestStructuredHandler_Fallback(t *testing.T) {
	assistant := &mockAssistant{
		structuredFunc: func(_ context.Context, _ string) (*agent.StructuredResponse, error) {
			return &agent.StructuredResponse{RawResponse: "Here you go: Mouse A"}, nil
		},
	}

	w := post(setupRouter(assistant), "/api/chat/structured", `{"message":"gaming mouse"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"raw_response":"Here you go: Mouse A"}`, w.Body.String())
}
