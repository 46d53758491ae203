package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"framelight/models"
	"framelight/services/chat"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	resp    *models.ChatResponse
	history []models.Message
	err     error
}

func (s *stubChatService) HandleTurn(_ context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, chat.NewValidationError("session_id is required")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubChatService) History(_ context.Context, _ string) ([]models.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.history, nil
}

func newChatRouter(svc chat.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(svc)
	r := gin.New()
	r.POST("/api/chat", h.HandleChat)
	r.GET("/api/messages/:session_id", h.HandleGetMessages)
	return r
}

func TestHandleChatSuccess(t *testing.T) {
	svc := &stubChatService{resp: &models.ChatResponse{Response: "Happy to help!", LeadEvent: models.LeadCreated}}
	router := newChatRouter(svc)

	body := `{"session_id":"s1","message":"My email is a@b.com and I want a wedding shoot"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Happy to help!", resp.Response)
	assert.Equal(t, models.LeadCreated, resp.LeadEvent)
}

func TestHandleChatMissingSessionID(t *testing.T) {
	router := newChatRouter(&stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatMalformedBody(t *testing.T) {
	router := newChatRouter(&stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatUpstreamFailure(t *testing.T) {
	svc := &stubChatService{err: &chat.UpstreamError{Err: errors.New("model overloaded")}}
	router := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleChatUpstreamTimeout(t *testing.T) {
	svc := &stubChatService{err: &chat.UpstreamError{Err: context.DeadlineExceeded}}
	router := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestHandleGetMessagesUnknownSessionReturnsEmptyArray(t *testing.T) {
	svc := &stubChatService{history: []models.Message{}}
	router := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/messages/never-seen", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHandleChatStorageFailure(t *testing.T) {
	svc := &stubChatService{err: &chat.StorageError{Op: "append user message", Err: errors.New("down")}}
	router := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id":"s1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
