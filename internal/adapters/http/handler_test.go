package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/phonekart/phonekart-agent/internal/adapters/http"
	memstore "github.com/phonekart/phonekart-agent/internal/adapters/storage/memory"
	"github.com/phonekart/phonekart-agent/internal/app/catalog"
	"github.com/phonekart/phonekart-agent/internal/app/conversation"
	"github.com/phonekart/phonekart-agent/internal/domain"
)

func intp(v int) *int { return &v }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	index := catalog.NewIndex([]domain.Phone{
		{Name: "Samsung Galaxy A54", Brand: "Samsung", Price: intp(38999)},
		{Name: "Pixel 8a", Brand: "Google", Price: intp(52999)},
	})

	// No provider configured: replies come from the fallback composer.
	svc := conversation.NewService(nil, memstore.NewSessionStore(), index)
	return httpadapter.NewServer(svc, index)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := []byte(`{"message":"Show me Samsung phones"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	var result domain.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.IntentSearchByBrand, result.Intent)
	assert.NotEmpty(t, result.ConversationID)
	assert.Contains(t, result.Message, "Samsung Galaxy A54")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestChatEndpointKeepsConversationID(t *testing.T) {
	srv := newTestServer(t)

	body := []byte(`{"message":"hello","conversationId":"conv-42"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.ConversationID("conv-42"), result.ConversationID)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{`{}`, `{"message":"   "}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(body)))
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestPhonesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/phones", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var phones []domain.Phone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &phones))
	assert.Len(t, phones, 2)
}
