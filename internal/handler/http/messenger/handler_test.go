package messenger_http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dailyapps/internal/app/messenger"
	domain "dailyapps/internal/domain/messenger"
	"dailyapps/internal/outbox"
)

func do(t *testing.T, h http.Handler, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestMessengerEndpoints(t *testing.T) {
	store := outbox.NewStore(0)
	r := chi.NewRouter()
	RegisterRoutes(r, messenger.NewMessengerService(store, "notifications", zaptest.NewLogger(t)), zaptest.NewLogger(t))

	var alice, bob messenger.UserInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/messenger/users", map[string]string{"name": "alice", "contact_info": "alice@example.com"}, &alice))
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/messenger/users", map[string]string{"name": "bob", "contact_info": "bob@example.com"}, &bob))
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/messenger/users", map[string]string{"name": "b o b", "contact_info": "bob@example.com"}, nil))

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/messenger/users/"+bob.ID+"/presence", map[string]bool{"online": true}, nil))

	var conv messenger.ConversationInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/messenger/conversations", map[string]any{"creator_id": alice.ID, "member_ids": []string{bob.ID}}, &conv))

	var msg messenger.MessageInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/messenger/messages",
		map[string]any{"sender_id": alice.ID, "to": map[string]string{"conversation_id": conv.ID}, "content": "hello"}, &msg))
	assert.Equal(t, 1, msg.Notified)

	pending, err := store.Pending(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/messenger/messages",
		map[string]any{"sender_id": alice.ID, "to": map[string]string{"user_id": bob.ID}, "content": "   "}, nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/messenger/messages",
		map[string]any{"sender_id": "ghost", "to": map[string]string{"user_id": bob.ID}, "content": "boo"}, nil))

	var media messenger.MessageInfo
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/messenger/messages",
		map[string]any{"sender_id": alice.ID, "to": map[string]string{"user_id": bob.ID}, "file_path": "/a.png", "file_type": "image/png"}, &media))

	require.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/messenger/messages/"+media.ID, nil, nil))
	var inbox []domain.Entry
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/messenger/users/"+bob.ID+"/inbox", nil, &inbox))
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].Deleted)

	var history []domain.Entry
	require.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/messenger/conversations/"+conv.ID+"/history?limit=1", nil, &history))
	assert.Len(t, history, 1)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/messenger/conversations/"+conv.ID+"/history?limit=9", nil, nil))

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodPut, "/messenger/conversations/"+conv.ID+"/mute", map[string]any{"user_id": bob.ID, "muted": true}, nil))
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/messenger/messages/ghost", nil, nil))
}
