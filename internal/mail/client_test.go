package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDeliversAndReturnsMessageID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"fan@example.com"}, req.To)
		assert.Equal(t, "Your NBA Week", req.Subject)
		assert.Contains(t, req.HTML, "<html>")

		w.Write([]byte(`{"id": "msg_123"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, From: "Courtside <bot@example.com>"})
	id, err := client.Send(context.Background(), "fan@example.com", "Your NBA Week", "<html><body>hi</body></html>")
	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
}

func TestSendUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid recipient"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Send(context.Background(), "not-an-address", "s", "<p>x</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSendWithoutKey(t *testing.T) {
	client := NewClient(Config{})
	assert.False(t, client.Configured())

	_, err := client.Send(context.Background(), "fan@example.com", "s", "<p>x</p>")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
