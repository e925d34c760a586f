package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/testutil"
)

func TestHub_NotifyTagScore(t *testing.T) {
	hub := NewHub(func(*http.Request) bool { return true }, testutil.NopLogger{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("tag"))
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?tag=t1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var ack Message
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, "subscribed", ack.Type)
	assert.Equal(t, 1, hub.Subscribers("t1"))

	hub.NotifyTagScore("t2", 9, entities.VoteTally{Upvotes: 9})
	hub.NotifyTagScore("t1", 1, entities.VoteTally{Upvotes: 2, Downvotes: 1})

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, Message{Type: "tag.score", TagID: "t1", Score: 1, Upvotes: 2, Downvotes: 1}, msg)
}
