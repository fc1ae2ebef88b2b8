package notifiers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) genchem.ChemistryEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var event genchem.ChemistryEvent
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestNewWebSocketNotifier(t *testing.T) {
	notifier := NewWebSocketNotifier("test-ws", nil)
	defer notifier.Close()

	assert.Equal(t, "test-ws", notifier.ID())
	assert.Equal(t, "websocket", notifier.Type())
	assert.Zero(t, notifier.ClientCount())
}

func TestParseEventTypes(t *testing.T) {
	types, err := ParseEventTypes("")
	require.NoError(t, err)
	assert.Empty(t, types)

	types, err = ParseEventTypes(" deleted, created ,")
	require.NoError(t, err)
	assert.Equal(t, []genchem.EventType{genchem.EventDeleted, genchem.EventCreated}, types)

	_, err = ParseEventTypes("created,renamed")
	assert.ErrorIs(t, err, genchem.ErrInvalidArgument)
}

func TestWebSocketNotifier_NotifyWithoutClients(t *testing.T) {
	notifier := NewWebSocketNotifier("test", nil)
	defer notifier.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, notifier.Notify(ctx, testEvent(t)))
}

func TestWebSocketNotifier_Broadcast(t *testing.T) {
	notifier := NewWebSocketNotifier("hub", nil)
	server := httptest.NewServer(notifier)
	defer server.Close()
	defer notifier.Close()

	all := dialHub(t, server, "")
	onlyDeleted := dialHub(t, server, "?events=deleted")
	require.Eventually(t, func() bool { return notifier.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	created := testEvent(t)
	deleted := created
	deleted.Type = genchem.EventDeleted

	require.NoError(t, notifier.Notify(context.Background(), created))
	require.NoError(t, notifier.Notify(context.Background(), deleted))

	assert.Equal(t, created, readEvent(t, all))
	assert.Equal(t, deleted, readEvent(t, all))
	assert.Equal(t, deleted, readEvent(t, onlyDeleted))
}

func TestWebSocketNotifier_Disconnect(t *testing.T) {
	notifier := NewWebSocketNotifier("hub", nil)
	server := httptest.NewServer(notifier)
	defer server.Close()
	defer notifier.Close()

	conn := dialHub(t, server, "")
	require.Eventually(t, func() bool { return notifier.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return notifier.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestWebSocketNotifier_BadFilter(t *testing.T) {
	notifier := NewWebSocketNotifier("hub", nil)
	server := httptest.NewServer(notifier)
	defer server.Close()
	defer notifier.Close()

	resp, err := http.Get(server.URL + "?events=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebSocketNotifier_Close(t *testing.T) {
	notifier := NewWebSocketNotifier("test", nil)
	require.NoError(t, notifier.Close())
	require.NoError(t, notifier.Close())

	assert.Error(t, notifier.Notify(context.Background(), testEvent(t)))

	_, err := notifier.Subscribe(nil)
	assert.Error(t, err)
}
