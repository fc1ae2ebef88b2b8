package notifiers

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// WebSocketNotifier streams chemistry events to WebSocket subscribers as one
// JSON text message per event. It is also the http.Handler that accepts them.
type WebSocketNotifier struct {
	id       string
	logger   genchem.Logger
	upgrader websocket.Upgrader

	mu   sync.RWMutex
	subs map[*subscriber]struct{}

	events    chan genchem.ChemistryEvent
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type subscriber struct {
	conn  *websocket.Conn
	types []genchem.EventType // empty means every type
}

func (s *subscriber) wants(t genchem.EventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// NewWebSocketNotifier starts a hub. logger may be nil.
func NewWebSocketNotifier(id string, logger genchem.Logger) *WebSocketNotifier {
	if logger == nil {
		logger = genchem.NewNoOpLogger()
	}
	wsn := &WebSocketNotifier{
		id:     id,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		subs:   make(map[*subscriber]struct{}),
		events: make(chan genchem.ChemistryEvent, 256),
		done:   make(chan struct{}),
	}
	wsn.wg.Add(1)
	go wsn.run()
	return wsn
}

func (wsn *WebSocketNotifier) ID() string   { return wsn.id }
func (wsn *WebSocketNotifier) Type() string { return "websocket" }

// ParseEventTypes parses a comma separated list such as "created,deleted".
// An empty string selects every type.
func ParseEventTypes(s string) ([]genchem.EventType, error) {
	var out []genchem.EventType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t := genchem.EventType(part)
		switch t {
		case genchem.EventCreated, genchem.EventDeleted:
			out = append(out, t)
		default:
			return nil, fmt.Errorf("%w: unknown event type %q", genchem.ErrInvalidArgument, part)
		}
	}
	return out, nil
}

// ServeHTTP upgrades the request and keeps the connection subscribed until
// the peer goes away. The optional "events" query parameter filters by type.
func (wsn *WebSocketNotifier) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	types, err := ParseEventTypes(r.URL.Query().Get("events"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := wsn.upgrader.Upgrade(w, r, nil)
	if err != nil {
		wsn.logger.Warnf("WebSocket upgrade failed: remote=%s error=%v", r.RemoteAddr, err)
		return
	}
	unsubscribe, err := wsn.Subscribe(conn, types...)
	if err != nil {
		_ = conn.Close()
		return
	}
	defer unsubscribe()
	wsn.logger.Debugf("WebSocket subscriber connected: remote=%s events=%v", r.RemoteAddr, types)

	// Subscribers only listen; reading surfaces the peer closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsn.logger.Debugf("WebSocket subscriber gone: remote=%s", r.RemoteAddr)
			return
		}
	}
}

// Subscribe adds conn to the hub. The returned func removes and closes it.
func (wsn *WebSocketNotifier) Subscribe(conn *websocket.Conn, types ...genchem.EventType) (func(), error) {
	select {
	case <-wsn.done:
		return nil, fmt.Errorf("notifier %s is closed", wsn.id)
	default:
	}

	sub := &subscriber{conn: conn, types: types}
	wsn.mu.Lock()
	wsn.subs[sub] = struct{}{}
	wsn.mu.Unlock()

	return func() { wsn.drop(sub) }, nil
}

// ClientCount returns the number of subscribers.
func (wsn *WebSocketNotifier) ClientCount() int {
	wsn.mu.RLock()
	defer wsn.mu.RUnlock()
	return len(wsn.subs)
}

// Notify queues event for broadcast.
func (wsn *WebSocketNotifier) Notify(ctx context.Context, event genchem.ChemistryEvent) error {
	select {
	case <-wsn.done:
		return fmt.Errorf("notifier %s is closed", wsn.id)
	default:
	}

	select {
	case wsn.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wsn.done:
		return fmt.Errorf("notifier %s is closed", wsn.id)
	case <-time.After(time.Second):
		return fmt.Errorf("notifier %s: broadcast queue full", wsn.id)
	}
}

// run is the only writer to subscriber connections while the hub is open.
func (wsn *WebSocketNotifier) run() {
	defer wsn.wg.Done()
	for {
		select {
		case <-wsn.done:
			return
		case event := <-wsn.events:
			wsn.broadcast(event)
		}
	}
}

func (wsn *WebSocketNotifier) broadcast(event genchem.ChemistryEvent) {
	payload, err := event.JSON()
	if err != nil {
		wsn.logger.Errorf("WebSocket event encoding failed: chemistry_id=%s error=%v", event.ChemistryID, err)
		return
	}

	wsn.mu.RLock()
	targets := make([]*subscriber, 0, len(wsn.subs))
	for sub := range wsn.subs {
		if sub.wants(event.Type) {
			targets = append(targets, sub)
		}
	}
	wsn.mu.RUnlock()

	for _, sub := range targets {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			wsn.logger.Debugf("WebSocket write failed, dropping subscriber: error=%v", err)
			wsn.drop(sub)
		}
	}
}

func (wsn *WebSocketNotifier) drop(sub *subscriber) {
	wsn.mu.Lock()
	_, ok := wsn.subs[sub]
	delete(wsn.subs, sub)
	wsn.mu.Unlock()
	if ok && sub.conn != nil {
		_ = sub.conn.Close()
	}
}

// Close stops the hub and closes every subscriber. It is safe to call twice.
func (wsn *WebSocketNotifier) Close() error {
	wsn.closeOnce.Do(func() {
		close(wsn.done)
		wsn.wg.Wait()

		wsn.mu.Lock()
		subs := wsn.subs
		wsn.subs = make(map[*subscriber]struct{})
		wsn.mu.Unlock()

		for sub := range subs {
			if sub.conn != nil {
				_ = sub.conn.Close()
			}
		}
	})
	return nil
}
