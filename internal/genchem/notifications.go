package genchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// EventType names a chemistry lifecycle event
type EventType string

const (
	EventCreated EventType = "created"
	EventDeleted EventType = "deleted"
)

// ChemistryEvent is pushed to notifiers when a chemistry is stored or removed
type ChemistryEvent struct {
	Type        EventType   `json:"type"`
	ChemistryID ChemistryID `json:"chemistry_id"`
	Name        string      `json:"name"`
	Seed        *uint64     `json:"seed,omitempty"`
	Species     int         `json:"species"`
	Reactions   int         `json:"reactions"`
	MaxOrder    int         `json:"max_order"`
	TrackCharge bool        `json:"track_charge"`
	Timestamp   int64       `json:"timestamp"`
}

// NewChemistryEvent creates an event describing chem
func NewChemistryEvent(eventType EventType, id ChemistryID, chem *Chemistry) ChemistryEvent {
	return ChemistryEvent{
		Type:        eventType,
		ChemistryID: id,
		Name:        chem.Name,
		Seed:        chem.Seed,
		Species:     chem.System.Len(),
		Reactions:   len(chem.Reactions),
		MaxOrder:    chem.MaxOrder,
		TrackCharge: chem.TrackCharge,
		Timestamp:   time.Now().Unix(),
	}
}

// JSON returns the event as JSON bytes
func (ce ChemistryEvent) JSON() ([]byte, error) {
	return json.Marshal(ce)
}

// Notifier is the interface that all notification channels must implement
type Notifier interface {
	// ID returns a unique identifier for this notifier
	ID() string

	// Type returns the type of notifier (e.g., "webhook", "websocket")
	Type() string

	// Notify sends a notification event. Returns an error if notification fails.
	// The context can be used for cancellation and timeout.
	Notify(ctx context.Context, event ChemistryEvent) error

	// Close closes the notifier and releases any resources
	Close() error
}

// EventFilter is implemented by notifiers that only take some event types.
// The manager skips them for other events.
type EventFilter interface {
	Wants(EventType) bool
}

func accepts(n Notifier, t EventType) bool {
	f, ok := n.(EventFilter)
	return !ok || f.Wants(t)
}

// NotificationManager fans chemistry events out to registered notifiers.
// Enqueued events are delivered by a small worker pool with retries.
type NotificationManager struct {
	mu        sync.RWMutex
	notifiers map[string]Notifier
	jobs      chan ChemistryEvent
	closed    bool
	wg        sync.WaitGroup
	logger    Logger

	workers    int
	maxRetries int
	backoff    time.Duration
	timeout    time.Duration
}

// NotificationOption customises a NotificationManager.
type NotificationOption func(*NotificationManager)

// WithWorkers sets the number of delivery goroutines (default 1). Events are
// delivered in order only with a single worker.
func WithWorkers(n int) NotificationOption {
	return func(nm *NotificationManager) {
		if n > 0 {
			nm.workers = n
		}
	}
}

// WithRetry sets how often a failed delivery is retried and the first backoff,
// which doubles after every attempt. Defaults are 3 and 100ms.
func WithRetry(maxRetries int, backoff time.Duration) NotificationOption {
	return func(nm *NotificationManager) {
		nm.maxRetries = max(0, maxRetries)
		nm.backoff = backoff
	}
}

// WithQueueSize sets the event buffer (default 1024). Enqueue drops events
// once it is full.
func WithQueueSize(n int) NotificationOption {
	return func(nm *NotificationManager) {
		if n > 0 {
			nm.jobs = make(chan ChemistryEvent, n)
		}
	}
}

// NewNotificationManager creates a notification manager without logging.
func NewNotificationManager(opts ...NotificationOption) *NotificationManager {
	return NewNotificationManagerWithLogger(nil, opts...)
}

// NewNotificationManagerWithLogger creates a notification manager that reports
// delivery failures through logger.
func NewNotificationManagerWithLogger(logger Logger, opts ...NotificationOption) *NotificationManager {
	logger = orNoOp(logger)
	nm := &NotificationManager{
		notifiers:  make(map[string]Notifier),
		jobs:       make(chan ChemistryEvent, 1024),
		logger:     logger,
		workers:    1,
		maxRetries: 3,
		backoff:    100 * time.Millisecond,
		timeout:    30 * time.Second,
	}
	for _, opt := range opts {
		opt(nm)
	}
	for range nm.workers {
		nm.wg.Add(1)
		go nm.worker()
	}
	return nm
}

// RegisterNotifier adds notifier. IDs must be unique.
func (nm *NotificationManager) RegisterNotifier(notifier Notifier) error {
	if notifier == nil {
		return errors.New("notifier cannot be nil")
	}
	id := notifier.ID()
	if id == "" {
		return errors.New("notifier ID cannot be empty")
	}

	nm.mu.Lock()
	defer nm.mu.Unlock()
	if nm.closed {
		return errors.New("notification manager is closed")
	}
	if _, exists := nm.notifiers[id]; exists {
		return fmt.Errorf("notifier with ID %s already exists", id)
	}
	nm.notifiers[id] = notifier
	return nil
}

// UnregisterNotifier removes a notifier and closes it.
func (nm *NotificationManager) UnregisterNotifier(id string) error {
	nm.mu.Lock()
	notifier, exists := nm.notifiers[id]
	delete(nm.notifiers, id)
	nm.mu.Unlock()

	if !exists {
		return fmt.Errorf("notifier with ID %s not found", id)
	}
	if err := notifier.Close(); err != nil {
		return fmt.Errorf("error closing notifier %s: %w", id, err)
	}
	return nil
}

// GetNotifier retrieves a notifier by ID.
func (nm *NotificationManager) GetNotifier(id string) (Notifier, bool) {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	notifier, exists := nm.notifiers[id]
	return notifier, exists
}

// ListNotifiers returns the registered notifier IDs in no particular order.
func (nm *NotificationManager) ListNotifiers() []string {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	ids := make([]string, 0, len(nm.notifiers))
	for id := range nm.notifiers {
		ids = append(ids, id)
	}
	return ids
}

// targets returns the notifiers that accept events of type t.
func (nm *NotificationManager) targets(t EventType) []Notifier {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	out := make([]Notifier, 0, len(nm.notifiers))
	for _, n := range nm.notifiers {
		if accepts(n, t) {
			out = append(out, n)
		}
	}
	return out
}

// Enqueue queues event for asynchronous delivery. It never blocks; when the
// queue is full the event is dropped and a warning logged.
func (nm *NotificationManager) Enqueue(event ChemistryEvent) {
	nm.mu.RLock()
	defer nm.mu.RUnlock()
	if nm.closed {
		return
	}

	select {
	case nm.jobs <- event:
	default:
		nm.logger.Warnf("notification queue full, dropping event: type=%s chemistry_id=%s", event.Type, event.ChemistryID)
	}
}

func (nm *NotificationManager) worker() {
	defer nm.wg.Done()
	for event := range nm.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), nm.timeout)
		for _, n := range nm.targets(event.Type) {
			nm.deliver(ctx, n, event)
		}
		cancel()
	}
}

// deliver sends event to n, retrying with doubling backoff.
func (nm *NotificationManager) deliver(ctx context.Context, n Notifier, event ChemistryEvent) {
	wait := nm.backoff
	attempts := nm.maxRetries + 1
	for attempt := 1; ; attempt++ {
		err := n.Notify(ctx, event)
		if err == nil {
			return
		}
		nm.logger.Warnf("notification failed: notifier=%s attempt=%d error=%v", n.ID(), attempt, err)
		if attempt == attempts {
			nm.logger.Errorf("notification failed after %d attempts: notifier=%s", attempts, n.ID())
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			wait *= 2
		}
	}
}

// Notify delivers event synchronously to every accepting notifier, once each.
func (nm *NotificationManager) Notify(ctx context.Context, event ChemistryEvent) error {
	var errs []error
	for _, n := range nm.targets(event.Type) {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("notifier %s failed: %w", n.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Close drains queued events, then closes every notifier. Later calls are no-ops.
func (nm *NotificationManager) Close() error {
	nm.mu.Lock()
	if nm.closed {
		nm.mu.Unlock()
		return nil
	}
	nm.closed = true
	close(nm.jobs)
	nm.mu.Unlock()

	nm.wg.Wait()

	nm.mu.Lock()
	notifiers := nm.notifiers
	nm.notifiers = make(map[string]Notifier)
	nm.mu.Unlock()

	var errs []error
	for id, n := range notifiers {
		if err := n.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing notifier %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
