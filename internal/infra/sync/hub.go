package sync

import (
	"sync"

	"slotbook/internal/usecase/queries"
)

// Hub owns the last-known-good snapshot of the appointment collection and
// fans complete snapshots out to subscribers. Every delivery is a full-state
// replace, never a diff; a slow subscriber only ever skips intermediate
// snapshots (last snapshot wins).
type Hub struct {
	mu      sync.RWMutex
	current []queries.AppointmentView
	loaded  bool
	lastErr error
	subs    map[int]chan []queries.AppointmentView
	nextID  int
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]chan []queries.AppointmentView),
	}
}

// Publish swaps in a new snapshot atomically and clears any pending sync
// error. Subscribers that have not drained their previous delivery get the
// new one instead.
func (h *Hub) Publish(snapshot []queries.AppointmentView) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = snapshot
	h.loaded = true
	h.lastErr = nil

	for _, ch := range h.subs {
		// Buffer size is 1: drop the stale snapshot, keep the latest.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Fail records a subscription failure. The current snapshot stays served
// untouched; consumers continue on last-known-good data until the watcher
// resubscribes.
func (h *Hub) Fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastErr = err
}

// Current returns the last-known-good snapshot. Before the first successful
// load it returns nil with Loaded() false.
func (h *Hub) Current() []queries.AppointmentView {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

func (h *Hub) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

func (h *Hub) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}

// Subscribe registers a snapshot channel and returns its release func. The
// caller must release on teardown; the hub keeps no reference afterwards.
func (h *Hub) Subscribe() (<-chan []queries.AppointmentView, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan []queries.AppointmentView, 1)
	h.subs[id] = ch

	if h.loaded {
		ch <- h.current
	}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
