package events

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Handler receives the payload passed to Emit.
type Handler func(payload any)

// Subscription identifies one registration made with On.
// Registering the same handler twice yields two distinct subscriptions.
type Subscription struct {
	event string
	id    uint64
}

// Event returns the event name the subscription listens to.
func (s Subscription) Event() string {
	return s.event
}

type listener struct {
	id      uint64
	handler Handler
}

// Observer is notified after every Emit; used for metrics.
type Observer func(event string, listeners int)

// Bus is an in-memory publish/subscribe hub scoped to one application instance.
// Delivery is synchronous and in registration order.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]listener
	nextID    uint64
	logger    *zap.Logger
	observer  Observer
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		listeners: make(map[string][]listener),
		logger:    logger.Named("events"),
	}
}

// Observe installs a hook called after each Emit. Passing nil removes it.
func (b *Bus) Observe(o Observer) {
	b.mu.Lock()
	b.observer = o
	b.mu.Unlock()
}

// On registers handler for event. Duplicate registrations are kept.
func (b *Bus) On(event string, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners[event] = append(b.listeners[event], listener{id: b.nextID, handler: handler})
	return Subscription{event: event, id: b.nextID}
}

// Off removes the registration identified by sub. It reports whether one was removed.
func (b *Bus) Off(sub Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ls := b.listeners[sub.event]
	for i, l := range ls {
		if l.id != sub.id {
			continue
		}
		rest := make([]listener, 0, len(ls)-1)
		rest = append(rest, ls[:i]...)
		rest = append(rest, ls[i+1:]...)
		if len(rest) == 0 {
			delete(b.listeners, sub.event)
		} else {
			b.listeners[sub.event] = rest
		}
		return true
	}
	return false
}

// Emit invokes every listener currently registered for event with payload.
// Listeners registered or removed while Emit runs take effect on the next Emit.
// A panicking listener is logged and does not prevent the rest from running.
func (b *Bus) Emit(event string, payload any) {
	b.mu.RLock()
	ls := b.listeners[event]
	observer := b.observer
	b.mu.RUnlock()

	for _, l := range ls {
		b.invoke(event, l, payload)
	}

	if observer != nil {
		observer(event, len(ls))
	}
}

func (b *Bus) invoke(event string, l listener, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event listener panicked",
				zap.String("event", event),
				zap.Uint64("subscription", l.id),
				zap.Error(fmt.Errorf("%v", r)),
			)
		}
	}()
	l.handler(payload)
}

// Count returns the number of listeners registered for event.
func (b *Bus) Count(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[event])
}
