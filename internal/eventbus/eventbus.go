package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"swiper/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageSelected     = domain.EventPageSelected
	EventPagerChanged     = domain.EventPagerChanged
	EventPageDiscovered   = domain.EventPageDiscovered
	EventScanStarted      = domain.EventScanStarted
	EventScanCompleted    = domain.EventScanCompleted
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventNativePagerOpen  = domain.EventNativePagerOpen
	EventNativePagerClose = domain.EventNativePagerClose
)

// Re-export domain event types
type PageSelectedEvent = domain.PageSelectedEvent
type PagerChangedEvent = domain.PagerChangedEvent
type PageDiscoveredEvent = domain.PageDiscoveredEvent
type ScanStartedEvent = domain.ScanStartedEvent
type ScanCompletedEvent = domain.ScanCompletedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type NativePagerOpenedEvent = domain.NativePagerOpenedEvent
type NativePagerClosedEvent = domain.NativePagerClosedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// registry holds subscriptions keyed by event type
type registry struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[EventType][]subscription
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (r *registry) Subscribe(eventType EventType, handler EventHandler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handlers == nil {
		r.handlers = make(map[EventType][]subscription)
	}
	r.nextID++
	id := r.nextID
	r.handlers[eventType] = append(r.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()

			subs := r.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					r.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// snapshot copies the handlers so no lock is held while they run
func (r *registry) snapshot(eventType EventType) []EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.handlers[eventType]
	out := make([]EventHandler, len(subs))
	for i, s := range subs {
		out[i] = s.handler
	}
	return out
}

// bus is the asynchronous implementation of EventBus
type bus struct {
	registry
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates an asynchronous event bus. Handlers run on their own
// goroutines; use it for application plumbing, never for paging state.
func New() EventBus {
	b := &bus{
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventPagerChanged:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Close stops the dispatcher and discards undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() { close(b.quit) })
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			for _, handler := range b.snapshot(event.Type()) {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// SyncBus delivers events inline, in publish order, on the caller's
// goroutine. The paging core publishes its observable state through it.
type SyncBus struct {
	registry
}

// NewSync creates a synchronous event bus
func NewSync() *SyncBus {
	return &SyncBus{}
}

// Publish calls every handler for the event's type before returning
func (b *SyncBus) Publish(event DomainEvent) {
	for _, h := range b.snapshot(event.Type()) {
		h(event)
	}
}

// Closer is implemented by buses that own goroutines
type Closer interface {
	Close()
}
