package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"rowpick/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRowsLoadedBatch  = domain.EventRowsLoadedBatch
	EventLoadStarted      = domain.EventLoadStarted
	EventLoadCompleted    = domain.EventLoadCompleted
	EventReferenceChanged = domain.EventReferenceChanged
	EventSelectionChanged = domain.EventSelectionChanged
	EventSelectionCleared = domain.EventSelectionCleared
	EventError            = domain.EventError
	EventConfigSaved      = domain.EventConfigSaved
	EventAppReady         = domain.EventAppReady
)

// Re-export domain event types
type RowsLoadedBatchEvent = domain.RowsLoadedBatchEvent
type LoadStartedEvent = domain.LoadStartedEvent
type LoadCompletedEvent = domain.LoadCompletedEvent
type ReferenceChangedEvent = domain.ReferenceChangedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type SelectionClearedEvent = domain.SelectionClearedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

const queueSize = 1000

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus and starts its dispatcher
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, queueSize),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Handlers run on the dispatcher
// goroutine in publish order, so a slow handler delays the ones after it.
// When the queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	// Selection changes fire on every keypress; keep them out of the log
	switch event.Type() {
	case EventSelectionChanged, EventRowsLoadedBatch:
	default:
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event queue full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe registers handler for eventType and returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher; queued events that were not delivered are dropped
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy so the lock is not held while handlers run
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			// One at a time, so every subscriber sees events in publish order
			for _, sub := range subs {
				b.deliver(sub.handler, event)
			}

		case <-b.quit:
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

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
