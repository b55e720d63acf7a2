package bus

import "time"

// EventBus is a thread-safe, in-process pub/sub bus for simulation events.
//
// Delivery is synchronous: Publish invokes handlers in the caller goroutine,
// in subscription order. Handlers that fail do not stop delivery; their errors
// are joined and returned from Publish. Metrics are collected only while at
// least one observer is registered.
type EventBus interface {
	// Publish delivers event to all active subscribers of event.Type().
	Publish(event Event) error
	// PublishBatch publishes events in order and joins the errors of all of them.
	PublishBatch(events ...Event) error
	// Subscribe registers handler for eventType. Wildcard receives every event.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels sub. Nil is ignored.
	Unsubscribe(sub Subscription) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	GetMetrics() EventBusMetrics
}

// Wildcard subscribes a handler to every event type.
const Wildcard = "*"

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler is invoked once per delivered event.
type EventHandler func(event Event) error

// Subscription is the handle returned by Subscribe.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries. Observers should return quickly.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, duration time.Duration)
}

// EventBusMetrics is updated only when at least one observer is registered.
type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
