package shared

import "context"

// EventHandler reacts to published domain events. EventTypes declares
// which events the handler wants; an empty slice subscribes it to all.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher is the side the application services see: it hands
// events to whoever listens without knowing who that is.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber registers handlers. Explicit eventTypes override the
// handler's own EventTypes declaration.
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus is the full contract an event transport implements. Start
// and Stop bracket the process lifecycle.
type EventBus interface {
	EventPublisher
	EventSubscriber
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
