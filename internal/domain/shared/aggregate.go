package shared

import "time"

// BaseAggregateRoot extends BaseEntity with optimistic-lock versioning
// and a buffer of events to publish after the aggregate is saved.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// NewBaseAggregateRoot starts an aggregate at version 1.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// Touch marks the aggregate as mutated: the version is bumped and
// UpdatedAt refreshed. Every state-changing method must call it.
func (a *BaseAggregateRoot) Touch() {
	a.Version++
	a.UpdatedAt = time.Now()
}

// RecordEvent buffers a domain event for publication.
func (a *BaseAggregateRoot) RecordEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// PendingEvents returns the buffered events in recording order.
func (a *BaseAggregateRoot) PendingEvents() []DomainEvent {
	return a.domainEvents
}

// ClearEvents empties the buffer, typically right after publishing.
func (a *BaseAggregateRoot) ClearEvents() {
	a.domainEvents = nil
}
