package events

import (
	"context"
)

// LocationEventRepository defines persistence operations for location events.
type LocationEventRepository interface {
	Create(ctx context.Context, event *LocationEvent) error
	// List returns matching events, newest first.
	List(ctx context.Context, query *EventQuery) ([]*LocationEvent, error)
}

// EventService records and lists location events.
type EventService interface {
	Add(ctx context.Context, actor, toolKitName, componentName string, location Location, event, message string) (*LocationEvent, error)
	List(ctx context.Context, query *EventQuery) ([]*LocationEvent, error)
}
