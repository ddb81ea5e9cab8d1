package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/events"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/toolkits"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// eventService implements the EventService interface
type eventService struct {
	eventRepo     events.LocationEventRepository
	toolKitRepo   toolkits.ToolKitRepository
	componentRepo toolkits.ComponentRepository
	logger        logger.Logger
}

// NewEventService creates a new eventService instance
func NewEventService(
	eventRepo events.LocationEventRepository,
	toolKitRepo toolkits.ToolKitRepository,
	componentRepo toolkits.ComponentRepository,
	logger logger.Logger,
) (events.EventService, error) {
	return &eventService{
		eventRepo:     eventRepo,
		toolKitRepo:   toolKitRepo,
		componentRepo: componentRepo,
		logger:        logger,
	}, nil
}

func (s *eventService) Add(ctx context.Context, actor, toolKitName, componentName string, location events.Location, event, message string) (*events.LocationEvent, error) {
	if _, err := s.toolKitRepo.GetByName(ctx, toolKitName); err != nil {
		return nil, err
	}
	if _, err := s.componentRepo.GetByName(ctx, componentName); err != nil {
		return nil, err
	}

	e := &events.LocationEvent{
		ID:            uuid.NewString(),
		ToolKitName:   toolKitName,
		ComponentName: componentName,
		Location:      location,
		Event:         event,
		Message:       message,
		User:          actor,
		CreatedAt:     now(),
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("Event ", event, " recorded for ", componentName, " in ", toolKitName, " at ", location)
	return e, nil
}

func (s *eventService) List(ctx context.Context, query *events.EventQuery) ([]*events.LocationEvent, error) {
	return s.eventRepo.List(ctx, query)
}
