package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/calendar"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events repository.EventRepo
	loc    *time.Location
}

func NewEventService(events repository.EventRepo, loc *time.Location) EventService {
	if loc == nil {
		loc = time.Local
	}
	return &eventService{events: events, loc: loc}
}

func (s *eventService) Add(ctx context.Context, e *domain.CalendarEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Source == "" {
		e.Source = domain.SourceManual
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return s.events.Create(ctx, e)
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	e, err := s.events.GetByID(ctx, id)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.events.GetByPrefix(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]*domain.CalendarEvent, error) {
	return s.events.List(ctx)
}

func (s *eventService) ListBetween(ctx context.Context, first, last time.Time) ([]*domain.CalendarEvent, error) {
	if domain.DateOf(first).After(domain.DateOf(last)) {
		return nil, fmt.Errorf("range start %s is after end %s", domain.DateKey(first), domain.DateKey(last))
	}
	from, to := calendar.Window(first, last, s.loc)
	return s.events.ListBetween(ctx, from, to)
}

func (s *eventService) Delete(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.Delete(ctx, e.ID); err != nil {
		return nil, err
	}
	return e, nil
}
