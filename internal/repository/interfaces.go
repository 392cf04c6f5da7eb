package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	// GetByPrefix resolves a unique ID prefix, as printed by DisplayID.
	GetByPrefix(ctx context.Context, prefix string) (*domain.CalendarEvent, error)
	// ListBetween returns events starting in [from, to), ordered by start.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	List(ctx context.Context) ([]*domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
	// DeleteBySource removes every event with the given source and reports how many went.
	DeleteBySource(ctx context.Context, source domain.EventSource) (int, error)
}
