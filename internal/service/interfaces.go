package service

import (
	"context"
	"time"

	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/importer"
)

type PlanService interface {
	Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error)
}

type EventService interface {
	Add(ctx context.Context, e *domain.CalendarEvent) error
	// Get accepts a full ID or a unique prefix of one.
	Get(ctx context.Context, id string) (*domain.CalendarEvent, error)
	List(ctx context.Context) ([]*domain.CalendarEvent, error)
	// ListBetween returns events starting on a calendar day in [first, last].
	ListBetween(ctx context.Context, first, last time.Time) ([]*domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) (*domain.CalendarEvent, error)
}

// ImportResult holds the outcome of an events import.
type ImportResult struct {
	Source        domain.EventSource
	EventCount    int
	ReplacedCount int
}

type ImportService interface {
	ImportEvents(ctx context.Context, filePath string, replace bool) (*ImportResult, error)
	ImportEventsFromSchema(ctx context.Context, schema *importer.ImportSchema, fallbackSource string, replace bool) (*ImportResult, error)
}
