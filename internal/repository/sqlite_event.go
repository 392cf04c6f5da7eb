package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workcal/internal/db"
	"github.com/alexanderramin/workcal/internal/domain"
)

const eventColumns = `id, summary, starts_at, ends_at, all_day, source, created_at`

// SQLiteEventRepo implements EventRepo on the calendar_events table.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a repo on a *sql.DB or, inside a unit of work, a *sql.Tx.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Source == "" {
		e.Source = domain.SourceManual
	}
	query := `INSERT INTO calendar_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Summary,
		formatStoredTime(e.StartsAt),
		formatStoredTime(e.EndsAt),
		boolToInt(e.AllDay),
		string(e.Source),
		formatStoredTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = ?`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEventRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.CalendarEvent, error) {
	if prefix == "" {
		return nil, fmt.Errorf("calendar event: %w", ErrNotFound)
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, escaped+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving event prefix: %w", err)
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	if err != nil {
		return nil, err
	}
	switch len(events) {
	case 0:
		return nil, fmt.Errorf("calendar event %q: %w", prefix, ErrNotFound)
	case 1:
		return events[0], nil
	default:
		return nil, fmt.Errorf("event ID prefix %q is ambiguous", prefix)
	}
}

func (r *SQLiteEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE starts_at >= ? AND starts_at < ?
		ORDER BY starts_at, id`
	rows, err := r.db.QueryContext(ctx, query, formatStoredTime(from), formatStoredTime(to))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events in range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events ORDER BY starts_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting calendar event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("calendar event %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEventRepo) DeleteBySource(ctx context.Context, source domain.EventSource) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE source = ?`, string(source))
	if err != nil {
		return 0, fmt.Errorf("deleting events from source %s: %w", source, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking deleted rows: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.CalendarEvent, error) {
	e, err := r.scanInto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calendar event: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	for rows.Next() {
		e, err := r.scanInto(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}

// scanInto reads one row and parses the stored timestamps.
func (r *SQLiteEventRepo) scanInto(s rowScanner) (*domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	var startsAt, endsAt, createdAt, source string
	var allDay int

	if err := s.Scan(&e.ID, &e.Summary, &startsAt, &endsAt, &allDay, &source, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning calendar event: %w", err)
	}

	var err error
	if e.StartsAt, err = parseStoredTime(startsAt); err != nil {
		return nil, fmt.Errorf("parsing starts_at: %w", err)
	}
	if e.EndsAt, err = parseStoredTime(endsAt); err != nil {
		return nil, fmt.Errorf("parsing ends_at: %w", err)
	}
	if e.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.AllDay = intToBool(allDay)
	e.Source = domain.EventSource(source)
	return &e, nil
}
