package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/workcal/internal/db"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/importer"
	"github.com/alexanderramin/workcal/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, loc *time.Location, observers ...UseCaseObserver) ImportService {
	if loc == nil {
		loc = time.Local
	}
	return &importService{uow: uow, loc: loc, observer: useCaseObserverOrNoop(observers)}
}

// ImportEvents loads an events file. Files that name no source are tagged
// with the file's base name, so re-importing the same file with replace
// swaps its events.
func (s *importService) ImportEvents(ctx context.Context, filePath string, replace bool) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return s.ImportEventsFromSchema(ctx, schema, stem, replace)
}

func (s *importService) ImportEventsFromSchema(ctx context.Context, schema *importer.ImportSchema, fallbackSource string, replace bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"replace": replace}
	defer func() {
		observe(ctx, s.observer, "import-events", startedAt, fields, err)
	}()

	if errs := importer.ValidateImportSchema(schema, s.loc); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	var events []*domain.CalendarEvent
	events, err = importer.Convert(schema, fallbackSource, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	source := domain.EventSource(domain.CoalesceStr(schema.Source, fallbackSource, string(domain.SourceImport)))
	if source == domain.SourceManual {
		err = fmt.Errorf("source %q is reserved for events added by hand", source)
		return nil, err
	}
	fields["source"] = string(source)

	result = &ImportResult{Source: source, EventCount: len(events)}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		if replace {
			n, err := txEvents.DeleteBySource(ctx, source)
			if err != nil {
				return fmt.Errorf("removing previous %q events: %w", source, err)
			}
			result.ReplacedCount = n
		}
		for _, e := range events {
			if err := txEvents.Create(ctx, e); err != nil {
				return fmt.Errorf("creating event %q: %w", e.Summary, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["events"] = result.EventCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
