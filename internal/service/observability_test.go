package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "plan",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"days": 5},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "import-events",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=plan")
	assert.Contains(t, out, "days=5")
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "error=boom")
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}).(*recordingObserver))
}
