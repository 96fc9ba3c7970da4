package geomcore

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return l, &buf
}

func TestNewLoggerDefaults(t *testing.T) {
	require.NotNil(t, NewLogger(nil))
	require.NotNil(t, NewJSONLogger(slog.LevelInfo))
	require.NotNil(t, NewTextLogger(slog.LevelInfo))
}

func TestNoopLoggerSilent(t *testing.T) {
	l := NoopLogger()
	// Must not panic, must not emit.
	l.Info("ignored")
	l.Error("ignored")
}

func TestLoggerWithFields(t *testing.T) {
	l, buf := newBufferLogger()

	l.WithHandle(7).Info("entity added")
	assert.Contains(t, buf.String(), "handle=7")

	buf.Reset()
	l.WithContainer("params").WithUnknowns(12).Debug("assembled")
	assert.Contains(t, buf.String(), "container=params")
	assert.Contains(t, buf.String(), "unknowns=12")
}

func TestLoggerOperationHelpers(t *testing.T) {
	l, buf := newBufferLogger()
	ctx := context.Background()

	l.LogNewtonStep(ctx, 3, 12, nil)
	assert.Contains(t, buf.String(), "newton step completed")

	buf.Reset()
	l.LogNewtonStep(ctx, 3, 12, errors.New("no unique solution"))
	assert.Contains(t, buf.String(), "newton step failed")
	assert.Contains(t, buf.String(), "no unique solution")

	buf.Reset()
	l.LogSweep(ctx, "entities", 10, 7)
	assert.Contains(t, buf.String(), "sweep completed")
	assert.Contains(t, buf.String(), "removed=3")

	buf.Reset()
	l.LogDegenerate(ctx, "plane/line")
	assert.Contains(t, buf.String(), "degenerate geometry")
}
