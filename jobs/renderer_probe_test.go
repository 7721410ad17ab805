package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uptown-october/uptown-docs/internal/observability"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestRendererProbe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := NewRendererProbeJob(stubPinger{}, observability.NewMetrics(), logger)
	require.NoError(t, ok.Handle(context.Background(), NewRendererProbeTask()))

	down := NewRendererProbeJob(stubPinger{err: errors.New("connection refused")}, observability.NewMetrics(), logger)
	require.Error(t, down.Handle(context.Background(), NewRendererProbeTask()))
}
