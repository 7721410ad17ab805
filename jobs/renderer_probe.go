package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/uptown-october/uptown-docs/internal/observability"
)

// TaskRendererProbe pings the PDF renderer and publishes its availability.
const TaskRendererProbe = "renderer:probe"

// Pinger is the subset of the renderer client used by the probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRendererProbeTask constructs the renderer probe task.
func NewRendererProbeTask() *asynq.Task {
	return asynq.NewTask(TaskRendererProbe, nil)
}

// RendererProbeJob checks the renderer's /health endpoint. Document
// requests fail loudly on their own; the probe exists so operators see a
// renderer outage before the first failed generation.
type RendererProbeJob struct {
	pinger  Pinger
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewRendererProbeJob constructs the probe job.
func NewRendererProbeJob(pinger Pinger, metrics *observability.Metrics, logger *slog.Logger) *RendererProbeJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &RendererProbeJob{pinger: pinger, metrics: metrics, logger: logger}
}

// Handle runs one probe.
func (j *RendererProbeJob) Handle(ctx context.Context, _ *asynq.Task) error {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := j.pinger.Ping(probeCtx); err != nil {
		j.metrics.SetRendererUp(false)
		j.logger.Warn("renderer probe failed", slog.Any("error", err))
		return err
	}
	j.metrics.SetRendererUp(true)
	return nil
}
