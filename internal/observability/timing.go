package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AnuragAmbekar741/mission-briefing/internal/adapter/rest"
)

// Timed wraps one upstream adapter call. It measures elapsed time, records
// the outcome to the logger and metrics, and on failure collapses the cause
// into a generic "operation failed" error tagged with the adapter name. The
// detailed cause is logged, not propagated.
func Timed[T any](ctx context.Context, name string, logger *slog.Logger, metrics *Metrics, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	result, err := fn(ctx)
	elapsed := time.Since(start)

	metrics.AdapterDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		metrics.AdapterRequests.WithLabelValues(name, "error").Inc()
		logger.Error("upstream call failed",
			"adapter", name,
			"elapsed_ms", elapsed.Milliseconds(),
			"status", rest.StatusFromError(err),
			"error", err,
		)
		var zero T
		return zero, fmt.Errorf("%s: operation failed", name)
	}

	metrics.AdapterRequests.WithLabelValues(name, "success").Inc()
	logger.Debug("upstream call completed",
		"adapter", name,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return result, nil
}
