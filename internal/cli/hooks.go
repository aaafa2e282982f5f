package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/observability"
)

// logHooks reports engine and render events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRunStart(_ context.Context, size int) {
	h.logger.Debug("engine run started", "size", size)
}

func (h logHooks) OnRunComplete(_ context.Context, s observability.RunStats, d time.Duration) {
	h.logger.Debug("engine run finished",
		"run", s.ID,
		"reached", s.Reached,
		"hops", s.Hops,
		"visited", s.Visited,
		"expanded", s.Expanded,
		"duration", d)
}

func (h logHooks) OnRunSkipped(_ context.Context, reason string) {
	h.logger.Debug("engine run skipped", "reason", reason)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render finished", "formats", formats, "duration", d)
}

// registerHooks routes observability events to logger.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetEngineHooks(h)
	observability.SetRenderHooks(h)
}
