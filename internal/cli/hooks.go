package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/typetonic/pkg/observability"
)

// logHooks reports design and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks { return &logHooks{logger: l} }

func (h *logHooks) OnGenerateStart(_ context.Context, keyboard, pattern string) {
	h.logger.Debug("generation started", "keyboard", keyboard, "pattern", pattern)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, keyboard, pattern string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generation failed", "keyboard", keyboard, "err", err)
		return
	}
	h.logger.Debug("generation finished", "keyboard", keyboard, "pattern", pattern, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnRecolor(_ context.Context, row, col int, color string) {
	h.logger.Debug("key recolored", "row", row, "col", col, "color", color)
}

func (h *logHooks) OnExportStart(_ context.Context, format string) {
	h.logger.Debug("export started", "format", format)
}

func (h *logHooks) OnExportComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("export finished", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.DesignHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)
