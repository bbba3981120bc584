package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grzegorzj/easel/pkg/observability"
)

// debugHooks logs layout, render, and cache events at debug level.
// Registered globally when --verbose is set, so library internals report
// progress without threading a logger through every call.
type debugHooks struct {
	logger *log.Logger
}

func newDebugHooks(l *log.Logger) *debugHooks {
	return &debugHooks{logger: l}
}

// register installs the hooks in the global observability registry.
func (h *debugHooks) register() {
	observability.SetLayoutHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h *debugHooks) OnResolveStart(artboard string, elements int) {
	h.logger.Debugf("Resolving %s (%d elements)", artboard, elements)
}

func (h *debugHooks) OnResolveComplete(artboard string, elements int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Resolve of %s failed after %s: %v", artboard, duration.Round(time.Microsecond), err)
		return
	}
	h.logger.Debugf("Resolved %s: %d elements in %s", artboard, elements, duration.Round(time.Microsecond))
}

func (h *debugHooks) OnMeasureStart(artboard string, elements int) {
	h.logger.Debugf("Measuring %s (%d elements)", artboard, elements)
}

func (h *debugHooks) OnMeasureComplete(artboard string, elements int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Measure of %s failed after %s: %v", artboard, duration.Round(time.Microsecond), err)
		return
	}
	h.logger.Debugf("Measured %s: %d elements in %s", artboard, elements, duration.Round(time.Microsecond))
}

func (h *debugHooks) OnRenderStart(formats []string) {
	h.logger.Debugf("Rendering formats %v", formats)
}

func (h *debugHooks) OnRenderComplete(formats []string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("Render of %v failed after %s: %v", formats, duration.Round(time.Microsecond), err)
		return
	}
	h.logger.Debugf("Rendered %v in %s", formats, duration.Round(time.Microsecond))
}

func (h *debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debugf("Cache hit: %s", keyType)
}

func (h *debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debugf("Cache miss: %s", keyType)
}

func (h *debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debugf("Cache set: %s (%d bytes)", keyType, size)
}
