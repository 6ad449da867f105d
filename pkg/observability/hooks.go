// Package observability provides hooks for metrics, tracing, and logging.
//
// Library code reports pipeline events to a process-wide hook registry.
// The defaults do nothing; a binary that wants metrics or traces registers
// its own implementation once at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, archive)
//	// ... extract and parse ...
//	observability.Pipeline().OnParseComplete(ctx, archive, depCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the visualization pipeline.
type PipelineHooks interface {
	// Parse events cover manifest extraction and dependency parsing.
	OnParseStart(ctx context.Context, archive string)
	OnParseComplete(ctx context.Context, archive string, depCount int, duration time.Duration, err error)

	// Render events cover the layout tool invocation.
	OnRenderStart(ctx context.Context, output string)
	OnRenderComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error)     {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults. It is meant for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
