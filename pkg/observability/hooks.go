// Package observability lets front ends observe design sessions.
//
// Sessions report generation, recolor, export and cache events through the
// registered hooks. Nothing is recorded unless a consumer registers its own
// implementation; the defaults are no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDesignHooks(&myDesignHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Design().OnGenerateStart(ctx, keyboard, pattern)
//	// ... generate ...
//	observability.Design().OnGenerateComplete(ctx, keyboard, resolved, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Design Hooks
// =============================================================================

// DesignHooks receives events from design sessions.
type DesignHooks interface {
	// Generation events
	OnGenerateStart(ctx context.Context, keyboard, pattern string)
	OnGenerateComplete(ctx context.Context, keyboard, pattern string, duration time.Duration, err error)

	// OnRecolor records a single-key color edit.
	OnRecolor(ctx context.Context, row, col int, color string)

	// Export events
	OnExportStart(ctx context.Context, format string)
	OnExportComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDesignHooks is a no-op implementation of DesignHooks.
type NoopDesignHooks struct{}

func (NoopDesignHooks) OnGenerateStart(context.Context, string, string) {}
func (NoopDesignHooks) OnGenerateComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopDesignHooks) OnRecolor(context.Context, int, int, string)                         {}
func (NoopDesignHooks) OnExportStart(context.Context, string)                               {}
func (NoopDesignHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registry
// =============================================================================

type registry struct {
	mu     sync.RWMutex
	design DesignHooks
	cache  CacheHooks
}

var hooks = &registry{design: NoopDesignHooks{}, cache: NoopCacheHooks{}}

// SetDesignHooks registers design hooks. A nil h is ignored.
func SetDesignHooks(h DesignHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.design = h
	hooks.mu.Unlock()
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.cache = h
	hooks.mu.Unlock()
}

// Design returns the registered design hooks.
func Design() DesignHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.design
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// Reset restores the no-op hooks. Tests that register hooks defer it.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.design = NoopDesignHooks{}
	hooks.cache = NoopCacheHooks{}
}
