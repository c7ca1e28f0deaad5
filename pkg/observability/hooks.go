// Package observability provides hooks for instrumenting validation runs.
//
// Libraries call the registered hooks; the process that owns them (the CLI,
// or any program embedding the validator) decides what to do with the
// events. By default every hook is a no-op, so the rules package stays free
// of logging and metrics dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetValidationHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Validation().OnValidateStart(ctx, formatID, len(blocks))
//	// ... run checks ...
//	observability.Validation().OnValidateComplete(ctx, formatID, violations, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// ValidationHooks receives events from layout validation.
type ValidationHooks interface {
	// OnValidateStart records the start of a run against the resolved
	// format id.
	OnValidateStart(ctx context.Context, formatID string, blocks int)

	// OnValidateComplete records the number of violations found.
	OnValidateComplete(ctx context.Context, formatID string, violations int, duration time.Duration)
}

// NoopValidationHooks is a no-op implementation of ValidationHooks.
type NoopValidationHooks struct{}

func (NoopValidationHooks) OnValidateStart(context.Context, string, int)                   {}
func (NoopValidationHooks) OnValidateComplete(context.Context, string, int, time.Duration) {}

var (
	validationHooks ValidationHooks = NoopValidationHooks{}
	hooksMu         sync.RWMutex
)

// SetValidationHooks registers custom validation hooks. A nil h is ignored.
func SetValidationHooks(h ValidationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		validationHooks = h
	}
}

// Validation returns the registered validation hooks.
func Validation() ValidationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return validationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	validationHooks = NoopValidationHooks{}
}
