package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopValidationHooks{}
	h.OnValidateStart(ctx, "4x5", 3)
	h.OnValidateComplete(ctx, "4x5", 2, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Validation().(NoopValidationHooks); !ok {
		t.Error("Validation() should return NoopValidationHooks by default")
	}

	custom := &testValidationHooks{}
	SetValidationHooks(custom)
	if Validation() != custom {
		t.Error("SetValidationHooks should set custom hooks")
	}

	// nil is ignored
	SetValidationHooks(nil)
	if Validation() != custom {
		t.Error("SetValidationHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Validation().(NoopValidationHooks); !ok {
		t.Error("Reset() should restore NoopValidationHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testValidationHooks{}
	SetValidationHooks(custom)

	ctx := context.Background()
	Validation().OnValidateStart(ctx, "9x16", 4)
	Validation().OnValidateComplete(ctx, "9x16", 1, time.Millisecond)

	if custom.starts != 1 || custom.completes != 1 {
		t.Errorf("got %d starts, %d completes, want 1 each", custom.starts, custom.completes)
	}
	if custom.lastFormat != "9x16" || custom.lastViolations != 1 {
		t.Errorf("last event = (%q, %d), want (9x16, 1)", custom.lastFormat, custom.lastViolations)
	}
}

type testValidationHooks struct {
	starts         int
	completes      int
	lastFormat     string
	lastViolations int
}

func (h *testValidationHooks) OnValidateStart(_ context.Context, formatID string, _ int) {
	h.starts++
	h.lastFormat = formatID
}

func (h *testValidationHooks) OnValidateComplete(_ context.Context, formatID string, violations int, _ time.Duration) {
	h.completes++
	h.lastFormat = formatID
	h.lastViolations = violations
}
