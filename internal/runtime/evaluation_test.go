package runtime

import (
	"strings"
	"testing"

	"github.com/guillep/wollok-core/internal/coreerr"
	"github.com/guillep/wollok-core/internal/ids"
)

func newTestEvaluation() *Evaluation {
	return New(ids.New(nil, 5), nil, 0)
}

// TestInstanceInterning verifies spec §8 #1: with DECIMAL_PRECISION =
// 5, createInstance("wollok.lang.Number", 1.0) and (..., 1.000001)
// return the same id "N!1.00000", storing innerValue 1.
func TestInstanceInterning(t *testing.T) {
	e := newTestEvaluation()

	id1, err := e.CreateInstance(NumberModule, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, err := e.CreateInstance(NumberModule, 1.000001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected shared id, got %q vs %q", id1, id2)
	}
	if id1 != "N!1.00000" {
		t.Fatalf("expected N!1.00000, got %q", id1)
	}

	inst, err := e.Instance(id1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.InnerValue != float64(1) {
		t.Fatalf("expected innerValue 1, got %v", inst.InnerValue)
	}
}

func TestStringInterning(t *testing.T) {
	e := newTestEvaluation()
	id1, err := e.CreateInstance(StringModule, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, err := e.CreateInstance(StringModule, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected shared id, got %q vs %q", id1, id2)
	}
}

func TestFreshInstancesAreDistinct(t *testing.T) {
	e := newTestEvaluation()
	id1, err := e.CreateInstance("wollok.lang.Object", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, err := e.CreateInstance("wollok.lang.Object", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct ids for non-interned module")
	}
}

func TestInstanceLookupFailsWhenAbsent(t *testing.T) {
	e := newTestEvaluation()
	_, err := e.Instance("missing")
	if !coreerr.IsUndefinedInstanceError(err) {
		t.Fatalf("expected UndefinedInstanceError, got %v", err)
	}
}

func TestFramePushPopAndOperandStack(t *testing.T) {
	e := newTestEvaluation()
	f := NewFrame()
	e.PushFrame(f)

	if e.CurrentFrame() != f {
		t.Fatalf("expected current frame to be the pushed frame")
	}

	f.PushOperand("N!1.00000")
	got, err := f.PopOperand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "N!1.00000" {
		t.Fatalf("expected popped id to match, got %q", got)
	}

	if _, err := f.PopOperand(); !coreerr.IsStackUnderflowError(err) {
		t.Fatalf("expected StackUnderflowError, got %v", err)
	}

	if popped := e.PopFrame(); popped != f {
		t.Fatalf("expected PopFrame to return the pushed frame")
	}
	if e.CurrentFrame() != nil {
		t.Fatalf("expected no current frame after popping the only one")
	}
}

// TestInterruptUnwind builds spec §8 #5's exact frame stack
// [F1{resume:{}}, F2{resume:{"exception"}}, F3{resume:{}}] and checks
// the unwind lands on F2 with X pushed, leaving [F1, F2].
func TestInterruptUnwind(t *testing.T) {
	e := newTestEvaluation()
	f1, f2, f3 := NewFrame(), NewFrame(), NewFrame()
	f2.Resume[ExceptionKind] = true
	e.PushFrame(f1)
	e.PushFrame(f2)
	e.PushFrame(f3)

	if err := e.Interrupt(ExceptionKind, "X"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.FrameDepth() != 2 {
		t.Fatalf("expected 2 remaining frames, got %d", e.FrameDepth())
	}
	if e.CurrentFrame() != f2 {
		t.Fatalf("expected F2 to be current after unwind")
	}
	if f2.Resume[ExceptionKind] {
		t.Fatalf("expected exception to be removed from F2's resume set")
	}
	top, err := f2.PopOperand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top != "X" {
		t.Fatalf("expected X to be on F2's operand stack, got %q", top)
	}
}

// TestUnhandledInterrupt builds spec §8 #6: frame stack [F{resume:{}}],
// instance X = {module:"E", fields:{message: Y}}, Y = {innerValue:"boom"}.
// interrupt("exception", X) empties the stack and fails with a message
// containing "E: boom".
func TestUnhandledInterrupt(t *testing.T) {
	e := newTestEvaluation()
	e.PushFrame(NewFrame())

	yId, err := e.CreateInstance(StringModule, "boom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xId, err := e.CreateInstance("E", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, err := e.Instance(xId)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x.Fields["message"] = yId

	err = e.Interrupt(ExceptionKind, xId)
	if !coreerr.IsUnhandledInterruptionError(err) {
		t.Fatalf("expected UnhandledInterruptionError, got %v", err)
	}
	if !strings.Contains(err.Error(), "E: boom") {
		t.Fatalf("expected message to contain %q, got %q", "E: boom", err.Error())
	}
	if e.FrameDepth() != 0 {
		t.Fatalf("expected frame stack to be emptied, got depth %d", e.FrameDepth())
	}
}

// TestCopyIsolation verifies spec §8's "Copy isolation": after e2 :=
// e.Copy(), mutating e2's operand stack or fields does not change e.
func TestCopyIsolation(t *testing.T) {
	e := newTestEvaluation()
	id, err := e.CreateInstance("wollok.lang.Object", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst, _ := e.Instance(id)
	inst.Fields["x"] = "N!1.00000"

	f := NewFrame()
	f.PushOperand("a")
	e.PushFrame(f)

	e2 := e.Copy()

	inst2, _ := e2.Instance(id)
	inst2.Fields["x"] = "N!2.00000"
	if inst.Fields["x"] != "N!1.00000" {
		t.Fatalf("expected original instance's fields to be unaffected, got %v", inst.Fields)
	}

	e2.CurrentFrame().PushOperand("b")
	if len(e.CurrentFrame().OperandStack()) != 1 {
		t.Fatalf("expected original frame's operand stack to be unaffected")
	}
}

// TestPushFrameEnforcesMaxDepth verifies that pushing beyond maxDepth
// fails instead of growing the stack unbounded, and that Copy carries
// the limit over to the clone.
func TestPushFrameEnforcesMaxDepth(t *testing.T) {
	e := New(ids.New(nil, 5), nil, 2)
	if err := e.PushFrame(NewFrame()); err != nil {
		t.Fatalf("unexpected error on first push: %v", err)
	}
	if err := e.PushFrame(NewFrame()); err != nil {
		t.Fatalf("unexpected error on second push: %v", err)
	}
	if err := e.PushFrame(NewFrame()); err == nil {
		t.Fatalf("expected an error once maxDepth is reached")
	}
	if e.FrameDepth() != 2 {
		t.Fatalf("expected the rejected push to leave depth unchanged, got %d", e.FrameDepth())
	}

	e2 := e.Copy()
	if err := e2.PushFrame(NewFrame()); err == nil {
		t.Fatalf("expected the copy to inherit the same maxDepth limit")
	}
}
