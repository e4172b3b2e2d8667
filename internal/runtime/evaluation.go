package runtime

import (
	"fmt"

	"github.com/guillep/wollok-core/internal/coreerr"
)

// DefaultMaxFrameDepth is used when New is given a non-positive
// maxDepth, matching the teacher's CallStack default.
const DefaultMaxFrameDepth = 1024

// Metrics receives evaluation activity notifications; internal/metrics
// implements it against Prometheus counters. A nil Metrics is valid:
// every call site checks before reporting.
type Metrics interface {
	InstanceCreated(module string)
	FramePushed()
	FramePopped()
	InterruptRaised(kind string)
}

// idService is the subset of *ids.Service the runtime needs, kept as
// an interface so tests can substitute a deterministic generator
// without importing the ids package's concrete type.
type idService interface {
	NumberID(value float64) (id string, rounded float64, err error)
	StringID(value string) string
	Fresh() string
}

// Evaluation is one runtime session: an instance heap plus a frame
// stack (spec §4.7). Grounded on the teacher's CallStack, generalized
// from a pure function-call stack into the fuller frame/instance
// state the evaluator needs, with createInstance/interning folded in
// as first-class operations rather than left to a separate value
// layer.
type Evaluation struct {
	instances  map[string]*Instance
	frameStack []*Frame
	ids        idService
	metrics    Metrics
	maxDepth   int
}

// New creates an empty Evaluation using ids to mint/intern instance
// identifiers. metrics may be nil. maxDepth caps the frame stack
// (internal/config.Config.MaxFrameDepth feeds this); a non-positive
// value falls back to DefaultMaxFrameDepth.
func New(ids idService, metrics Metrics, maxDepth int) *Evaluation {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxFrameDepth
	}
	return &Evaluation{
		instances: map[string]*Instance{},
		ids:       ids,
		metrics:   metrics,
		maxDepth:  maxDepth,
	}
}

// Instance returns the instance with the given id, or fails with
// UndefinedInstanceError (spec §4.7 "Evaluation.instance(id)").
func (e *Evaluation) Instance(id string) (*Instance, error) {
	inst, ok := e.instances[id]
	if !ok {
		return nil, coreerr.NewUndefinedInstanceError(id)
	}
	return inst, nil
}

// PushFrame pushes a new frame onto the frame stack, or fails once
// maxDepth frames are already stacked. This is not one of spec.md §7's
// six error kinds (that taxonomy only covers StackUnderflow, the pop
// side) — it's the teacher's own CallStack.Push overflow-as-error
// guard, carried over as an ambient safety limit rather than a
// recursion panic.
func (e *Evaluation) PushFrame(f *Frame) error {
	if len(e.frameStack) >= e.maxDepth {
		return fmt.Errorf("runtime: maximum frame depth (%d) exceeded", e.maxDepth)
	}
	e.frameStack = append(e.frameStack, f)
	if e.metrics != nil {
		e.metrics.FramePushed()
	}
	return nil
}

// PopFrame removes and returns the top frame, or nil if the stack is
// empty.
func (e *Evaluation) PopFrame() *Frame {
	if len(e.frameStack) == 0 {
		return nil
	}
	top := e.frameStack[len(e.frameStack)-1]
	e.frameStack = e.frameStack[:len(e.frameStack)-1]
	if e.metrics != nil {
		e.metrics.FramePopped()
	}
	return top
}

// CurrentFrame returns the top of the frame stack, or nil if empty
// (spec §4.7: callers only invoke this when a frame exists; an empty
// stack is a caller-level stack-underflow condition, not this
// method's concern).
func (e *Evaluation) CurrentFrame() *Frame {
	if len(e.frameStack) == 0 {
		return nil
	}
	return e.frameStack[len(e.frameStack)-1]
}

// FrameDepth returns the number of frames currently on the stack.
func (e *Evaluation) FrameDepth() int {
	return len(e.frameStack)
}
