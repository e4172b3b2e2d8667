package runtime

import (
	"fmt"

	"github.com/guillep/wollok-core/internal/coreerr"
)

// ExceptionKind is the interruption kind the exception mechanism uses
// (spec §4.7: "the set of interruption kinds is fixed; 'exception' is
// one of them").
const ExceptionKind = "exception"

// Interrupt implements spec §4.7's interrupt(kind, valueId): pop
// frames until one remains whose Resume set contains kind; on that
// frame, remove kind from Resume and push valueId. If the stack
// empties first, the interruption is unhandled.
//
// Adapted from the teacher's ExceptionValue (exception.go): the
// "compose message from class name + message field" idea survives as
// the exception detail-message rule below, but the mechanism itself
// — an explicit frame-stack unwind rather than a Go panic/recover —
// is new, built from spec §4.7/§9 ("model as an explicit algorithm
// operating on the frame stack rather than a throw/unwind primitive
// of the host language").
func (e *Evaluation) Interrupt(kind, valueId string) error {
	if e.metrics != nil {
		e.metrics.InterruptRaised(kind)
	}
	for {
		frame := e.CurrentFrame()
		if frame == nil {
			detail, err := e.unhandledDetail(kind, valueId)
			if err != nil {
				detail = ""
			}
			return coreerr.NewUnhandledInterruptionError(kind, detail)
		}
		if frame.Resume[kind] {
			delete(frame.Resume, kind)
			frame.PushOperand(valueId)
			return nil
		}
		e.PopFrame()
	}
}

// unhandledDetail composes the message spec §4.7 describes for an
// unhandled "exception" interruption: the instance's module, then
// either the innerValue of its "message" field (if present) or its
// own innerValue. Other interruption kinds produce an empty message.
func (e *Evaluation) unhandledDetail(kind, valueId string) (string, error) {
	if kind != ExceptionKind {
		return "", nil
	}
	inst, err := e.Instance(valueId)
	if err != nil {
		return "", err
	}

	detail := inst.InnerValue
	if messageId, ok := inst.Fields["message"]; ok {
		messageInst, err := e.Instance(messageId)
		if err == nil {
			detail = messageInst.InnerValue
		}
	}
	return fmt.Sprintf("%s: %v", inst.Module, detail), nil
}
