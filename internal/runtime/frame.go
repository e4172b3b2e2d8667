package runtime

import "github.com/guillep/wollok-core/internal/coreerr"

// Frame is one activation record of the evaluator: local bindings, an
// operand stack, and the set of interruption kinds it can resume
// (spec §4.7 "Frames"). Grounded on the teacher's CallStack.Push/Pop
// frame-stack discipline in callstack.go, generalized from a flat
// function-name stack to a richer per-frame record carrying operand
// and resume state.
type Frame struct {
	Locals       map[string]string // variable name -> instance id
	operandStack []string          // instance ids, top is the last element
	Resume       map[string]bool   // interruption kinds this frame can handle
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{
		Locals:       map[string]string{},
		operandStack: nil,
		Resume:       map[string]bool{},
	}
}

// PushOperand appends id to the frame's operand stack (spec §4.7).
func (f *Frame) PushOperand(id string) {
	f.operandStack = append(f.operandStack, id)
}

// PopOperand removes and returns the top of the operand stack, or
// fails with StackUnderflowError if empty (spec §4.7).
func (f *Frame) PopOperand() (string, error) {
	if len(f.operandStack) == 0 {
		return "", coreerr.NewStackUnderflowError()
	}
	top := f.operandStack[len(f.operandStack)-1]
	f.operandStack = f.operandStack[:len(f.operandStack)-1]
	return top, nil
}

// OperandStack returns a read-only view of the operand stack, bottom
// to top.
func (f *Frame) OperandStack() []string {
	return f.operandStack
}

func (f *Frame) shallowClone() *Frame {
	locals := make(map[string]string, len(f.Locals))
	for k, v := range f.Locals {
		locals[k] = v
	}
	operands := make([]string, len(f.operandStack))
	copy(operands, f.operandStack)
	resume := make(map[string]bool, len(f.Resume))
	for k, v := range f.Resume {
		resume[k] = v
	}
	return &Frame{Locals: locals, operandStack: operands, Resume: resume}
}
