package runtime

// Copy produces a snapshot of e deep enough to isolate mutations
// (spec §4.7 "Copy"): instances are cloned shallowly with their Fields
// map cloned (innerValue is treated as opaque and not deep-copied);
// frames are cloned with Locals, operand stack, and Resume each
// shallow-cloned. Everything else (the ids service, metrics sink) is
// shared by reference, matching spec §4.7's "all other top-level
// fields passed by reference."
//
// New: the teacher's interpreter runs a single evaluation to
// completion and has no snapshot/restore concept (DWScript programs
// don't fork their own call stack); this is built directly from
// spec §4.7's clone-depth rules rather than adapted from teacher code.
func (e *Evaluation) Copy() *Evaluation {
	instances := make(map[string]*Instance, len(e.instances))
	for id, inst := range e.instances {
		instances[id] = inst.shallowClone()
	}

	frames := make([]*Frame, len(e.frameStack))
	for i, f := range e.frameStack {
		frames[i] = f.shallowClone()
	}

	return &Evaluation{
		instances:  instances,
		frameStack: frames,
		ids:        e.ids,
		metrics:    e.metrics,
		maxDepth:   e.maxDepth,
	}
}
