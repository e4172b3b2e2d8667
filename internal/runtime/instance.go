package runtime

// Instance is a runtime object: a module name, a mapping from field
// name to the id of its value, and an optional opaque inner value
// carried by primitive modules (spec §4.7 "Instances"). Adapted from
// the teacher's ObjectInstance, which additionally tracked RefCount
// and a Destroyed flag for deterministic destructor dispatch — dropped
// here since this language has no destructors and unreachable
// instances are never collected (spec.md's Non-goals explicitly
// exclude instance GC).
type Instance struct {
	Id         string
	Module     string
	Fields     map[string]string // field name -> instance id
	InnerValue any
}

func newInstance(id, module string, innerValue any) *Instance {
	return &Instance{Id: id, Module: module, Fields: map[string]string{}, InnerValue: innerValue}
}

// shallowClone copies the instance with its own Fields map, per the
// Copy semantics spec.md §4.7 describes: "each entry cloned shallowly,
// with fields cloned. innerValue is not deep-copied."
func (i *Instance) shallowClone() *Instance {
	fields := make(map[string]string, len(i.Fields))
	for k, v := range i.Fields {
		fields[k] = v
	}
	return &Instance{Id: i.Id, Module: i.Module, Fields: fields, InnerValue: i.InnerValue}
}
