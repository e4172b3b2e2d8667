package runtime

import (
	"fmt"

	"github.com/guillep/wollok-core/internal/ids"
)

// Well-known primitive module names interning applies to (spec §4.7).
const (
	NumberModule = "wollok.lang.Number"
	StringModule = "wollok.lang.String"
)

// CreateInstance implements spec §4.7's createInstance(module,
// baseInnerValue?): wollok.lang.Number and wollok.lang.String intern
// by rounded/exact value, so calls with an equal value share one id
// and one instances[] key (each call stores a freshly built, equal
// Instance under it); every other module mints a fresh id.
// Adapted from the teacher's sync.Pool-based value pooling
// (NewInteger/ReleaseInteger in pool.go): the idea of reusing a value
// for repeated allocations survives, but sync.Pool hands back
// arbitrary recycled objects rather than *the same* object for equal
// inputs, so interning here is an identity-keyed map instead — a
// pool optimizes allocation, interning guarantees identity.
func (e *Evaluation) CreateInstance(module string, baseInnerValue any) (string, error) {
	var id string
	var innerValue any

	switch module {
	case NumberModule:
		value, ok := baseInnerValue.(float64)
		if !ok {
			return "", fmt.Errorf("runtime: wollok.lang.Number requires a float64 baseInnerValue, got %T", baseInnerValue)
		}
		numberId, rounded, err := e.ids.NumberID(value)
		if err != nil {
			return "", err
		}
		id, innerValue = numberId, rounded
	case StringModule:
		value, ok := baseInnerValue.(string)
		if !ok {
			return "", fmt.Errorf("runtime: wollok.lang.String requires a string baseInnerValue, got %T", baseInnerValue)
		}
		id, innerValue = e.ids.StringID(value), value
	default:
		id, innerValue = e.ids.Fresh(), baseInnerValue
	}

	e.instances[id] = newInstance(id, module, innerValue)
	if e.metrics != nil {
		e.metrics.InstanceCreated(module)
	}
	return id, nil
}
