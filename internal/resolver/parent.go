package resolver

import (
	"github.com/guillep/wollok-core/internal/ast"
	"github.com/guillep/wollok-core/internal/coreerr"
)

// Parent returns the unique node whose Children() contains n (spec
// §4.3). The Environment itself has no parent; any node unreachable
// from the root fails with OrphanError.
func Parent(e *Environment, n ast.Node) (ast.Node, error) {
	if n.Id() == e.root.Id() {
		return nil, coreerr.NewOrphanError(n.Id())
	}
	e.index()
	parentId, ok := e.parentOf[n.Id()]
	if !ok {
		return nil, coreerr.NewOrphanError(n.Id())
	}
	return e.GetNodeById(parentId)
}

// ClosestAncestor returns the nearest ancestor of n whose Is(kind)
// holds, or nil if none (spec §4.3).
func ClosestAncestor(e *Environment, n ast.Node, kindOrCategory string) (ast.Node, error) {
	current, err := Parent(e, n)
	for err == nil {
		if ast.Is(current, kindOrCategory) {
			return current, nil
		}
		current, err = Parent(e, current)
	}
	if coreerr.IsOrphanError(err) {
		return nil, nil
	}
	return nil, err
}
