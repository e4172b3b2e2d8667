package resolver

import (
	"strings"

	"github.com/guillep/wollok-core/internal/ast"
	"github.com/guillep/wollok-core/internal/coreerr"
)

// entityName returns an Entity node's declared name (spec §4.4
// "label"). Test and Program carry a Name field but are never
// unnamed; Singleton may be unnamed, which label() below handles.
func entityName(n ast.Node) string {
	switch x := n.(type) {
	case *ast.PackageNode:
		return x.Name
	case *ast.ClassNode:
		return x.Name
	case *ast.SingletonNode:
		return x.Name
	case *ast.MixinNode:
		return x.Name
	case *ast.ProgramNode:
		return x.Name
	case *ast.DescribeNode:
		return x.Name
	case *ast.TestNode:
		return x.Name
	default:
		return ""
	}
}

// label computes spec §4.4's per-node label: the declared name with
// any ".#" occurrence stripped, or for an unnamed Singleton,
// "<supermoduleFQN>#<id>".
func label(e *Environment, n ast.Node) (string, error) {
	if s, ok := n.(*ast.SingletonNode); ok && s.Name == "" {
		super, err := e.GetNodeById(superclassId(s, e))
		if err != nil {
			return "", err
		}
		superFqn, err := FullyQualifiedName(e, super)
		if err != nil {
			return "", err
		}
		return superFqn + "#" + n.Id(), nil
	}
	return strings.ReplaceAll(entityName(n), ".#", ""), nil
}

func superclassId(s *ast.SingletonNode, e *Environment) string {
	if s.SuperCall.Superclass == nil {
		return ""
	}
	ref := s.SuperCall.Superclass.(*ast.ReferenceNode)
	target, err := Target(e, ref)
	if err != nil {
		return ""
	}
	return target.Id()
}

// FullyQualifiedName computes an Entity's FQN (spec §4.4): the
// parent's FQN dot-joined with this node's label when the parent is a
// Package, or just the label otherwise (e.g. a top-level Program).
func FullyQualifiedName(e *Environment, n ast.Node) (string, error) {
	lbl, err := label(e, n)
	if err != nil {
		return "", err
	}
	p, err := Parent(e, n)
	if err != nil {
		// Unreachable from the root: fall back to the bare label.
		return lbl, nil
	}
	if pkg, ok := p.(*ast.PackageNode); ok {
		parentFqn, err := FullyQualifiedName(e, pkg)
		if err != nil {
			return "", err
		}
		return parentFqn + "." + lbl, nil
	}
	return lbl, nil
}

// GetNodeByQN resolves qn relative to start (a Package), following
// each '.'-separated step to the unique Entity child whose name
// matches (spec §4.4 "Package.getNodeByQN"). If qn contains '#', the
// substring after it is an id resolved directly against the
// Environment.
func (e *Environment) GetNodeByQN(start ast.Node, qn string) (ast.Node, error) {
	if hash := strings.IndexByte(qn, '#'); hash >= 0 {
		return e.GetNodeById(qn[hash+1:])
	}

	current := start
	for _, step := range strings.Split(qn, ".") {
		next, ok := childEntityNamed(current, step)
		if !ok {
			return nil, coreerr.NewUnresolvedReferenceError(qn, step)
		}
		current = next
	}
	return current, nil
}

func childEntityNamed(n ast.Node, name string) (ast.Node, bool) {
	for _, c := range ast.Children(n) {
		if !ast.Is(c, ast.CategoryEntity) {
			continue
		}
		if entityName(c) == name {
			return c, true
		}
	}
	return nil, false
}

// Target resolves a Reference (spec §4.4 "Reference.target()"): the
// head of the dotted name is looked up in the Linked reference's
// scope map (a local-name -> Package id table, populated for every
// local name the reference's name starts with) to obtain the Package
// that directly declares it; the full name is then resolved as a QN
// from that Package. Scope is keyed by the head rather than the full
// name because only the head's declaring package is knowable without
// already having resolved the reference — everything after it is a
// path *within* that package, which is exactly what getNodeByQN
// expects.
func Target(e *Environment, ref *ast.ReferenceNode) (ast.Node, error) {
	head, _ := splitFirst(ref.Name, '.')
	pkgId, ok := ref.Scope[head]
	if !ok {
		return nil, coreerr.NewUnresolvedReferenceError(ref.Name, head)
	}
	pkg, err := e.GetNodeById(pkgId)
	if err != nil {
		return nil, err
	}
	return e.GetNodeByQN(pkg, ref.Name)
}
