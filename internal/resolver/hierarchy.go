package resolver

import "github.com/guillep/wollok-core/internal/ast"

// moduleShape exposes the mixin/superclass references of a Module
// kind (Class, Singleton, Mixin) uniformly, so hierarchy linearisation
// can walk any of them the same way (spec §4.5). It is a dispatch
// helper only: Hierarchy's result always holds the raw *ast.ClassNode
// / *ast.SingletonNode / *ast.MixinNode values, never these wrappers.
type moduleShape interface {
	mixinRefs() []ast.Node
	superclassRef() ast.Node // nil if none, or if the module is a Mixin
}

func shapeOf(n ast.Node) moduleShape {
	switch x := n.(type) {
	case *ast.ClassNode:
		return classShape{x}
	case *ast.SingletonNode:
		return singletonShape{x}
	case *ast.MixinNode:
		return mixinShape{x}
	default:
		return nil
	}
}

type classShape struct{ *ast.ClassNode }

func (c classShape) mixinRefs() []ast.Node   { return c.Mixins }
func (c classShape) superclassRef() ast.Node { return c.Superclass }

type singletonShape struct{ *ast.SingletonNode }

func (s singletonShape) mixinRefs() []ast.Node   { return s.Mixins }
func (s singletonShape) superclassRef() ast.Node { return s.SuperCall.Superclass }

type mixinShape struct{ *ast.MixinNode }

func (m mixinShape) mixinRefs() []ast.Node   { return m.Mixins }
func (m mixinShape) superclassRef() ast.Node { return nil }

func resolveModuleRef(e *Environment, ref ast.Node) (ast.Node, error) {
	return Target(e, ref.(*ast.ReferenceNode))
}

// Hierarchy produces m's linearised ancestor sequence (spec §4.5):
// mixins first, in declared order with their own ancestors inlined,
// then the superclass chain, duplicates removed (a module reached
// through more than one path keeps its first position).
func Hierarchy(e *Environment, m ast.Node) ([]ast.Node, error) {
	mods, err := linearise(e, m, map[string]bool{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(mods))
	distinct := mods[:0]
	for _, mod := range mods {
		if !seen[mod.Id()] {
			seen[mod.Id()] = true
			distinct = append(distinct, mod)
		}
	}
	return distinct, nil
}

func linearise(e *Environment, n ast.Node, excluded map[string]bool) ([]ast.Node, error) {
	if excluded[n.Id()] {
		return nil, nil
	}
	shape := shapeOf(n)

	var parents []ast.Node
	for _, mixinRef := range shape.mixinRefs() {
		target, err := resolveModuleRef(e, mixinRef)
		if err != nil {
			return nil, err
		}
		parents = append(parents, target)
	}
	if super := shape.superclassRef(); super != nil {
		target, err := resolveModuleRef(e, super)
		if err != nil {
			return nil, err
		}
		parents = append(parents, target)
	}

	mods := []ast.Node{n}
	exs := map[string]bool{n.Id(): true}
	for k := range excluded {
		exs[k] = true
	}

	for _, p := range parents {
		hp, err := linearise(e, p, exs)
		if err != nil {
			return nil, err
		}
		mods = append(mods, hp...)
		exs[p.Id()] = true
	}
	return mods, nil
}

// Inherits reports whether other's id appears in m's hierarchy (spec
// §4.5 "inherits").
func Inherits(e *Environment, m, other ast.Node) (bool, error) {
	h, err := Hierarchy(e, m)
	if err != nil {
		return false, err
	}
	for _, x := range h {
		if x.Id() == other.Id() {
			return true, nil
		}
	}
	return false, nil
}
