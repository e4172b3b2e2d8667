package resolver

import "github.com/guillep/wollok-core/internal/ast"

// arityMatches implements spec §4.6's arity match predicate: let n be
// the parameter count and varargs whether the last parameter
// IsVarArg. Match iff (varargs AND n-1 <= arity) OR n == arity.
func arityMatches(parameters []ast.Node, arity int) bool {
	n := len(parameters)
	varargs := n > 0 && parameters[n-1].(*ast.ParameterNode).IsVarArg
	if varargs {
		return n-1 <= arity
	}
	return n == arity
}

// LookupMethod finds the first method named name with a matching
// arity, walking m's hierarchy in order and considering only methods
// with a body or marked native (spec §4.6).
func LookupMethod(e *Environment, m ast.Node, name string, arity int) (*ast.MethodNode, error) {
	h, err := Hierarchy(e, m)
	if err != nil {
		return nil, err
	}
	for _, mod := range h {
		holder, ok := mod.(memberHolder)
		if !ok {
			continue
		}
		for _, candidate := range ast.MethodsOf(holder) {
			method := candidate.(*ast.MethodNode)
			if method.Name != name {
				continue
			}
			if method.Body == nil && !method.IsNative {
				continue
			}
			if !arityMatches(method.Parameters, arity) {
				continue
			}
			return method, nil
		}
	}
	return nil, nil
}

// memberHolder mirrors ast's unexported memberHolder contract (Class,
// Singleton, Mixin all expose MemberList()); duplicated here as a
// package-local interface since ast.MethodsOf requires it.
type memberHolder interface {
	ast.Node
	MemberList() []ast.Node
}

// LookupConstructor finds the first constructor on class c (no
// inheritance: constructors are never looked up through the hierarchy)
// with a matching arity (spec §4.6).
func LookupConstructor(c *ast.ClassNode, arity int) *ast.ConstructorNode {
	for _, candidate := range ast.ConstructorsOf(c) {
		ctor := candidate.(*ast.ConstructorNode)
		if arityMatches(ctor.Parameters, arity) {
			return ctor
		}
	}
	return nil
}
