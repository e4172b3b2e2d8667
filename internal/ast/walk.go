package ast

import (
	"fmt"

	"github.com/guillep/wollok-core/internal/cache"
)

// Is reports whether n's kind equals kindOrCategory, or whether
// kindOrCategory names a category n's kind belongs to (spec §3.1
// "is(k)").
func Is(n Node, kindOrCategory string) bool {
	if string(n.Kind()) == kindOrCategory {
		return true
	}
	for _, k := range categoryMembers[kindOrCategory] {
		if k == n.Kind() {
			return true
		}
	}
	return false
}

var childrenCache = cache.New[Node, []Node]()

// Children returns n's direct structural children, in declared
// attribute order and then intra-attribute order for sequences (spec
// §4.1). The result is memoised per node.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	return childrenCache.GetOrUpdate(n, func() []Node { return childrenOf(n) })
}

// childrenOf enumerates each kind's node-bearing attributes
// explicitly, the way go/ast's own Apply/Walk do (see
// other_examples' griesemer-dotGo2016 apply.go): a per-kind switch
// keeps a forgotten field a compile-time-visible gap instead of a
// silent reflection miss.
func childrenOf(n Node) []Node {
	switch x := n.(type) {
	case *EnvironmentNode:
		return append([]Node{}, x.Packages...)
	case *PackageNode:
		return append([]Node{}, x.Members...)
	case *ClassNode:
		out := []Node{}
		if x.Superclass != nil {
			out = append(out, x.Superclass)
		}
		out = append(out, x.Mixins...)
		out = append(out, x.Members...)
		return out
	case *SingletonNode:
		out := []Node{}
		if x.SuperCall.Superclass != nil {
			out = append(out, x.SuperCall.Superclass)
		}
		out = append(out, x.SuperCall.Args...)
		out = append(out, x.Mixins...)
		out = append(out, x.Members...)
		return out
	case *MixinNode:
		out := append([]Node{}, x.Mixins...)
		return append(out, x.Members...)
	case *ProgramNode:
		return optional(x.Body)
	case *DescribeNode:
		return append([]Node{}, x.Members...)
	case *TestNode:
		return optional(x.Body)

	case *ReferenceNode:
		return nil
	case *SelfNode:
		return nil
	case *LiteralNode:
		return nil
	case *SendNode:
		out := optional(x.Receiver)
		return append(out, x.Args...)
	case *SuperNode:
		return append([]Node{}, x.Args...)
	case *NewNode:
		out := optional(x.Instantiated)
		return append(out, x.Args...)
	case *IfNode:
		out := optional(x.Condition)
		out = append(out, optional(x.ThenBody)...)
		return append(out, optional(x.ElseBody)...)
	case *ThrowNode:
		return optional(x.Exception)
	case *TryNode:
		out := optional(x.Body)
		out = append(out, x.Catches...)
		return append(out, optional(x.Always)...)

	case *VariableNode:
		return optional(x.Value)
	case *ReturnNode:
		return optional(x.Value)
	case *AssignmentNode:
		out := optional(x.Variable)
		return append(out, optional(x.Value)...)

	case *FieldNode:
		return optional(x.Value)
	case *MethodNode:
		out := append([]Node{}, x.Parameters...)
		return append(out, optional(x.Body)...)
	case *ConstructorNode:
		out := append([]Node{}, x.Parameters...)
		out = append(out, optional(x.Body)...)
		return append(out, x.BaseCall.Args...)
	case *ParameterNode:
		return nil
	case *BodyNode:
		return append([]Node{}, x.Sentences...)
	case *CatchNode:
		out := optional(x.Parameter)
		out = append(out, optional(x.ParameterType)...)
		return append(out, optional(x.Body)...)

	default:
		panic(fmt.Sprintf("ast: unknown node kind %T", n))
	}
}

func optional(n Node) []Node {
	if n == nil {
		return []Node{}
	}
	return []Node{n}
}

// Descendants performs a breadth-first traversal starting from n's
// children, optionally filtered by kind or category. n itself is
// excluded (spec §4.1 "descendants(kind?)").
func Descendants(n Node, kindOrCategory ...string) []Node {
	var filter string
	filtered := len(kindOrCategory) > 0
	if filtered {
		filter = kindOrCategory[0]
	}

	var out []Node
	queue := append([]Node{}, Children(n)...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !filtered || Is(cur, filter) {
			out = append(out, cur)
		}
		queue = append(queue, Children(cur)...)
	}
	return out
}

// ReduceFunc folds an accumulator over a node and its subtree.
type ReduceFunc func(acc any, n Node) any

// Reduce performs a pre-order fold: tx(acc, self) is applied first,
// then threaded through children left-to-right (spec §4.1
// "reduce(tx, initial)").
func Reduce(n Node, tx ReduceFunc, initial any) any {
	acc := tx(initial, n)
	for _, c := range Children(n) {
		acc = Reduce(c, tx, acc)
	}
	return acc
}
