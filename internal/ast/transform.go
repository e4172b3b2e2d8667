package ast

import "fmt"

// Transformer rewrites a node once its children have already been
// rewritten. A single function applies to every kind; a KindTransform
// map applies only to the kinds it lists, passing every other kind
// through unchanged (spec §4.1 "transform(tx)").
type Transformer interface {
	apply(n Node) Node
}

// FuncTransform applies the same function to every node.
type FuncTransform func(Node) Node

func (f FuncTransform) apply(n Node) Node { return f(n) }

// KindTransform applies a per-kind function, passing any kind absent
// from the map through unchanged.
type KindTransform map[Kind]func(Node) Node

func (m KindTransform) apply(n Node) Node {
	if f, ok := m[n.Kind()]; ok {
		return f(n)
	}
	return n
}

// Transform rewrites n bottom-up: every child is transformed first
// (recursively, via transformChild/transformSlice below), then tx is
// applied to the rebuilt node (spec §4.1: "a node is rewritten AFTER
// its children have been rewritten"). Each kind is rebuilt by an
// explicit per-kind switch mirroring childrenOf, so Meta (kind, stage,
// id) survives the rewrite by value.
func Transform(n Node, tx Transformer) Node {
	if n == nil {
		return nil
	}
	return tx.apply(rebuild(n, tx))
}

func transformChild(n Node, tx Transformer) Node {
	if n == nil {
		return nil
	}
	return Transform(n, tx)
}

func transformSlice(ns []Node, tx Transformer) []Node {
	if ns == nil {
		return nil
	}
	out := make([]Node, len(ns))
	for i, c := range ns {
		out[i] = Transform(c, tx)
	}
	return out
}

func rebuild(n Node, tx Transformer) Node {
	switch x := n.(type) {
	case *EnvironmentNode:
		return &EnvironmentNode{Meta: x.Meta, Packages: transformSlice(x.Packages, tx)}
	case *PackageNode:
		return &PackageNode{Meta: x.Meta, Name: x.Name, Members: transformSlice(x.Members, tx)}
	case *ClassNode:
		return &ClassNode{
			Meta:       x.Meta,
			Name:       x.Name,
			Superclass: transformChild(x.Superclass, tx),
			Mixins:     transformSlice(x.Mixins, tx),
			Members:    transformSlice(x.Members, tx),
		}
	case *SingletonNode:
		return &SingletonNode{
			Meta: x.Meta,
			Name: x.Name,
			SuperCall: SuperCallSpec{
				Superclass: transformChild(x.SuperCall.Superclass, tx),
				Args:       transformSlice(x.SuperCall.Args, tx),
			},
			Mixins:  transformSlice(x.Mixins, tx),
			Members: transformSlice(x.Members, tx),
		}
	case *MixinNode:
		return &MixinNode{
			Meta:    x.Meta,
			Name:    x.Name,
			Mixins:  transformSlice(x.Mixins, tx),
			Members: transformSlice(x.Members, tx),
		}
	case *ProgramNode:
		return &ProgramNode{Meta: x.Meta, Name: x.Name, Body: transformChild(x.Body, tx)}
	case *DescribeNode:
		return &DescribeNode{Meta: x.Meta, Name: x.Name, Members: transformSlice(x.Members, tx)}
	case *TestNode:
		return &TestNode{Meta: x.Meta, Name: x.Name, Body: transformChild(x.Body, tx)}

	case *ReferenceNode:
		return &ReferenceNode{Meta: x.Meta, Name: x.Name, Scope: x.Scope}
	case *SelfNode:
		return &SelfNode{Meta: x.Meta}
	case *LiteralNode:
		return &LiteralNode{Meta: x.Meta, Value: x.Value}
	case *SendNode:
		return &SendNode{
			Meta:     x.Meta,
			Receiver: transformChild(x.Receiver, tx),
			Message:  x.Message,
			Args:     transformSlice(x.Args, tx),
		}
	case *SuperNode:
		return &SuperNode{Meta: x.Meta, Args: transformSlice(x.Args, tx)}
	case *NewNode:
		return &NewNode{
			Meta:         x.Meta,
			Instantiated: transformChild(x.Instantiated, tx),
			Args:         transformSlice(x.Args, tx),
		}
	case *IfNode:
		return &IfNode{
			Meta:      x.Meta,
			Condition: transformChild(x.Condition, tx),
			ThenBody:  transformChild(x.ThenBody, tx),
			ElseBody:  transformChild(x.ElseBody, tx),
		}
	case *ThrowNode:
		return &ThrowNode{Meta: x.Meta, Exception: transformChild(x.Exception, tx)}
	case *TryNode:
		return &TryNode{
			Meta:    x.Meta,
			Body:    transformChild(x.Body, tx),
			Catches: transformSlice(x.Catches, tx),
			Always:  transformChild(x.Always, tx),
		}

	case *VariableNode:
		return &VariableNode{Meta: x.Meta, Name: x.Name, Value: transformChild(x.Value, tx), IsConst: x.IsConst}
	case *ReturnNode:
		return &ReturnNode{Meta: x.Meta, Value: transformChild(x.Value, tx)}
	case *AssignmentNode:
		return &AssignmentNode{
			Meta:     x.Meta,
			Variable: transformChild(x.Variable, tx),
			Value:    transformChild(x.Value, tx),
		}

	case *FieldNode:
		return &FieldNode{Meta: x.Meta, Name: x.Name, Value: transformChild(x.Value, tx), IsConst: x.IsConst}
	case *MethodNode:
		return &MethodNode{
			Meta:       x.Meta,
			Name:       x.Name,
			Parameters: transformSlice(x.Parameters, tx),
			Body:       transformChild(x.Body, tx),
			IsNative:   x.IsNative,
		}
	case *ConstructorNode:
		return &ConstructorNode{
			Meta:       x.Meta,
			Parameters: transformSlice(x.Parameters, tx),
			Body:       transformChild(x.Body, tx),
			BaseCall: ConstructorCallSpec{
				HasCall:    x.BaseCall.HasCall,
				CallsSuper: x.BaseCall.CallsSuper,
				Args:       transformSlice(x.BaseCall.Args, tx),
			},
		}
	case *ParameterNode:
		return &ParameterNode{Meta: x.Meta, Name: x.Name, IsVarArg: x.IsVarArg}
	case *BodyNode:
		return &BodyNode{Meta: x.Meta, Sentences: transformSlice(x.Sentences, tx)}
	case *CatchNode:
		return &CatchNode{
			Meta:          x.Meta,
			Parameter:     transformChild(x.Parameter, tx),
			ParameterType: transformChild(x.ParameterType, tx),
			Body:          transformChild(x.Body, tx),
		}

	default:
		panic(fmt.Sprintf("ast: unknown node kind %T", n))
	}
}
