package ast

// ReferenceNode is a dotted name; once Linked it carries a Scope
// mapping the leading local name to the id of the Package it resolves
// through (spec §3.3 "Reference", §4.4 "Reference.target").
type ReferenceNode struct {
	Meta
	Name  string
	Scope map[string]string // local name -> Package id, Linked only
}

func NewReference(stage Stage, name string) *ReferenceNode {
	return &ReferenceNode{Meta: newMeta(KindReference, stage), Name: name}
}

// SelfNode is the `self` pseudo-variable; it carries no attributes.
type SelfNode struct {
	Meta
}

func NewSelf(stage Stage) *SelfNode {
	return &SelfNode{Meta: newMeta(KindSelf, stage)}
}

// LiteralNode holds a primitive value (number, string, boolean, or
// nil) fixed at parse time.
type LiteralNode struct {
	Meta
	Value any
}

func NewLiteral(stage Stage, value any) *LiteralNode {
	return &LiteralNode{Meta: newMeta(KindLiteral, stage), Value: value}
}

// SendNode is a message send: Receiver.Message(Args...).
type SendNode struct {
	Meta
	Receiver Node
	Message  string
	Args     []Node
}

func NewSend(stage Stage, receiver Node, message string, args []Node) *SendNode {
	return &SendNode{Meta: newMeta(KindSend, stage), Receiver: receiver, Message: message, Args: args}
}

// SuperNode delegates the currently-executing message to the next
// module up the hierarchy.
type SuperNode struct {
	Meta
	Args []Node
}

func NewSuper(stage Stage, args []Node) *SuperNode {
	return &SuperNode{Meta: newMeta(KindSuper, stage), Args: args}
}

// NewNode instantiates a class.
type NewNode struct {
	Meta
	Instantiated Node // Reference
	Args         []Node
}

func NewNewExpr(stage Stage, instantiated Node, args []Node) *NewNode {
	return &NewNode{Meta: newMeta(KindNew, stage), Instantiated: instantiated, Args: args}
}

// IfNode is a conditional expression; ElseBody is optional.
type IfNode struct {
	Meta
	Condition Node
	ThenBody  Node // Body
	ElseBody  Node // Body, optional
}

func NewIf(stage Stage, condition, thenBody, elseBody Node) *IfNode {
	return &IfNode{Meta: newMeta(KindIf, stage), Condition: condition, ThenBody: thenBody, ElseBody: elseBody}
}

// ThrowNode raises an exception instance.
type ThrowNode struct {
	Meta
	Exception Node
}

func NewThrow(stage Stage, exception Node) *ThrowNode {
	return &ThrowNode{Meta: newMeta(KindThrow, stage), Exception: exception}
}

// TryNode is a try/catch/always expression. Always is optional.
type TryNode struct {
	Meta
	Body    Node // Body
	Catches []Node
	Always  Node // Body, optional
}

func NewTry(stage Stage, body Node, catches []Node, always Node) *TryNode {
	return &TryNode{Meta: newMeta(KindTry, stage), Body: body, Catches: catches, Always: always}
}
