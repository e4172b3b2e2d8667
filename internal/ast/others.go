package ast

// FieldNode declares an instance field on a Module, optionally
// initialized.
type FieldNode struct {
	Meta
	Name    string
	Value   Node // optional
	IsConst bool
}

func NewField(stage Stage, name string, value Node, isConst bool) *FieldNode {
	return &FieldNode{Meta: newMeta(KindField, stage), Name: name, Value: value, IsConst: isConst}
}

// MethodNode declares a method. Body is absent for abstract methods;
// IsNative marks a method whose body is supplied by a native
// collaborator (spec §3.3 "Method").
type MethodNode struct {
	Meta
	Name       string
	Parameters []Node
	Body       Node // optional
	IsNative   bool
}

func NewMethod(stage Stage, name string, parameters []Node, body Node, isNative bool) *MethodNode {
	return &MethodNode{
		Meta:       newMeta(KindMethod, stage),
		Name:       name,
		Parameters: parameters,
		Body:       body,
		IsNative:   isNative,
	}
}

// ConstructorCallSpec is the optional delegating call a constructor
// makes to a sibling ("self(...)") or parent ("super(...)")
// constructor before its own body runs.
type ConstructorCallSpec struct {
	HasCall   bool
	CallsSuper bool
	Args      []Node
}

// ConstructorNode declares a class constructor. Constructors are
// looked up by arity within their own class only; they are never
// inherited (spec §4.6).
type ConstructorNode struct {
	Meta
	Parameters []Node
	Body       Node
	BaseCall   ConstructorCallSpec
}

func NewConstructor(stage Stage, parameters []Node, body Node, baseCall ConstructorCallSpec) *ConstructorNode {
	return &ConstructorNode{
		Meta:       newMeta(KindConstructor, stage),
		Parameters: parameters,
		Body:       body,
		BaseCall:   baseCall,
	}
}

// ParameterNode names a formal parameter. At most one parameter in a
// parameter list has IsVarArg set, and it is always last (spec §3.3).
type ParameterNode struct {
	Meta
	Name     string
	IsVarArg bool
}

func NewParameter(stage Stage, name string, isVarArg bool) *ParameterNode {
	return &ParameterNode{Meta: newMeta(KindParameter, stage), Name: name, IsVarArg: isVarArg}
}

// BodyNode is an ordered sequence of sentences.
type BodyNode struct {
	Meta
	Sentences []Node
}

func NewBody(stage Stage, sentences []Node) *BodyNode {
	return &BodyNode{Meta: newMeta(KindBody, stage), Sentences: sentences}
}

// CatchNode handles an exception of (optionally) a specific type,
// binding it to Parameter within Body.
type CatchNode struct {
	Meta
	Parameter     Node // Parameter
	ParameterType Node // Reference, optional
	Body          Node
}

func NewCatch(stage Stage, parameter, parameterType, body Node) *CatchNode {
	return &CatchNode{Meta: newMeta(KindCatch, stage), Parameter: parameter, ParameterType: parameterType, Body: body}
}
