package ast

// EnvironmentNode is the root of a Linked tree: it holds the top-level
// Packages (spec §3.3 "Environment").
type EnvironmentNode struct {
	Meta
	Packages []Node // Package
}

// NewEnvironment builds an Environment node at the given stage.
func NewEnvironment(stage Stage, packages []Node) *EnvironmentNode {
	return &EnvironmentNode{Meta: newMeta(KindEnvironment, stage), Packages: packages}
}

// PackageNode groups an ordered sequence of member Entities under a
// name (spec §3.3 "Package").
type PackageNode struct {
	Meta
	Name    string
	Members []Node // Entity
}

func NewPackage(stage Stage, name string, members []Node) *PackageNode {
	return &PackageNode{Meta: newMeta(KindPackage, stage), Name: name, Members: members}
}

// ClassNode is a Module with an optional superclass (spec §3.3
// "Class"). Constructors are held in Members alongside Fields/Methods.
type ClassNode struct {
	Meta
	Name       string
	Superclass Node // Reference, optional
	Mixins     []Node
	Members    []Node // Field | Method | Constructor
}

func NewClass(stage Stage, name string, superclass Node, mixins, members []Node) *ClassNode {
	return &ClassNode{
		Meta:       newMeta(KindClass, stage),
		Name:       name,
		Superclass: superclass,
		Mixins:     mixins,
		Members:    members,
	}
}

func (c *ClassNode) MemberList() []Node { return c.Members }

// SuperCallSpec is the mandatory super-constructor call every
// Singleton carries (spec §3.3 "Singleton").
type SuperCallSpec struct {
	Superclass Node // Reference
	Args       []Node
}

// SingletonNode is a Module with no superclass reference of its own;
// instead it mandates a SuperCall. Name is optional: an unnamed
// singleton gets a synthetic FQN (spec §4.4).
type SingletonNode struct {
	Meta
	Name      string
	SuperCall SuperCallSpec
	Mixins    []Node
	Members   []Node // Field | Method
}

func NewSingleton(stage Stage, name string, superCall SuperCallSpec, mixins, members []Node) *SingletonNode {
	return &SingletonNode{
		Meta:      newMeta(KindSingleton, stage),
		Name:      name,
		SuperCall: superCall,
		Mixins:    mixins,
		Members:   members,
	}
}

func (s *SingletonNode) MemberList() []Node { return s.Members }

// MixinNode is an orderable, composable module fragment with no
// superclass of its own (spec §3.3, GLOSSARY "Mixin").
type MixinNode struct {
	Meta
	Name    string
	Mixins  []Node
	Members []Node // Field | Method
}

func NewMixin(stage Stage, name string, mixins, members []Node) *MixinNode {
	return &MixinNode{Meta: newMeta(KindMixin, stage), Name: name, Mixins: mixins, Members: members}
}

func (m *MixinNode) MemberList() []Node { return m.Members }

// ProgramNode is a top-level runnable entity with a single body.
type ProgramNode struct {
	Meta
	Name string
	Body Node // Body
}

func NewProgram(stage Stage, name string, body Node) *ProgramNode {
	return &ProgramNode{Meta: newMeta(KindProgram, stage), Name: name, Body: body}
}

// DescribeNode groups Test (and helper Method/Field) members under a
// named test suite.
type DescribeNode struct {
	Meta
	Name    string
	Members []Node // Test | Method | Field
}

func NewDescribe(stage Stage, name string, members []Node) *DescribeNode {
	return &DescribeNode{Meta: newMeta(KindDescribe, stage), Name: name, Members: members}
}

func (d *DescribeNode) MemberList() []Node { return d.Members }

// TestNode is a single named test with a body.
type TestNode struct {
	Meta
	Name string
	Body Node // Body
}

func NewTest(stage Stage, name string, body Node) *TestNode {
	return &TestNode{Meta: newMeta(KindTest, stage), Name: name, Body: body}
}
