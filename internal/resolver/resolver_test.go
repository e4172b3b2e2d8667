package resolver

import (
	"testing"

	"github.com/guillep/wollok-core/internal/ast"
)

func ref(name, scopePkgId string) *ast.ReferenceNode {
	r := ast.NewReference(ast.Linked, name)
	r.Scope = map[string]string{name: scopePkgId}
	return r
}

// TestFQNRoundTrip builds the exact scenario in spec §8 #2:
// Environment{Package p{members:[Package q{members:[Class C]}]}}.
func TestFQNRoundTrip(t *testing.T) {
	class := ast.NewClass(ast.Linked, "C", nil, nil, nil)
	class.SetId("C")
	q := ast.NewPackage(ast.Linked, "q", []ast.Node{class})
	q.SetId("q")
	p := ast.NewPackage(ast.Linked, "p", []ast.Node{q})
	p.SetId("p")
	env := ast.NewEnvironment(ast.Linked, []ast.Node{p})
	env.SetId("env")

	e := New(env)

	got, err := e.GetNodeByFQN("p.q.C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ast.Node(class) {
		t.Fatalf("expected to resolve the Class node, got %v", got)
	}

	fqn, err := FullyQualifiedName(e, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fqn != "p.q.C" {
		t.Fatalf("expected FQN p.q.C, got %q", fqn)
	}
}

// buildMixinHierarchy builds spec §8 #3: Class C extends B mixed-with
// M1, M2; B extends A; M1 mixes M3. All declared in package "p".
func buildMixinHierarchy() (e *Environment, a, b, c, m1, m2, m3 ast.Node) {
	aNode := ast.NewClass(ast.Linked, "A", nil, nil, nil)
	aNode.SetId("A")
	bNode := ast.NewClass(ast.Linked, "B", ref("A", "p"), nil, nil)
	bNode.SetId("B")
	m3Node := ast.NewMixin(ast.Linked, "M3", nil, nil)
	m3Node.SetId("M3")
	m1Node := ast.NewMixin(ast.Linked, "M1", []ast.Node{ref("M3", "p")}, nil)
	m1Node.SetId("M1")
	m2Node := ast.NewMixin(ast.Linked, "M2", nil, nil)
	m2Node.SetId("M2")
	cNode := ast.NewClass(ast.Linked, "C", ref("B", "p"), []ast.Node{ref("M1", "p"), ref("M2", "p")}, nil)
	cNode.SetId("C")

	p := ast.NewPackage(ast.Linked, "p", []ast.Node{aNode, bNode, cNode, m1Node, m2Node, m3Node})
	p.SetId("p")
	env := ast.NewEnvironment(ast.Linked, []ast.Node{p})
	env.SetId("env")

	return New(env), aNode, bNode, cNode, m1Node, m2Node, m3Node
}

func TestHierarchyWithMixins(t *testing.T) {
	e, a, b, c, m1, m2, m3 := buildMixinHierarchy()

	h, err := Hierarchy(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ast.Node{c, m1, m3, m2, b, a}
	if len(h) != len(want) {
		t.Fatalf("expected %d modules, got %d: %v", len(want), len(h), h)
	}
	for i, m := range want {
		if h[i] != m {
			t.Fatalf("position %d: expected %v, got %v", i, m, h[i])
		}
	}
}

func TestHierarchyContainsSelfFirstAndDistinct(t *testing.T) {
	e, _, _, c, _, _, _ := buildMixinHierarchy()
	h, err := Hierarchy(e, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h[0] != ast.Node(c) {
		t.Fatalf("expected hierarchy()[0] to be the module itself")
	}
	seen := map[string]bool{}
	for _, m := range h {
		if seen[m.Id()] {
			t.Fatalf("duplicate id %q in hierarchy", m.Id())
		}
		seen[m.Id()] = true
	}
}

func TestInherits(t *testing.T) {
	e, a, _, c, _, _, _ := buildMixinHierarchy()
	ok, err := Inherits(e, c, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected C to inherit from A via the superclass chain")
	}
}

// TestLookupMethodWithVarargs builds spec §8 #4: M declares foo(a,
// *b); lookupMethod("foo", 1) and (..., 4) match, (..., 0) does not.
func TestLookupMethodWithVarargs(t *testing.T) {
	params := []ast.Node{
		ast.NewParameter(ast.Linked, "a", false),
		ast.NewParameter(ast.Linked, "b", true),
	}
	method := ast.NewMethod(ast.Linked, "foo", params, ast.NewBody(ast.Linked, nil), false)
	class := ast.NewClass(ast.Linked, "M", nil, nil, []ast.Node{method})
	class.SetId("M")
	p := ast.NewPackage(ast.Linked, "p", []ast.Node{class})
	p.SetId("p")
	env := ast.NewEnvironment(ast.Linked, []ast.Node{p})
	e := New(env)

	for _, arity := range []int{1, 4} {
		m, err := LookupMethod(e, class, "foo", arity)
		if err != nil {
			t.Fatalf("unexpected error at arity %d: %v", arity, err)
		}
		if m == nil {
			t.Fatalf("expected foo to match at arity %d", arity)
		}
	}

	m, err := LookupMethod(e, class, "foo", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected foo not to match at arity 0")
	}
}

func TestLookupConstructorOwnClassOnly(t *testing.T) {
	ctor := ast.NewConstructor(ast.Linked, []ast.Node{ast.NewParameter(ast.Linked, "x", false)}, ast.NewBody(ast.Linked, nil), ast.ConstructorCallSpec{})
	class := ast.NewClass(ast.Linked, "C", nil, nil, []ast.Node{ctor})

	if got := LookupConstructor(class, 1); got != ctor {
		t.Fatalf("expected to find the one-arg constructor")
	}
	if got := LookupConstructor(class, 2); got != nil {
		t.Fatalf("expected no match at arity 2")
	}
}

func TestParentAndClosestAncestor(t *testing.T) {
	field := ast.NewField(ast.Linked, "x", nil, false)
	class := ast.NewClass(ast.Linked, "C", nil, nil, []ast.Node{field})
	class.SetId("C")
	p := ast.NewPackage(ast.Linked, "p", []ast.Node{class})
	p.SetId("p")
	env := ast.NewEnvironment(ast.Linked, []ast.Node{p})
	env.SetId("env")
	e := New(env)

	parent, err := Parent(e, field)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parent != ast.Node(class) {
		t.Fatalf("expected field's parent to be the class")
	}

	pkg, err := ClosestAncestor(e, field, string(ast.KindPackage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg != ast.Node(p) {
		t.Fatalf("expected closest Package ancestor to be p")
	}

	_, err = Parent(e, env)
	if err == nil {
		t.Fatalf("expected the root to have no parent")
	}
}
