package ast

import "testing"

// sampleTree builds Environment{p{q{C{field x; method m()}}}} i.e. a
// small nested Package/Class tree, used across several properties.
func sampleTree() *EnvironmentNode {
	field := NewField(Filled, "x", NewLiteral(Filled, int64(1)), false)
	method := NewMethod(Filled, "m", nil, NewBody(Filled, nil), false)
	class := NewClass(Filled, "C", nil, nil, []Node{field, method})
	q := NewPackage(Filled, "q", []Node{class})
	p := NewPackage(Filled, "p", []Node{q})
	return NewEnvironment(Filled, []Node{p})
}

func TestIsKindAndCategory(t *testing.T) {
	class := NewClass(Raw, "C", nil, nil, nil)
	if !Is(class, string(KindClass)) {
		t.Fatalf("expected Class to match its own kind")
	}
	if !Is(class, CategoryEntity) {
		t.Fatalf("expected Class to match category Entity")
	}
	if !Is(class, CategoryModule) {
		t.Fatalf("expected Class to match category Module")
	}
	if Is(class, CategorySentence) {
		t.Fatalf("did not expect Class to match category Sentence")
	}
}

func TestChildrenOrder(t *testing.T) {
	superclass := NewReference(Filled, "p.B")
	mixin := NewReference(Filled, "p.M")
	field := NewField(Filled, "x", nil, false)
	class := NewClass(Filled, "C", superclass, []Node{mixin}, []Node{field})

	children := Children(class)
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0] != Node(superclass) {
		t.Fatalf("expected superclass first, got %v", children[0])
	}
	if children[1] != Node(mixin) {
		t.Fatalf("expected mixin second, got %v", children[1])
	}
	if children[2] != Node(field) {
		t.Fatalf("expected field third, got %v", children[2])
	}
}

func TestDescendantsExcludesSelfAndFilters(t *testing.T) {
	env := sampleTree()
	all := Descendants(env)
	for _, d := range all {
		if d == Node(env) {
			t.Fatalf("descendants must not include self")
		}
	}

	classes := Descendants(env, string(KindClass))
	if len(classes) != 1 {
		t.Fatalf("expected exactly one Class descendant, got %d", len(classes))
	}

	fields := Descendants(env, CategoryOther)
	found := false
	for _, f := range fields {
		if f.Kind() == KindField {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Field among Other-category descendants")
	}
}

// TestReduceCountsAllNodes verifies spec §8's "reduce sum" law: folding
// a +1 counter over the whole tree equals all descendants plus self.
func TestReduceCountsAllNodes(t *testing.T) {
	env := sampleTree()
	total := len(Descendants(env)) + 1

	count := Reduce(env, func(acc any, _ Node) any { return acc.(int) + 1 }, 0)
	if count.(int) != total {
		t.Fatalf("expected reduce count %d, got %v", total, count)
	}
}

func TestMemberAccessors(t *testing.T) {
	field := NewField(Filled, "x", nil, false)
	method := NewMethod(Filled, "m", nil, nil, false)
	ctor := NewConstructor(Filled, nil, NewBody(Filled, nil), ConstructorCallSpec{})
	class := NewClass(Filled, "C", nil, nil, []Node{field, method, ctor})

	if got := FieldsOf(class); len(got) != 1 || got[0] != Node(field) {
		t.Fatalf("FieldsOf: unexpected result %v", got)
	}
	if got := MethodsOf(class); len(got) != 1 || got[0] != Node(method) {
		t.Fatalf("MethodsOf: unexpected result %v", got)
	}
	if got := ConstructorsOf(class); len(got) != 1 || got[0] != Node(ctor) {
		t.Fatalf("ConstructorsOf: unexpected result %v", got)
	}
}
