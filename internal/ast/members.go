package ast

// memberHolder is implemented by every Module/Describe kind, exposing
// its member list for the kind-filtered accessors spec §4.1 requires
// (methods/fields/constructors/tests).
type memberHolder interface {
	Node
	MemberList() []Node
}

func filterIs(members []Node, kind Kind) []Node {
	var out []Node
	for _, m := range members {
		if m.Kind() == kind {
			out = append(out, m)
		}
	}
	return out
}

// MethodsOf returns n's direct Method members.
func MethodsOf(n memberHolder) []Node { return filterIs(n.MemberList(), KindMethod) }

// FieldsOf returns n's direct Field members.
func FieldsOf(n memberHolder) []Node { return filterIs(n.MemberList(), KindField) }

// ConstructorsOf returns n's direct Constructor members (only
// meaningful for Class; other Module kinds have none).
func ConstructorsOf(n memberHolder) []Node { return filterIs(n.MemberList(), KindConstructor) }

// TestsOf returns n's direct Test members (only meaningful for
// Describe).
func TestsOf(n memberHolder) []Node { return filterIs(n.MemberList(), KindTest) }
