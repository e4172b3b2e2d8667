package ast

// Node is the base interface every node, regardless of kind or stage,
// satisfies (spec §4.1). Kind/Stage/Id/SetId are promoted from the
// embedded Meta on every concrete node type; the tree algorithms
// (Is, Children, Descendants, Transform, Reduce) are free functions in
// walk.go/transform.go, mirroring go/ast's own Inspect/Walk/Apply
// shape rather than forcing every node type to redeclare them.
type Node interface {
	Kind() Kind
	Stage() Stage
	Id() string
	SetId(id string)
}
