// Package runtime is the evaluator's mutable state: the instance
// heap, interning for primitive values, the frame stack, and the
// structured interruption mechanism that implements non-local exits
// (spec.md §4.7). It is evaluated by an external executor (out of
// scope, §1) that walks a Linked tree and drives an Evaluation through
// it; this package owns only the state the executor reads and
// mutates, not the tree-walking itself.
package runtime
