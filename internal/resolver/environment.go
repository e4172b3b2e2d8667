// Package resolver implements the Linked-stage operations: the
// Environment index (getNodeById/getNodeByFQN), parent/ancestor
// queries, fully qualified names, hierarchy linearisation, and
// method/constructor lookup (spec §4.2-§4.6). Grounded on the
// teacher's internal/interp/runtime/environment.go scope-chain idiom
// ("check the local map, else delegate to the next one") applied here
// to id/FQN indexing instead of variable scoping, and on
// class_interface.go's LookupMethod walk generalized to mixins and
// arity matching.
package resolver

import (
	"sync"

	"github.com/guillep/wollok-core/internal/ast"
	"github.com/guillep/wollok-core/internal/coreerr"
)

// Environment indexes a Linked tree rooted at an ast.EnvironmentNode,
// offering id and FQN lookup plus parent queries over it. Per spec §9
// design notes, the index is built once ("index once after link")
// rather than re-scanned per query miss: the node/parent caches are
// populated lazily on first use and never invalidated, matching the
// single-linker-run lifetime NODE_CACHE/PARENT_CACHE assume.
type Environment struct {
	root *ast.EnvironmentNode

	once     sync.Once
	byId     map[string]ast.Node
	parentOf map[string]string // child id -> parent id; root's id is absent
}

// New wraps root for id/FQN/parent queries.
func New(root *ast.EnvironmentNode) *Environment {
	return &Environment{root: root}
}

// Root returns the wrapped Environment node.
func (e *Environment) Root() *ast.EnvironmentNode { return e.root }

func (e *Environment) index() {
	e.once.Do(func() {
		e.byId = make(map[string]ast.Node)
		e.parentOf = make(map[string]string)
		e.byId[e.root.Id()] = e.root
		e.indexChildren(e.root)
	})
}

func (e *Environment) indexChildren(n ast.Node) {
	for _, c := range ast.Children(n) {
		e.byId[c.Id()] = c
		e.parentOf[c.Id()] = n.Id()
		e.indexChildren(c)
	}
}

// GetNodeById returns the unique node with that id (spec §4.2).
func (e *Environment) GetNodeById(id string) (ast.Node, error) {
	e.index()
	n, ok := e.byId[id]
	if !ok {
		return nil, coreerr.NewMissingNodeError(id)
	}
	return n, nil
}

// TopLevelPackages returns the Environment's direct Package children
// (spec §4.2 "children<T>()" specialised to Package, the only
// top-level Entity kind).
func (e *Environment) TopLevelPackages() []ast.Node {
	return e.root.Packages
}

// GetNodeByFQN splits fqn on the first '.', locates the top-level
// Package by name, and delegates the remainder to GetNodeByQN (spec
// §4.2).
func (e *Environment) GetNodeByFQN(fqn string) (ast.Node, error) {
	head, rest := splitFirst(fqn, '.')
	for _, p := range e.root.Packages {
		pkg := p.(*ast.PackageNode)
		if pkg.Name == head {
			if rest == "" {
				return pkg, nil
			}
			return e.GetNodeByQN(pkg, rest)
		}
	}
	return nil, coreerr.NewUnresolvedReferenceError(fqn, head)
}

func splitFirst(s string, sep byte) (head, rest string) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
