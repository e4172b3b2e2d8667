package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/guillep/wollok-core/internal/ast"
	"github.com/guillep/wollok-core/internal/config"
	"github.com/guillep/wollok-core/internal/ids"
	"github.com/guillep/wollok-core/internal/metrics"
	"github.com/guillep/wollok-core/internal/resolver"
	"github.com/guillep/wollok-core/internal/runtime"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Build a small fixed environment and report what the core computes over it",
	Long: `inspect has no parser attached: it builds a small Linked Environment
directly from Go literals (mirroring the class hierarchy from the
"hierarchy with mixins" example: Class C extends B mixed-with M1, M2;
B extends A; M1 mixes M3) and reports FQN resolution, hierarchy
linearisation, method lookup, and a short instance-interning trace
over it. No interruption is raised.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func section(title string) {
	color.New(color.FgCyan, color.Bold).Fprintf(os.Stdout, "\n== %s ==\n", title)
}

func ok(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(os.Stdout, format+"\n", args...)
}

func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stdout, format+"\n", args...)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("inspect: loading config: %w", err)
	}

	env, a, b, c, m1, m2, m3 := buildSampleEnvironment()
	e := resolver.New(env)

	section("fully qualified names")
	labeled := []struct {
		label string
		node  ast.Node
	}{
		{"A", a}, {"B", b}, {"C", c}, {"M1", m1}, {"M2", m2}, {"M3", m3},
	}
	for _, ln := range labeled {
		label, node := ln.label, ln.node
		fqn, err := resolver.FullyQualifiedName(e, node)
		if err != nil {
			fail("%s: %v", label, err)
			continue
		}
		ok("%s.fullyQualifiedName() = %q", label, fqn)
	}

	section("hierarchy")
	h, err := resolver.Hierarchy(e, c)
	if err != nil {
		return fmt.Errorf("inspect: computing C's hierarchy: %w", err)
	}
	names := make([]string, len(h))
	for i, m := range h {
		names[i] = m.Id()
	}
	ok("C.hierarchy() = %v", names)

	inherits, err := resolver.Inherits(e, c, a)
	if err != nil {
		return fmt.Errorf("inspect: checking C.inherits(A): %w", err)
	}
	ok("C.inherits(A) = %v", inherits)

	section("method lookup")
	method, err := resolver.LookupMethod(e, c, "foo", 1)
	if err != nil {
		return fmt.Errorf("inspect: looking up C>>foo/1: %w", err)
	}
	if method == nil {
		fail("C.lookupMethod(\"foo\", 1) = <not found>")
	} else {
		ok("C.lookupMethod(\"foo\", 1) found method %s", method.Name)
	}

	section("evaluation state")
	idSvc := ids.New(nil, cfg.DecimalPrecision)
	var rec runtime.Metrics
	if cfg.MetricsEnabled {
		rec = metrics.New(prometheus.NewRegistry())
	}
	evaluation := runtime.New(idSvc, rec, cfg.MaxFrameDepth)

	n1, _, err := idSvc.NumberID(1.0)
	if err != nil {
		return fmt.Errorf("inspect: computing interning key: %w", err)
	}
	id1, err := evaluation.CreateInstance(runtime.NumberModule, 1.0)
	if err != nil {
		return fmt.Errorf("inspect: creating first Number instance: %w", err)
	}
	id2, err := evaluation.CreateInstance(runtime.NumberModule, 1.000001)
	if err != nil {
		return fmt.Errorf("inspect: creating second Number instance: %w", err)
	}
	ok("createInstance(Number, 1.0) = %s", id1)
	ok("createInstance(Number, 1.000001) = %s (same id: %v, matches %s: %v)", id2, id1 == id2, n1, id1 == n1)

	return nil
}

// buildSampleEnvironment builds the "hierarchy with mixins" fixture:
// Class C extends B mixed-with M1, M2; B extends A; M1 mixes M3, all
// declared in package "p".
func buildSampleEnvironment() (env *ast.EnvironmentNode, a, b, c, m1, m2, m3 ast.Node) {
	aNode := ast.NewClass(ast.Linked, "A", nil, nil, nil)
	aNode.SetId("A")

	bNode := ast.NewClass(ast.Linked, "B", sampleRef("A"), nil, nil)
	bNode.SetId("B")

	m3Node := ast.NewMixin(ast.Linked, "M3", nil, nil)
	m3Node.SetId("M3")

	m1Node := ast.NewMixin(ast.Linked, "M1", []ast.Node{sampleRef("M3")}, nil)
	m1Node.SetId("M1")

	m2Node := ast.NewMixin(ast.Linked, "M2", nil, nil)
	m2Node.SetId("M2")

	fooParams := []ast.Node{ast.NewParameter(ast.Linked, "x", false)}
	fooMethod := ast.NewMethod(ast.Linked, "foo", fooParams, ast.NewBody(ast.Linked, nil), false)

	cNode := ast.NewClass(ast.Linked, "C", sampleRef("B"),
		[]ast.Node{sampleRef("M1"), sampleRef("M2")},
		[]ast.Node{fooMethod})
	cNode.SetId("C")

	p := ast.NewPackage(ast.Linked, "p", []ast.Node{aNode, bNode, cNode, m1Node, m2Node, m3Node})
	p.SetId("p")

	environment := ast.NewEnvironment(ast.Linked, []ast.Node{p})
	environment.SetId("env")

	return environment, aNode, bNode, cNode, m1Node, m2Node, m3Node
}

func sampleRef(name string) *ast.ReferenceNode {
	r := ast.NewReference(ast.Linked, name)
	r.Scope = map[string]string{name: "p"}
	return r
}
