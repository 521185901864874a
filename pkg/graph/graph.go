// Package graph models the resolved dependency graph that the package
// manager exports and revscan consumes. The graph arrives fully resolved;
// this package only reads it.
package graph

import "fmt"

// Node is one element of the resolved graph.
type Node struct {
	// Ref is the recipe identity. Zero for virtual or root nodes.
	Ref Ref
	// PackageID identifies the binary configuration, when one exists.
	PackageID string
	// PackageRevision is the recorded binary revision (empty when the
	// binary was never built or installed).
	PackageRevision string
	// Binary is the resolver's binary status (e.g. "Cache", "Missing").
	Binary string
	// Requires holds the requirement expressions the node declared,
	// e.g. "zlib/[>=1.2 <2]".
	Requires []string
}

// Graph is the ordered node list. Nodes[0] is always the consumer/root.
type Graph struct {
	Nodes []Node

	err string
}

// Dependencies returns every node except the synthetic root.
func (g *Graph) Dependencies() []Node {
	if len(g.Nodes) == 0 {
		return nil
	}
	return g.Nodes[1:]
}

// Err surfaces a resolution error the package manager recorded in the
// export (unresolved requirement, missing binary). Callers must not run
// revision analysis on a graph with a non-nil Err.
func (g *Graph) Err() error {
	if g.err == "" {
		return nil
	}
	return fmt.Errorf("graph resolution failed: %s", g.err)
}
