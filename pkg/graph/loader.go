package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

type nodeDoc struct {
	Ref       string   `json:"ref"`
	PackageID string   `json:"package_id"`
	Prev      string   `json:"prev"`
	Binary    string   `json:"binary"`
	Requires  []string `json:"requires"`
}

type graphDoc struct {
	Error string              `json:"error"`
	Nodes map[string]*nodeDoc `json:"nodes"`
}

type rootDoc struct {
	Graph *graphDoc `json:"graph"`
	// Flat form: some exporters put the node map at the top level.
	Error string              `json:"error"`
	Nodes map[string]*nodeDoc `json:"nodes"`
}

// Load reads a graph export file. See Decode.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()
	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding graph file %s: %w", path, err)
	}
	return g, nil
}

// Decode reads the package manager's JSON graph export. Nodes are keyed by
// numeric strings; node "0" is the consumer/root. Both the wrapped
// {"graph": {"nodes": ...}} form and the flat {"nodes": ...} form are
// accepted.
func Decode(r io.Reader) (*Graph, error) {
	var doc rootDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	gd := doc.Graph
	if gd == nil {
		gd = &graphDoc{Error: doc.Error, Nodes: doc.Nodes}
	}
	if gd.Nodes == nil {
		return nil, fmt.Errorf("graph export has no nodes")
	}

	ids := make([]int, 0, len(gd.Nodes))
	for key := range gd.Nodes {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("non-numeric node id %q", key)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	g := &Graph{Nodes: make([]Node, 0, len(ids)), err: gd.Error}
	for _, id := range ids {
		nd := gd.Nodes[strconv.Itoa(id)]
		node := Node{
			PackageID:       nd.PackageID,
			PackageRevision: nd.Prev,
			Binary:          nd.Binary,
			Requires:        nd.Requires,
		}
		// Root and virtual nodes export a null or non-reference string
		// (e.g. "conanfile"); those stay zero.
		if ref, err := ParseRef(nd.Ref); err == nil {
			node.Ref = ref
		}
		g.Nodes = append(g.Nodes, node)
	}
	return g, nil
}
