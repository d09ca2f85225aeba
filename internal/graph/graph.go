// Package graph builds the node/edge structure served to the
// visualization: one hub node carrying the hypothesis, one node per
// selected signal, an edge from the hub to every signal, and the
// similarity edges that survive inside the selection.
package graph

import (
	"strconv"

	"horizonte/backend/internal/cluster"
)

// Node kinds.
const (
	KindHub    = "hub"
	KindSignal = "signal"
)

// Title is the fixed display title of the foresight graph.
const Title = "Cluster de Cenários Antecipativo"

const hubID = "hub"

type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Source   string   `json:"source,omitempty"`
	Concepts []string `json:"concepts,omitempty"`
}

type Edge struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

type Graph struct {
	Title      string `json:"title"`
	Hypothesis string `json:"hypothesis"`
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
}

// SignalInfo carries the per-signal fields shown on a node.
type SignalInfo struct {
	Title    string
	Source   string
	Concepts []string
}

// Empty returns the degenerate graph for a batch with no signals.
func Empty(hyp string) Graph {
	return Graph{Title: Title, Hypothesis: hyp, Nodes: []Node{}, Edges: []Edge{}}
}

// Assemble builds the graph for a working selection. selection holds
// absolute indices into signals; simEdges is the full similarity edge
// set, of which only pairs inside the selection are kept, one edge per
// unordered pair.
func Assemble(selection []int, hyp string, simEdges []cluster.Edge, signals []SignalInfo) Graph {
	if len(selection) == 0 {
		return Empty(hyp)
	}

	nodes := make([]Node, 0, len(selection)+1)
	nodes = append(nodes, Node{ID: hubID, Label: hyp, Kind: KindHub})

	localID := make(map[int]string, len(selection))
	edges := make([]Edge, 0, len(selection))
	for k, idx := range selection {
		id := "s" + strconv.Itoa(k)
		localID[idx] = id
		s := signals[idx]
		nodes = append(nodes, Node{
			ID:       id,
			Label:    s.Title,
			Kind:     KindSignal,
			Source:   s.Source,
			Concepts: s.Concepts,
		})
		edges = append(edges, Edge{SourceID: hubID, TargetID: id})
	}

	seen := make(map[[2]string]bool)
	for _, e := range simEdges {
		a, okA := localID[e.I]
		b, okB := localID[e.J]
		if !okA || !okB {
			continue
		}
		key := [2]string{a, b}
		if b < a {
			key = [2]string{b, a}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, Edge{SourceID: a, TargetID: b})
	}

	return Graph{Title: Title, Hypothesis: hyp, Nodes: nodes, Edges: edges}
}
