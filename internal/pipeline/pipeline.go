// Package pipeline is the synchronous foresight core: it tags a batch
// of signals against the ontology, clusters them by title similarity,
// selects a bounded working set, and derives the hypothesis and graph.
// Every invocation is a pure single-pass transform over the inputs; the
// vector space is batch-local and nothing is kept between calls.
package pipeline

import (
	"time"

	"horizonte/backend/internal/cluster"
	"horizonte/backend/internal/graph"
	"horizonte/backend/internal/hypothesis"
	"horizonte/backend/internal/tagging"
)

// Signal is one collected headline. Concepts is filled in by Process;
// the other fields are read-only to the core.
type Signal struct {
	Title       string
	Source      string
	CollectedAt time.Time
	Concepts    []string
}

// Options carries the tunable policy of the pipeline. Zero values fall
// back to the defaults, so Options{} behaves like DefaultOptions().
type Options struct {
	Threshold    float64
	MinSelection int
	MaxSelection int
}

func DefaultOptions() Options {
	return Options{
		Threshold:    cluster.DefaultThreshold,
		MinSelection: cluster.DefaultMinSelection,
		MaxSelection: cluster.DefaultMaxSelection,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Threshold <= 0 {
		o.Threshold = def.Threshold
	}
	if o.MinSelection <= 0 {
		o.MinSelection = def.MinSelection
	}
	if o.MaxSelection <= 0 {
		o.MaxSelection = def.MaxSelection
	}
	return o
}

// Result is the outcome of one pipeline run.
type Result struct {
	Clusters   [][]int
	Selection  []int
	Hypothesis string
	Graph      graph.Graph
}

// Process runs the full pipeline over signals, mutating each signal's
// Concepts in place. It never fails: an empty batch yields the
// degenerate no-data result, and a single-title batch skips similarity
// entirely and becomes one cluster with no edges.
func Process(signals []Signal, concepts []tagging.Concept, opts Options) Result {
	opts = opts.withDefaults()

	for i := range signals {
		signals[i].Concepts = tagging.Tag(signals[i].Title, concepts)
	}

	if len(signals) == 0 {
		return Result{
			Clusters:   [][]int{},
			Selection:  []int{},
			Hypothesis: hypothesis.NoBatch,
			Graph:      graph.Empty(hypothesis.NoBatch),
		}
	}

	titles := make([]string, len(signals))
	for i, s := range signals {
		titles[i] = s.Title
	}

	vectors := cluster.Vectorize(titles)
	edges := cluster.BuildEdges(vectors, opts.Threshold)
	clusters := cluster.Components(len(signals), edges)
	selection := cluster.Select(clusters, opts.MinSelection, opts.MaxSelection)

	chosen := selection
	if len(chosen) > 3 {
		chosen = chosen[:3]
	}
	chosenTitles := make([]string, len(chosen))
	for i, idx := range chosen {
		chosenTitles[i] = signals[idx].Title
	}
	hyp := hypothesis.Compose(chosenTitles)

	infos := make([]graph.SignalInfo, len(signals))
	for i, s := range signals {
		infos[i] = graph.SignalInfo{Title: s.Title, Source: s.Source, Concepts: s.Concepts}
	}

	return Result{
		Clusters:   clusters,
		Selection:  selection,
		Hypothesis: hyp,
		Graph:      graph.Assemble(selection, hyp, edges, infos),
	}
}
