package foresight

import (
	"context"
	"log/slog"

	"horizonte/backend/internal/graph"
	"horizonte/backend/internal/pipeline"
	"horizonte/backend/internal/settings"
	"horizonte/backend/internal/tagging"
)

type SignalSource interface {
	List(ctx context.Context) ([]pipeline.Signal, error)
}

type ConceptSource interface {
	ListForTagging(ctx context.Context) ([]tagging.Concept, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

// ClusterView is one similarity cluster, rendered as the titles it groups.
type ClusterView struct {
	Size    int      `json:"size"`
	Signals []string `json:"signals"`
}

// Analysis is the cluster-level view of a pipeline run.
type Analysis struct {
	Clusters   []ClusterView `json:"clusters"`
	Selection  []string      `json:"selection"`
	Hypothesis string        `json:"hypothesis"`
}

type Service struct {
	signals  SignalSource
	concepts ConceptSource
	settings SettingsSource
}

func NewService(signals SignalSource, concepts ConceptSource, settings SettingsSource) *Service {
	return &Service{signals: signals, concepts: concepts, settings: settings}
}

// Graph recomputes the scenario graph from the current batch.
func (s *Service) Graph(ctx context.Context) (graph.Graph, error) {
	result, _, err := s.run(ctx)
	if err != nil {
		return graph.Graph{}, err
	}
	return result.Graph, nil
}

// Clusters recomputes the batch and reports clusters, selection and hypothesis.
func (s *Service) Clusters(ctx context.Context) (Analysis, error) {
	result, signals, err := s.run(ctx)
	if err != nil {
		return Analysis{}, err
	}

	clusters := make([]ClusterView, 0, len(result.Clusters))
	for _, members := range result.Clusters {
		titles := make([]string, 0, len(members))
		for _, idx := range members {
			titles = append(titles, signals[idx].Title)
		}
		clusters = append(clusters, ClusterView{Size: len(members), Signals: titles})
	}

	selection := make([]string, 0, len(result.Selection))
	for _, idx := range result.Selection {
		selection = append(selection, signals[idx].Title)
	}

	return Analysis{
		Clusters:   clusters,
		Selection:  selection,
		Hypothesis: result.Hypothesis,
	}, nil
}

func (s *Service) run(ctx context.Context) (pipeline.Result, []pipeline.Signal, error) {
	signals, err := s.signals.List(ctx)
	if err != nil {
		return pipeline.Result{}, nil, err
	}

	concepts, err := s.concepts.ListForTagging(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load concepts, running untagged", "error", err)
		concepts = nil
	}

	opts := s.options(ctx)
	result := pipeline.Process(signals, concepts, opts)
	return result, signals, nil
}

func (s *Service) options(ctx context.Context) pipeline.Options {
	set, err := s.settings.Get(ctx)
	if err != nil || set == nil {
		slog.WarnContext(ctx, "failed to load settings, using defaults", "error", err)
		return pipeline.DefaultOptions()
	}
	return pipeline.Options{
		Threshold:    set.SimilarityThreshold,
		MinSelection: set.MinSelection,
		MaxSelection: set.MaxSelection,
	}
}
