package settings

import (
	"context"
	"fmt"
)

// Settings are the tunable pipeline parameters. A single row backs them;
// defaults come from the initial migration.
type Settings struct {
	ID                  int     `json:"-"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	MinSelection        int     `json:"min_selection"`
	MaxSelection        int     `json:"max_selection"`
	MaxSignals          int     `json:"max_signals"`
}

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, set *Settings) error {
	if err := set.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, set)
}

func (s *Settings) Validate() error {
	if s.SimilarityThreshold <= 0 || s.SimilarityThreshold >= 1 {
		return fmt.Errorf("similarity_threshold must be between 0 and 1 exclusive")
	}
	if s.MinSelection < 1 {
		return fmt.Errorf("min_selection must be at least 1")
	}
	if s.MaxSelection < s.MinSelection {
		return fmt.Errorf("max_selection must not be below min_selection")
	}
	if s.MaxSignals < 1 {
		return fmt.Errorf("max_signals must be at least 1")
	}
	return nil
}
