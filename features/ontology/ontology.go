package ontology

import (
	"context"
	"fmt"
	"strings"

	"horizonte/backend/internal/tagging"
)

// Concept is an ontology entry: a display name plus the keywords that
// attach it to a headline.
type Concept struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type Repository interface {
	Save(ctx context.Context, c *Concept) error
	List(ctx context.Context) ([]Concept, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *Concept) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("concept name is required")
	}

	keywords := make([]string, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	c.Keywords = keywords

	return s.repo.Save(ctx, c)
}

func (s *Service) List(ctx context.Context) ([]Concept, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// ListForTagging exposes the ontology in the shape the tagger consumes.
func (s *Service) ListForTagging(ctx context.Context) ([]tagging.Concept, error) {
	concepts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]tagging.Concept, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, tagging.Concept{Name: c.Name, Keywords: c.Keywords})
	}
	return out, nil
}
