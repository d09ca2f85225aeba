package signal

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"horizonte/backend/internal/config"
	"horizonte/backend/internal/middleware"
	"horizonte/backend/internal/settings"
)

// Signal is a collected headline: the raw unit the foresight pipeline
// clusters into scenarios.
type Signal struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	CollectedAt time.Time `json:"collected_at"`
	Concepts    []string  `json:"concepts"`
}

type Repository interface {
	ReplaceAll(ctx context.Context, signals []Signal) error
	List(ctx context.Context) ([]Signal, error)
	Count(ctx context.Context) (int, error)
}

type EventPublisher interface {
	Publish(topic string, body []byte) error
}

type SettingsSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Service struct {
	repo     Repository
	pub      EventPublisher
	settings SettingsSource
}

func NewService(repo Repository, pub EventPublisher, settings SettingsSource) *Service {
	return &Service{repo: repo, pub: pub, settings: settings}
}

func (s *Service) List(ctx context.Context) ([]Signal, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Refresh schedules a new collection run. The batch is replaced
// asynchronously by the collect consumer. When the caller supplies no
// item cap, the tunable max_signals setting applies.
func (s *Service) Refresh(ctx context.Context, maxItems int) error {
	if maxItems == 0 {
		tuned, err := s.settings.Get(ctx)
		if err != nil {
			slog.WarnContext(ctx, "failed to load settings, collector default applies", "error", err)
		} else {
			maxItems = tuned.MaxSignals
		}
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"max_items":      maxItems,
		"correlation_id": middleware.GetCorrelationID(ctx),
	})
	if err := s.pub.Publish(config.TopicCollect, payload); err != nil {
		slog.ErrorContext(ctx, "failed to publish collect task", "error", err)
		return err
	}
	slog.InfoContext(ctx, "published collect task", "max_items", maxItems)
	return nil
}
