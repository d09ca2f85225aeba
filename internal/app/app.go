package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"horizonte/backend/features/foresight"
	"horizonte/backend/features/job"
	"horizonte/backend/features/ontology"
	"horizonte/backend/features/signal"
	"horizonte/backend/features/stats"
	"horizonte/backend/internal/config"
	"horizonte/backend/internal/feed"
	"horizonte/backend/internal/middleware"
	"horizonte/backend/internal/pipeline"
	"horizonte/backend/internal/settings"
	"horizonte/backend/internal/tagging"
	"horizonte/backend/internal/worker"
)

type TaskPublisher interface {
	Publish(topic string, body []byte) error
}

type App struct {
	Handler         http.Handler
	SignalService   *signal.Service
	CollectConsumer *worker.CollectConsumer

	port int
}

func New(
	cfg *config.Config,
	db *sql.DB,
	taskPub TaskPublisher,
	logger *slog.Logger,
) (*App, error) {
	// Feature: Settings
	settingsRepo := settings.NewPostgresRepo(db)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	// Feature: Signal
	signalRepo := signal.NewPostgresRepo(db)
	signalService := signal.NewService(signalRepo, taskPub, settingsService)
	signalHandler := signal.NewHandler(signalService)

	// Feature: Ontology
	ontologyRepo := ontology.NewPostgresRepo(db)
	ontologyService := ontology.NewService(ontologyRepo)
	ontologyHandler := ontology.NewHandler(ontologyService)

	// Feature: Job
	jobRepo := job.NewPostgresRepo(db)
	jobService := job.NewService(jobRepo, taskPub, logger)
	jobHandler := job.NewHandler(jobService)

	// Feature: Stats
	statsHandler := stats.NewHandler(signalRepo, ontologyRepo, jobRepo)

	// Feature: Foresight
	foresightService := foresight.NewService(
		&signalSourceAdapter{repo: signalRepo},
		ontologyService,
		settingsService,
	)
	foresightHandler := foresight.NewHandler(foresightService)

	// Middleware: CORS
	enableCORS := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Routes
	mux := http.NewServeMux()

	mux.Handle("GET /signals", middleware.CorrelationID(enableCORS(signalHandler.List)))
	mux.Handle("POST /signals/refresh", middleware.CorrelationID(enableCORS(signalHandler.Refresh)))

	mux.Handle("GET /concepts", middleware.CorrelationID(enableCORS(ontologyHandler.List)))
	mux.Handle("POST /concepts", middleware.CorrelationID(enableCORS(ontologyHandler.Create)))
	mux.Handle("DELETE /concepts/{id}", middleware.CorrelationID(enableCORS(ontologyHandler.Delete)))

	mux.Handle("GET /graph", middleware.CorrelationID(enableCORS(foresightHandler.GetGraph)))
	mux.Handle("GET /clusters", middleware.CorrelationID(enableCORS(foresightHandler.GetClusters)))

	mux.Handle("GET /settings", middleware.CorrelationID(enableCORS(settingsHandler.GetSettings)))
	mux.Handle("PUT /settings", middleware.CorrelationID(enableCORS(settingsHandler.UpdateSettings)))

	mux.Handle("GET /jobs/failed", middleware.CorrelationID(enableCORS(jobHandler.List)))
	mux.Handle("POST /jobs/{id}/retry", middleware.CorrelationID(enableCORS(jobHandler.Retry)))

	mux.Handle("GET /stats", middleware.CorrelationID(enableCORS(statsHandler.GetStats)))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Worker (Collect Consumer) Setup
	fetcher := feed.NewFetcher(time.Duration(cfg.FeedTimeoutSeconds) * time.Second)
	collectConsumer := worker.NewCollectConsumer(
		fetcher,
		&signalStoreAdapter{repo: signalRepo},
		&conceptListerAdapter{service: ontologyService},
		jobRepo,
		cfg.FeedURLs,
		feed.DefaultFallbacks,
		cfg.CollectMaxItems,
	)

	return &App{
		Handler:         mux,
		SignalService:   signalService,
		CollectConsumer: collectConsumer,
		port:            cfg.ServerPort,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.port),
		Handler: a.Handler,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server starting", "port", a.port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Adapter for SignalSource in foresight
type signalSourceAdapter struct {
	repo signal.Repository
}

func (a *signalSourceAdapter) List(ctx context.Context) ([]pipeline.Signal, error) {
	stored, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	signals := make([]pipeline.Signal, 0, len(stored))
	for _, s := range stored {
		signals = append(signals, pipeline.Signal{
			Title:       s.Title,
			Source:      s.Source,
			CollectedAt: s.CollectedAt,
			Concepts:    s.Concepts,
		})
	}
	return signals, nil
}

// Adapter for SignalStore in worker
type signalStoreAdapter struct {
	repo signal.Repository
}

func (a *signalStoreAdapter) ReplaceAll(ctx context.Context, batch []worker.SignalDTO) error {
	signals := make([]signal.Signal, 0, len(batch))
	for _, s := range batch {
		signals = append(signals, signal.Signal{
			Title:       s.Title,
			Source:      s.Source,
			CollectedAt: s.CollectedAt,
			Concepts:    s.Concepts,
		})
	}
	return a.repo.ReplaceAll(ctx, signals)
}

// Adapter for ConceptLister in worker
type conceptListerAdapter struct {
	service *ontology.Service
}

func (a *conceptListerAdapter) ListConcepts(ctx context.Context) ([]tagging.Concept, error) {
	return a.service.ListForTagging(ctx)
}
