package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"horizonte/backend/internal/middleware"
)

type SignalRepo interface {
	Count(ctx context.Context) (int, error)
}

type ConceptRepo interface {
	Count(ctx context.Context) (int, error)
}

type JobRepo interface {
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	signalRepo  SignalRepo
	conceptRepo ConceptRepo
	jobRepo     JobRepo
}

func NewHandler(s SignalRepo, c ConceptRepo, j JobRepo) *Handler {
	return &Handler{signalRepo: s, conceptRepo: c, jobRepo: j}
}

type StatsResponse struct {
	Signals    int `json:"signals"`
	Concepts   int `json:"concepts"`
	FailedJobs int `json:"failed_jobs"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	correlationID := middleware.GetCorrelationID(ctx)

	slog.InfoContext(ctx, "getting stats", "correlationId", correlationID)

	sCount, err := h.signalRepo.Count(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count signals", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count signals", http.StatusInternalServerError)
		return
	}

	cCount, err := h.conceptRepo.Count(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count concepts", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count concepts", http.StatusInternalServerError)
		return
	}

	jCount, err := h.jobRepo.Count(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count jobs", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count jobs", http.StatusInternalServerError)
		return
	}

	resp := StatsResponse{
		Signals:    sCount,
		Concepts:   cCount,
		FailedJobs: jCount,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": resp}); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"correlationId": middleware.GetCorrelationID(ctx),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
