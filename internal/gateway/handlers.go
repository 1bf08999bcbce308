package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"summarygateway/internal/domain"
	"summarygateway/internal/summarizer"
)

type Handler struct {
	summarizer summarizer.Summarizer
	log        *slog.Logger
}

func NewHandler(s summarizer.Summarizer, log *slog.Logger) *Handler {
	return &Handler{
		summarizer: s,
		log:        log,
	}
}

// Health answers liveness checks without touching the backend.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(r.Context(), w, domain.Health(), h.log)
}

// Summarize always answers 200 OK; the outcome is carried by the envelope status.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeEnvelope(ctx, w, h.summarize(ctx, r.Body), h.log)
}

func (h *Handler) summarize(ctx context.Context, body io.Reader) (resp domain.CommonResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("%w: %v", summarizer.ErrUnexpected, rec)
			h.log.ErrorContext(ctx, "Recovered from panic while summarizing",
				"error", err,
				"requestID", middleware.GetReqID(ctx))

			resp = Translate(err)
		}
	}()

	req, err := decodeRequest(body)
	if err != nil {
		h.log.WarnContext(ctx, "Failed to decode summarize request",
			"error", err,
			"requestID", middleware.GetReqID(ctx))

		return Translate(err)
	}

	summary, err := h.summarizer.Summarize(ctx, summarizer.Input{
		PostID: req.PostID,
		Text:   *req.Context,
	})
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to summarize",
			"error", err,
			"kind", summarizer.Classify(err).String(),
			"postID", req.PostID,
			"requestID", middleware.GetReqID(ctx))

		return Translate(err)
	}

	if summary == "" {
		return Translate(summarizer.ErrEmptyContent)
	}

	return domain.Success(summary)
}

func decodeRequest(body io.Reader) (domain.SummarizeRequest, error) {
	var req domain.SummarizeRequest

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return domain.SummarizeRequest{}, fmt.Errorf("%w: decode body: %w", summarizer.ErrInvalidRequest, err)
	}

	if req.Context == nil {
		return domain.SummarizeRequest{}, fmt.Errorf("%w: context is required", summarizer.ErrInvalidRequest)
	}

	return req, nil
}

func writeEnvelope(ctx context.Context, w http.ResponseWriter, resp domain.CommonResponse, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(resp); err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "Failed to write response",
			"error", err,
			"status", resp.Status,
			"requestID", middleware.GetReqID(ctx))
	}
}
