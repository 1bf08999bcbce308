package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"summarygateway/internal/normalizer"
)

// Service runs the summarize pipeline: normalize, build, complete, extract.
type Service struct {
	builder *PromptBuilder
	backend Backend
	log     *slog.Logger
}

func NewService(builder *PromptBuilder, backend Backend, log *slog.Logger) *Service {
	return &Service{
		builder: builder,
		backend: backend,
		log:     log,
	}
}

// Summarize returns a non-empty summary or an error that Classify can
// categorize.
func (s *Service) Summarize(ctx context.Context, input Input) (string, error) {
	start := time.Now()

	text := normalizer.Normalize(input.Text)
	prompt := s.builder.Build(text)

	reply, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete prompt: %w", err)
	}

	summary, err := Extract(prompt.Mode(), reply)
	if err != nil {
		return "", fmt.Errorf("extract summary: %w", err)
	}

	s.log.DebugContext(ctx, "Summary is generated",
		"postID", input.PostID,
		"mode", prompt.Mode(),
		"inputLength", len([]rune(text)),
		"summaryLength", len([]rune(summary)),
		"latencyMs", time.Since(start).Milliseconds())

	return summary, nil
}
