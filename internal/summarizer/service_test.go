package summarizer_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"summarygateway/internal/summarizer"
)

type stubBackend struct {
	mu      sync.Mutex
	prompts []summarizer.Prompt
	reply   summarizer.Reply
	err     error
}

func (s *stubBackend) Complete(_ context.Context, prompt summarizer.Prompt) (summarizer.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)

	return s.reply, s.err
}

func newService(backend summarizer.Backend) *summarizer.Service {
	return summarizer.NewService(
		summarizer.NewPromptBuilder(summarizer.ModeChat),
		backend,
		slog.New(slog.DiscardHandler),
	)
}

func TestServiceSummarizeNormalizesInput(t *testing.T) {
	backend := &stubBackend{reply: summarizer.Reply(`{"choices":[{"message":{"content":"날씨가 좋다는 내용."}}]}`)}

	got, err := newService(backend).Summarize(context.Background(), summarizer.Input{
		PostID: 7,
		Text:   "<p>안녕하세요. 오늘은 날씨가 좋습니다.</p>",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "날씨가 좋다는 내용." {
		t.Fatalf("unexpected summary: %q", got)
	}

	if len(backend.prompts) != 1 {
		t.Fatalf("expected one backend call, got %d", len(backend.prompts))
	}
	if user := backend.prompts[0].Messages()[1].Content; user != "안녕하세요. 오늘은 날씨가 좋습니다." {
		t.Fatalf("unexpected user content: %q", user)
	}
}

func TestServiceSummarizeBackendFailure(t *testing.T) {
	backend := &stubBackend{err: &summarizer.StatusError{Code: 500, Body: "oops"}}

	_, err := newService(backend).Summarize(context.Background(), summarizer.Input{Text: "본문"})
	if summarizer.Classify(err) != summarizer.KindBackendStatus {
		t.Fatalf("expected backend status failure, got %v", err)
	}
}

func TestServiceSummarizeEmptyContent(t *testing.T) {
	backend := &stubBackend{reply: summarizer.Reply(`{"choices":[{"message":{"content":""}}]}`)}

	_, err := newService(backend).Summarize(context.Background(), summarizer.Input{Text: "본문"})
	if !errors.Is(err, summarizer.ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestServiceSummarizeEmptyInput(t *testing.T) {
	backend := &stubBackend{reply: summarizer.Reply(`{"choices":[{"message":{"content":"빈 입력"}}]}`)}

	got, err := newService(backend).Summarize(context.Background(), summarizer.Input{Text: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "빈 입력" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
