package summarizer_test

import (
	"strings"
	"testing"

	"summarygateway/internal/summarizer"
)

func TestSystemPromptRequirements(t *testing.T) {
	prompt := summarizer.SystemPrompt()

	for _, want := range []string{"Korean", "no preamble", "full sentence", "500 characters", "repeated"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected system prompt to mention %q", want)
		}
	}
}

func TestBuildChatPrompt(t *testing.T) {
	text := "안녕하세요. 오늘은 날씨가 좋습니다."
	prompt := summarizer.NewPromptBuilder(summarizer.ModeChat).Build(text)

	if prompt.Mode() != summarizer.ModeChat {
		t.Fatalf("unexpected mode: %q", prompt.Mode())
	}
	if prompt.Text() != "" {
		t.Fatalf("expected empty text in chat mode, got %q", prompt.Text())
	}

	messages := prompt.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != summarizer.RoleSystem || messages[0].Content != summarizer.SystemPrompt() {
		t.Fatalf("unexpected system message: %+v", messages[0])
	}
	if messages[1].Role != summarizer.RoleUser || messages[1].Content != text {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
}

func TestBuildCompletionPrompt(t *testing.T) {
	text := "안녕하세요. 오늘은 날씨가 좋습니다."
	prompt := summarizer.NewPromptBuilder(summarizer.ModeCompletion).Build(text)

	if prompt.Mode() != summarizer.ModeCompletion {
		t.Fatalf("unexpected mode: %q", prompt.Mode())
	}
	if len(prompt.Messages()) != 0 {
		t.Fatalf("expected no messages in completion mode")
	}

	got := prompt.Text()
	if !strings.HasPrefix(got, "<start_of_turn>user\n") {
		t.Fatalf("missing prefix: %q", got)
	}
	if !strings.HasSuffix(got, "<end_of_turn>\n<start_of_turn>model\n") {
		t.Fatalf("missing suffix: %q", got)
	}
	if !strings.Contains(got, summarizer.SystemPrompt()) {
		t.Fatalf("expected full system prompt in completion text")
	}
	if n := strings.Count(got, text); n != 1 {
		t.Fatalf("expected text to be embedded once, got %d", n)
	}
}

func TestBuildEmptyText(t *testing.T) {
	for _, mode := range []summarizer.Mode{summarizer.ModeChat, summarizer.ModeCompletion} {
		prompt := summarizer.NewPromptBuilder(mode).Build("")
		if prompt.Mode() != mode {
			t.Fatalf("unexpected mode: %q", prompt.Mode())
		}
	}
}

func TestPromptMessagesAreCopied(t *testing.T) {
	prompt := summarizer.NewPromptBuilder(summarizer.ModeChat).Build("원문")

	messages := prompt.Messages()
	messages[1].Content = "changed"

	if got := prompt.Messages()[1].Content; got != "원문" {
		t.Fatalf("expected prompt to be unchanged, got %q", got)
	}
}

func TestModeUnmarshalText(t *testing.T) {
	var mode summarizer.Mode

	if err := mode.UnmarshalText([]byte(" Completion ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != summarizer.ModeCompletion {
		t.Fatalf("unexpected mode: %q", mode)
	}

	if err := mode.UnmarshalText([]byte("stream")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
