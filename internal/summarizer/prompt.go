package summarizer

import (
	"fmt"
	"slices"
	"strings"
)

const (
	systemPrompt = "You are a summarizing expert. Summarize the following text in Korean.\n" +
		"Important: Output must be only the Korean summary text itself. " +
		"No explanation, no label, no preamble, no English text.\n" +
		"Conditions:\n" +
		"1. The summary must be complete and end with a full sentence.\n" +
		"2. Keep it within 500 characters.\n" +
		"3. Avoid repeated words or redundant expressions.\n" +
		"4. Only include the key information.\n" +
		"Example:\n" +
		"Input: \"이것은 샘플 텍스트입니다.\"\n" +
		"Output: \"샘플 요약입니다.\"\n" +
		"Now summarize this text:\n"

	completionPrefix = "<start_of_turn>user\n"
	completionSuffix = "<end_of_turn>\n<start_of_turn>model\n"

	RoleSystem = "system"
	RoleUser   = "user"
)

// Mode selects how a prompt is encoded for the backend.
type Mode string

const (
	// ModeChat sends system and user messages to a chat-completion endpoint.
	ModeChat Mode = "chat"
	// ModeCompletion sends one framed prompt string to a raw-completion endpoint.
	ModeCompletion Mode = "completion"
)

func (m *Mode) UnmarshalText(text []byte) error {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(string(text)))); mode {
	case ModeChat, ModeCompletion:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown backend mode %q", string(text))
	}
}

func (m Mode) String() string {
	return string(m)
}

// SystemPrompt returns the fixed instruction sent with every request.
func SystemPrompt() string {
	return systemPrompt
}

type Message struct {
	Role    string
	Content string
}

// Prompt is built once per request and is not modified afterwards.
type Prompt struct {
	mode     Mode
	messages []Message
	text     string
}

func (p Prompt) Mode() Mode {
	return p.mode
}

// Messages returns a copy of the chat messages. It is empty in completion mode.
func (p Prompt) Messages() []Message {
	return slices.Clone(p.messages)
}

// Text returns the framed prompt string. It is empty in chat mode.
func (p Prompt) Text() string {
	return p.text
}

type PromptBuilder struct {
	mode Mode
}

func NewPromptBuilder(mode Mode) *PromptBuilder {
	if mode == "" {
		mode = ModeChat
	}

	return &PromptBuilder{mode: mode}
}

func (b *PromptBuilder) Mode() Mode {
	return b.mode
}

// Build embeds already normalized text into the fixed instruction.
func (b *PromptBuilder) Build(text string) Prompt {
	if b.mode == ModeCompletion {
		var sb strings.Builder
		sb.Grow(len(completionPrefix) + len(systemPrompt) + len(text) + len(completionSuffix) + 1)
		sb.WriteString(completionPrefix)
		sb.WriteString(systemPrompt)
		sb.WriteString("\n")
		sb.WriteString(text)
		sb.WriteString(completionSuffix)

		return Prompt{mode: ModeCompletion, text: sb.String()}
	}

	return Prompt{
		mode: ModeChat,
		messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: text},
		},
	}
}
