package summarizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

const (
	choicesPath     = "choices"
	chatContentPath = "choices.0.message.content"
	textContentPath = "choices.0.text"
)

// Extract pulls the generated text out of a reply. Every missing or
// reshaped field ends in ErrEmptyContent.
func Extract(mode Mode, reply Reply) (string, error) {
	if !gjson.ValidBytes(reply) || !gjson.GetBytes(reply, choicesPath).IsArray() {
		return "", ErrEmptyContent
	}

	for _, path := range replyPaths(mode) {
		if text, ok := lookupText(reply, path); ok {
			return text, nil
		}
	}

	return "", ErrEmptyContent
}

func replyPaths(mode Mode) []string {
	if mode == ModeCompletion {
		return []string{textContentPath, chatContentPath}
	}

	return []string{chatContentPath, textContentPath}
}

func lookupText(reply Reply, path string) (string, bool) {
	result := gjson.GetBytes(reply, path)
	if result.Type != gjson.String {
		return "", false
	}

	text := strings.TrimSpace(result.Str)

	return text, text != ""
}
