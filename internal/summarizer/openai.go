package summarizer

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"
)

// payloadOptions are the generation parameters fixed at startup.
type payloadOptions struct {
	model       string
	temperature float64
	maxTokens   int64
}

// encodePayload renders the prompt as an OpenAI-compatible request body:
// {model, messages|prompt, temperature, max_tokens?}.
func encodePayload(prompt Prompt, opts payloadOptions) ([]byte, error) {
	var params any

	switch prompt.Mode() {
	case ModeCompletion:
		completion := openai.CompletionNewParams{
			Model: openai.CompletionNewParamsModel(opts.model),
			Prompt: openai.CompletionNewParamsPromptUnion{
				OfString: openai.String(prompt.Text()),
			},
			Temperature: openai.Float(opts.temperature),
		}
		if opts.maxTokens > 0 {
			completion.MaxTokens = openai.Int(opts.maxTokens)
		}
		params = completion
	case ModeChat:
		messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(prompt.messages))
		for _, m := range prompt.messages {
			if m.Role == RoleSystem {
				messages = append(messages, openai.SystemMessage(m.Content))
				continue
			}
			messages = append(messages, openai.UserMessage(m.Content))
		}

		chat := openai.ChatCompletionNewParams{
			Model:       openai.ChatModel(opts.model),
			Messages:    messages,
			Temperature: openai.Float(opts.temperature),
		}
		if opts.maxTokens > 0 {
			chat.MaxTokens = openai.Int(opts.maxTokens)
		}
		params = chat
	default:
		return nil, fmt.Errorf("unknown prompt mode %q", prompt.Mode())
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal %s params: %w", prompt.Mode(), err)
	}

	return body, nil
}
