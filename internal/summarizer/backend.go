package summarizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	maxReplyBytes     = 8 << 20
	maxErrorBodyBytes = 4 << 10
)

// Reply is the raw JSON body returned by the backend.
type Reply []byte

type BackendConfig struct {
	URL         string
	Model       string
	Temperature float64
	// MaxTokens is omitted from the payload when zero.
	MaxTokens int64
	Timeout   time.Duration
}

// HTTPBackend posts prompts to an OpenAI-compatible endpoint such as vLLM.
type HTTPBackend struct {
	url    string
	opts   payloadOptions
	client *http.Client
	log    *slog.Logger
}

func NewHTTPBackend(cfg BackendConfig, log *slog.Logger) *HTTPBackend {
	return &HTTPBackend{
		url: cfg.URL,
		opts: payloadOptions{
			model:       cfg.Model,
			temperature: cfg.Temperature,
			maxTokens:   cfg.MaxTokens,
		},
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Complete issues one POST without retrying. Failures are *TransportError
// or *StatusError.
func (b *HTTPBackend) Complete(ctx context.Context, prompt Prompt) (Reply, error) {
	payload, err := encodePayload(prompt, b.opts)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req) //nolint:gosec // URL comes from startup config
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			b.log.ErrorContext(ctx, "Failed to close response body",
				"error", err,
				"backendURL", b.url,
				"operation", "Complete")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	return Reply(body), nil
}
