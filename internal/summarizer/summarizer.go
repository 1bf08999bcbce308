package summarizer

import (
	"context"
)

// Input describes the payload for a summary request.
type Input struct {
	// PostID is opaque to the pipeline and only used for logging.
	PostID int64
	// Text contains the raw text to summarise and may contain markup.
	Text string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

// Backend sends a built prompt to the text-generation backend.
type Backend interface {
	Complete(ctx context.Context, prompt Prompt) (Reply, error)
}
