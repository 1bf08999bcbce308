package gateway

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"summarygateway/internal/summarizer"
)

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "Request is handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"durationMs", time.Since(start).Milliseconds(),
				"remoteAddr", r.RemoteAddr,
				"requestID", middleware.GetReqID(r.Context()))
		})
	}
}

// recoverer turns panics that escape a handler into the failure envelope.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(rec)
				}

				err := fmt.Errorf("%w: %v", summarizer.ErrUnexpected, rec)
				log.ErrorContext(r.Context(), "Recovered from panic",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"requestID", middleware.GetReqID(r.Context()))

				writeEnvelope(r.Context(), w, Translate(err), log)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
