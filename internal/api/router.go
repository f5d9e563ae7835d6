// Package api exposes the terminal over HTTP for the web page and over MCP
// for assistant clients.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alexanderramin/devterm/internal/intelligence"
	"github.com/alexanderramin/devterm/internal/terminal"
)

const (
	maxRequestBodySize = 8 << 10 // 8KB
	maxInputLength     = 500
)

// Runner interprets one terminal line.
type Runner interface {
	Interpret(ctx context.Context, line string) terminal.Output
}

// Suggester produces prompt suggestions for the page's quick-question buttons.
type Suggester interface {
	Suggest(ctx context.Context) (*intelligence.PromptSuggestionsOutput, error)
}

// Deps holds what the HTTP handlers need.
type Deps struct {
	Runner    Runner
	Suggester Suggester
	Logger    *zap.Logger
}

// CommandRequest is the body of POST /api/command.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse wraps the interpreter output.
type CommandResponse struct {
	Output terminal.Output `json:"output"`
}

// NewRouter returns the HTTP API.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("api")

	r := chi.NewRouter()
	r.Use(middleware.RequestID, echoRequestID, accessLog(logger))

	r.Get("/health", handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/commands", handleCommands)
		r.Get("/complete", handleComplete)
		r.Post("/command", handleCommand(deps.Runner))
		r.Get("/prompt-suggestions", handlePromptSuggestions(deps.Suggester, logger))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"commands": terminal.Commands()})
}

func handleComplete(w http.ResponseWriter, r *http.Request) {
	matches := terminal.Complete(r.URL.Query().Get("prefix"))
	if matches == nil {
		matches = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func handleCommand(runner Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req CommandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body exceeds %d bytes", maxRequestBodySize)
				return
			}
			if errors.Is(err, io.EOF) {
				httpError(w, http.StatusBadRequest, "invalid_request", "request body is required")
				return
			}
			httpError(w, http.StatusBadRequest, "invalid_request", "invalid request body: %v", err)
			return
		}
		if utf8.RuneCountInString(req.Input) > maxInputLength {
			httpError(w, http.StatusBadRequest, "invalid_request", "input exceeds %d characters", maxInputLength)
			return
		}
		if strings.TrimSpace(req.Input) == "" {
			writeJSON(w, http.StatusOK, CommandResponse{Output: terminal.Output{Blocks: []terminal.Block{}}})
			return
		}

		out := runner.Interpret(r.Context(), req.Input)
		if out.Blocks == nil {
			out.Blocks = []terminal.Block{}
		}
		writeJSON(w, http.StatusOK, CommandResponse{Output: out})
	}
}

func handlePromptSuggestions(s Suggester, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := s.Suggest(r.Context())
		if err != nil {
			n := terminal.Classify(err)
			logger.Warn("prompt suggestions failed",
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.String("notice", string(n.Kind)),
				zap.Error(err),
			)
			if n.Kind == terminal.NoticeCooldown && n.RetryAfterSeconds > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(n.RetryAfterSeconds))
			}
			writeJSON(w, noticeStatus(n.Kind), map[string]any{"error": n})
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// noticeStatus maps a notice kind onto an HTTP status code.
func noticeStatus(k terminal.NoticeKind) int {
	switch k {
	case terminal.NoticeCooldown:
		return http.StatusTooManyRequests
	case terminal.NoticeConfig:
		return http.StatusServiceUnavailable
	case terminal.NoticeProvider:
		return http.StatusBadGateway
	case terminal.NoticeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ── middleware ───────────────────────────────────────────────────────────────

// RequestIDFrom returns the request ID assigned by chi's RequestID middleware.
func RequestIDFrom(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// echoRequestID copies the request ID onto the response.
func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(middleware.RequestIDHeader, RequestIDFrom(r.Context()))
		next.ServeHTTP(w, r)
	})
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("request",
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
			"type":    errType,
		},
	})
}
