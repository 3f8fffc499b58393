package lib

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

func newLogHandler(diff *MySQLDiff) slog.Handler {
	buf := &bytes.Buffer{}
	return &logHandler{
		diff:      diff,
		formatter: slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		output:    buf,
		mu:        &sync.Mutex{},
	}
}

// logHandler formats slog records as text and forwards them to the
// zerolog logger, which applies the verbosity level
type logHandler struct {
	diff      *MySQLDiff
	formatter slog.Handler
	output    *bytes.Buffer
	mu        *sync.Mutex
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return true
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{
		diff:      h.diff,
		output:    h.output,
		mu:        h.mu,
		formatter: h.formatter.WithAttrs(attrs),
	}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{
		diff:      h.diff,
		output:    h.output,
		mu:        h.mu,
		formatter: h.formatter.WithGroup(name),
	}
}

// Handle renders through the shared buffer, so concurrent diffs serialize here
func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer h.output.Reset()

	if err := h.formatter.Handle(ctx, r); err != nil {
		return err
	}
	msg := strings.TrimSpace(h.output.String())
	if msg == "" {
		msg = "<<logHandler received empty message>>"
	}
	switch {
	case r.Level < slog.LevelInfo:
		h.diff.logger.Debug().Msg(msg)
	case r.Level < slog.LevelWarn:
		h.diff.logger.Info().Msg(msg)
	case r.Level < slog.LevelError:
		h.diff.logger.Warn().Msg(msg)
	default:
		h.diff.logger.Error().Msg(msg)
	}
	return nil
}
