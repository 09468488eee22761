package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default.
//
// Format "json" is meant for production; any other value gives text output
// with source locations. Level is debug, info, warn or error (any case) and
// falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	asJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: !asJSON}

	var base slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		base = slog.NewJSONHandler(w, opts)
	}
	return slog.New(contextHandler{base}).With(slog.String("app", "moviemood"))
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// contextHandler stamps records logged with a context (InfoContext, ...)
// with the request_id and user_id found there, unless the caller already
// supplied them.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	extra := ctxutil.LogAttrs(ctx)
	if len(extra) > 0 {
		present := make(map[string]bool, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			present[a.Key] = true
			return true
		})
		for _, a := range extra {
			if !present[a.Key] {
				r.AddAttrs(a)
			}
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}
