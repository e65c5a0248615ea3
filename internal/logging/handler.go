package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/thoreinstein/devagents/internal/redact"
)

// Handler implements slog.Handler for TTY-optimized text output.
// Colors are only used when the writer is a terminal.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string

	useColor   bool
	timeColor  *color.Color
	levelColor map[slog.Level]*color.Color
	keyColor   *color.Color
}

// NewHandler creates a new TTY-optimized text handler.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts:     *opts,
		out:      out,
		mu:       &sync.Mutex{},
		useColor: SupportsColor(out),
	}

	if h.useColor {
		h.timeColor = color.New(color.FgHiBlack)
		h.keyColor = color.New(color.FgCyan)
		h.levelColor = map[slog.Level]*color.Color{
			LevelTrace:      color.New(color.FgHiBlack),
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		}
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes one line per record: time, level, message, attributes.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		sb.WriteString(h.paint(h.timeColor, r.Time.Format(time.Kitchen)))
		sb.WriteByte(' ')
	}

	level := levelName(r.Level)
	if h.useColor {
		level = h.paint(h.levelColor[bucket(r.Level)], level)
	}
	fmt.Fprintf(&sb, "%-5s %s", level, r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := prefix + a.Key
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, key+".", ga)
		}
		return
	}

	value := a.Value.Any()
	if str, ok := value.(string); ok {
		value = redact.Field(a.Key, str)
	} else if redact.ShouldMask(a.Key) {
		value = redact.MaskValue(fmt.Sprint(value))
	}

	fmt.Fprintf(sb, " %s=%v", h.paint(h.keyColor, key), value)
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}

// bucket maps an arbitrary level onto the nearest named level at or below it.
func bucket(l slog.Level) slog.Level {
	switch {
	case l >= slog.LevelError:
		return slog.LevelError
	case l >= slog.LevelWarn:
		return slog.LevelWarn
	case l >= slog.LevelInfo:
		return slog.LevelInfo
	case l >= slog.LevelDebug:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

func levelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}
