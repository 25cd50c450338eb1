package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/deco/internal/core/domain"
)

// Attribute keys of a per-file record. A record carrying AttrStatus is printed as a
// status line for the file named by AttrPath instead of as a message.
const (
	AttrPath   = "path"
	AttrStatus = "status"
)

const (
	colorSlate  = "#667085"
	colorGreen  = "#12B76A"
	colorBlue   = "#2E90FA"
	colorYellow = "#F59E0B"
	colorRed    = "#D93025"

	iconWarning = "!"
	iconCross   = "✗"
)

type statusStyle struct {
	icon  string
	color string
}

var statusStyles = map[domain.FileStatus]statusStyle{
	domain.FileStatusPending:   {icon: "…", color: colorSlate},
	domain.FileStatusRunning:   {icon: "…", color: colorSlate},
	domain.FileStatusReplaced:  {icon: "✓", color: colorGreen},
	domain.FileStatusCached:    {icon: "↺", color: colorBlue},
	domain.FileStatusUnchanged: {icon: "·", color: colorSlate},
	domain.FileStatusSkipped:   {icon: "-", color: colorSlate},
	domain.FileStatusFailed:    {icon: iconCross, color: colorRed},
}

// PrettyHandler is a slog.Handler that prints messages and per-file status lines
// in a human-readable, colored form.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
// Colors are disabled when NO_COLOR is set.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true)),
		level: level,
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle prints one line for the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var path string
	var status domain.FileStatus
	rest := make([]string, 0, len(h.attrs)+r.NumAttrs())

	collect := func(attr slog.Attr) bool {
		switch {
		case h.group == "" && attr.Key == AttrStatus:
			status = domain.FileStatus(attr.Value.String())
		case h.group == "" && attr.Key == AttrPath:
			path = attr.Value.String()
		default:
			rest = append(rest, formatAttr(h.group, attr))
		}
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	var line, color string
	if style, ok := statusStyles[status]; ok {
		line = style.icon + " " + path + " " + string(status)
		color = style.color
	} else {
		line, color = levelLine(r.Level, r.Message)
		if path != "" {
			rest = append([]string{AttrPath + "=" + path}, rest...)
		}
	}

	if len(rest) > 0 {
		line += " " + strings.Join(rest, " ")
	}

	styled := h.out.String(line).Foreground(termenv.RGBColor(color))
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

func levelLine(level slog.Level, msg string) (string, string) {
	switch {
	case level >= slog.LevelError:
		return iconCross + " " + msg, colorRed
	case level >= slog.LevelWarn:
		return iconWarning + " " + msg, colorYellow
	default:
		return msg, colorSlate
	}
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &PrettyHandler{out: h.out, level: h.level, attrs: merged, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{out: h.out, level: h.level, attrs: h.attrs, group: name}
}

// formatAttr renders key=value, prefixing the key with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
