package slogcustom

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/fatih/color"
)

// CustomHandler — компактный цветной handler для log/slog.
// Формат: "15:04:05.000 LEVEL: сообщение key=value ...".
type CustomHandler struct {
	l     *log.Logger
	level slog.Level
	attrs []slog.Attr
}

// NewCustomHandler создаёт handler, пишущий в out с минимальным уровнем level.
func NewCustomHandler(out io.Writer, level slog.Level) *CustomHandler {
	return &CustomHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

// Handle печатает запись лога одной строкой.
func (c *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	var sb strings.Builder
	for _, a := range c.attrs {
		writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, a)
		return true
	})

	c.l.Println(
		r.Time.Format("15:04:05.000"),
		level,
		r.Message,
		sb.String(),
	)

	return nil
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	sb.WriteString(color.GreenString(a.Key))
	sb.WriteByte('=')
	sb.WriteString(fmt.Sprint(a.Value.Any()))
	sb.WriteByte(' ')
}

// WithAttrs возвращает handler с дополнительными атрибутами.
func (c *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CustomHandler{
		l:     c.l,
		level: c.level,
		attrs: append(append([]slog.Attr{}, c.attrs...), attrs...),
	}
}

// WithGroup возвращает handler без изменений: группы не используются.
func (c *CustomHandler) WithGroup(_ string) slog.Handler {
	return c
}

// Enabled сообщает, пишутся ли записи уровня level.
func (c *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level
}
