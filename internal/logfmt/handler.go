package logfmt

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// asctimeLayout matches the absolute-timestamp field of the level-3
// template, millisecond precision with a comma separator.
const asctimeLayout = "2006-01-02 15:04:05,000"

// templateHandler renders records through the registry's active template.
type templateHandler struct {
	reg   *Registry
	name  string
	group string
	attrs []slog.Attr
}

func (h *templateHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.reg.configured && l >= h.reg.level.Level()
}

func (h *templateHandler) Handle(_ context.Context, r slog.Record) error {
	rel := h.reg.delta(r.Time)
	msg := r.Message + h.attrSuffix(r)
	level := LevelName(r.Level)

	var err error
	switch {
	case h.reg.format <= 1:
		_, err = fmt.Fprintf(h.reg.out, "%8s: (%ss) \t%s\n", level, rel, msg)
	case h.reg.format == 2:
		fn, line := sourceOf(r.PC)
		_, err = fmt.Fprintf(h.reg.out, "%8s (%ss) %44s [%40s()] %4d >> \t%s\n",
			level, rel, h.name, fn, line, msg)
	default:
		fn, line := sourceOf(r.PC)
		_, err = fmt.Fprintf(h.reg.out, "%s Line: %4d %44s (Delta=%ss) [%40s()]%8s:\t%s\n",
			r.Time.Format(asctimeLayout), line, h.name, rel, fn, level, msg)
	}
	return err
}

func (h *templateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.qualify(a))
	}
	return &nh
}

func (h *templateHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if h.group != "" {
		nh.group = h.group + "." + name
	} else {
		nh.group = name
	}
	return &nh
}

// attrSuffix renders handler and record attributes as trailing key=value
// pairs after the message text.
func (h *templateHandler) attrSuffix(r slog.Record) string {
	var sb strings.Builder
	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.qualify(a))
		return true
	})
	return sb.String()
}

func (h *templateHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" && a.Key != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(sb, " %s=%v", a.Key, a.Value)
}

// sourceOf resolves the bare function name and line of the record's
// emission site.
func sourceOf(pc uintptr) (string, int) {
	if pc == 0 {
		return "?", 0
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	name := frame.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, frame.Line
}
