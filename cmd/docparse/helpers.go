package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	client "github.com/hsn0918/docparse-client"
)

func splitFileNames(input string) []string {
	var names []string
	for _, name := range strings.Split(input, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func writeJSON(path string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func logWithTrace(ctx context.Context, logger *slog.Logger, level slog.Level, traceID, msg string, attrs ...slog.Attr) {
	base := []slog.Attr{slog.Time("ts", time.Now())}
	if traceID != "" {
		base = append(base, slog.String("trace-id", traceID))
	}
	logger.LogAttrs(ctx, level, msg, append(base, attrs...)...)
}

// errorAttrs describes err for a log line, including its kind when it has one.
func errorAttrs(err error) []slog.Attr {
	attrs := []slog.Attr{slog.String("error", err.Error())}
	if kind := client.KindOf(err); kind != "" {
		attrs = append(attrs, slog.String("kind", string(kind)))
	}
	return attrs
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
