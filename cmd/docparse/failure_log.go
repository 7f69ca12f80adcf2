package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	client "github.com/hsn0918/docparse-client"
)

// failureLog appends one tab-separated line per failed file. An empty path disables it.
type failureLog struct {
	path string
	now  func() time.Time
}

func newFailureLog(path string) *failureLog {
	return &failureLog{path: path, now: time.Now}
}

func (l *failureLog) Record(traceID, file string, err error) error {
	if l == nil || l.path == "" {
		return nil
	}

	if traceID == "" {
		traceID = "unknown"
	}
	kind := string(client.KindOf(err))
	if kind == "" {
		kind = "other"
	}
	message := strings.ReplaceAll(err.Error(), "\n", " ")
	line := fmt.Sprintf("%s\tlevel=ERROR\ttrace-id=%s\tfile=%s\tkind=%s\tmessage=%s\n",
		l.now().Format(time.RFC3339), traceID, file, kind, message)

	if dir := filepath.Dir(l.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create fail log dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open fail log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write fail log: %w", err)
	}
	return nil
}
