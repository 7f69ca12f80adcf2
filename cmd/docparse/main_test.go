package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/hsn0918/docparse-client"
)

// fakeParser returns canned documents per file name.
type fakeParser struct {
	mu    sync.Mutex
	errs  map[string]error
	calls []string
}

func (f *fakeParser) ParseDocument(ctx context.Context, path string) (*client.ParseResult, error) {
	name := filepath.Base(path)

	f.mu.Lock()
	f.calls = append(f.calls, name)
	err := f.errs[name]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}

	req, err := client.NewParseRequest(path)
	if err != nil {
		return nil, err
	}

	return &client.ParseResult{
		FileMetadata: req,
		ParsedContent: &client.ParsedDocument{
			API:     "2.0",
			Model:   "document-parse",
			Content: client.Content{HTML: fmt.Sprintf("<p>parsed %s</p>", name), Text: "parsed " + name},
			Usage:   client.Usage{Pages: 2},
		},
	}, nil
}

func (f *fakeParser) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type testEnv struct {
	dataset string
	output  string
	failLog string
	parser  *fakeParser
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	env := &testEnv{
		dataset: filepath.Join(root, "dataset"),
		output:  filepath.Join(root, "output"),
		failLog: filepath.Join(root, "logs", "fail.log"),
		parser:  &fakeParser{errs: map[string]error{}},
	}
	require.NoError(t, os.MkdirAll(env.dataset, 0o755))
	env.addFile(t, "report.pdf", "%PDF-1.7\n")
	env.addFile(t, "scan.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	return env
}

func (e *testEnv) addFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.dataset, name), []byte(content), 0o644))
}

// run executes the CLI against the fake parser and returns its output.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	opts := &cliOptions{
		newParser: func(cfg *config, logger *slog.Logger) client.DocumentParser { return e.parser },
	}
	cmd := newRootCmdWithOptions(opts)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args,
		"--api-key", "test-key",
		"--env-file", "",
		"--dataset-dir", e.dataset,
		"--output-dir", e.output,
		"--fail-log", e.failLog,
	))

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func (e *testEnv) readOutput(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.output, name))
	require.NoError(t, err)
	return string(data)
}

func TestParseCmd_WritesOutputs(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "parse", "report.pdf,scan.png")
	require.NoError(t, err)

	assert.Equal(t, []string{"report.pdf", "scan.png"}, env.parser.Calls())
	assert.Contains(t, out, "Saved parse result")
	assert.Contains(t, out, "trace-id=")

	jsonOut := env.readOutput(t, "report.pdf.json")
	assert.Contains(t, jsonOut, `"file_name": "report.pdf"`)
	assert.Contains(t, jsonOut, `"pages": 2`)

	pdfPage := env.readOutput(t, "report.pdf.html")
	assert.Contains(t, pdfPage, "<p>parsed report.pdf</p>")
	assert.Contains(t, pdfPage, "pdfjsLib.getDocument")
	assert.Contains(t, pdfPage, `"../dataset/report.pdf"`)

	imgPage := env.readOutput(t, "scan.png.html")
	assert.Contains(t, imgPage, `<img src="../dataset/scan.png"`)
	assert.NotContains(t, imgPage, "pdfjsLib")

	assert.NoFileExists(t, env.failLog)
}

func TestParseCmd_IsolatesFailures(t *testing.T) {
	env := newTestEnv(t)
	env.addFile(t, "huge.pdf", "%PDF-1.7\n")
	env.parser.errs["huge.pdf"] = fmt.Errorf("parse huge.pdf: %w", &client.Error{Kind: client.KindTimeout, Op: client.OperationWaitForJob})

	out, err := env.run(t, "", "parse", "missing.pdf", "huge.pdf", "report.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch completed with 2 errors")
	assert.Contains(t, err.Error(), "file not found")

	assert.Equal(t, []string{"huge.pdf", "report.pdf"}, env.parser.Calls())
	assert.FileExists(t, filepath.Join(env.output, "report.pdf.json"))
	assert.NoFileExists(t, filepath.Join(env.output, "huge.pdf.json"))
	assert.Contains(t, out, "kind=timeout")

	data, readErr := os.ReadFile(env.failLog)
	require.NoError(t, readErr)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "file=missing.pdf\tkind=other")
	assert.Contains(t, lines[1], "file=huge.pdf\tkind=timeout")
}

func TestParseCmd_RequiresArgs(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "parse")
	assert.Error(t, err)
	assert.Empty(t, env.parser.Calls())
}

func TestInteractive(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "report.pdf, missing.pdf\n scan.png \n\nreport.pdf\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"report.pdf", "scan.png"}, env.parser.Calls())
	assert.Equal(t, 3, strings.Count(out, prompt))
	assert.Contains(t, out, "file not found")
	assert.Contains(t, out, "Exiting.")
}

func TestInteractive_EOF(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "scan.png", "interactive")
	require.NoError(t, err)
	assert.Equal(t, []string{"scan.png"}, env.parser.Calls())
	assert.Contains(t, out, "Exiting.")
}

func TestSplitFileNames(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a.pdf", []string{"a.pdf"}},
		{" a.pdf , b.png ,, ", []string{"a.pdf", "b.png"}},
		{" , ", nil},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitFileNames(tt.input), "input %q", tt.input)
	}
}
