package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyler-sommer/stick"

	client "github.com/hsn0918/docparse-client"
)

//go:embed templates/compare.html.twig
var compareTemplate string

const missingHTML = "<p>HTML content unavailable.</p>"

// comparisonPage is the data behind one side-by-side page.
type comparisonPage struct {
	Title      string
	ParsedHTML string
	SourcePath string // as referenced from the page's directory
	Extension  string
	IsPDF      bool
}

func newComparisonPage(result *client.ParseResult, htmlPath string) comparisonPage {
	req := result.FileMetadata

	parsed := ""
	if result.ParsedContent != nil {
		parsed = result.ParsedContent.Content.HTML
	}
	if strings.TrimSpace(parsed) == "" {
		parsed = missingHTML
	}

	return comparisonPage{
		Title:      req.Name,
		ParsedHTML: parsed,
		SourcePath: relativeSource(filepath.Dir(htmlPath), req.Path),
		Extension:  filepath.Ext(req.Name),
		IsPDF:      req.IsPDF(),
	}
}

// relativeSource returns src relative to dir, falling back to an absolute path.
func relativeSource(dir, src string) string {
	absDir, errDir := filepath.Abs(dir)
	absSrc, errSrc := filepath.Abs(src)
	if errDir != nil || errSrc != nil {
		return filepath.ToSlash(src)
	}
	if rel, err := filepath.Rel(absDir, absSrc); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(absSrc)
}

func renderComparison(w io.Writer, page comparisonPage) error {
	sourceJS, err := json.Marshal(page.SourcePath)
	if err != nil {
		return fmt.Errorf("encode source path: %w", err)
	}

	label := strings.ToUpper(strings.TrimPrefix(page.Extension, "."))
	if label == "" {
		label = "file"
	}

	vars := map[string]stick.Value{
		"title":        html.EscapeString(page.Title),
		"parsed_html":  page.ParsedHTML,
		"source_label": html.EscapeString(label),
		"source_js":    string(sourceJS),
		"source_attr":  html.EscapeString(page.SourcePath),
		"is_pdf":       page.IsPDF,
	}

	if err := stick.New(nil).Execute(compareTemplate, w, vars); err != nil {
		return fmt.Errorf("render comparison page: %w", err)
	}
	return nil
}

func writeComparison(path string, page comparisonPage) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create comparison page: %w", err)
	}

	if err := renderComparison(f, page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
