package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	client "github.com/hsn0918/docparse-client"
)

// processor runs files through a parser one at a time and writes their outputs.
type processor struct {
	parser     client.DocumentParser
	datasetDir string
	outputDir  string
	logger     *slog.Logger
	failures   *failureLog
}

func newProcessor(cfg *config, parser client.DocumentParser, logger *slog.Logger) *processor {
	return &processor{
		parser:     parser,
		datasetDir: cfg.DatasetDir,
		outputDir:  cfg.OutputDir,
		logger:     logger,
		failures:   newFailureLog(cfg.FailLog),
	}
}

// processFiles handles names sequentially; one failure does not stop the rest.
func (p *processor) processFiles(ctx context.Context, names []string) error {
	var errs []error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.processFile(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("batch completed with %d errors, first: %w", len(errs), errs[0])
	}
	return nil
}

func (p *processor) processFile(ctx context.Context, name string) error {
	traceID := uuid.NewString()
	path := filepath.Join(p.datasetDir, name)

	if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
		return p.fail(ctx, traceID, name, fmt.Errorf("file not found: %s", path))
	}

	logWithTrace(ctx, p.logger, slog.LevelInfo, traceID, "Processing file", slog.String("file", name))

	result, err := p.parser.ParseDocument(ctx, path)
	if err != nil {
		return p.fail(ctx, traceID, name, err)
	}

	jsonPath := filepath.Join(p.outputDir, name+".json")
	htmlPath := filepath.Join(p.outputDir, name+".html")

	if err := writeOutputs(result, jsonPath, htmlPath); err != nil {
		return p.fail(ctx, traceID, name, err)
	}

	pages := 0
	if result.ParsedContent != nil {
		pages = result.ParsedContent.Usage.Pages
	}
	logWithTrace(ctx, p.logger, slog.LevelInfo, traceID, "Saved parse result",
		slog.String("file", name),
		slog.Int("pages", pages),
		slog.String("json", jsonPath),
		slog.String("html", htmlPath),
	)

	return nil
}

// fail reports err for one file and returns it, noting a fail log write error too.
func (p *processor) fail(ctx context.Context, traceID, name string, err error) error {
	attrs := append([]slog.Attr{slog.String("file", name)}, errorAttrs(err)...)
	logWithTrace(ctx, p.logger, slog.LevelError, traceID, "Processing failed", attrs...)

	if logErr := p.failures.Record(traceID, name, err); logErr != nil {
		return fmt.Errorf("%w; also failed to write fail log: %v", err, logErr)
	}
	return err
}

// writeOutputs writes the JSON result and the comparison page concurrently.
func writeOutputs(result *client.ParseResult, jsonPath, htmlPath string) error {
	for _, dir := range []string{filepath.Dir(jsonPath), filepath.Dir(htmlPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	page := newComparisonPage(result, htmlPath)

	var eg errgroup.Group
	eg.Go(func() error {
		return writeJSON(jsonPath, result)
	})
	eg.Go(func() error {
		return writeComparison(htmlPath, page)
	})
	return eg.Wait()
}
