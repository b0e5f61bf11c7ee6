// Package indexclean strips embedded script and style blocks from an HTML
// document and injects a module loader tag in their place.
//
// The stages always run in the same order: blocks are removed in the order
// of Config.Tags, then the loader tag is inserted before every marker
// (or appended when there is none).
package indexclean

import (
	"context"
	"fmt"
	"time"

	"github.com/jmylchreest/indexclean/internal/document"
	"github.com/jmylchreest/indexclean/internal/logger"
	"github.com/jmylchreest/indexclean/pkg/cleaner"
	"github.com/jmylchreest/indexclean/pkg/cleaner/blocks"
	"github.com/jmylchreest/indexclean/pkg/cleaner/loader"
)

// Processor runs the strip and inject stages.
type Processor struct {
	config Config
}

// New creates a Processor from DefaultConfig plus opts.
func New(opts ...Option) (*Processor, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Processor{config: cfg}, nil
}

// Config returns a copy of the processor's configuration.
func (p *Processor) Config() Config {
	return p.config
}

// Process rewrites html in memory.
func (p *Processor) Process(html string) (*Result, error) {
	start := time.Now()

	stripper, err := blocks.New(p.config.blocksConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var (
		injector *loader.Injector
		inject   cleaner.Cleaner = cleaner.NewNoop()
	)
	if !p.config.SkipInject {
		injector = loader.New(p.config.loaderConfig())
		inject = injector
	}

	chain := cleaner.NewChain(stripper, inject)
	logger.Debug("processing document",
		"pipeline", chain.Name(),
		"strategy", string(p.config.Strategy),
		"input_size", len(html))

	out, err := chain.Clean(html)
	if err != nil {
		return nil, err
	}

	stripStats := stripper.Stats()
	result := &Result{
		Content: out,
		Stats: &Stats{
			InputBytes:    len(html),
			OutputBytes:   len(out),
			Removed:       stripStats.Removed,
			Unterminated:  stripStats.Unterminated,
			StripDuration: stripStats.Duration,
		},
	}

	if stripStats.Unterminated > 0 {
		result.AddWarning("strip", fmt.Sprintf("%d unterminated block(s) left in place", stripStats.Unterminated))
	}

	if injector != nil {
		result.Stats.Placement = injector.Placement()
		switch injector.Placement() {
		case loader.PlacementAppended:
			result.AddWarning("inject", fmt.Sprintf("marker %q not found, loader appended at end of document", p.config.Marker))
		case loader.PlacementSkipped:
			logger.Debug("loader already present, skipping injection", "tag", injector.Tag())
		}
	}

	result.Stats.TotalDuration = time.Since(start)

	logger.Debug("document processed",
		"removed", result.Stats.TotalRemoved(),
		"output_size", result.Stats.OutputBytes,
		"placement", string(result.Stats.Placement),
		"duration", result.Stats.TotalDuration)

	return result, nil
}

// FileOptions controls CleanFile.
type FileOptions struct {
	// OutputPath defaults to the input path.
	OutputPath string

	// DryRun processes without writing anything.
	DryRun bool
}

// CleanFile reads path, processes it and overwrites the output path.
// The context is checked once, just before the write.
func (p *Processor) CleanFile(ctx context.Context, path string, opts FileOptions) (*Result, error) {
	content, err := document.Read(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document loaded", "path", path, "bytes", len(content))

	result, err := p.Process(content)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", path, err)
	}
	result.Path = path

	if opts.DryRun {
		logger.Debug("dry run, not writing", "path", path)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("aborted before writing %s: %w", path, err)
	}

	out := opts.OutputPath
	if out == "" {
		out = path
	}
	if err := document.Write(out, result.Content); err != nil {
		return nil, err
	}
	result.OutputPath = out
	logger.Debug("document written", "path", out, "bytes", len(result.Content))

	return result, nil
}
