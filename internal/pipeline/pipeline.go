// Package pipeline chains the four extraction stages: validate and fetch
// the source, recognize and match text, then persist or print the result.
//
// Stages run synchronously in order and the first failure stops the run;
// nothing is retried. Collaborators are injected as small interfaces so the
// orchestration can be tested without network, Tesseract, or a filesystem.
package pipeline

import (
	"context"

	"github.com/rs/zerolog"
)

// Fetcher retrieves the raw image bytes for a source string.
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// Extractor recognizes text in image bytes and returns unique email-like
// matches.
type Extractor interface {
	Emails(ctx context.Context, data []byte) ([]string, error)
}

// Sink disposes of a non-empty result set.
type Sink interface {
	WriteFile(emails []string, path string) (string, error)
	Print(emails []string) error
}

// Result is the outcome of a successful run.
type Result struct {
	// Emails holds the unique extracted addresses, first-seen order.
	Emails []string

	// OutputPath is the absolute path written in file mode, empty in
	// console mode or when nothing was found.
	OutputPath string
}

// Pipeline wires the stages together for one run at a time.
type Pipeline struct {
	fetcher   Fetcher
	extractor Extractor
	sink      Sink
	logger    zerolog.Logger
}

// New creates a Pipeline from its stage implementations.
func New(fetcher Fetcher, extractor Extractor, sink Sink, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		sink:      sink,
		logger:    logger,
	}
}

// Run executes one extraction: fetch src, extract emails, then write them
// to outputPath, or print them when outputPath is empty.
//
// An empty extraction result is not an error: nothing is written and the
// outcome is reported as "no emails found". Any stage failure aborts the
// run and is returned tagged with its stage kind.
func (p *Pipeline) Run(ctx context.Context, src, outputPath string) (*Result, error) {
	data, err := p.fetcher.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	emails, err := p.extractor.Emails(ctx, data)
	if err != nil {
		return nil, err
	}

	if len(emails) == 0 {
		p.logger.Info().Str("source", src).Msg("no emails found")
		return &Result{}, nil
	}

	if outputPath == "" {
		if err := p.sink.Print(emails); err != nil {
			return nil, err
		}
		return &Result{Emails: emails}, nil
	}

	abs, err := p.sink.WriteFile(emails, outputPath)
	if err != nil {
		return nil, err
	}
	return &Result{Emails: emails, OutputPath: abs}, nil
}
