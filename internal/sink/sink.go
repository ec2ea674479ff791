// Package sink handles final disposition of extracted results: console
// print or flat-file write.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bunny1911/image-email-scraper/internal/common"
)

// Sink writes extracted email addresses to a file or to a console writer.
type Sink struct {
	out    io.Writer
	logger zerolog.Logger
}

// New creates a Sink that prints console-mode results to out.
func New(out io.Writer, logger zerolog.Logger) *Sink {
	return &Sink{out: out, logger: logger}
}

// WriteFile persists emails to path as UTF-8 text, one address per line,
// overwriting any existing file. Missing parent directories are created.
// Returns the resolved absolute path of the written file.
func (s *Sink) WriteFile(emails []string, path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", common.NewError(common.KindPersistFailure, path, err)
	}

	if err := os.WriteFile(path, []byte(strings.Join(emails, "\n")), 0o644); err != nil {
		return "", common.NewError(common.KindPersistFailure, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		// The write itself succeeded; fall back to the given path.
		abs = path
	}
	s.logger.Info().Str("path", abs).Int("count", len(emails)).Msg("emails saved")
	return abs, nil
}

// Print writes each email to the console writer, one per line.
func (s *Sink) Print(emails []string) error {
	for _, email := range emails {
		if _, err := fmt.Fprintln(s.out, email); err != nil {
			return common.NewError(common.KindPersistFailure, "console output", err)
		}
	}
	return nil
}
