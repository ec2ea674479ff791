// Package fetch retrieves raw image bytes from a local path or a URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bunny1911/image-email-scraper/internal/common"
	"github.com/bunny1911/image-email-scraper/internal/source"
)

// DefaultTimeout bounds the HTTP fetch when no explicit timeout is
// configured. A stuck remote server must not block the process forever.
const DefaultTimeout = 30 * time.Second

var errUnsupportedType = errors.New("invalid file type, provide a valid image file")

// Fetcher retrieves image bytes for a validated source.
type Fetcher struct {
	client *http.Client
	logger zerolog.Logger
}

// New creates a Fetcher whose HTTP requests are bounded by timeout.
// A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration, logger zerolog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch returns the raw bytes of the image named by src.
//
// The source is re-validated first; an unrecognized extension fails with an
// invalid-input error before any I/O happens. URL sources are fetched with a
// single GET honoring ctx; any non-2xx status is a fetch failure. Everything
// else is read from the local filesystem.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	if !source.IsValidImage(src) {
		return nil, common.NewError(common.KindInvalidInput, src, errUnsupportedType)
	}

	if source.IsURL(src) {
		data, err := f.fetchURL(ctx, src)
		if err != nil {
			return nil, common.NewError(common.KindFetchFailure, src, err)
		}
		f.logger.Info().Str("source", src).Int("bytes", len(data)).Msg("fetched image from URL")
		return data, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, common.NewError(common.KindFetchFailure, src, err)
	}
	f.logger.Info().Str("source", src).Int("bytes", len(data)).Msg("read image from file")
	return data, nil
}

func (f *Fetcher) fetchURL(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}
