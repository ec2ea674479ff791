// Package extract turns raw image bytes into a set of unique
// email-address-like strings.
//
// The pattern is deliberately permissive: it matches anything shaped like
// local@domain.tld, including strings that strict RFC validation would
// reject (consecutive dots and the like). Matching is the last stage of a
// decode -> preprocess -> recognize chain; any decode or OCR failure is
// surfaced as a processing failure.
package extract

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/bunny1911/image-email-scraper/internal/common"
	"github.com/bunny1911/image-email-scraper/internal/imaging"
	"github.com/bunny1911/image-email-scraper/internal/ocr"
)

// emailPattern matches email-shaped substrings: word characters plus
// dot/plus/hyphen before the @, a hyphenated word after it, then a dot and
// more of the same. Word characters are any Unicode letter or digit plus
// underscore, spelled out as explicit classes because RE2's \w is
// ASCII-only. Intentionally not RFC 5322.
var emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.+-]+@[\p{L}\p{N}_-]+\.[\p{L}\p{N}_.-]+`)

// Config controls the extraction chain.
type Config struct {
	// Preprocess enables the scan-cleanup chain before recognition.
	// Recommended for noisy inputs; clean renders work either way.
	Preprocess bool

	// OCR configures the recognition engine.
	OCR ocr.Config
}

// Extractor recognizes text in image bytes and collects unique
// email-like matches.
type Extractor struct {
	cfg    Config
	logger zerolog.Logger
}

// New creates an Extractor with the given configuration.
func New(cfg Config, logger zerolog.Logger) *Extractor {
	return &Extractor{cfg: cfg, logger: logger}
}

// Emails decodes data, optionally preprocesses the image, runs OCR, and
// returns the unique email-like strings found, in first-seen order.
//
// Decode and OCR failures are wrapped as processing failures. The context
// is checked before the (blocking, uncancellable) OCR call so an already
// canceled run fails fast.
func (e *Extractor) Emails(ctx context.Context, data []byte) ([]string, error) {
	img, format, err := imaging.Decode(data)
	if err != nil {
		return nil, common.NewError(common.KindProcessingFailure, "decode image", err)
	}
	e.logger.Debug().Str("format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("decoded image")

	if e.cfg.Preprocess {
		before := imaging.Luminance(img)
		img = imaging.Preprocess(img)
		after := imaging.Luminance(img)
		e.logger.Debug().
			Float64("mean_before", before.Mean).
			Float64("range_before", before.Max-before.Min).
			Float64("mean_after", after.Mean).
			Float64("range_after", after.Max-after.Min).
			Msg("preprocessed image")
	}

	if err := ctx.Err(); err != nil {
		return nil, common.NewError(common.KindProcessingFailure, "recognize text", err)
	}

	text, err := ocr.Recognize(img, e.cfg.OCR)
	if err != nil {
		return nil, common.NewError(common.KindProcessingFailure, "recognize text", err)
	}

	emails := matchEmails(text)
	e.logger.Info().Int("count", len(emails)).Msg("extracted emails")
	return emails, nil
}

// matchEmails collects non-overlapping pattern matches from text,
// deduplicated in first-seen order.
func matchEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	seen := make(map[string]struct{}, len(matches))
	emails := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		emails = append(emails, m)
	}
	return emails
}
