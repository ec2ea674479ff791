package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Config controls how the Tesseract engine is set up for a recognition call.
type Config struct {
	// Language is the Tesseract language code, e.g. "eng". The matching
	// traineddata must be installed on the system. Defaults to "eng".
	Language string

	// TessdataDir overrides the tessdata directory when non-empty.
	TessdataDir string

	// SingleBlock selects the "single uniform block of text" page
	// segmentation mode instead of full automatic layout analysis. This is
	// the right mode for flat text renders like screenshots of contact
	// pages.
	SingleBlock bool
}

func (c Config) withDefaults() Config {
	if c.Language == "" {
		c.Language = "eng"
	}
	return c
}

// Recognize performs OCR on a decoded image and returns the raw
// transcription.
//
// A fresh gosseract client is created and closed per call; the engine keeps
// no state between recognitions. The image is re-encoded as PNG in memory
// and handed to Tesseract as bytes, so no temporary files are written.
func Recognize(img image.Image, cfg Config) (string, error) {
	cfg = cfg.withDefaults()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(cfg.TessdataDir); err != nil {
			return "", fmt.Errorf("failed to set tessdata dir: %w", err)
		}
	}
	if err := client.SetLanguage(cfg.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if cfg.SingleBlock {
		if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
			return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
