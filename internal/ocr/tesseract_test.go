package ocr

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// renderText draws text in a basic bitmap font on a white background and
// scales it up so Tesseract has enough pixels per glyph to work with.
func renderText(t *testing.T, text string) image.Image {
	t.Helper()

	width := 7*len(text) + 20
	height := 40
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 25),
	}
	d.DrawString(text)

	return imaging.Resize(img, width*4, height*4, imaging.NearestNeighbor)
}

// skipIfUnavailable skips the test when the error indicates a missing
// Tesseract installation rather than a real failure.
func skipIfUnavailable(t *testing.T, err error) {
	t.Helper()
	if err != nil &&
		(strings.Contains(err.Error(), "tesseract") ||
			strings.Contains(err.Error(), "library")) {
		t.Skip("Tesseract not available")
	}
}

func TestRecognize(t *testing.T) {
	img := renderText(t, "HELLO WORLD")

	// Recognition quality on a bitmap font varies; only require that the
	// engine runs without error.
	_, err := Recognize(img, Config{SingleBlock: true})
	skipIfUnavailable(t, err)
	require.NoError(t, err)
}

func TestRecognizeDefaultMode(t *testing.T) {
	img := renderText(t, "plain block")

	_, err := Recognize(img, Config{})
	skipIfUnavailable(t, err)
	require.NoError(t, err)
}

func TestRecognizeInvalidLanguage(t *testing.T) {
	img := renderText(t, "x")

	_, err := Recognize(img, Config{Language: "definitely-not-a-language"})
	skipIfUnavailable(t, err)
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, "eng", cfg.Language)

	cfg = Config{Language: "deu"}.withDefaults()
	assert.Equal(t, "deu", cfg.Language)
}
