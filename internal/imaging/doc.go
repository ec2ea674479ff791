// Package imaging provides image decoding and OCR-oriented preprocessing.
//
// This package turns the raw byte buffer produced by the fetcher into an
// in-memory image and optionally cleans it up for text recognition. All
// operations work with standard Go image.Image types and never modify their
// input.
//
// # Supported Formats
//
// Decode registers decoders for every extension in the source allow-list:
//   - PNG, JPEG, GIF via the standard library
//   - BMP, TIFF, WebP via golang.org/x/image
//
// WebP is decode-only, which is sufficient here: images are read, never
// re-encoded in their source format.
//
// # Preprocessing
//
// Preprocess applies a fixed cleanup chain tuned for noisy scans:
//
//  1. Grayscale conversion (single channel)
//  2. Contrast boost by a fixed factor
//  3. Small-radius Gaussian blur to suppress speckle noise
//  4. Autocontrast to normalize the dynamic range
//
// The chain is optional; callers may pass the raw decoded image straight to
// the recognizer when the input is already clean.
//
// # Luminance Statistics
//
// Luminance reports perceptual (CIE Lab) brightness statistics over a
// sampled pixel grid. The pipeline logs these before and after
// preprocessing so the effect of the cleanup chain on a given scan is
// observable without saving intermediate images.
package imaging
