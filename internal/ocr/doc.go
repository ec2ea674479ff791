// Package ocr wraps the Tesseract OCR engine (via gosseract/v2).
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng"); other languages can be selected
// through Config.Language using their Tesseract language codes, provided
// the matching traineddata files are installed. Config.TessdataDir points
// the engine at a non-standard traineddata location.
//
// # Recognition Mode
//
// Config.SingleBlock switches Tesseract into its "single uniform block of
// text" page segmentation mode, which outperforms full layout analysis on
// flat text renders. Leave it off for documents with columns or mixed
// layout.
//
// # Error Handling
//
// All failures (engine initialization, unknown language codes, recognition
// itself) surface as wrapped errors; the caller decides how to classify
// them.
package ocr
