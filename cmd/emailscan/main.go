package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bunny1911/image-email-scraper/internal/common"
	"github.com/bunny1911/image-email-scraper/internal/config"
	"github.com/bunny1911/image-email-scraper/internal/extract"
	"github.com/bunny1911/image-email-scraper/internal/fetch"
	"github.com/bunny1911/image-email-scraper/internal/ocr"
	"github.com/bunny1911/image-email-scraper/internal/pipeline"
	"github.com/bunny1911/image-email-scraper/internal/sink"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	flagOutput       string
	flagLang         string
	flagTimeout      time.Duration
	flagPreprocess   bool
	flagNoPreprocess bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "emailscan [source]",
	Short: "Extract email addresses from an image using OCR",
	Long: `emailscan retrieves an image from a local path or URL, runs Tesseract
OCR on it, and extracts unique email-address-like strings from the
recognized text.

With --output the results are written to a file, one address per line,
overwriting any existing file. Without it they are printed to stdout.
When no source argument is given, emailscan prompts for one.

Exit codes: 0 success, 2 invalid input, 3 fetch failure, 4 processing
failure, 5 persist failure.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "file to write extracted emails to (prints to stdout when empty)")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "Tesseract language code (default \"eng\")")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "HTTP fetch timeout (default 30s)")
	rootCmd.Flags().BoolVar(&flagPreprocess, "preprocess", true, "force image preprocessing before OCR, overriding the environment")
	rootCmd.Flags().BoolVar(&flagNoPreprocess, "no-preprocess", false, "skip image preprocessing before OCR")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if flagLang != "" {
		cfg.OCRLanguage = flagLang
	}
	if flagTimeout > 0 {
		cfg.HTTPTimeout = flagTimeout
	}
	cfg.Preprocess = resolvePreprocess(cfg.Preprocess,
		cmd.Flags().Changed("preprocess"), flagPreprocess, flagNoPreprocess)

	logger := newLogger(cfg.LogLevel, flagVerbose)

	// One reader for the whole interactive session: prompts must consume
	// stdin sequentially, including when it is a pipe or a file.
	stdin := bufio.NewReader(cmd.InOrStdin())

	var src string
	interactive := len(args) == 0
	if interactive {
		src = prompt(stdin, "Enter the URL or file path of the image: ")
	} else {
		src = strings.TrimSpace(args[0])
	}
	if src == "" {
		return common.NewError(common.KindInvalidInput, "source", errors.New("missing image source"))
	}

	output := flagOutput
	if interactive && output == "" {
		output = prompt(stdin, "Enter a file path to save the emails (blank prints to console): ")
	}

	fetcher := fetch.New(cfg.HTTPTimeout, logger)
	extractor := extract.New(extract.Config{
		Preprocess: cfg.Preprocess,
		OCR: ocr.Config{
			Language:    cfg.OCRLanguage,
			TessdataDir: cfg.TessdataDir,
			SingleBlock: true,
		},
	}, logger)
	results := sink.New(cmd.OutOrStdout(), logger)

	p := pipeline.New(fetcher, extractor, results, logger)
	_, err := p.Run(cmd.Context(), src, output)
	return err
}

// newLogger builds the process logger: console format on stderr (stdout is
// reserved for results), tagged with a per-run correlation ID.
func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// resolvePreprocess applies flag overrides to the environment-derived
// default: --no-preprocess always wins, an explicit --preprocess beats the
// environment, and otherwise the environment value stands.
func resolvePreprocess(envDefault, preprocessSet, preprocessVal, noPreprocess bool) bool {
	if noPreprocess {
		return false
	}
	if preprocessSet {
		return preprocessVal
	}
	return envDefault
}

// prompt reads one line from r, trimming whitespace. The last line before
// EOF is still returned even without a trailing newline.
func prompt(r *bufio.Reader, label string) string {
	fmt.Fprint(os.Stderr, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(common.ExitCode(err))
	}
}
