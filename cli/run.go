package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/batchcode/pkg/codes"
	"github.com/dmitrymomot/batchcode/pkg/config"
	"github.com/dmitrymomot/batchcode/pkg/encoder"
	"github.com/dmitrymomot/batchcode/pkg/logger"
	"github.com/dmitrymomot/batchcode/pkg/manifest"
	"github.com/dmitrymomot/batchcode/pkg/qrcode"
)

// settings are environment-backed defaults; explicit flags override them.
type settings struct {
	OutputDir string `env:"BATCHCODE_OUTPUT_DIR" envDefault:"./output"`
	QRSize    int    `env:"BATCHCODE_QR_SIZE" envDefault:"256"`
	LogFormat string `env:"BATCHCODE_LOG_FORMAT" envDefault:"text"`
}

// runOptions carries the parsed flag values.
type runOptions struct {
	file         string
	count        int
	length       int
	alphanum     bool
	encodingType string
	image        string
	outputDir    string
	verbose      bool
	quiet        bool
	debug        bool
}

// Flag validation errors
var (
	// ErrNoSource is returned when neither --count nor --file is given.
	ErrNoSource = errors.New("either --count or --file is required")
	// ErrConflictingSources is returned when both --count and --file are given.
	ErrConflictingSources = errors.New("--count and --file are mutually exclusive")
)

// level resolves verbosity flags; quiet wins over verbose and debug.
func (o runOptions) level() slog.Level {
	switch {
	case o.quiet:
		return slog.LevelError
	case o.debug:
		return slog.LevelDebug
	case o.verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func run(opts runOptions, stdout io.Writer) error {
	var cfg settings
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(opts.level()),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("run_id", uuid.New().String())),
	)

	typ, err := encoder.ParseType(opts.encodingType)
	if err != nil {
		return err
	}
	if opts.file == "" && opts.count == 0 {
		return ErrNoSource
	}
	if opts.file != "" && opts.count != 0 {
		return ErrConflictingSources
	}
	// A logo only applies to QR symbols; for barcode types it is ignored.
	var logo image.Image
	switch {
	case opts.image != "" && typ != encoder.TypeQR:
		log.Warn("logo image is ignored for barcode encoding types", logger.Path(opts.image))
	case opts.image != "":
		if logo, err = qrcode.LoadLogo(opts.image); err != nil {
			return err
		}
		log.Debug("loaded logo image", logger.Path(opts.image))
	}

	var batch []string
	if opts.file != "" {
		log.Info("reading codes from file", logger.Path(opts.file))
		batch, err = codes.ReadFile(opts.file)
	} else {
		log.Info("generating codes",
			logger.Count(opts.count),
			slog.Int("length", opts.length),
			slog.Bool("alphanum", opts.alphanum),
		)
		batch, err = codes.Generate(opts.count, opts.length, opts.alphanum)
	}
	if err != nil {
		return err
	}
	log.Info("codes ready for encoding", logger.Count(len(batch)))

	outDir := opts.outputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	mw, err := manifest.NewWriter(outDir)
	if err != nil {
		return err
	}
	defer mw.Close()

	enc := encoder.New(typ, encoder.WithQRSize(cfg.QRSize), encoder.WithLogo(logo))

	started := time.Now()
	for _, code := range batch {
		data, err := enc.Encode(code)
		if err != nil {
			return fmt.Errorf("encode %q: %w", code, err)
		}
		name, err := mw.WriteImage(code, data)
		if err != nil {
			return err
		}
		if err := mw.Add(code, name); err != nil {
			return err
		}
		log.Debug("wrote image", slog.String("code", code), logger.Path(name))
	}
	if err := mw.Close(); err != nil {
		return err
	}
	log.Info("encoding completed",
		logger.Count(len(batch)),
		logger.Duration(time.Since(started)),
	)

	if !opts.quiet {
		fmt.Fprintf(stdout, "Generated %d codes and saved them to %s.\n", len(batch), outDir)
	}
	return nil
}
