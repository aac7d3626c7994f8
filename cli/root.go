// Package cli wires the code generation pipeline behind a cobra command:
// flag parsing, verbosity resolution, and the generate-encode-write loop.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root cobra command for the batchcode CLI.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "batchcode",
		Short: "Generate unique codes and render them as QR or EAN barcode images",
		Long: `batchcode generates batches of unique identifier codes (or reads them from
a file) and renders each as a QR code or EAN13/EAN8 barcode PNG, optionally
embedding a logo into QR images. A manifest.csv in the output directory maps
every code to its image file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVarP(&opts.file, "file", "f", "", "File containing codes to encode, one per line")
	fl.IntVarP(&opts.count, "count", "c", 0, "Number of codes to generate")
	fl.IntVarP(&opts.length, "length", "l", 12, "Length of each generated code")
	fl.BoolVarP(&opts.alphanum, "alphanum", "a", false, "Generate alphanumeric codes instead of numeric")
	fl.StringVarP(&opts.encodingType, "encoding-type", "t", "ean13", "Encoding type: ean13, ean8 or qr")
	fl.StringVarP(&opts.image, "image", "i", "", "Logo image to embed into generated QR codes")
	fl.StringVarP(&opts.outputDir, "output-dir", "o", "", `Directory for generated images (default "./output")`)
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	fl.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all non-error output")
	fl.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI with the process stdio and returns the exit code.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
