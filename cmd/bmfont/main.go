// Command bmfont builds, inspects and renders bitmap font files.
//
// Usage:
//
//	bmfont build strip.png out.font --type gradient
//	bmfont import out.font --ttf DejaVuSans.ttf --size 12
//	bmfont info out.font
//	bmfont render out.font "Hello" --out hello.png --scale 2
//	bmfont demo --out demo.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/font"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var debug bool
	root := newRootCmd(&debug)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var stacked *goerrors.Error
	if debug && errors.As(err, &stacked) {
		fmt.Fprintln(stderr, stacked.ErrorStack())
	} else {
		fmt.Fprintln(stderr, "bmfont:", err)
	}
	return 1
}

func newRootCmd(debug *bool) *cobra.Command {
	var (
		verbose bool
		workers int
	)

	root := &cobra.Command{
		Use:           "bmfont",
		Short:         "bmfont builds, inspects and renders bitmap font files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			bitmap.SetLogger(slog.New(h))
			bitmap.SetWorkers(workers)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
	root.PersistentFlags().BoolVarP(debug, "debug", "d", false, "print a stack trace with errors")
	root.PersistentFlags().IntVar(&workers, "workers", 1, "goroutines for large resize and rotate jobs")

	root.AddCommand(
		newBuildCmd(),
		newImportCmd(),
		newInfoCmd(),
		newRenderCmd(),
		newDemoCmd(),
	)
	return root
}

// withStack records the stack of a failing command, printed with --debug.
func withStack(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return goerrors.Wrap(err, 1)
		}
		return nil
	}
}

// fontFlags are the flags shared by the commands that create fonts.
type fontFlags struct {
	encoding      string
	chars         int
	letterSpacing int
	lineSpacing   int
}

func (f *fontFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.encoding, "type", "t", "mask", "glyph encoding: mask or gradient")
	cmd.Flags().IntVarP(&f.chars, "chars", "n", 0, "number of glyphs, starting at U+0020 (0 = all available)")
	cmd.Flags().IntVar(&f.letterSpacing, "letter-spacing", 1, "horizontal gap between characters")
	cmd.Flags().IntVar(&f.lineSpacing, "line-spacing", 1, "vertical gap between lines")
}

func (f *fontFlags) options() ([]font.Option, error) {
	var enc font.Encoding
	switch f.encoding {
	case "mask":
		enc = font.EncodingMask
	case "gradient":
		enc = font.EncodingGradient
	default:
		return nil, fmt.Errorf("unknown font type %q (want mask or gradient)", f.encoding)
	}
	if f.chars < 0 {
		return nil, fmt.Errorf("invalid glyph count %d", f.chars)
	}
	return []font.Option{
		font.WithEncoding(enc),
		font.WithGlyphCount(f.chars),
		font.WithLetterSpacing(f.letterSpacing),
		font.WithLineSpacing(f.lineSpacing),
	}, nil
}

func saveFont(path string, f *font.Font) error {
	if err := font.Save(path, f); err != nil {
		return err
	}
	bitmap.Logger().Info("font written",
		"path", path,
		"encoding", f.Encoding(),
		"glyphs", f.Len(),
		"height", f.Height())
	return nil
}
