package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/bitmap/font"
)

func newImportCmd() *cobra.Command {
	var (
		flags      fontFlags
		ttf        string
		size       float64
		threshold  uint8
		basic      bool
		rasterizer string
	)

	cmd := &cobra.Command{
		Use:   "import <font-file>",
		Short: "rasterize a TrueType/OpenType font into a bitmap font",
		Long: `Rasterize a TrueType/OpenType font into a bitmap font.

Without --ttf the Go Regular font is used. --basic imports the built-in
7x13 fixed font instead; it cannot be combined with --ttf and ignores
--size and --rasterizer.`,
		Args: cobra.ExactArgs(1),
		RunE: withStack(func(_ *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			opts = append(opts, font.WithThreshold(threshold))

			var f *font.Font
			switch {
			case basic:
				if ttf != "" {
					return errors.New("--basic and --ttf are mutually exclusive")
				}
				f = font.Basic()
			default:
				data := goregular.TTF
				if ttf != "" {
					data, err = os.ReadFile(filepath.Clean(ttf))
					if err != nil {
						return fmt.Errorf("read font: %w", err)
					}
				}
				switch rasterizer {
				case "opentype":
					f, err = font.FromOpenType(data, size, opts...)
				case "freetype":
					f, err = font.FromTrueType(data, size, opts...)
				default:
					return fmt.Errorf("unknown rasterizer %q (want opentype or freetype)", rasterizer)
				}
				if err != nil {
					return err
				}
			}
			return saveFont(args[0], f)
		}),
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&ttf, "ttf", "", "TrueType/OpenType font file (default Go Regular)")
	cmd.Flags().Float64Var(&size, "size", 13, "font size in pixels")
	cmd.Flags().Uint8Var(&threshold, "threshold", 128, "coverage at which a mask pixel is set")
	cmd.Flags().BoolVar(&basic, "basic", false, "import the built-in 7x13 font")
	cmd.Flags().StringVar(&rasterizer, "rasterizer", "opentype", "outline rasterizer: opentype or freetype")
	return cmd
}
