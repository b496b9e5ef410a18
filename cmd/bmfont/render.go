package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/font"
	"github.com/gogpu/bitmap/imageio"
)

func newRenderCmd() *cobra.Command {
	var (
		out        string
		fg, bg     string
		scale      int
		margin     int
		alpha      uint8
		useBuiltin bool
		preview    bool
		nfc        bool
	)

	cmd := &cobra.Command{
		Use:   "render <font-file> <text>",
		Short: "render text with a font into an image",
		Long: `Render text with a font into an image.

The image is sized to fit the text plus the margin. A newline in the
text starts a new line. With --basic the font file argument is omitted
and the built-in 7x13 font is used. With --sixel the image is printed to
standard output as sixel graphics and only saved when --out is given.

Every character must have a glyph in the font. Text is used as given
unless --nfc composes it first, so that a letter followed by a combining
accent becomes the single accented character.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if useBuiltin {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: withStack(func(cmd *cobra.Command, args []string) error {
			var (
				f   *font.Font
				err error
			)
			if useBuiltin {
				f = font.Basic()
			} else {
				f, err = font.Open(args[0])
				if err != nil {
					return err
				}
				args = args[1:]
			}
			text := args[0]
			if nfc {
				text = norm.NFC.String(text)
			}
			if err := f.Check(text); err != nil {
				return err
			}

			ink, err := bitmap.ParseHex(fg)
			if err != nil {
				return err
			}
			paper, err := bitmap.ParseHex(bg)
			if err != nil {
				return err
			}
			if scale < 1 {
				return bitmap.ErrInvalidScale
			}

			c := bitmap.NewFilled(bitmap.RGBModel,
				f.WidthOf(text)+2*margin, f.HeightOf(text)+2*margin, paper)
			c.SetFont(f)
			c.Write(text, ink, margin, margin, bitmap.WithAlpha(alpha))
			if scale > 1 {
				c = c.Scaled(scale, scale)
			}

			img := imageio.ToImage(c)
			if preview {
				if err := writeSixel(cmd.OutOrStdout(), img); err != nil {
					return err
				}
				if !cmd.Flags().Changed("out") {
					return nil
				}
			}
			if err := imageio.Save(out, img); err != nil {
				return err
			}
			bitmap.Logger().Info("image written", "path", out, "width", c.Width(), "height", c.Height())
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", "text.png", "output image (png, jpg, bmp, tif)")
	cmd.Flags().StringVar(&fg, "color", "#000000", "text color")
	cmd.Flags().StringVar(&bg, "background", "#ffffff", "background color")
	cmd.Flags().IntVarP(&scale, "scale", "s", 1, "integer enlargement of the result")
	cmd.Flags().IntVar(&margin, "margin", 2, "blank pixels around the text")
	cmd.Flags().Uint8Var(&alpha, "alpha", 255, "text opacity")
	cmd.Flags().BoolVar(&useBuiltin, "basic", false, "use the built-in 7x13 font")
	cmd.Flags().BoolVar(&preview, "sixel", false, "print the image to the terminal as sixel graphics")
	cmd.Flags().BoolVar(&nfc, "nfc", false, "compose the text to Unicode NFC before rendering")
	return cmd
}
