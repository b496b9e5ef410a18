package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/font"
	"github.com/gogpu/bitmap/imageio"
)

func newBuildCmd() *cobra.Command {
	var (
		flags     fontFlags
		separator string
	)

	cmd := &cobra.Command{
		Use:   "build <strip-image> <font-file>",
		Short: "build a font from a glyph strip image",
		Long: `Build a font from a glyph strip image.

The strip holds the glyphs side by side starting at the space character.
Pixels of the separator color in the top row mark the columns between
glyphs. Mask fonts take the black pixels; gradient fonts take the
inverted blue channel, so black ink on white gives full coverage.`,
		Args: cobra.ExactArgs(2),
		RunE: withStack(func(_ *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			sep, err := bitmap.ParseHex(separator)
			if err != nil {
				return err
			}
			opts = append(opts, font.WithSeparator(sep))

			img, err := imageio.Load(args[0])
			if err != nil {
				return err
			}
			f, err := font.FromStrip(imageio.FromImage(img), opts...)
			if err != nil {
				return err
			}
			return saveFont(args[1], f)
		}),
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&separator, "separator", "#ff0000", "glyph separator color")
	return cmd
}
