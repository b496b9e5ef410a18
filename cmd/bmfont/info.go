package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap/font"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <font-file>",
		Short: "print the metrics of a font file",
		Args:  cobra.ExactArgs(1),
		RunE: withStack(func(cmd *cobra.Command, args []string) error {
			f, err := font.Open(args[0])
			if err != nil {
				return err
			}

			minW, maxW := 0, 0
			for i := 0; i < f.Len(); i++ {
				w := f.RuneWidth(font.FirstRune + rune(i))
				if i == 0 || w < minW {
					minW = w
				}
				maxW = max(maxW, w)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "encoding:       %s\n", f.Encoding())
			fmt.Fprintf(out, "glyphs:         %d", f.Len())
			if f.Len() > 0 {
				fmt.Fprintf(out, " (%U to %U)", font.FirstRune, font.FirstRune+rune(f.Len()-1))
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "height:         %d\n", f.Height())
			fmt.Fprintf(out, "letter spacing: %d\n", f.LetterSpacing())
			fmt.Fprintf(out, "line spacing:   %d\n", f.LineSpacing())
			fmt.Fprintf(out, "glyph width:    %d to %d\n", minW, maxW)
			fmt.Fprintf(out, "monospaced:     %t\n", f.IsMonospaced())
			return nil
		}),
	}
}
