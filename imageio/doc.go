// Package imageio converts between bitmap canvases and the standard
// library's image types, and reads and writes image files.
//
// Decoding recognizes PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding
// supports PNG, JPEG, BMP and TIFF.
//
//	img, err := imageio.Load("sprite.png")
//	if err != nil {
//	    return err
//	}
//	c := imageio.FromImage(img)
//	c = c.Scaled(4, 4)
//	err = imageio.Save("sprite_4x.png", imageio.ToImage(c))
package imageio
