// Package shape draws outlines onto bitmap canvases.
//
// Shapes are rasterized directly with Canvas.SetPixel: there is no
// antialiasing and no compositing. Pixels outside the canvas are skipped,
// so shapes may extend past any edge.
package shape
