// Package bitmap provides a small software raster library for Go.
//
// # Overview
//
// bitmap stores pixels in flat, index-addressed buffers of one of three
// kinds and exposes them through a Canvas with 2-D addressing, alpha
// compositing, nearest-neighbour transforms and bitmap-font text output.
//
// The three pixel kinds are:
//   - Bit: bool, used for 1-bit masks and mask glyphs
//   - Byte: uint8, used for 8-bit gradient or alpha masks
//   - RGB: [Color], a 24-bit color packed as 0xRRGGBB
//
// # Quick Start
//
//	import "github.com/gogpu/bitmap"
//
//	c := bitmap.NewFilled(bitmap.RGBModel, 320, 200, bitmap.Black)
//	c.Fill(10, 10, 100, 50, bitmap.Red, bitmap.WithAlpha(128))
//	r := c.Rotated(1)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Raster, Canvas, Model, Color
//   - font: the binary bitmap-font format, text layout and importers
//   - shape: line, rectangle and circle rasterization
//   - imageio: conversion to and from image.Image and image files
//   - Internal: blend (8-bit channel math), parallel (row bands for
//     large transforms, enabled by SetWorkers)
//   - cmd/bmfont: command-line font builder and renderer
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Quarter-turn rotations turn clockwise.
//
// # Bounds
//
// The raw accessors At and SetPixel do not check bounds; callers keep
// coordinates inside the canvas. Compound operations (Fill, Draw,
// DrawMask, DrawGradient, Write) clip to the canvas.
//
// A Canvas is not safe for concurrent use. Transforms never modify their
// receiver, so concurrent transforms of the same canvas are fine as long
// as nothing draws on it at the same time.
//
// Every operation runs on the calling goroutine. SetWorkers opts in to
// splitting large resamples and angle rotations into row bands on
// several goroutines; the result is the same either way.
package bitmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
