// Package parallel runs row-oriented raster work on several goroutines.
package parallel

import "sync"

// MinPixels is the smallest job, in pixels, that Rows splits across
// goroutines. Smaller jobs run on the calling goroutine.
const MinPixels = 1 << 16

// Rows calls fn for contiguous bands [y0, y1) that together cover rows
// [0, height) exactly once, and returns when every call has finished.
//
// width is the number of pixels per row and only sizes the bands. With
// workers <= 1 fn is called once on the calling goroutine. Otherwise fn
// must touch nothing but its own rows of the destination; bands run
// concurrently.
func Rows(width, height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := Bands(width, height, workers)
	if bands == 1 {
		fn(0, height)
		return
	}

	var wg sync.WaitGroup
	wg.Add(bands)
	for i := 0; i < bands; i++ {
		y0 := height * i / bands
		y1 := height * (i + 1) / bands
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}

// Bands returns how many bands Rows uses for a width x height job on the
// given number of workers: at most one per worker and per row, and no
// band smaller than MinPixels.
func Bands(width, height, workers int) int {
	if width <= 0 || height <= 0 || workers <= 1 {
		return 1
	}
	n := width * height / MinPixels
	return max(1, min(n, workers, height))
}
