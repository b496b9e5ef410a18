package bitmap

import (
	"errors"
	"testing"
)

// pattern returns an RGB canvas whose pixels are all distinct.
func pattern(w, h int) *Canvas[Color] {
	c := New(RGBModel, w, h)
	pix := c.Raster().Pix()
	for i := range pix {
		pix[i] = Color(0x010203*i + 1)
	}
	return c
}

// mustPanic runs fn and fails unless it panics with an error matching target.
func mustPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, _ := recover().(error)
		if !errors.Is(err, target) {
			t.Errorf("recovered %v, want %v", err, target)
		}
	}()
	fn()
}
