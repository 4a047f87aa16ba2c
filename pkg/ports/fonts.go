package ports

import (
	"golang.org/x/image/font"
)

// FontResolver locates a usable font face at a requested point size.
//
// Resolution never fails: implementations fall back to an embedded font,
// and ultimately to a fixed-size bitmap font whose metrics ignore the
// requested size. Callers must tolerate the smaller fallback glyphs.
type FontResolver interface {
	// Resolve returns a face for the given point size.
	// The returned face may be shared; faces are safe for sequential reuse
	// within a single composition call.
	Resolve(points float64) font.Face
}
