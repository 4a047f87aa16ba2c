// Package imagefx provides the geometry and layer primitives shared by
// the collage and post composers. All functions are pure: they return a
// new image and never mutate their input.
package imagefx

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// CenterCropSquare crops img to the largest centered square.
// An already-square image comes back with identical dimensions.
func CenterCropSquare(img image.Image) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	return imaging.CropCenter(img, side, side)
}

// FitToBox scales img to cover the width×height box, preserving aspect
// ratio, then center-crops to exactly width×height. The output dimensions
// match the box regardless of the input shape.
func FitToBox(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	scale := math.Max(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	nw := int(math.Round(float64(b.Dx()) * scale))
	nh := int(math.Round(float64(b.Dy()) * scale))
	// Rounding must never undershoot the box.
	nw = max(nw, width)
	nh = max(nh, height)

	resized := imaging.Resize(img, nw, nh, imaging.Lanczos)
	return imaging.CropCenter(resized, width, height)
}

// ResizeTo resizes img to exactly width×height with Lanczos resampling.
func ResizeTo(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
