package imagefx

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// VerticalGradient synthesizes a width×height background whose rows
// interpolate linearly from start (top) to end (bottom). Every pixel in
// a row shares the same color; the output is deterministic.
func VerticalGradient(width, height int, start, end color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	denom := max(height-1, 1)
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(denom)
		c := color.NRGBA{
			R: lerpChannel(start.R, end.R, ratio),
			G: lerpChannel(start.G, end.G, ratio),
			B: lerpChannel(start.B, end.B, ratio),
			A: 255,
		}
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			row[x] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	}
	return img
}

func lerpChannel(a, b uint8, ratio float64) uint8 {
	return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
}

// RoundCorners returns img with its corners outside a rounded rectangle
// of the given radius made transparent. The output always carries an
// alpha channel. Radius 0 is a pass-through of the visual content.
func RoundCorners(img image.Image, radius int) image.Image {
	b := img.Bounds()
	if radius <= 0 {
		out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		return out
	}

	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawRoundedRectangle(0, 0, float64(b.Dx()), float64(b.Dy()), float64(radius))
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}

// DropShadow synthesizes a shadow layer for img: a transparent canvas
// padded by blur on all sides plus the offset magnitude, holding a
// black, Gaussian-blurred silhouette of the subject's opaque footprint,
// shifted by (offsetX, offsetY). Opacity is the peak alpha (0-255).
//
// The layer is larger than the subject; callers compositing it beneath
// the subject must account for the padding when positioning both.
func DropShadow(img image.Image, offsetX, offsetY, blur, opacity int) image.Image {
	b := img.Bounds()
	w := b.Dx() + abs(offsetX) + blur*2
	h := b.Dy() + abs(offsetY) + blur*2
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))

	ox := blur + max(offsetX, 0)
	oy := blur + max(offsetY, 0)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			shade := uint8(uint32(opacity) * (a >> 8) / 255)
			layer.SetNRGBA(ox+x, oy+y, color.NRGBA{A: shade})
		}
	}

	if blur <= 0 {
		return layer
	}
	return imaging.Blur(layer, float64(blur))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
