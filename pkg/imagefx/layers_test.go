package imagefx

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/disintegration/imaging"
)

func TestVerticalGradient_Endpoints(t *testing.T) {
	start := color.NRGBA{R: 100, A: 255}
	end := color.NRGBA{B: 100, A: 255}
	img := VerticalGradient(4, 5, start, end)

	if got := img.NRGBAAt(0, 0); got != start {
		t.Errorf("top row = %+v, want %+v", got, start)
	}
	if got := img.NRGBAAt(0, 4); got != end {
		t.Errorf("bottom row = %+v, want %+v", got, end)
	}

	mid := img.NRGBAAt(0, 2)
	if mid.R != 50 || mid.B != 50 {
		t.Errorf("middle row = %+v, want R=50 B=50", mid)
	}
}

func TestVerticalGradient_RowsUniform(t *testing.T) {
	img := VerticalGradient(16, 10, color.NRGBA{R: 21, G: 27, B: 36, A: 255}, color.NRGBA{R: 10, G: 12, B: 18, A: 255})

	for y := 0; y < 10; y++ {
		first := img.NRGBAAt(0, y)
		for x := 1; x < 16; x++ {
			if got := img.NRGBAAt(x, y); got != first {
				t.Fatalf("row %d not uniform: pixel %d = %+v, pixel 0 = %+v", y, x, got, first)
			}
		}
	}
}

func TestVerticalGradient_Deterministic(t *testing.T) {
	start := color.NRGBA{R: 21, G: 27, B: 36, A: 255}
	end := color.NRGBA{R: 10, G: 12, B: 18, A: 255}

	a := VerticalGradient(32, 32, start, end)
	b := VerticalGradient(32, 32, start, end)
	if !reflect.DeepEqual(a.Pix, b.Pix) {
		t.Error("two syntheses of the same gradient differ")
	}
}

func TestVerticalGradient_SingleRow(t *testing.T) {
	start := color.NRGBA{R: 200, A: 255}
	img := VerticalGradient(3, 1, start, color.NRGBA{A: 255})
	if got := img.NRGBAAt(1, 0); got != start {
		t.Errorf("single row = %+v, want start %+v", got, start)
	}
}

func TestRoundCorners_ZeroRadiusPassThrough(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := imaging.New(20, 20, red)

	got := RoundCorners(src, 0)
	b := got.Bounds()
	if b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("got %dx%d, want 20x20", b.Dx(), b.Dy())
	}
	_, _, _, a := got.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("corner alpha = %d, want fully opaque", a)
	}
	c := color.NRGBAModel.Convert(got.At(10, 10)).(color.NRGBA)
	if c != red {
		t.Errorf("center = %+v, want %+v", c, red)
	}
}

func TestRoundCorners_CornersTransparent(t *testing.T) {
	src := imaging.New(40, 40, color.NRGBA{R: 255, A: 255})

	got := RoundCorners(src, 8)

	corners := [][2]int{{0, 0}, {39, 0}, {0, 39}, {39, 39}}
	for _, p := range corners {
		_, _, _, a := got.At(p[0], p[1]).RGBA()
		if a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", p[0], p[1], a)
		}
	}

	// The center and the edge midpoints stay opaque.
	for _, p := range [][2]int{{20, 20}, {20, 0}, {0, 20}} {
		r, _, _, a := got.At(p[0], p[1]).RGBA()
		if a != 0xffff || r != 0xffff {
			t.Errorf("pixel (%d,%d) = r=%d a=%d, want opaque red", p[0], p[1], r, a)
		}
	}
}

func TestDropShadow_SharpSilhouette(t *testing.T) {
	src := imaging.New(20, 20, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	got := DropShadow(src, 0, 4, 0, 120)
	b := got.Bounds()
	if b.Dx() != 20 || b.Dy() != 24 {
		t.Fatalf("got %dx%d, want 20x24", b.Dx(), b.Dy())
	}

	// Above the offset the layer is empty; inside it the alpha equals the
	// requested opacity and the shade is pure black.
	if _, _, _, a := got.At(10, 0).RGBA(); a != 0 {
		t.Errorf("pixel above offset alpha = %d, want 0", a)
	}
	c := color.NRGBAModel.Convert(got.At(10, 14)).(color.NRGBA)
	if c.A != 120 || c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("silhouette pixel = %+v, want black with alpha 120", c)
	}
}

func TestDropShadow_PaddedDimensions(t *testing.T) {
	tests := []struct {
		name               string
		srcW, srcH         int
		offsetX, offsetY   int
		blur               int
		wantW, wantH       int
	}{
		{name: "blur only", srcW: 10, srcH: 10, blur: 6, wantW: 22, wantH: 22},
		{name: "positive offset", srcW: 640, srcH: 640, offsetY: 12, blur: 32, wantW: 704, wantH: 716},
		{name: "negative offset", srcW: 20, srcH: 20, offsetX: -3, wantW: 23, wantH: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := imaging.New(tt.srcW, tt.srcH, color.NRGBA{A: 255})
			got := DropShadow(src, tt.offsetX, tt.offsetY, tt.blur, 110)
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDropShadow_BlurSoftensEdges(t *testing.T) {
	src := imaging.New(10, 10, color.NRGBA{A: 255})

	got := DropShadow(src, 0, 0, 6, 200)

	_, _, _, center := got.At(11, 11).RGBA()
	_, _, _, corner := got.At(0, 0).RGBA()
	if center == 0 {
		t.Fatal("center of blurred shadow is empty")
	}
	if corner >= center {
		t.Errorf("corner alpha %d not softer than center alpha %d", corner, center)
	}
}

func TestDropShadow_IgnoresTransparentPixels(t *testing.T) {
	src := imaging.New(10, 10, color.NRGBA{})
	src.SetNRGBA(5, 5, color.NRGBA{A: 255})

	got := DropShadow(src, 0, 0, 0, 110)

	if _, _, _, a := got.At(0, 0).RGBA(); a != 0 {
		t.Errorf("transparent source pixel cast a shadow, alpha = %d", a)
	}
	if _, _, _, a := got.At(5, 5).RGBA(); a == 0 {
		t.Error("opaque source pixel cast no shadow")
	}
}
