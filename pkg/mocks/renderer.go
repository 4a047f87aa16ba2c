package mocks

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/user/adposter/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height, bg)
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas. It composites drawn
// images into a real RGBA buffer and records text draws.
type Canvas struct {
	Img       *image.RGBA
	TextDraws []TextDraw
	RectDraws []RectDraw
}

// TextDraw records one DrawText call.
type TextDraw struct {
	Text string
	X, Y int
}

// RectDraw records one DrawRect or DrawRoundedRect call.
type RectDraw struct {
	X, Y, W, H int
	Radius     int
}

// NewCanvas creates a new mock Canvas.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &Canvas{Img: img}
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(m.Img, r, img, b.Min, draw.Over)
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.RectDraws = append(m.RectDraws, RectDraw{X: x, Y: y, W: w, H: h})
	draw.Draw(m.Img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.RectDraws = append(m.RectDraws, RectDraw{X: x, Y: y, W: w, H: h, Radius: radius})
	draw.Draw(m.Img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Over)
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.TextDraws = append(m.TextDraws, TextDraw{Text: text, X: x, Y: y})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(7 * len(text)), 13
}

func (m *Canvas) ToImage() image.Image {
	return m.Img
}

var _ ports.Canvas = (*Canvas)(nil)
