package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Renderer abstracts image decoding, encoding and canvas creation.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions.
	// A nil background leaves the canvas transparent.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data, auto-detecting the format (JPEG, PNG, WebP).
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality applies to JPEG only (1-100).
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// DrawImage draws an image at the specified position, alpha-compositing
	// it over whatever is already on the canvas.
	DrawImage(img image.Image, x, y int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawText draws text with (x, y) as the top-left corner of the line.
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Face  font.Face
	Color color.Color
	Align TextAlign
}

// TextAlign specifies horizontal text alignment relative to the anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
