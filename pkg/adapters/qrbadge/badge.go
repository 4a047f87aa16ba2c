// Package qrbadge generates QR code badges for post variants.
package qrbadge

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/user/adposter/pkg/ports"
)

// Maker implements ports.BadgeMaker using go-qrcode.
type Maker struct{}

// New creates a new Maker.
func New() *Maker {
	return &Maker{}
}

// QRCode renders content as a size×size QR code image.
func (m *Maker) QRCode(content string, size int) (image.Image, error) {
	data, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode QR code: %w", err)
	}
	return img, nil
}

// Ensure Maker implements ports.BadgeMaker
var _ ports.BadgeMaker = (*Maker)(nil)
