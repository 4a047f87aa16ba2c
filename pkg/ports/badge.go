package ports

import (
	"image"
)

// BadgeMaker produces small auxiliary badge images, such as QR codes,
// for compositing onto a post variant.
type BadgeMaker interface {
	// QRCode renders content as a size×size QR code image.
	QRCode(content string, size int) (image.Image, error)
}
