package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate composition results.
// Placeholder substitution and layer assembly are otherwise invisible in
// the final JPEG; the sink makes them observable.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveCollageTile saves one prepared collage tile before pasting.
	SaveCollageTile(index int, img image.Image) error

	// SaveLayer saves an intermediate layer (gradient, card, shadow)
	// of a post variant.
	SaveLayer(variant, name string, img image.Image) error

	// SaveVariantJSON saves the variant geometry summary as JSON.
	SaveVariantJSON(data []byte) error
}
