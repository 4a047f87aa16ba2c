package pipeline

import (
	"image/color"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// Offset represents an (x, y) pixel offset. Coordinates may be negative
// during shadow placement, since a shadow extends beyond its subject.
type Offset struct {
	X int
	Y int
}

// Gradient describes a vertical two-stop gradient.
type Gradient struct {
	Start color.NRGBA
	End   color.NRGBA
}

// DefaultGradient returns the dark slate gradient used by the branded posts.
func DefaultGradient() Gradient {
	return Gradient{
		Start: color.NRGBA{R: 21, G: 27, B: 36, A: 255},
		End:   color.NRGBA{R: 10, G: 12, B: 18, A: 255},
	}
}

// =============================================================================
// Ad Text
// =============================================================================

// AdText carries the textual ad attributes overlaid on post images.
// All fields are optional; empty strings render as empty text.
// The engine performs no validation, that is the submitting service's job.
type AdText struct {
	Model     string
	Year      string
	Price     string
	PriceType string
	Condition string
	Location  string
	Phone     string
	SiteName  string
}

// NewAdText builds AdText from the loosely-typed field mapping supplied
// by the ad submission service. Unknown keys are ignored.
func NewAdText(fields map[string]string) AdText {
	return AdText{
		Model:     fields["model"],
		Year:      fields["manufacture_year"],
		Price:     fields["price"],
		PriceType: fields["price_type"],
		Condition: fields["condition"],
		Location:  fields["location"],
		Phone:     fields["phone"],
		SiteName:  fields["site_name"],
	}
}

// Site returns the site name, defaulting to the store brand when unset.
func (t AdText) Site() string {
	if t.SiteName == "" {
		return "Ganudenu.store"
	}
	return t.SiteName
}

// =============================================================================
// Collage Stage Types
// =============================================================================

// CollageInput contains parameters for the 3x3 collage composer.
type CollageInput struct {
	// Paths is the ordered sequence of source photo paths. At most the
	// first nine are used; fewer are repeated cyclically to fill the grid.
	Paths []string

	// OutputPath is the destination JPEG path.
	OutputPath string

	// Canvas is the output size. Zero means the 1080x1080 default.
	Canvas Dimension

	// Quality is the JPEG quality. Zero means 90.
	Quality int
}

// DefaultCollageInput returns CollageInput with default values.
func DefaultCollageInput() CollageInput {
	return CollageInput{
		Canvas:  Dimension{Width: 1080, Height: 1080},
		Quality: 90,
	}
}

// CollageResult contains the collage composer output.
type CollageResult struct {
	// OutputPath is the absolute path of the written JPEG.
	OutputPath string

	// PlaceholderSlots lists the grid slots (0-8, row-major) where the
	// source photo could not be decoded and a gray tile was substituted.
	PlaceholderSlots []int
}

// =============================================================================
// Post Stage Types
// =============================================================================

// PostInput contains parameters for the branded post composer.
type PostInput struct {
	// Paths is the ordered photo sequence; only the first is used as the
	// hero image.
	Paths []string

	// OutDir is the directory receiving the three variant JPEGs.
	OutDir string

	// Text holds the overlaid ad attributes.
	Text AdText

	// Background is the gradient behind every variant.
	// A zero value means DefaultGradient.
	Background Gradient

	// Quality is the JPEG quality. Zero means 90.
	Quality int

	// QR draws a scannable contact badge on the wide banner when the
	// phone field is set. Requires a BadgeMaker on the stage.
	QR bool
}

// DefaultPostInput returns PostInput with default values.
func DefaultPostInput() PostInput {
	return PostInput{
		Background: DefaultGradient(),
		Quality:    90,
	}
}

// PostResult contains the post composer output.
type PostResult struct {
	// Outputs maps variant name to the absolute path of the written JPEG.
	// The keys are exactly modern_square_1080, portrait_1200x1500 and
	// link_1200x628.
	Outputs map[string]string

	// HeroFallback is true when the hero photo could not be decoded and a
	// solid placeholder canvas was used instead.
	HeroFallback bool
}
