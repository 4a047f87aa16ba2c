package post

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/user/adposter/pkg/pipeline"
)

// Variant names double as output file basenames.
const (
	VariantSquare   = "modern_square_1080"
	VariantPortrait = "portrait_1200x1500"
	VariantBanner   = "link_1200x628"
)

// Shared palette of the branded layouts.
var (
	titleColor = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	mutedColor = color.NRGBA{R: 156, G: 163, B: 175, A: 255}
	whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	brandBlue  = color.NRGBA{R: 59, G: 130, B: 246, A: 255}
	brandInk   = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	bandFill   = color.NRGBA{R: 24, G: 31, B: 44, A: 255}
)

// shadowSpec holds drop shadow synthesis parameters.
type shadowSpec struct {
	OffsetX int
	OffsetY int
	Blur    int
	Opacity int
}

// rectSpec is a filled rounded rectangle drawn between the hero and the
// text entries (branding chips, info bands, call buttons).
type rectSpec struct {
	X, Y, W, H int
	Radius     int
	Fill       color.Color
}

// textEntry renders one line of ad text at a fixed position.
type textEntry struct {
	Render func(t pipeline.AdText) string
	X, Y   int
	Points float64
	Color  color.Color
}

// variantSpec is the immutable layout description of one output variant.
type variantSpec struct {
	Name         string
	Canvas       pipeline.Dimension
	HeroBox      pipeline.Dimension
	HeroAt       pipeline.Offset
	ShadowAt     pipeline.Offset
	Shadow       shadowSpec
	CornerRadius int
	Rects        []rectSpec
	Entries      []textEntry
	QRAt         pipeline.Offset
	QRSize       int // zero means no QR slot on this variant
}

func title(t pipeline.AdText) string {
	return strings.TrimSpace(t.Model + " " + t.Year)
}

func priceLine(t pipeline.AdText) string {
	return fmt.Sprintf("%s (%s)", t.Price, t.PriceType)
}

// variantSpecs drives the composer: one parameterized pass per record
// instead of three hand-duplicated drawing procedures.
var variantSpecs = []variantSpec{
	{
		Name:         VariantSquare,
		Canvas:       pipeline.Dimension{Width: 1080, Height: 1080},
		HeroBox:      pipeline.Dimension{Width: 640, Height: 640},
		HeroAt:       pipeline.Offset{X: 80, Y: 140},
		ShadowAt:     pipeline.Offset{X: 64, Y: 136},
		Shadow:       shadowSpec{OffsetX: 0, OffsetY: 12, Blur: 32, Opacity: 110},
		CornerRadius: 28,
		Rects: []rectSpec{
			{X: 60, Y: 60, W: 260, H: 60, Radius: 18, Fill: brandBlue},
		},
		Entries: []textEntry{
			{Render: title, X: 760, Y: 160, Points: 64, Color: titleColor},
			{Render: func(t pipeline.AdText) string { return "Price: " + priceLine(t) }, X: 760, Y: 248, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return "Condition: " + t.Condition }, X: 760, Y: 298, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return "Location: " + t.Location }, X: 760, Y: 348, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return "Contact: " + t.Phone }, X: 760, Y: 398, Points: 36, Color: mutedColor},
			{Render: pipeline.AdText.Site, X: 76, Y: 70, Points: 28, Color: whiteColor},
		},
	},
	{
		Name:         VariantPortrait,
		Canvas:       pipeline.Dimension{Width: 1200, Height: 1500},
		HeroBox:      pipeline.Dimension{Width: 1100, Height: 900},
		HeroAt:       pipeline.Offset{X: 60, Y: 100},
		ShadowAt:     pipeline.Offset{X: 50, Y: 90},
		Shadow:       shadowSpec{OffsetX: 0, OffsetY: 10, Blur: 28, Opacity: 110},
		CornerRadius: 24,
		Rects: []rectSpec{
			{X: 60, Y: 1050, W: 1080, H: 370, Radius: 22, Fill: bandFill},
		},
		Entries: []textEntry{
			{Render: title, X: 90, Y: 1090, Points: 64, Color: titleColor},
			{Render: priceLine, X: 90, Y: 1160, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return t.Condition + " • " + t.Location }, X: 90, Y: 1210, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return "Contact: " + t.Phone }, X: 90, Y: 1260, Points: 36, Color: mutedColor},
			{Render: pipeline.AdText.Site, X: 940, Y: 1260, Points: 28, Color: brandInk},
		},
	},
	{
		Name:         VariantBanner,
		Canvas:       pipeline.Dimension{Width: 1200, Height: 628},
		HeroBox:      pipeline.Dimension{Width: 760, Height: 560},
		HeroAt:       pipeline.Offset{X: 50, Y: 40},
		ShadowAt:     pipeline.Offset{X: 40, Y: 34},
		Shadow:       shadowSpec{OffsetX: 0, OffsetY: 8, Blur: 22, Opacity: 110},
		CornerRadius: 22,
		Rects: []rectSpec{
			{X: 840, Y: 300, W: 300, H: 60, Radius: 18, Fill: brandBlue},
		},
		Entries: []textEntry{
			{Render: title, X: 840, Y: 60, Points: 64, Color: titleColor},
			{Render: priceLine, X: 840, Y: 140, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return t.Condition }, X: 840, Y: 190, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return t.Location }, X: 840, Y: 240, Points: 36, Color: mutedColor},
			{Render: func(t pipeline.AdText) string { return "Call " + t.Phone }, X: 860, Y: 312, Points: 28, Color: whiteColor},
		},
		QRAt:   pipeline.Offset{X: 1020, Y: 430},
		QRSize: 140,
	},
}

// variantSummary is the sink-facing geometry description of one variant.
type variantSummary struct {
	Name         string             `json:"name"`
	Canvas       pipeline.Dimension `json:"canvas"`
	HeroBox      pipeline.Dimension `json:"hero_box"`
	HeroAt       pipeline.Offset    `json:"hero_at"`
	ShadowBlur   int                `json:"shadow_blur"`
	CornerRadius int                `json:"corner_radius"`
	TextEntries  int                `json:"text_entries"`
}

func summarizeVariants() []variantSummary {
	out := make([]variantSummary, 0, len(variantSpecs))
	for _, v := range variantSpecs {
		out = append(out, variantSummary{
			Name:         v.Name,
			Canvas:       v.Canvas,
			HeroBox:      v.HeroBox,
			HeroAt:       v.HeroAt,
			ShadowBlur:   v.Shadow.Blur,
			CornerRadius: v.CornerRadius,
			TextEntries:  len(v.Entries),
		})
	}
	return out
}
