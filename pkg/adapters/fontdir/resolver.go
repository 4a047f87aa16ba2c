// Package fontdir resolves scalable fonts from well-known system
// locations, falling back to the embedded Go fonts when none load.
package fontdir

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/user/adposter/pkg/ports"
)

// defaultCandidates lists known font files, bold-preferred, across the
// platform font directories the service is deployed on.
var defaultCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// Resolver implements ports.FontResolver with a process-wide, lazily
// initialized cache. Font availability does not change at runtime, so
// the source font is probed once and faces are cached per point size.
type Resolver struct {
	candidates []string

	mu     sync.Mutex
	source *opentype.Font
	probed bool
	faces  map[float64]font.Face
}

// New creates a Resolver probing the default platform font locations.
func New() *Resolver {
	return NewWithCandidates(defaultCandidates)
}

// NewWithCandidates creates a Resolver probing the given font files in order.
func NewWithCandidates(candidates []string) *Resolver {
	return &Resolver{
		candidates: candidates,
		faces:      make(map[float64]font.Face),
	}
}

// Resolve returns a face for the given point size. It never fails: if no
// candidate file loads, the embedded Go fonts are used, and if face
// creation itself fails, a fixed-size bitmap face is returned.
func (r *Resolver) Resolve(points float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()

	if face, ok := r.faces[points]; ok {
		return face
	}

	if !r.probed {
		r.source = r.probe()
		r.probed = true
	}

	face := r.newFace(points)
	r.faces[points] = face
	return face
}

// probe returns the first parseable candidate font, or an embedded one.
func (r *Resolver) probe() *opentype.Font {
	for _, path := range r.candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		return f
	}

	for _, data := range [][]byte{gobold.TTF, goregular.TTF} {
		if f, err := opentype.Parse(data); err == nil {
			return f
		}
	}
	return nil
}

func (r *Resolver) newFace(points float64) font.Face {
	if r.source != nil {
		face, err := opentype.NewFace(r.source, &opentype.FaceOptions{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	// Last resort: a small fixed-size bitmap face. Callers tolerate the
	// smaller glyphs without erroring.
	return basicfont.Face7x13
}

// Ensure Resolver implements ports.FontResolver
var _ ports.FontResolver = (*Resolver)(nil)
