package mocks

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/adposter/pkg/ports"
)

// FontResolver is a mock implementation of ports.FontResolver that
// always returns the fixed-size bitmap face and records requested sizes.
type FontResolver struct {
	mu    sync.Mutex
	Sizes []float64
}

// NewFontResolver creates a new mock FontResolver.
func NewFontResolver() *FontResolver {
	return &FontResolver{}
}

func (m *FontResolver) Resolve(points float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sizes = append(m.Sizes, points)
	return basicfont.Face7x13
}

var _ ports.FontResolver = (*FontResolver)(nil)
