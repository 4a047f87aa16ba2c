// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/adposter/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveCollageTile does nothing.
func (s *Sink) SaveCollageTile(index int, img image.Image) error {
	return nil
}

// SaveLayer does nothing.
func (s *Sink) SaveLayer(variant, name string, img image.Image) error {
	return nil
}

// SaveVariantJSON does nothing.
func (s *Sink) SaveVariantJSON(data []byte) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
