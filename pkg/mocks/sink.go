package mocks

import (
	"image"
	"sync"

	"github.com/user/adposter/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Tiles       map[int]image.Image
	Layers      map[string]image.Image // keyed "variant/name"
	VariantJSON []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Tiles:   make(map[int]image.Image),
		Layers:  make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveCollageTile(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tiles[index] = img
	return nil
}

func (m *DebugSink) SaveLayer(variant, name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layers[variant+"/"+name] = img
	return nil
}

func (m *DebugSink) SaveVariantJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VariantJSON = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
