// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/adposter/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveCollageTile saves one prepared collage tile as PNG.
func (s *Sink) SaveCollageTile(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "tiles")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode tile: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("tile-%02d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveLayer saves an intermediate post layer as PNG.
func (s *Sink) SaveLayer(variant, name string, img image.Image) error {
	dir := filepath.Join(s.baseDir, "layers", variant)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode layer: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	return s.fs.WriteFile(path, data)
}

// SaveVariantJSON saves the variant geometry summary as JSON.
func (s *Sink) SaveVariantJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "variants.json")
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
