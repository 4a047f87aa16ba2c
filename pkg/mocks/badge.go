package mocks

import (
	"image"
	"sync"

	"github.com/user/adposter/pkg/ports"
)

// BadgeMaker is a mock implementation of ports.BadgeMaker.
type BadgeMaker struct {
	mu sync.Mutex

	Err      error
	Contents []string
}

// NewBadgeMaker creates a new mock BadgeMaker.
func NewBadgeMaker() *BadgeMaker {
	return &BadgeMaker{}
}

func (m *BadgeMaker) QRCode(content string, size int) (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Contents = append(m.Contents, content)
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

var _ ports.BadgeMaker = (*BadgeMaker)(nil)
