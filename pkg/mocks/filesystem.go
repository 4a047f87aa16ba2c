// Package mocks provides hand-written mock implementations of the ports.
package mocks

import (
	"os"
	"sync"

	"github.com/user/adposter/pkg/ports"
)

// FileSystem is an in-memory mock implementation of ports.FileSystem.
type FileSystem struct {
	mu sync.Mutex

	Files    map[string][]byte
	Dirs     map[string]bool
	ReadErrs map[string]error
	WriteErr error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		Files:    make(map[string][]byte),
		Dirs:     make(map[string]bool),
		ReadErrs: make(map[string]error),
	}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.ReadErrs[path]; ok {
		return nil, err
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = data
	return nil
}

func (m *FileSystem) WriteFileAtomic(path string, data []byte) error {
	return m.WriteFile(path, data)
}

func (m *FileSystem) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Dirs[path] = true
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Files[path]; ok {
		return true, nil
	}
	return m.Dirs[path], nil
}

func (m *FileSystem) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Files, path)
	delete(m.Dirs, path)
	return nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
