package mocks

import (
	"fmt"
	"sync"

	"github.com/user/adposter/pkg/ports"
)

// Logger is a mock implementation of ports.Logger that records messages.
type Logger struct {
	mu sync.Mutex

	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

// NewLogger creates a new mock Logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (m *Logger) Debug(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Debugs = append(m.Debugs, fmt.Sprintf(msg, args...))
}

func (m *Logger) Info(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Infos = append(m.Infos, fmt.Sprintf(msg, args...))
}

func (m *Logger) Warn(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Warns = append(m.Warns, fmt.Sprintf(msg, args...))
}

func (m *Logger) Error(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, fmt.Sprintf(msg, args...))
}

// WithComponent returns the same logger; component prefixes are not
// recorded.
func (m *Logger) WithComponent(component string) ports.Logger {
	return m
}

var _ ports.Logger = (*Logger)(nil)
