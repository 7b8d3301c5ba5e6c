// Package texture loads and caches textures by name.
package texture

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Handle identifies a loaded texture. The zero Handle is invalid.
type Handle uint32

// Manager is a concurrency-safe texture store. Textures are looked up
// relative to Dir and cached by resolved path, so loading the same name
// twice returns the same handle.
type Manager struct {
	Dir string
	log *zap.Logger

	mu     sync.RWMutex
	byPath map[string]Handle
	images []*image.NRGBA // index = Handle-1
}

// NewManager creates a manager rooted at dir. A nil logger discards output.
func NewManager(dir string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		Dir:    dir,
		log:    log,
		byPath: make(map[string]Handle),
	}
}

// Load returns a handle for name. If the file is missing or undecodable
// a checker texture is stored in its place and the failure is logged.
func (m *Manager) Load(name string) Handle {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Dir, name)
	}

	// Fast path: read lock
	m.mu.RLock()
	if h, ok := m.byPath[path]; ok {
		m.mu.RUnlock()
		return h
	}
	m.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.log.Warn("texture not found, using checker", zap.String("path", path))
		} else {
			m.log.Error("texture load failed, using checker", zap.String("path", path), zap.Error(err))
		}
		img = Checker(64, 8, color.NRGBA{R: 230, G: 230, B: 230, A: 255}, color.NRGBA{R: 200, G: 60, B: 60, A: 255})
	}

	// Write lock with double-check
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.byPath[path]; ok {
		return h
	}
	m.images = append(m.images, img)
	h := Handle(len(m.images))
	m.byPath[path] = h
	m.log.Debug("texture loaded", zap.String("path", path), zap.Uint32("handle", uint32(h)))
	return h
}

// Get returns the image for h, or nil for an unknown handle.
func (m *Manager) Get(h Handle) *image.NRGBA {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h == 0 || int(h) > len(m.images) {
		return nil
	}
	return m.images[h-1]
}

// Len returns the number of loaded textures.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.images)
}
