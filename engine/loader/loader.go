package loader

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
)

// LoaderBackendType identifies the layout file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB layout backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// Layout is a named set of cubes placed in the world.
type Layout struct {
	Name    string
	Objects []game_object.GameObject
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	layoutCache map[string]*Layout

	backend layoutBackend
}

// Loader loads and caches scene layouts. The file format is hidden behind a backend;
// the only backend today reads glTF node transforms.
//
// Cached layouts share their game objects with every caller.
type Loader interface {
	// LoadLayout reads a layout file and caches the result by path.
	// If the path is already cached the cached layout is returned.
	//
	// Parameters:
	//   - path: the file path to the layout document
	//
	// Returns:
	//   - *Layout: the loaded layout
	//   - error: error if the file cannot be opened or decoded
	LoadLayout(path string) (*Layout, error)

	// DecodeLayout reads a layout from a stream and caches it under name.
	//
	// Parameters:
	//   - name: the cache key for the layout
	//   - r: the reader providing the document
	//
	// Returns:
	//   - *Layout: the decoded layout
	//   - error: error if decoding fails
	DecodeLayout(name string, r io.Reader) (*Layout, error)

	// Get retrieves a cached layout by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *Layout: the cached layout or nil
	Get(name string) *Layout

	// Layouts returns a copy of the layout cache.
	//
	// Returns:
	//   - map[string]*Layout: all cached layouts keyed by name
	Layouts() map[string]*Layout
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of layout backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:          sync.RWMutex{},
		layoutCache: make(map[string]*Layout),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) LoadLayout(path string) (*Layout, error) {
	l.mu.RLock()
	if cached, ok := l.layoutCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(l.backend.Extensions(), ext) {
		return nil, fmt.Errorf("unsupported layout format %q for %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout %s: %w", path, err)
	}
	defer f.Close()

	objects, err := l.backend.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	layout := &Layout{Name: path, Objects: objects}
	log.Printf("[Loader] Loaded %d objects from %s", len(objects), path)

	l.mu.Lock()
	l.layoutCache[path] = layout
	l.mu.Unlock()

	return layout, nil
}

func (l *loader) DecodeLayout(name string, r io.Reader) (*Layout, error) {
	l.mu.RLock()
	if cached, ok := l.layoutCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	objects, err := l.backend.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	layout := &Layout{Name: name, Objects: objects}

	l.mu.Lock()
	l.layoutCache[name] = layout
	l.mu.Unlock()

	return layout, nil
}

func (l *loader) Get(name string) *Layout {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.layoutCache[name]
}

func (l *loader) Layouts() map[string]*Layout {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*Layout, len(l.layoutCache))
	for k, v := range l.layoutCache {
		result[k] = v
	}
	return result
}
