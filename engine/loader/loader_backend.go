package loader

import (
	"io"

	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
)

// layoutBackend defines the generic interface for decoding a scene layout from a stream.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type layoutBackend interface {
	// Decode reads a full document and converts its node hierarchy into game objects.
	//
	// Parameters:
	//   - r: the reader providing the document
	//
	// Returns:
	//   - []game_object.GameObject: one object per placed node, in traversal order
	//   - error: error if the document cannot be decoded
	Decode(r io.Reader) ([]game_object.GameObject, error)

	// Extensions returns the lower-case file extensions this backend accepts, dot included.
	//
	// Returns:
	//   - []string: accepted extensions
	Extensions() []string
}
