package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/cubewalk/common"
	"github.com/Carmen-Shannon/cubewalk/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// colorExtra is the node extras key holding an [r, g, b] or [r, g, b, a] colour.
const colorExtra = "color"

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct{}

// gltfLoaderBackend is a layoutBackend for .gltf and .glb documents.
//
// Only node transforms are read. Every node that has a mesh or no children becomes a cube;
// translation and scale are accumulated from parent nodes, rotation is taken from the node itself.
type gltfLoaderBackend interface {
	layoutBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF layout backend.
//
// Returns:
//   - gltfLoaderBackend: the layout backend for glTF/GLB files
func newGLTFLoaderBackend() gltfLoaderBackend {
	return &gltfLoaderBackendImpl{}
}

func (b *gltfLoaderBackendImpl) Extensions() []string {
	return []string{".gltf", ".glb"}
}

func (b *gltfLoaderBackendImpl) Decode(r io.Reader) ([]game_object.GameObject, error) {
	// NewDocument would seed an empty default scene and hide the scene-less fallback
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode glTF document: %w", err)
	}

	roots, err := sceneRoots(doc)
	if err != nil {
		return nil, err
	}

	w := &layoutWalker{doc: doc, visiting: make(map[int]bool)}
	for _, root := range roots {
		if err := w.walk(root, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}); err != nil {
			return nil, err
		}
	}
	return w.objects, nil
}

// sceneRoots returns the root node indices of the default scene. Documents without scenes
// fall back to every node that is not another node's child.
func sceneRoots(doc *gltf.Document) ([]int, error) {
	if len(doc.Scenes) > 0 {
		index := 0
		if doc.Scene != nil {
			index = int(*doc.Scene)
		}
		if index < 0 || index >= len(doc.Scenes) {
			return nil, fmt.Errorf("default scene %d out of range (%d scenes)", index, len(doc.Scenes))
		}
		roots := make([]int, 0, len(doc.Scenes[index].Nodes))
		for _, n := range doc.Scenes[index].Nodes {
			roots = append(roots, int(n))
		}
		return roots, nil
	}

	isChild := make(map[int]bool)
	for _, node := range doc.Nodes {
		for _, child := range node.Children {
			isChild[int(child)] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots, nil
}

type layoutWalker struct {
	doc      *gltf.Document
	visiting map[int]bool
	objects  []game_object.GameObject
}

func (w *layoutWalker) walk(index int, parentPos, parentScale mgl32.Vec3) error {
	if index < 0 || index >= len(w.doc.Nodes) {
		return fmt.Errorf("node index %d out of range (%d nodes)", index, len(w.doc.Nodes))
	}
	if w.visiting[index] {
		return fmt.Errorf("node %d is part of a cycle", index)
	}
	w.visiting[index] = true
	defer delete(w.visiting, index)

	node := w.doc.Nodes[index]

	local := mgl32.Vec3{float32(node.Translation[0]), float32(node.Translation[1]), float32(node.Translation[2])}
	scale := mgl32.Vec3{float32(node.Scale[0]), float32(node.Scale[1]), float32(node.Scale[2])}
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}

	pos := parentPos.Add(mulElem(parentScale, local))
	scale = mulElem(parentScale, scale)

	if node.Mesh != nil || len(node.Children) == 0 {
		rot := common.NewQuaternion(float32(node.Rotation[3]), float32(node.Rotation[0]), float32(node.Rotation[1]), float32(node.Rotation[2]))
		if rot.LenSqr() == 0 {
			rot = common.IdentityQuaternion()
		}
		axis, angle := rot.Normalize().AxisAngle()

		options := []game_object.GameObjectBuilderOption{
			game_object.WithID(uint64(len(w.objects)) + 1),
			game_object.WithName(node.Name),
			game_object.WithPosition(pos.X(), pos.Y(), pos.Z()),
			game_object.WithScale(scale.X(), scale.Y(), scale.Z()),
			game_object.WithRotation(axis, angle),
		}
		if c, ok := nodeColor(node.Extras); ok {
			options = append(options, game_object.WithColor(c))
		}
		w.objects = append(w.objects, game_object.NewGameObject(options...))
	}

	for _, child := range node.Children {
		if err := w.walk(int(child), pos, scale); err != nil {
			return err
		}
	}
	return nil
}

// nodeColor reads extras.color as three or four numbers in 0..1.
func nodeColor(extras any) ([4]float32, bool) {
	m, ok := extras.(map[string]any)
	if !ok {
		return [4]float32{}, false
	}
	raw, ok := m[colorExtra].([]any)
	if !ok || len(raw) < 3 || len(raw) > 4 {
		return [4]float32{}, false
	}
	c := [4]float32{1, 1, 1, 1}
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return [4]float32{}, false
		}
		c[i] = mgl32.Clamp(float32(f), 0, 1)
	}
	return c, true
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
