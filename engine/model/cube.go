package model

// cubeFaces lists each face's outward normal and its four corners counter-clockwise when
// viewed from outside, starting bottom-left in texture space.
var cubeFaces = []struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{[3]float32{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{[3]float32{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
}

var cubeUVs = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// NewCubeModel builds a cube spanning -1..1 on every axis with per-face normals and UVs:
// 24 vertices and 36 indices wound counter-clockwise.
//
// Returns:
//   - Model: the cube model
func NewCubeModel() Model {
	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, face := range cubeFaces {
		base := uint32(len(vertices))
		for i, corner := range face.corners {
			vertices = append(vertices, GPUVertex{
				Position: corner,
				Normal:   face.normal,
				TexCoord: cubeUVs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return NewModel(WithName("cube"), WithVertices(vertices), WithIndices(indices))
}
