// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxTextureEdge is the largest width or height a decoded texture is allowed to keep.
// Larger images are resampled down, preserving aspect ratio.
const MaxTextureEdge = 1024

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero fields fall back to linear filtering with repeat addressing.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// LoadTexture opens and decodes an image file into RGBA staging data.
// Supports PNG, JPEG, BMP and WebP.
//
// Parameters:
//   - path: the image file path
//
// Returns:
//   - TextureStagingData: the decoded pixels
//   - error: error if the file cannot be opened or decoded
func LoadTexture(path string) (TextureStagingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	data, err := DecodeTexture(file)
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}
	return data, nil
}

// DecodeTexture decodes an image stream into RGBA staging data. Images with an edge longer
// than MaxTextureEdge are resampled with a bilinear filter.
//
// Parameters:
//   - r: the encoded image stream
//
// Returns:
//   - TextureStagingData: the decoded pixels
//   - error: error if the stream is not a supported image
func DecodeTexture(r io.Reader) (TextureStagingData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return TextureStagingData{}, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return TextureStagingData{}, fmt.Errorf("image has no pixels")
	}

	if width > MaxTextureEdge || height > MaxTextureEdge {
		if width >= height {
			height = max(1, height*MaxTextureEdge/width)
			width = MaxTextureEdge
		} else {
			width = max(1, width*MaxTextureEdge/height)
			height = MaxTextureEdge
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	}

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}, nil
}

// CheckerTexture generates a size x size checkerboard with cells x cells squares alternating
// between a and b. Used when no texture file is configured.
//
// Parameters:
//   - size: the texture edge length in pixels
//   - cells: the number of squares along each edge
//   - a, b: the two square colours
//
// Returns:
//   - TextureStagingData: the generated pixels
func CheckerTexture(size, cells int, a, b color.RGBA) TextureStagingData {
	size = max(size, 1)
	cells = max(cells, 1)
	cell := max(size/cells, 1)

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			rgba.SetRGBA(x, y, c)
		}
	}

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(size),
		Height: uint32(size),
	}
}
