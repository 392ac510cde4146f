package internal

import (
	"fmt"
	"unsafe"

	"github.com/BrandonKowalski/bookshelf/pkg/bookshelf/internal/icons"
	"github.com/veandco/go-sdl2/sdl"
)

// IconTexture rasterizes an embedded icon into a white texture of the given
// size. Tint it with SetColorMod. The caller owns the texture.
func IconTexture(renderer *sdl.Renderer, name icons.Name, size int32) (*sdl.Texture, error) {
	rgba, err := icons.Load(name, int(size))
	if err != nil {
		return nil, err
	}

	bounds := rgba.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		32,
		int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
