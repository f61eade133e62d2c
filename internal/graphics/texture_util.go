package graphics

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TextureOptions controls sampling of a 2D texture
type TextureOptions struct {
	Wrap    int32 // gl.REPEAT, gl.CLAMP_TO_EDGE, ...
	Mipmaps bool
}

// NewTexture2D uploads img as an RGBA8 texture with linear filtering
func NewTexture2D(img *image.RGBA, opts TextureOptions) (uint32, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("empty texture image")
	}
	if opts.Wrap == 0 {
		opts.Wrap = gl.CLAMP_TO_EDGE
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap)
	if opts.Mipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows are tightly packed; odd widths would otherwise be read with 4-byte padding
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture, nil
}

// NewCubemap uploads six square faces ordered +X, -X, +Y, -Y, +Z, -Z
func NewCubemap(faces [6]*image.RGBA) (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	for i, face := range faces {
		if face == nil {
			gl.DeleteTextures(1, &texture)
			return 0, fmt.Errorf("cubemap face %d missing", i)
		}
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA8,
			int32(face.Rect.Dx()),
			int32(face.Rect.Dy()),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(face.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return texture, nil
}

// BindTexture binds texture to the given unit
func BindTexture(unit uint32, target uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(target, texture)
}

// DeleteTexture releases a texture and zeroes the handle
func DeleteTexture(texture *uint32) {
	if *texture != 0 {
		gl.DeleteTextures(1, texture)
		*texture = 0
	}
}

// MaxTextureSize queries GL_MAX_TEXTURE_SIZE from the current context
func MaxTextureSize() int {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return int(size)
}
