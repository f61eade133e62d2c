package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an off-screen framebuffer with a sampleable color texture
type RenderTarget struct {
	fbo          uint32
	colorTexture uint32
	depthTexture uint32
	width        int
	height       int
}

// NewRenderTarget allocates a width x height RGBA8 color texture and a 16-bit depth
// texture and attaches them to a fresh framebuffer.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid render target size %dx%d", width, height)
	}
	rt := &RenderTarget{width: width, height: height}

	gl.GenFramebuffers(1, &rt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	gl.GenTextures(1, &rt.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, rt.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, rt.colorTexture, 0)

	gl.GenTextures(1, &rt.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, rt.depthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT16, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, rt.depthTexture, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		rt.Delete()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return rt, nil
}

// Framebuffer returns the GL framebuffer name
func (rt *RenderTarget) Framebuffer() uint32 { return rt.fbo }

// Size returns the attachment dimensions in pixels
func (rt *RenderTarget) Size() (int, int) { return rt.width, rt.height }

// ColorTexture is the texture the target renders color into
func (rt *RenderTarget) ColorTexture() uint32 { return rt.colorTexture }

// Delete releases the framebuffer and its attachments
func (rt *RenderTarget) Delete() {
	DeleteTexture(&rt.colorTexture)
	DeleteTexture(&rt.depthTexture)
	if rt.fbo != 0 {
		gl.DeleteFramebuffers(1, &rt.fbo)
		rt.fbo = 0
	}
}
