package assets

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"mirror-demo/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cubemap face order matches GL_TEXTURE_CUBE_MAP_POSITIVE_X + i.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	NumFaces
)

// Manifest names the files the demo needs before its first frame.
type Manifest struct {
	Dir          string
	CubemapFaces [NumFaces]string
	ModelTexture string
	Distortion   string
	// MaxTextureSize bounds every decoded image's larger side; 0 disables the bound.
	MaxTextureSize int
}

// DefaultManifest lists the demo's images under dir.
func DefaultManifest(dir string) Manifest {
	return Manifest{
		Dir:          dir,
		CubemapFaces: [NumFaces]string{"px.jpg", "nx.jpg", "py.jpg", "ny.jpg", "pz.jpg", "nz.jpg"},
		ModelTexture: "happyface2.jpeg",
		Distortion:   "noise.png",
	}
}

// Bundle holds every decoded image, ready for upload.
type Bundle struct {
	Cubemap      [NumFaces]*image.RGBA
	ModelTexture *image.RGBA
	Distortion   *image.RGBA
}

// Load fetches and decodes all images of m concurrently. The first failure cancels the
// remaining work and is returned; there is no partial bundle.
func Load(ctx context.Context, m Manifest) (*Bundle, error) {
	log, ctx := logging.SubFrom(ctx, "assets")
	start := time.Now()

	var b Bundle
	g, ctx := errgroup.WithContext(ctx)

	load := func(name string, dst **image.RGBA) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(m.Dir, name)
			img, mime, err := DecodeFile(path, m.MaxTextureSize)
			if err != nil {
				return err
			}
			*dst = img
			log.Debug("Decoded image",
				zap.String("file", name),
				zap.String("mime", mime),
				zap.Int("width", img.Rect.Dx()),
				zap.Int("height", img.Rect.Dy()))
			return nil
		})
	}

	for i, name := range m.CubemapFaces {
		load(name, &b.Cubemap[i])
	}
	load(m.ModelTexture, &b.ModelTexture)
	load(m.Distortion, &b.Distortion)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if err := b.validateCubemap(); err != nil {
		return nil, err
	}

	log.Info("Assets loaded", zap.Duration("took", time.Since(start)))
	return &b, nil
}

// validateCubemap enforces what GL requires of cube faces: square and equal sizes.
func (b *Bundle) validateCubemap() error {
	size := b.Cubemap[0].Rect.Size()
	for i, face := range b.Cubemap {
		s := face.Rect.Size()
		if s.X != s.Y {
			return fmt.Errorf("cubemap face %d is not square: %dx%d", i, s.X, s.Y)
		}
		if s != size {
			return fmt.Errorf("cubemap face %d is %dx%d, face 0 is %dx%d", i, s.X, s.Y, size.X, size.Y)
		}
	}
	return nil
}
