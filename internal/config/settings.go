package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Settings is the startup configuration assembled from command-line flags
type Settings struct {
	AssetsDir string
	ModelPath string

	WindowWidth  int
	WindowHeight int

	ReflectionScale    float64
	DistortionStrength float64
	FPSLimit           int

	MetricsAddr string
	Debug       bool
}

// Default returns the settings the demo ships with
func Default() Settings {
	return Settings{
		AssetsDir:          "assets",
		ModelPath:          filepath.Join("assets", "models", "brofist.glb"),
		WindowWidth:        900,
		WindowHeight:       600,
		ReflectionScale:    0.5,
		DistortionStrength: 0.03,
		FPSLimit:           120,
	}
}

// ImagesDir is where textures and cubemap faces are fetched from
func (s Settings) ImagesDir() string {
	return filepath.Join(s.AssetsDir, "images")
}

// ShadersDir holds one sub-directory of GLSL sources per renderable
func (s Settings) ShadersDir() string {
	return filepath.Join(s.AssetsDir, "shaders")
}

// Validate rejects settings that cannot produce a window
func (s Settings) Validate() error {
	var errs []error
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", s.WindowWidth, s.WindowHeight))
	}
	if s.AssetsDir == "" {
		errs = append(errs, errors.New("assets directory is empty"))
	}
	if s.ModelPath == "" {
		errs = append(errs, errors.New("model path is empty"))
	}
	return errors.Join(errs...)
}

// Apply pushes the runtime tunables into the global render settings
func (s Settings) Apply() {
	SetReflectionScale(float32(s.ReflectionScale))
	SetDistortionStrength(float32(s.DistortionStrength))
	SetFPSLimit(s.FPSLimit)
}
