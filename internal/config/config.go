package config

import "sync"

// RenderSettings holds the tunables read by the render loop
type RenderSettings struct {
	mu                 sync.RWMutex
	reflectionScale    float32 // fraction of the viewport used by the reflection target
	distortionStrength float32
	fpsLimit           int // 0 = unlimited
}

var globalRenderSettings = &RenderSettings{
	reflectionScale:    0.5,
	distortionStrength: 0.03,
	fpsLimit:           120,
}

// GetReflectionScale returns the reflection target's size relative to the viewport
func GetReflectionScale() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.reflectionScale
}

// SetReflectionScale sets the reflection target scale
func SetReflectionScale(scale float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Below 0.1 the reflection is a smear; above 1 it is wasted fill rate
	if scale < 0.1 {
		scale = 0.1
	}
	if scale > 1 {
		scale = 1
	}

	globalRenderSettings.reflectionScale = scale
}

// GetDistortionStrength returns the mirror distortion factor
func GetDistortionStrength() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.distortionStrength
}

// SetDistortionStrength sets the mirror distortion factor
func SetDistortionStrength(strength float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}

	globalRenderSettings.distortionStrength = strength
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}
