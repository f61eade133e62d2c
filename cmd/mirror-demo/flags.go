package main

import (
	"flag"
	"io"

	"mirror-demo/internal/config"
)

func parseFlags(args []string, output io.Writer) (config.Settings, error) {
	s := config.Default()

	fs := flag.NewFlagSet("mirror-demo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&s.AssetsDir, "assets", s.AssetsDir, "Directory holding images/ and shaders/")
	fs.StringVar(&s.ModelPath, "model", s.ModelPath, "glTF or GLB model to place in front of the mirror")
	fs.IntVar(&s.WindowWidth, "width", s.WindowWidth, "Window width in screen coordinates")
	fs.IntVar(&s.WindowHeight, "height", s.WindowHeight, "Window height in screen coordinates")
	fs.Float64Var(&s.ReflectionScale, "reflection-scale", s.ReflectionScale, "Reflection target size relative to the framebuffer (0.1-1)")
	fs.Float64Var(&s.DistortionStrength, "distortion", s.DistortionStrength, "Mirror distortion strength (0-1)")
	fs.IntVar(&s.FPSLimit, "fps", s.FPSLimit, "Frame rate cap, 0 for unlimited")
	fs.StringVar(&s.MetricsAddr, "metrics-addr", s.MetricsAddr, "Serve /metrics and /debug/frame on this address; empty disables")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "Human readable debug logging")

	if err := fs.Parse(args); err != nil {
		return config.Settings{}, err
	}
	return s, s.Validate()
}
