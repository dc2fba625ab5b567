package main

import (
	"github.com/Faultbox/cubeplanet/pkg/noise"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// maxLayers caps the editor's layer list.
const maxLayers = 8

// addLayer appends a unit layer with the next unused seed.
func addLayer(cfg planet.Config) (planet.Config, bool) {
	if len(cfg.Layers) >= maxLayers {
		return cfg, false
	}
	var seed int64
	for _, l := range cfg.Layers {
		seed = max(seed, l.Seed+1)
	}
	cfg = cfg.Clone()
	cfg.Layers = append(cfg.Layers, noise.Layer{Seed: seed, Amplitude: 1, Frequency: 1})
	return cfg, true
}

// removeLayer drops layer i. The last layer cannot be removed.
func removeLayer(cfg planet.Config, i int) (planet.Config, bool) {
	if len(cfg.Layers) <= 1 || i < 0 || i >= len(cfg.Layers) {
		return cfg, false
	}
	cfg = cfg.Clone()
	cfg.Layers = append(cfg.Layers[:i], cfg.Layers[i+1:]...)
	return cfg, true
}

// moveLayer swaps layer i with its neighbour in direction dir (-1 or +1).
// Order matters: masked layers test the layers before them.
func moveLayer(cfg planet.Config, i, dir int) (planet.Config, bool) {
	j := i + dir
	if i < 0 || i >= len(cfg.Layers) || j < 0 || j >= len(cfg.Layers) {
		return cfg, false
	}
	cfg = cfg.Clone()
	cfg.Layers[i], cfg.Layers[j] = cfg.Layers[j], cfg.Layers[i]
	return cfg, true
}

// faceLabels names the face toggles in face order.
func faceLabels() []string {
	labels := make([]string, planet.FaceCount)
	for f := range planet.FaceCount {
		labels[f] = planet.Face(f).String()
	}
	return labels
}
