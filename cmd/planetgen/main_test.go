package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/cubeplanet/pkg/planet"
)

func smallMesh(t *testing.T) *planet.MeshBuffer {
	t.Helper()
	cfg := planet.Default()
	cfg.Resolution = 3
	m, err := planet.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return m
}

func TestWriteOBJFile(t *testing.T) {
	m := smallMesh(t)
	path := filepath.Join(t.TempDir(), "planet.obj")

	if err := writeOBJFile(path, m); err != nil {
		t.Fatalf("writeOBJFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(data)
	if got := strings.Count(text, "\nv "); got != len(m.Vertices) {
		t.Errorf("vertex lines = %d, want %d", got, len(m.Vertices))
	}
	if got := strings.Count(text, "\nf "); got != m.TriangleCount() {
		t.Errorf("face lines = %d, want %d", got, m.TriangleCount())
	}
}

func TestWriteOBJFileErrors(t *testing.T) {
	m := smallMesh(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(dir, "nope", "planet.obj")},
		{"path is a directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := writeOBJFile(tt.path, m); err == nil {
				t.Error("writeOBJFile() error = nil, want failure")
			}
		})
	}
}
