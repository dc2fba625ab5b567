package planet

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/cubeplanet/pkg/math"
	"github.com/Faultbox/cubeplanet/pkg/noise"
)

func smallConfig(res int) Config {
	cfg := Default()
	cfg.Resolution = res
	return cfg
}

func mustGenerate(t *testing.T, cfg Config) *MeshBuffer {
	t.Helper()
	m, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return m
}

func TestGenerateCounts(t *testing.T) {
	for _, res := range []int{2, 3, 8, 17} {
		m := mustGenerate(t, smallConfig(res))

		wantVerts := 6 * res * res
		wantIdx := 36 * (res - 1) * (res - 1)
		if len(m.Vertices) != wantVerts {
			t.Errorf("res %d: vertices = %d, want %d", res, len(m.Vertices), wantVerts)
		}
		if len(m.Indices) != wantIdx {
			t.Errorf("res %d: indices = %d, want %d", res, len(m.Indices), wantIdx)
		}
		if m.TriangleCount() != wantIdx/3 {
			t.Errorf("res %d: triangles = %d, want %d", res, m.TriangleCount(), wantIdx/3)
		}
		if len(m.Faces) != FaceCount {
			t.Fatalf("res %d: faces = %d, want %d", res, len(m.Faces), FaceCount)
		}
	}
}

func TestGenerateMinimumResolution(t *testing.T) {
	m := mustGenerate(t, smallConfig(2))

	for _, r := range m.Faces {
		if r.VertexCount != 4 || r.IndexCount != 6 {
			t.Errorf("face %v: %d vertices %d indices, want 4 and 6", r.Face, r.VertexCount, r.IndexCount)
		}
		got := m.FaceIndices(r)
		b := r.BaseVertex
		want := []uint32{b, b + 2, b + 1, b + 2, b + 3, b + 1}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("face %v indices = %v, want %v", r.Face, got, want)
				break
			}
		}
	}
}

func TestGenerateIndicesStayInFace(t *testing.T) {
	m := mustGenerate(t, smallConfig(9))

	for f, r := range m.Faces {
		if r.Face != Face(f) {
			t.Errorf("Faces[%d].Face = %v", f, r.Face)
		}
		for _, idx := range m.FaceIndices(r) {
			if int(idx) >= len(m.Vertices) {
				t.Fatalf("index %d out of range", idx)
			}
			if !r.Contains(idx) {
				t.Fatalf("face %v references vertex %d outside [%d, %d)",
					r.Face, idx, r.BaseVertex, r.BaseVertex+r.VertexCount)
			}
		}
	}
}

func TestGenerateFlatSphere(t *testing.T) {
	cfg := smallConfig(8)
	for i := range cfg.Layers {
		cfg.Layers[i].Amplitude = 0
	}
	m := mustGenerate(t, cfg)

	for i, v := range m.Vertices {
		d := math.Vec3FromArray(v.Position).Distance(cfg.Origin)
		if gomath.Abs(float64(d)-cfg.Radius) > 1e-3 {
			t.Fatalf("vertex %d at distance %v, want %v", i, d, cfg.Radius)
		}
	}
	if e := m.Elevation(); e.Min != 0 || e.Max != 0 {
		t.Errorf("Elevation() = %+v, want zero", e)
	}
}

func TestGenerateNeverBelowRadius(t *testing.T) {
	cfg := smallConfig(12)
	m := mustGenerate(t, cfg)

	for i, v := range m.Vertices {
		d := math.Vec3FromArray(v.Position).Distance(cfg.Origin)
		if float64(d) < cfg.Radius-1e-3 {
			t.Fatalf("vertex %d at distance %v below radius %v", i, d, cfg.Radius)
		}
	}
}

func TestGenerateNormalsUnitAndOutward(t *testing.T) {
	cfg := smallConfig(10)
	m := mustGenerate(t, cfg)

	for i, v := range m.Vertices {
		n := math.Vec3FromArray(v.Normal)
		if l := n.Length(); gomath.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %v", i, l)
		}
		radial := math.Vec3FromArray(v.Position).Sub(cfg.Origin)
		if n.Dot(radial) < 0 {
			t.Fatalf("vertex %d normal %v points inward", i, n)
		}
	}
}

func TestGenerateWindingOutward(t *testing.T) {
	cfg := smallConfig(6)
	for i := range cfg.Layers {
		cfg.Layers[i].Amplitude = 0
	}
	m := mustGenerate(t, cfg)

	for t0 := 0; t0 < len(m.Indices); t0 += 3 {
		a := math.Vec3FromArray(m.Vertices[m.Indices[t0]].Position)
		b := math.Vec3FromArray(m.Vertices[m.Indices[t0+1]].Position)
		c := math.Vec3FromArray(m.Vertices[m.Indices[t0+2]].Position)

		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(centroid.Sub(cfg.Origin)) <= 0 {
			t.Fatalf("triangle %d winds clockwise seen from outside", t0/3)
		}
	}
}

func TestGenerateTangents(t *testing.T) {
	m := mustGenerate(t, smallConfig(8))

	for i, v := range m.Vertices {
		tan := math.Vec3{X: v.Tangent[0], Y: v.Tangent[1], Z: v.Tangent[2]}
		if l := tan.Length(); gomath.Abs(float64(l)-1) > 1e-3 {
			t.Fatalf("vertex %d tangent length %v", i, l)
		}
		if d := tan.Dot(math.Vec3FromArray(v.Normal)); gomath.Abs(float64(d)) > 1e-3 {
			t.Fatalf("vertex %d tangent not orthogonal to normal: dot %v", i, d)
		}
		if w := v.Tangent[3]; w != 1 && w != -1 {
			t.Fatalf("vertex %d tangent w = %v", i, w)
		}
	}
}

func TestGenerateAttributes(t *testing.T) {
	cfg := smallConfig(5)
	cfg.Color = [4]float32{0.1, 0.2, 0.3, 1}
	m := mustGenerate(t, cfg)

	for _, r := range m.Faces {
		verts := m.FaceVertices(r)
		if verts[0].UV != [2]float32{0, 0} {
			t.Errorf("face %v first UV = %v", r.Face, verts[0].UV)
		}
		if last := verts[len(verts)-1].UV; last != [2]float32{1, 1} {
			t.Errorf("face %v last UV = %v", r.Face, last)
		}
	}
	for i, v := range m.Vertices {
		if v.Color != cfg.Color {
			t.Fatalf("vertex %d color = %v", i, v.Color)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range noise.Kinds {
		cfg := smallConfig(7)
		cfg.Noise = kind

		a := mustGenerate(t, cfg)
		b := mustGenerate(t, cfg)
		for i := range a.Vertices {
			if a.Vertices[i] != b.Vertices[i] {
				t.Fatalf("%s: vertex %d differs between runs", kind, i)
			}
		}
		for i := range a.Indices {
			if a.Indices[i] != b.Indices[i] {
				t.Fatalf("%s: index %d differs between runs", kind, i)
			}
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	cfg := smallConfig(6)
	m := mustGenerate(t, cfg)

	b := m.Bounds()
	for i, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			if v.Position[k] < b.Min[k] || v.Position[k] > b.Max[k] {
				t.Fatalf("vertex %d outside bounds %+v", i, b)
			}
		}
	}
	c := b.Center()
	o := cfg.Origin.Array()
	for k := 0; k < 3; k++ {
		if gomath.Abs(float64(c[k]-o[k])) > 5 {
			t.Errorf("bounds center %v far from origin %v", c, o)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"resolution too small", func(c *Config) { c.Resolution = 1 }, ErrInvalidResolution},
		{"resolution zero", func(c *Config) { c.Resolution = 0 }, ErrInvalidResolution},
		{"resolution too large", func(c *Config) { c.Resolution = MaxResolution + 1 }, ErrInvalidResolution},
		{"zero radius", func(c *Config) { c.Radius = 0 }, ErrInvalidRadius},
		{"negative radius", func(c *Config) { c.Radius = -5 }, ErrInvalidRadius},
		{"nan radius", func(c *Config) { c.Radius = gomath.NaN() }, ErrInvalidRadius},
		{"inf radius", func(c *Config) { c.Radius = gomath.Inf(1) }, ErrInvalidRadius},
		{"no layers", func(c *Config) { c.Layers = nil }, ErrNoLayers},
		{"negative amplitude", func(c *Config) { c.Layers[1].Amplitude = -1 }, ErrInvalidLayer},
		{"nan frequency", func(c *Config) { c.Layers[0].Frequency = gomath.NaN() }, ErrInvalidLayer},
		{"nan origin", func(c *Config) { c.Origin = math.Vec3{X: float32(gomath.NaN())} }, ErrInvalidOrigin},
		{"inf origin", func(c *Config) { c.Origin = math.Vec3{Z: float32(gomath.Inf(-1))} }, ErrInvalidOrigin},
		{"nan layer origin", func(c *Config) { c.Layers[2].Origin = math.Vec3{Y: float32(gomath.NaN())} }, ErrInvalidLayer},
		{"inf layer origin", func(c *Config) { c.Layers[0].Origin = math.Vec3{Y: float32(gomath.Inf(1))} }, ErrInvalidLayer},
		{"unknown noise", func(c *Config) { c.Noise = "value" }, noise.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig(4)
			tt.mutate(&cfg)

			m, err := Generate(cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("Generate() returned a mesh alongside an error")
			}
		})
	}
}

func TestSplitFaces(t *testing.T) {
	m := mustGenerate(t, smallConfig(5))
	parts := m.SplitFaces()

	if len(parts) != FaceCount {
		t.Fatalf("SplitFaces() = %d parts, want %d", len(parts), FaceCount)
	}
	for f, p := range parts {
		r := m.Faces[f]
		if len(p.Vertices) != int(r.VertexCount) || len(p.Indices) != int(r.IndexCount) {
			t.Fatalf("face %d: %d/%d, want %d/%d", f, len(p.Vertices), len(p.Indices), r.VertexCount, r.IndexCount)
		}
		for i, idx := range p.Indices {
			if idx >= r.VertexCount {
				t.Fatalf("face %d: local index %d out of range", f, idx)
			}
			if p.Vertices[idx] != m.Vertices[m.Indices[int(r.BaseIndex)+i]] {
				t.Fatalf("face %d: index %d resolves to a different vertex", f, i)
			}
		}
		if p.Faces[0].BaseVertex != 0 || p.Faces[0].BaseIndex != 0 {
			t.Errorf("face %d: range not rebased: %+v", f, p.Faces[0])
		}
	}

	parts[0].Vertices[0].Position[0] += 100
	if m.Vertices[0].Position[0] == parts[0].Vertices[0].Position[0] {
		t.Error("SplitFaces() shares vertex storage with the source")
	}
}

func TestFaceDirections(t *testing.T) {
	tests := []struct {
		face Face
		want math.Vec3
	}{
		{FaceFront, math.Vec3{Z: 1}},
		{FaceBottom, math.Vec3{Y: -1}},
		{FaceTop, math.Vec3{Y: 1}},
		{FaceBack, math.Vec3{Z: -1}},
		{FaceRight, math.Vec3{X: 1}},
		{FaceLeft, math.Vec3{X: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			got := tt.face.Direction(0.5, 0.5)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("Direction(0.5, 0.5) = %v, want %v", got, tt.want)
			}
			corner := tt.face.Direction(0, 1)
			if l := corner.Length(); gomath.Abs(float64(l)-1) > 1e-5 {
				t.Errorf("corner direction length = %v", l)
			}
		})
	}
}

func TestConfigReseed(t *testing.T) {
	cfg := Default()
	next := cfg.Reseed(10)

	for i := range cfg.Layers {
		if next.Layers[i].Seed != cfg.Layers[i].Seed+10 {
			t.Errorf("layer %d seed = %d", i, next.Layers[i].Seed)
		}
	}
	if cfg.Layers[0].Seed != 0 {
		t.Error("Reseed() modified the receiver")
	}
	if cfg.Equal(next) {
		t.Error("reseeded config compares equal")
	}
	if !cfg.Equal(cfg.Clone()) {
		t.Error("clone compares unequal")
	}
}

func TestBoundsExtend(t *testing.T) {
	b := emptyBounds.
		Extend([3]float32{1, -2, 3}).
		Extend([3]float32{-4, 5, 0}).
		Union(Bounds{Min: [3]float32{0, 0, -1}, Max: [3]float32{0, 0, 7}})

	want := Bounds{Min: [3]float32{-4, -2, -1}, Max: [3]float32{1, 5, 7}}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	if c := b.Center(); c != [3]float32{-1.5, 1.5, 3} {
		t.Errorf("Center() = %v, want [-1.5 1.5 3]", c)
	}
}
