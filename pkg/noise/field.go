// Package noise evaluates layered coherent noise over directions on the unit
// sphere. A Field is the elevation function the planet mesher displaces
// vertices with.
package noise

import (
	"fmt"

	"github.com/Faultbox/cubeplanet/pkg/math"
)

// Layer is one coherent noise layer applied to a sample direction.
type Layer struct {
	Seed      int64     `yaml:"seed"`
	Origin    math.Vec3 `yaml:"origin"`
	Amplitude float64   `yaml:"amplitude"`
	Frequency float64   `yaml:"frequency"`

	// MaskByPrevious limits the layer to directions where an earlier
	// unmasked layer already produced signal, e.g. mountains only on land.
	MaskByPrevious bool `yaml:"mask_by_previous"`
}

// Field is a layered elevation function. It is immutable after NewField and
// may be shared between goroutines.
type Field struct {
	kind       Kind
	layers     []Layer
	primitives []Primitive
}

// NewField builds one seeded primitive per layer. The layer slice is copied.
func NewField(kind Kind, layers []Layer) (*Field, error) {
	f := &Field{
		kind:       kind,
		layers:     append([]Layer(nil), layers...),
		primitives: make([]Primitive, len(layers)),
	}
	if f.kind == "" {
		f.kind = Perlin
	}

	for i, layer := range f.layers {
		p, err := NewPrimitive(f.kind, layer.Seed)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		f.primitives[i] = p
	}

	return f, nil
}

// Kind returns the primitive the field samples.
func (f *Field) Kind() Kind {
	return f.kind
}

// Layers returns a copy of the field's layers.
func (f *Field) Layers() []Layer {
	return append([]Layer(nil), f.layers...)
}

// Sample returns the elevation offset for a unit direction. The result is
// never negative: basins are flattened to the base radius.
func (f *Field) Sample(dir math.Vec3) float64 {
	var total float64
	contributed := false

	for i, layer := range f.layers {
		if layer.MaskByPrevious && !contributed {
			continue
		}

		x := float64(layer.Origin.X) + float64(dir.X)*layer.Frequency
		y := float64(layer.Origin.Y) + float64(dir.Y)*layer.Frequency
		z := float64(layer.Origin.Z) + float64(dir.Z)*layer.Frequency

		n := f.primitives[i].Eval3(x, y, z) * layer.Amplitude
		total += n

		if !layer.MaskByPrevious && n != 0 {
			contributed = true
		}
	}

	return max(total, 0)
}

// Sample evaluates layers at dir without keeping the field around.
func Sample(kind Kind, dir math.Vec3, layers []Layer) (float64, error) {
	f, err := NewField(kind, layers)
	if err != nil {
		return 0, err
	}
	return f.Sample(dir), nil
}
