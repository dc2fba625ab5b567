package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownKind is returned when a Kind does not name a known primitive.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kind selects the coherent noise primitive a Field samples.
type Kind string

const (
	// Perlin is classic gradient noise. It is exactly zero on integer lattice
	// points, which is what makes masked layers switch off cleanly.
	Perlin Kind = "perlin"
	// OpenSimplex is smoother and has fewer axis-aligned artifacts.
	OpenSimplex Kind = "opensimplex"
)

// Kinds lists every supported primitive, default first.
var Kinds = []Kind{Perlin, OpenSimplex}

// Perlin parameters. One octave per layer: layering is done by the Field.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 1
)

// Primitive is a seeded coherent 3D noise function.
// Implementations must be deterministic for a given seed and safe for
// concurrent reads once constructed.
type Primitive interface {
	Eval3(x, y, z float64) float64
}

type perlinPrimitive struct {
	p *perlin.Perlin
}

func (pp perlinPrimitive) Eval3(x, y, z float64) float64 {
	return pp.p.Noise3D(x, y, z)
}

// NewPrimitive builds the primitive of the given kind for one seed.
// An empty kind means Perlin.
func NewPrimitive(kind Kind, seed int64) (Primitive, error) {
	switch kind {
	case Perlin, "":
		return perlinPrimitive{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}, nil
	case OpenSimplex:
		return opensimplex.New(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Valid reports whether k names a supported primitive.
func (k Kind) Valid() bool {
	if k == "" {
		return true
	}
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}
