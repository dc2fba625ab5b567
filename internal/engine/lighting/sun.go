// Package lighting holds the directional sun and ambient term the planet is lit with.
package lighting

import (
	"math"
)

// SunDirection converts longitude/latitude in degrees to a unit vector
// pointing toward the sun. Longitude turns around Y, latitude is elevation
// above the XZ plane.
func SunDirection(longitude, latitude float32) [3]float32 {
	lonRad := float64(longitude) * math.Pi / 180.0
	latRad := float64(latitude) * math.Pi / 180.0

	return [3]float32{
		float32(math.Cos(latRad) * math.Sin(lonRad)),
		float32(math.Sin(latRad)),
		float32(math.Cos(latRad) * math.Cos(lonRad)),
	}
}

// Light is one directional light plus ambient fill.
type Light struct {
	Direction [3]float32 // toward the light
	Color     [3]float32
	Ambient   [3]float32 // color premultiplied by intensity
}

// NewLight builds a Light from sun angles and an ambient color scaled by intensity.
func NewLight(longitude, latitude float32, color, ambient [3]float32, intensity float32) Light {
	return Light{
		Direction: SunDirection(longitude, latitude),
		Color:     color,
		Ambient: [3]float32{
			ambient[0] * intensity,
			ambient[1] * intensity,
			ambient[2] * intensity,
		},
	}
}
