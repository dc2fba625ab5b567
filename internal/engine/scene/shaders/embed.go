// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PlanetVertexShader transforms planet vertices and forwards every attribute.
//
//go:embed planet.vert
var PlanetVertexShader string

// PlanetFragmentShader lights the planet or visualizes one attribute.
//
//go:embed planet.frag
var PlanetFragmentShader string

// LineVertexShader draws debug overlay lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws debug overlay lines in a flat color.
//
//go:embed line.frag
var LineFragmentShader string
