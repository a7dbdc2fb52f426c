// Package layout places food items on an evenly spaced ring with a small
// random vertical offset per item.
package layout

import (
	"math"
	"math/rand/v2"
)

// DefaultRadius is the ring radius in scene units.
const DefaultRadius = 5.0

// Source supplies uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// Position is a point in scene space. Y is vertical; X and Z span the ring plane.
type Position struct {
	X, Y, Z float64
}

// Angle returns the position's angle around the vertical axis in [0, 2π).
func (p Position) Angle() float64 {
	a := math.Atan2(p.Z, p.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// HorizontalRadius returns the distance from the vertical axis.
func (p Position) HorizontalRadius() float64 {
	return math.Hypot(p.X, p.Z)
}

// Engine computes ring layouts.
type Engine struct {
	Radius float64
	Source Source
}

// New returns an Engine with the given radius drawing jitter from the
// process-wide random generator. A non-positive radius selects DefaultRadius.
func New(radius float64) *Engine {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Engine{Radius: radius, Source: SourceFunc(rand.Float64)}
}

// Compute returns count positions. Item i sits at angle i/count·2π on the
// ring; its Y is resampled on every call from [-1, 1). A non-positive
// Radius places them on DefaultRadius.
func (e *Engine) Compute(count int) []Position {
	if count <= 0 {
		return []Position{}
	}

	src := e.Source
	if src == nil {
		src = SourceFunc(rand.Float64)
	}
	r := e.Radius
	if r <= 0 {
		r = DefaultRadius
	}

	out := make([]Position, count)
	for i := range out {
		theta := float64(i) / float64(count) * 2 * math.Pi
		out[i] = Position{
			X: r * math.Cos(theta),
			Y: src.Float64()*2 - 1,
			Z: r * math.Sin(theta),
		}
	}
	return out
}
