// Package core provides fundamental types and utilities shared by the photon
// game and the platforms that drive it. It contains no rendering dependencies
// (no ebiten, no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned box in world or screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or displacement in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
