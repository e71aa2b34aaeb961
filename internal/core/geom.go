// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Viewport maps a centered world rectangle onto a screen rectangle.
// World y grows upward, screen y grows downward.
type Viewport struct {
	Screen     Rect
	HalfWidth  float64
	HalfHeight float64
}

// ToScreen converts world coordinates to the nearest screen cell.
// Points on the world edge land on the last cell inside Screen.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	if v.Screen.W <= 0 || v.Screen.H <= 0 || v.HalfWidth <= 0 || v.HalfHeight <= 0 {
		return v.Screen.X, v.Screen.Y
	}
	u := (ClampF(x, -v.HalfWidth, v.HalfWidth) + v.HalfWidth) / (2 * v.HalfWidth)
	w := (v.HalfHeight - ClampF(y, -v.HalfHeight, v.HalfHeight)) / (2 * v.HalfHeight)

	sx := v.Screen.X + int(math.Round(u*float64(v.Screen.W-1)))
	sy := v.Screen.Y + int(math.Round(w*float64(v.Screen.H-1)))
	return sx, sy
}
