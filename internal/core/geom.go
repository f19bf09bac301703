// Package core provides fundamental types and utilities for the asteroids game.
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

// Vec2 is a position or velocity in playfield units.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DirectionalMovement converts an angle in degrees (0 = up) into the pair
// (sin(angle+90), cos(angle+90)). Heading is the only caller that should
// interpret the pair; entities move through Heading.
func DirectionalMovement(angle float64) (dy, dx float64) {
	rad := (angle + 90.0) * math.Pi / 180.0
	return math.Sin(rad), math.Cos(rad)
}

// Heading returns the unit step for an angle in screen coordinates (y grows
// downward). Angle 0 points up, 90 points left, -90 right, 180 down.
func Heading(angle float64) Vec2 {
	dy, dx := DirectionalMovement(angle)
	return Vec2{X: dx, Y: -dy}
}

// Box is a float axis-aligned bounding box.
type Box struct {
	Min, Max Vec2
}

// BoxAt returns a box of the given size centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{
		Min: Vec2{X: c.X - w/2, Y: c.Y - h/2},
		Max: Vec2{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Min.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Max.X }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Min.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Max.Y }

// Width returns the box width.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the box height.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Contains returns true if the point lies inside the box.
// The max edges are exclusive, matching Rect semantics.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Intersects returns true if the two boxes overlap.
// Boxes that only share an edge do not overlap.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// Collider is the capability set shared by every sprite that takes part in
// hit tests: a position and an axis-aligned bounding box.
type Collider interface {
	Center() Vec2
	Bounds() Box
}

// HitsPoint reports whether p lies inside the collider's bounds.
func HitsPoint(c Collider, p Vec2) bool {
	return c.Bounds().Contains(p)
}

// Overlaps reports whether two colliders' bounds intersect.
func Overlaps(a, b Collider) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// WrapBox shifts a box that has fully left the [0,w]x[0,h] field back onto
// the opposite edge. A box leaving right re-enters with its left edge at 0,
// leaving left with its right edge at w, leaving the top with its bottom at
// h and leaving the bottom with its top at 0. Boxes still touching the field
// are returned unchanged.
func WrapBox(b Box, w, h float64) Box {
	bw, bh := b.Width(), b.Height()

	if b.Bottom() <= 0 {
		b.Max.Y = h
		b.Min.Y = h - bh
	} else if b.Top() >= h {
		b.Min.Y = 0
		b.Max.Y = bh
	}

	if b.Left() >= w {
		b.Min.X = 0
		b.Max.X = bw
	} else if b.Right() <= 0 {
		b.Max.X = w
		b.Min.X = w - bw
	}
	return b
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
