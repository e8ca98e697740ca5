package core

import "fmt"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Clamp returns s with negative dimensions replaced by zero.
func (s Size) Clamp() Size {
	if s.W < 0 {
		s.W = 0
	}
	if s.H < 0 {
		s.H = 0
	}
	return s
}

// Len reports the number of cells covered by the grid.
func (s Size) Len() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Empty reports whether the grid has no cells.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Index returns the row-major slice index for p. p must lie inside the grid.
func (s Size) Index(p Point) int { return p.Y*s.W + p.X }

// PointAt is the inverse of Index.
func (s Size) PointAt(i int) Point { return Point{X: i % s.W, Y: i / s.W} }

// Contains reports whether p lies within [0,W)x[0,H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Center returns the middle cell, truncating.
func (s Size) Center() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Half returns the size halved as an offset, truncating.
func (s Size) Half() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Wrap applies toroidal wrapping to p. s must not be empty.
func (s Size) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, s.W), Y: Wrap(p.Y, s.H)}
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Wrap maps n onto [0, m). m must be positive.
func Wrap(n, m int) int {
	return (n%m + m) % m
}
