package core

import "fmt"

// Point is an integer grid coordinate. It doubles as a relative offset.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Left() Point      { return Point{X: p.X - 1, Y: p.Y} }
func (p Point) Right() Point     { return Point{X: p.X + 1, Y: p.Y} }
func (p Point) Up() Point        { return Point{X: p.X, Y: p.Y - 1} }
func (p Point) Down() Point      { return Point{X: p.X, Y: p.Y + 1} }
func (p Point) UpLeft() Point    { return Point{X: p.X - 1, Y: p.Y - 1} }
func (p Point) UpRight() Point   { return Point{X: p.X + 1, Y: p.Y - 1} }
func (p Point) DownLeft() Point  { return Point{X: p.X - 1, Y: p.Y + 1} }
func (p Point) DownRight() Point { return Point{X: p.X + 1, Y: p.Y + 1} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// MooreOffsets lists the eight unit offsets of the Moore neighborhood.
var MooreOffsets = [8]Point{
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: 0, Y: -1}, {X: -1, Y: -1}, {X: 1, Y: -1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}
