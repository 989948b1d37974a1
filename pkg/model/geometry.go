package model

import "math"

// Point is a 2D coordinate in grid units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Size is a width/height extent in grid units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned bounding rectangle in grid units, expressed as a
// top-left corner (Position) plus Size.
type Rect struct {
	Position Point
	Size     Size
}

// MinX returns the rectangle's left edge.
func (r Rect) MinX() float64 { return r.Position.X }

// MaxX returns the rectangle's right edge.
func (r Rect) MaxX() float64 { return r.Position.X + r.Size.Width }

// MinY returns the rectangle's top edge.
func (r Rect) MinY() float64 { return r.Position.Y }

// MaxY returns the rectangle's bottom edge.
func (r Rect) MaxY() float64 { return r.Position.Y + r.Size.Height }

// Centroid returns the rectangle's center point.
func (r Rect) Centroid() Point {
	return Point{X: r.Position.X + r.Size.Width/2, Y: r.Position.Y + r.Size.Height/2}
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 {
	return r.Size.Width * r.Size.Height
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{
		Position: Point{X: minX, Y: minY},
		Size:     Size{Width: maxX - minX, Height: maxY - minY},
	}
}

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Size.Width, r.Size.Height)
}
