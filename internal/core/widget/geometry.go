package widget

// Point is a position in surface coordinates.
type Point struct {
	X float32
	Y float32
}

// Size is a width/height pair in surface coordinates.
type Size struct {
	Width  float32
	Height float32
}

// Rect is an axis-aligned rectangle. Both corners belong to it.
type Rect struct {
	Min Point
	Max Point
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(position Point, size Size) Rect {
	return Rect{
		Min: position,
		Max: Point{X: position.X + size.Width, Y: position.Y + size.Height},
	}
}

// Contains reports whether point lies inside the rectangle, edges included.
func (rect Rect) Contains(point Point) bool {
	return rect.Min.X <= point.X && point.X <= rect.Max.X &&
		rect.Min.Y <= point.Y && point.Y <= rect.Max.Y
}

// Size returns the rectangle dimensions.
func (rect Rect) Size() Size {
	return Size{Width: rect.Max.X - rect.Min.X, Height: rect.Max.Y - rect.Min.Y}
}

// Center returns the midpoint of the rectangle.
func (rect Rect) Center() Point {
	return Point{X: (rect.Min.X + rect.Max.X) / 2, Y: (rect.Min.Y + rect.Max.Y) / 2}
}
