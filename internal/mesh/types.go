package mesh

import "math"

// Vertex is a point on the radiating surface (m).
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Add returns v + o.
func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns s*v.
func (v Vertex) Scale(s float64) Vertex {
	return Vertex{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Dot returns the scalar product.
func (v Vertex) Dot(o Vertex) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v × o.
func (v Vertex) Cross(o Vertex) Vertex {
	return Vertex{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length.
func (v Vertex) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns |v - o|.
func (v Vertex) Distance(o Vertex) float64 {
	return v.Sub(o).Norm()
}

// Element is a triangle given by three vertex indices. The vertices are
// ordered counter-clockwise when viewed from the side the normal points to.
type Element [3]int

// Mesh is an immutable triangulated surface. Every element is one
// collocation point (its centroid), so len(Elements) is the number of
// unknown (potential, velocity) pairs.
type Mesh struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Vertices    []Vertex  `json:"vertices"`
	Elements    []Element `json:"elements"`

	// MinArea is the degenerate-triangle threshold (m²). Zero means DefaultMinArea.
	MinArea float64 `json:"min_area,omitempty"`
}

// DefaultMinArea is the area at or below which a triangle is degenerate.
const DefaultMinArea = 1e-12
