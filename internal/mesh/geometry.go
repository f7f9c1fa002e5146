package mesh

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
)

// NumElements returns the element (collocation point) count.
func (m *Mesh) NumElements() int {
	return len(m.Elements)
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// Triangle returns the three vertices of element i in mesh order.
func (m *Mesh) Triangle(i int) (a, b, c Vertex) {
	e := m.Elements[i]
	return m.Vertices[e[0]], m.Vertices[e[1]], m.Vertices[e[2]]
}

// Centroid returns the arithmetic mean of the element's three vertices.
func (m *Mesh) Centroid(i int) Vertex {
	a, b, c := m.Triangle(i)
	return Vertex{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}

// Centroids returns the collocation points of all elements.
func (m *Mesh) Centroids() []Vertex {
	out := make([]Vertex, len(m.Elements))
	for i := range m.Elements {
		out[i] = m.Centroid(i)
	}
	return out
}

// cross returns (b-a) × (c-a); its length is twice the triangle area and its
// direction is the normal implied by the vertex ordering.
func (m *Mesh) cross(i int) Vertex {
	a, b, c := m.Triangle(i)
	return b.Sub(a).Cross(c.Sub(a))
}

// Area returns the area of element i, or ErrGeometry if the triangle is
// degenerate or has non-finite coordinates.
func (m *Mesh) Area(i int) (float64, error) {
	area := m.cross(i).Norm() / 2
	if !(area > m.minArea()) {
		return 0, bemerr.Element(bemerr.ErrGeometry, i, "degenerate triangle, area %.3e <= %.3e", area, m.minArea())
	}
	if math.IsInf(area, 0) {
		return 0, bemerr.Element(bemerr.ErrGeometry, i, "non-finite triangle area")
	}
	return area, nil
}

// Areas returns the area of every element.
func (m *Mesh) Areas() ([]float64, error) {
	out := make([]float64, len(m.Elements))
	for i := range m.Elements {
		a, err := m.Area(i)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// TotalArea returns the surface area of the whole mesh.
func (m *Mesh) TotalArea() (float64, error) {
	areas, err := m.Areas()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, a := range areas {
		total += a
	}
	return total, nil
}

// Normal returns the unit normal of element i. The sign follows the vertex
// ordering; no orientation check is made.
func (m *Mesh) Normal(i int) Vertex {
	n := m.cross(i)
	l := n.Norm()
	if l == 0 {
		return Vertex{}
	}
	return n.Scale(1 / l)
}

// Validate checks the connectivity and rejects degenerate elements.
func (m *Mesh) Validate() error {
	if len(m.Vertices) < 3 {
		return fmt.Errorf("%w: mesh %q needs at least 3 vertices, has %d", bemerr.ErrGeometry, m.Name, len(m.Vertices))
	}
	if len(m.Elements) == 0 {
		return fmt.Errorf("%w: mesh %q has no elements", bemerr.ErrGeometry, m.Name)
	}
	for i, e := range m.Elements {
		for _, v := range e {
			if v < 0 || v >= len(m.Vertices) {
				return bemerr.Element(bemerr.ErrGeometry, i, "vertex index %d out of range [0,%d)", v, len(m.Vertices))
			}
		}
		if e[0] == e[1] || e[1] == e[2] || e[0] == e[2] {
			return bemerr.Element(bemerr.ErrGeometry, i, "repeated vertex index in %v", e)
		}
		if _, err := m.Area(i); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mesh) minArea() float64 {
	if m.MinArea > 0 {
		return m.MinArea
	}
	return DefaultMinArea
}
