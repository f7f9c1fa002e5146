package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/acousticbem/internal/bemerr"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
)

func request(t *testing.T) *Request {
	t.Helper()
	m, err := mesh.Fixture("plate")
	require.NoError(t, err)
	set := make(boundary.Set, m.NumElements())
	for i := range set {
		set[i] = boundary.Neumann(1)
	}
	return &Request{
		Wavenumber:  1,
		Mesh:        m,
		FieldPoints: []mesh.Vertex{{Z: 1}},
		Conditions:  set,
		Options:     DefaultOptions(),
		Capacity:    DefaultCapacity(),
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		want   error
	}{
		{"ok", func(r *Request) {}, nil},
		{"zero_wavenumber", func(r *Request) { r.Wavenumber = 0 }, bemerr.ErrInvalidFrequency},
		{"no_mesh", func(r *Request) { r.Mesh = nil }, bemerr.ErrGeometry},
		{"too_many_elements", func(r *Request) { r.Capacity.MaxElements = 31 }, bemerr.ErrBounds},
		{"too_many_vertices", func(r *Request) { r.Capacity.MaxVertices = 24 }, bemerr.ErrBounds},
		{"unbounded_field_points", func(r *Request) { r.Capacity.MaxFieldPoints = 0 }, nil},
		{"field_point_overflow", func(r *Request) { r.FieldPoints = make([]mesh.Vertex, 3); r.Capacity.MaxFieldPoints = 2 }, bemerr.ErrBounds},
		{"missing_condition", func(r *Request) { r.Conditions = r.Conditions[1:] }, bemerr.ErrBounds},
		{"ill_posed", func(r *Request) { r.Conditions[4] = boundary.Condition{} }, bemerr.ErrIllPosed},
		{"incident_length", func(r *Request) { r.IncidentPhi = make([]complex128, 2) }, bemerr.ErrBounds},
		{"incident_field_length", func(r *Request) { r.IncidentFieldPhi = make([]complex128, 2) }, bemerr.ErrBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := request(t)
			tc.modify(r)
			err := r.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestIncidentOnlyWithParticularSolution(t *testing.T) {
	r := request(t)
	r.IncidentPhi = make([]complex128, r.Mesh.NumElements())
	r.IncidentPhi[3] = complex(2, 1)
	r.IncidentFieldPhi = []complex128{complex(0, 5)}

	assert.Equal(t, complex128(0), r.Incident(3))
	assert.Equal(t, complex128(0), r.IncidentField(0))

	r.Options.IncludeParticularSolution = true
	assert.Equal(t, complex(2, 1), r.Incident(3))
	assert.Equal(t, complex(0, 5), r.IncidentField(0))
}

func TestGatewayFunc(t *testing.T) {
	var g Gateway = GatewayFunc(func(req *Request) (*Field, error) {
		return &Field{Phi: []complex128{complex(req.Wavenumber, 0)}}, nil
	})
	f, err := g.Solve(&Request{Wavenumber: 3})
	require.NoError(t, err)
	assert.Equal(t, complex(3, 0), f.Phi[0])
}
