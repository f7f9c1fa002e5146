package sweep

import (
	"fmt"

	"github.com/alexiusacademia/acousticbem/internal/acoustics"
	"github.com/alexiusacademia/acousticbem/internal/boundary"
	"github.com/alexiusacademia/acousticbem/internal/mesh"
	"github.com/alexiusacademia/acousticbem/internal/solver"
)

// Band names used by the partitioned cavity.
const (
	OpeningBand = "opening"
	WallBand    = "wall"
)

// Configure returns a Driver for one of the built-in scenarios: boundary
// conditions are built from opts and the power policy follows the scenario
// (unweighted for the plate, area-weighted with opening and wall bands for
// the cavity).
func Configure(g solver.Gateway, m *mesh.Mesh, medium acoustics.Medium, opts boundary.Options) (*Driver, error) {
	if m == nil {
		return nil, fmt.Errorf("sweep: no mesh")
	}
	conds, err := boundary.Build(m, medium, opts)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		Name:       string(opts.Scenario),
		Gateway:    g,
		Mesh:       m,
		Conditions: conds,
		Medium:     medium,
		Options:    solver.DefaultOptions(),
		Capacity:   solver.DefaultCapacity(),
	}
	switch opts.Scenario {
	case boundary.ExcitedPlate:
		d.Policy = acoustics.Unweighted
	case boundary.PartitionedCavity:
		d.Policy = acoustics.AreaWeighted
		d.Bands = []acoustics.Band{
			{Name: OpeningBand, From: 0, To: opts.Opening},
			{Name: WallBand, From: opts.Opening, To: m.NumElements()},
		}
	}
	return d, nil
}
