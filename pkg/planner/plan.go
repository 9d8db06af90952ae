// Package planner holds the crop-assignment optimization core: plan
// representation, randomized construction, fitness scoring, local search and
// the post-hoc constraint validator.
package planner

import (
	"agroplan/entities"
)

// Cell is one planted assignment: a crop on the full plot area.
type Cell struct {
	CropID uint
	Area   float64
}

// PlanYear maps season label -> cell for one plot-year.
type PlanYear map[string]Cell

// Plan maps plot name -> year index -> seasons. Created whole by the
// generator, cloned and mutated cell-by-cell by the local search, read-only
// once handed to export.
type Plan map[string][]PlanYear

// NewPlan allocates an empty plan covering every plot for the horizon.
func NewPlan(plots []entities.Plot, horizon int) Plan {
	p := make(Plan, len(plots))
	for _, plot := range plots {
		years := make([]PlanYear, horizon)
		for y := range years {
			years[y] = PlanYear{}
		}
		p[plot.Name] = years
	}
	return p
}

// Clone deep-copies the plan so a rejected mutation never corrupts the
// incumbent.
func (p Plan) Clone() Plan {
	c := make(Plan, len(p))
	for name, years := range p {
		cy := make([]PlanYear, len(years))
		for y, py := range years {
			ny := make(PlanYear, len(py))
			for season, cell := range py {
				ny[season] = cell
			}
			cy[y] = ny
		}
		c[name] = cy
	}
	return c
}

// Horizon returns the number of planning years covered.
func (p Plan) Horizon() int {
	for _, years := range p {
		return len(years)
	}
	return 0
}
