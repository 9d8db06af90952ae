package planner

import (
	"math/rand"

	"agroplan/entities"
	"agroplan/pkg/dataset"
)

// Generator builds structurally valid random plans, one crop choice per legal
// cell. The RNG is injected so runs are reproducible under a fixed seed; a
// Generator is not safe for concurrent use without an RNG per goroutine.
type Generator struct {
	ds  *dataset.Dataset
	rng *rand.Rand
}

func NewGenerator(ds *dataset.Dataset, rng *rand.Rand) *Generator {
	return &Generator{ds: ds, rng: rng}
}

// Generate produces one complete plan for the horizon.
func (g *Generator) Generate(horizon int) Plan {
	p := NewPlan(g.ds.Plots(), horizon)
	for _, plot := range g.ds.Plots() {
		for year := 0; year < horizon; year++ {
			g.FillYear(p, plot, year)
		}
	}
	return p
}

// FillYear clears one plot-year and regenerates it under the land-type rule.
// Also the local search's perturbation primitive.
func (g *Generator) FillYear(p Plan, plot entities.Plot, year int) {
	py := PlanYear{}
	p[plot.Name][year] = py
	cls := g.ds.Classes

	switch {
	case entities.OpenFieldLand(plot.LandType):
		// one single-season grain, legumes included
		g.plant(py, entities.SeasonSingle, cls.Grains, plot.AreaMu)

	case plot.LandType == entities.LandIrrigated:
		if g.rng.Float64() < 0.5 {
			g.plant(py, entities.SeasonSingle, cls.PaddyRice, plot.AreaMu)
		} else {
			g.plant(py, entities.SeasonFirst, cls.FieldVegetables, plot.AreaMu)
			g.plant(py, entities.SeasonSecond, cls.RootVegetables, plot.AreaMu)
		}

	case plot.LandType == entities.LandGreenhouse:
		g.plant(py, entities.SeasonFirst, cls.FieldVegetables, plot.AreaMu)
		g.plant(py, entities.SeasonSecond, cls.Fungi, plot.AreaMu)

	case plot.LandType == entities.LandSmartGreenhouse:
		g.plant(py, entities.SeasonFirst, cls.FieldVegetables, plot.AreaMu)
		g.plant(py, entities.SeasonSecond, cls.FieldVegetables, plot.AreaMu)
	}
}

// plant draws uniformly from candidates; an empty candidate set leaves the
// cell unplanted.
func (g *Generator) plant(py PlanYear, season string, candidates []uint, area float64) {
	if len(candidates) == 0 {
		return
	}
	py[season] = Cell{CropID: candidates[g.rng.Intn(len(candidates))], Area: area}
}
