package planner_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/entities"
	"agroplan/pkg/dataset"
	"agroplan/pkg/planner"
)

// singlePlotFixture: one irrigated 10-mu plot, one grain-legume crop with
// yield 500/mu, cost 200/mu, price band [2,3] and an expected-sales baseline
// of 6000 derived from a 12-mu 2023 planting.
func singlePlotFixture() *dataset.Dataset {
	plots := []entities.Plot{{Name: "P1", LandType: entities.LandIrrigated, AreaMu: 10}}
	crops := []entities.Crop{{CropID: 5, Name: "mung bean", Category: entities.CategoryGrainLegume}}
	stats := []entities.CropStat{{
		CropID: 5, LandType: entities.LandIrrigated, Season: entities.SeasonSingle,
		YieldPerMu: 500, CostPerMu: 200, PriceMin: 2, PriceMax: 3,
	}}
	plantings := []entities.PlantingRecord{
		{PlotName: "P1", CropID: 5, Season: entities.SeasonSingle, AreaMu: 12, Year: 2023},
	}
	return dataset.New(plots, crops, stats, plantings)
}

func singleCellPlan(ds *dataset.Dataset, area float64) planner.Plan {
	p := planner.NewPlan(ds.Plots(), 1)
	p["P1"][0][entities.SeasonSingle] = planner.Cell{CropID: 5, Area: area}
	return p
}

func TestFitnessEndToEndSinglePlot(t *testing.T) {
	ds := singlePlotFixture()
	w := planner.DefaultWeights()
	w.MinPlots = 1 // one-plot farm: concentration floor of one
	eval := planner.NewEvaluator(ds, w)

	p := singleCellPlan(ds, 10)

	// yield 5000 < expected 6000: no excess, both scenarios identical
	// revenue 5000 * 2.5 = 12500, cost 2000, profit 10500
	for _, scenario := range []string{entities.ScenarioShortage, entities.ScenarioMarkdown} {
		assert.InDelta(t, 10500, eval.Profit(p, scenario), 1e-9, scenario)
		assert.InDelta(t, 10500, eval.Fitness(p, scenario), 1e-9, scenario)
	}
}

func TestFitnessAppliesSaturationCap(t *testing.T) {
	ds := singlePlotFixture()
	w := planner.DefaultWeights()
	w.MinPlots = 1
	eval := planner.NewEvaluator(ds, w)

	// double the area: yield 10000 vs expected 6000, excess 4000
	p := planner.NewPlan(ds.Plots(), 1)
	p["P1"][0][entities.SeasonSingle] = planner.Cell{CropID: 5, Area: 20}

	cost := 200.0 * 20
	shortage := 6000*2.5 - cost
	markdown := 6000*2.5 + 4000*2.5*0.5 - cost
	assert.InDelta(t, shortage, eval.Profit(p, entities.ScenarioShortage), 1e-9)
	assert.InDelta(t, markdown, eval.Profit(p, entities.ScenarioMarkdown), 1e-9)
}

func TestFitnessSkipsMissingStats(t *testing.T) {
	ds := singlePlotFixture()
	w := planner.DefaultWeights()
	w.MinPlots = 1
	eval := planner.NewEvaluator(ds, w)

	// crop 99 has no stats row anywhere: zero contribution, never fatal
	p := planner.NewPlan(ds.Plots(), 1)
	p["P1"][0][entities.SeasonSingle] = planner.Cell{CropID: 5, Area: 10}
	p["P1"][0][entities.SeasonFirst] = planner.Cell{CropID: 99, Area: 10}

	assert.InDelta(t, 10500, eval.Profit(p, entities.ScenarioShortage), 1e-9)
}

func TestFitnessIsPure(t *testing.T) {
	ds := farmFixture()
	gen := planner.NewGenerator(ds, rand.New(rand.NewSource(7)))
	eval := planner.NewEvaluator(ds, planner.DefaultWeights())

	p := gen.Generate(5)
	first := eval.Fitness(p, entities.ScenarioMarkdown)
	second := eval.Fitness(p, entities.ScenarioMarkdown)
	assert.Equal(t, first, second)
}

func TestMarkdownNeverEarnsLessThanShortage(t *testing.T) {
	ds := farmFixture()
	eval := planner.NewEvaluator(ds, planner.DefaultWeights())
	for seed := int64(0); seed < 10; seed++ {
		gen := planner.NewGenerator(ds, rand.New(rand.NewSource(seed)))
		p := gen.Generate(4)
		assert.GreaterOrEqual(t,
			eval.Profit(p, entities.ScenarioMarkdown),
			eval.Profit(p, entities.ScenarioShortage),
			"seed %d", seed)
	}
}

func TestMinAreaPenalty(t *testing.T) {
	ds := singlePlotFixture()
	w := planner.DefaultWeights()
	w.MinPlots = 1
	eval := planner.NewEvaluator(ds, w)

	p := singleCellPlan(ds, 0.3)
	// only the min-area rule fires: 20000 * (0.5 - 0.3)
	assert.InDelta(t, 4000, eval.Penalty(p), 1e-6)
}

func TestRotationPenaltyOncePerPlot(t *testing.T) {
	plots := []entities.Plot{
		{Name: "D1", LandType: entities.LandFlatDry, AreaMu: 10},
		{Name: "D2", LandType: entities.LandFlatDry, AreaMu: 10},
	}
	crops := []entities.Crop{
		{CropID: 1, Name: "wheat", Category: entities.CategoryGrain},
		{CropID: 2, Name: "soybean", Category: entities.CategoryGrainLegume},
		{CropID: 3, Name: "maize", Category: entities.CategoryGrain},
	}
	ds := dataset.New(plots, crops, nil, nil)

	w := planner.DefaultWeights()
	w.MinPlots = 1
	eval := planner.NewEvaluator(ds, w)

	// D1 never plants a legume over the horizon, D2 does
	p := planner.NewPlan(ds.Plots(), 2)
	p["D1"][0][entities.SeasonSingle] = planner.Cell{CropID: 1, Area: 10}
	p["D1"][1][entities.SeasonSingle] = planner.Cell{CropID: 3, Area: 10}
	p["D2"][0][entities.SeasonSingle] = planner.Cell{CropID: 2, Area: 10}
	p["D2"][1][entities.SeasonSingle] = planner.Cell{CropID: 1, Area: 10}

	assert.InDelta(t, w.Rotation, eval.Penalty(p), 1e-9,
		"exactly one fixed penalty for the one legume-free plot")
}

func TestReplantPenalty(t *testing.T) {
	ds := singlePlotFixture()
	w := planner.DefaultWeights()
	w.MinPlots = 1
	eval := planner.NewEvaluator(ds, w)

	p := planner.NewPlan(ds.Plots(), 2)
	p["P1"][0][entities.SeasonSingle] = planner.Cell{CropID: 5, Area: 10}
	p["P1"][1][entities.SeasonSingle] = planner.Cell{CropID: 5, Area: 10}

	assert.InDelta(t, w.Replant, eval.Penalty(p), 1e-9)
}

func TestConcentrationPenaltyBounds(t *testing.T) {
	var plots []entities.Plot
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		plots = append(plots, entities.Plot{Name: n, LandType: entities.LandFlatDry, AreaMu: 10})
	}
	crops := []entities.Crop{{CropID: 2, Name: "soybean", Category: entities.CategoryGrainLegume}}
	ds := dataset.New(plots, crops, nil, nil)

	w := planner.DefaultWeights()
	w.Rotation = 0 // unplanted plots would otherwise trip the rotation rule
	eval := planner.NewEvaluator(ds, w)

	plantOn := func(k int) planner.Plan {
		p := planner.NewPlan(ds.Plots(), 1)
		for i, plot := range ds.Plots() {
			if i < k {
				p[plot.Name][0][entities.SeasonSingle] = planner.Cell{CropID: 2, Area: 10}
			}
		}
		return p
	}

	// zero iff the distinct-plot count sits inside [MinPlots, MaxPlots]
	require.Equal(t, 2, w.MinPlots)
	require.Equal(t, 8, w.MaxPlots)
	assert.InDelta(t, 0, eval.Penalty(plantOn(2)), 1e-9)
	assert.InDelta(t, 0, eval.Penalty(plantOn(8)), 1e-9)
	assert.InDelta(t, w.Shortfall, eval.Penalty(plantOn(1)), 1e-9)
	assert.InDelta(t, w.Excess, eval.Penalty(plantOn(9)), 1e-9)
}
