package planner

import (
	"agroplan/entities"
	"agroplan/pkg/dataset"
)

// Weights are the soft-constraint penalty weights and thresholds. The
// weights are deliberately large against plausible profit deltas so that
// constraint satisfaction dominates the search without hard rejection.
type Weights struct {
	Rotation    float64 // per plot with no legume over the horizon
	Replant     float64 // per immediate same-crop repetition
	Shortfall   float64 // per plot below MinPlots in a stratum
	Excess      float64 // per plot above MaxPlots in a stratum
	MinAreaUnit float64 // per mu below MinArea

	MinPlots int
	MaxPlots int
	MinArea  float64
}

func DefaultWeights() Weights {
	return Weights{
		Rotation:    100000,
		Replant:     50000,
		Shortfall:   50000,
		Excess:      30000,
		MinAreaUnit: 20000,
		MinPlots:    2,
		MaxPlots:    8,
		MinArea:     0.5,
	}
}

// Evaluator scores plans: fitness = profit - penalty. Pure; never mutates
// the plan, safe to call concurrently on distinct plan copies.
type Evaluator struct {
	ds *dataset.Dataset
	w  Weights
}

func NewEvaluator(ds *dataset.Dataset, w Weights) *Evaluator {
	return &Evaluator{ds: ds, w: w}
}

func (e *Evaluator) Weights() Weights { return e.w }

func (e *Evaluator) Fitness(p Plan, scenario string) float64 {
	return e.Profit(p, scenario) - e.Penalty(p)
}

// Profit sums per-cell revenue minus cost. Cells whose (crop, land type,
// season) has no stats row contribute nothing.
func (e *Evaluator) Profit(p Plan, scenario string) float64 {
	total := 0.0
	for _, plot := range e.ds.Plots() {
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				cell, ok := py[season]
				if !ok {
					continue
				}
				stat, ok := e.ds.Stat(cell.CropID, plot.LandType, season)
				if !ok {
					continue
				}
				yield := stat.YieldPerMu * cell.Area
				price := stat.MeanPrice()

				var revenue float64
				expected, capped := e.ds.ExpectedSales(cell.CropID)
				switch {
				case !capped:
					revenue = yield * price
				case scenario == entities.ScenarioMarkdown:
					revenue = min(yield, expected)*price + max(0, yield-expected)*price*0.5
				default: // shortage: production beyond the baseline earns nothing
					revenue = min(yield, expected) * price
				}
				total += revenue - stat.CostPerMu*cell.Area
			}
		}
	}
	return total
}

// Penalty scans the four soft constraints independently over the whole plan.
func (e *Evaluator) Penalty(p Plan) float64 {
	return e.rotationPenalty(p) + e.replantPenalty(p) +
		e.concentrationPenalty(p) + e.minAreaPenalty(p)
}

// rotationPenalty: each plot must plant a legume at least once per horizon.
func (e *Evaluator) rotationPenalty(p Plan) float64 {
	total := 0.0
	for _, plot := range e.ds.Plots() {
		if !e.plantsLegume(p[plot.Name]) {
			total += e.w.Rotation
		}
	}
	return total
}

func (e *Evaluator) plantsLegume(years []PlanYear) bool {
	for _, py := range years {
		for _, season := range entities.SeasonOrder {
			if cell, ok := py[season]; ok {
				if crop, ok := e.ds.Crop(cell.CropID); ok && crop.IsLegume() {
					return true
				}
			}
		}
	}
	return false
}

// replantPenalty: walking each plot chronologically, a cell repeating the
// immediately preceding cell's crop is penalized per occurrence.
func (e *Evaluator) replantPenalty(p Plan) float64 {
	total := 0.0
	for _, plot := range e.ds.Plots() {
		var prev uint
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				cell, ok := py[season]
				if !ok {
					continue
				}
				if cell.CropID == prev {
					total += e.w.Replant
				}
				prev = cell.CropID
			}
		}
	}
	return total
}

// concentrationPenalty: per (year, season) stratum each planted crop should
// cover between MinPlots and MaxPlots distinct plots.
func (e *Evaluator) concentrationPenalty(p Plan) float64 {
	total := 0.0
	horizon := p.Horizon()
	for year := 0; year < horizon; year++ {
		for _, season := range entities.SeasonOrder {
			counts := map[uint]int{}
			for _, plot := range e.ds.Plots() {
				years := p[plot.Name]
				if year >= len(years) {
					continue
				}
				if cell, ok := years[year][season]; ok {
					counts[cell.CropID]++
				}
			}
			for _, n := range counts {
				if n < e.w.MinPlots {
					total += e.w.Shortfall * float64(e.w.MinPlots-n)
				} else if n > e.w.MaxPlots {
					total += e.w.Excess * float64(n-e.w.MaxPlots)
				}
			}
		}
	}
	return total
}

// minAreaPenalty: cells below the minimum workable area are penalized
// proportionally to the shortfall.
func (e *Evaluator) minAreaPenalty(p Plan) float64 {
	total := 0.0
	for _, plot := range e.ds.Plots() {
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				if cell, ok := py[season]; ok && cell.Area < e.w.MinArea {
					total += e.w.MinAreaUnit * (e.w.MinArea - cell.Area)
				}
			}
		}
	}
	return total
}
