package planner

import (
	"log"
	"math"
	"math/rand"

	"agroplan/pkg/dataset"
)

// Optimizer couples multi-start construction with first-improvement local
// search. Generator, evaluator and optimizer share one injected RNG, so the
// whole run replays under a fixed seed.
type Optimizer struct {
	ds   *dataset.Dataset
	gen  *Generator
	eval *Evaluator
	rng  *rand.Rand

	Restarts   int // independent constructions before local search
	MaxPasses  int // local search pass cap
	SampleSize int // plots perturbed per pass
}

func NewOptimizer(ds *dataset.Dataset, gen *Generator, eval *Evaluator, rng *rand.Rand) *Optimizer {
	return &Optimizer{
		ds:         ds,
		gen:        gen,
		eval:       eval,
		rng:        rng,
		Restarts:   10,
		MaxPasses:  100,
		SampleSize: 5,
	}
}

// Optimize generates Restarts independent plans, keeps the best and refines
// it. Best-effort only: no optimality guarantee.
func (o *Optimizer) Optimize(scenario string, horizon int) (Plan, float64) {
	var best Plan
	bestFit := math.Inf(-1)
	for i := 0; i < o.Restarts; i++ {
		cand := o.gen.Generate(horizon)
		if fit := o.eval.Fitness(cand, scenario); fit > bestFit {
			best, bestFit = cand, fit
		}
	}
	log.Printf("[plan] best of %d constructions: %.2f", o.Restarts, bestFit)
	return o.Improve(best, scenario, o.MaxPasses)
}

// Improve hill-climbs by regenerating random plot-years, accepting the first
// strict improvement. Plain first-improvement with no tabu list: it can
// stall in local optima, which is the intended speed tradeoff. Returned
// fitness is never below the input plan's.
func (o *Optimizer) Improve(p Plan, scenario string, maxPasses int) (Plan, float64) {
	best := p.Clone()
	bestFit := o.eval.Fitness(best, scenario)
	plots := o.ds.Plots()

	sample := o.SampleSize
	if sample > len(plots) {
		sample = len(plots)
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for _, idx := range o.rng.Perm(len(plots))[:sample] {
			plot := plots[idx]
			years := len(best[plot.Name])
			if years == 0 {
				continue
			}
			year := o.rng.Intn(years)

			cand := best.Clone()
			o.gen.FillYear(cand, plot, year)
			if fit := o.eval.Fitness(cand, scenario); fit > bestFit {
				best, bestFit = cand, fit
				improved = true
			}
		}
		if !improved {
			// locally converged
			break
		}
	}
	return best, bestFit
}
