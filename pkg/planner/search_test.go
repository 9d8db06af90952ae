package planner_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/entities"
	"agroplan/pkg/planner"
)

func newOptimizer(seed int64) (*planner.Optimizer, *planner.Evaluator) {
	ds := farmFixture()
	rng := rand.New(rand.NewSource(seed))
	gen := planner.NewGenerator(ds, rng)
	eval := planner.NewEvaluator(ds, planner.DefaultWeights())
	return planner.NewOptimizer(ds, gen, eval, rng), eval
}

func TestImproveIsMonotone(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		opt, eval := newOptimizer(seed)
		gen := planner.NewGenerator(farmFixture(), rand.New(rand.NewSource(seed+100)))

		p := gen.Generate(4)
		before := eval.Fitness(p, entities.ScenarioShortage)

		improved, fit := opt.Improve(p, entities.ScenarioShortage, 20)
		assert.GreaterOrEqual(t, fit, before, "seed %d", seed)
		assert.Equal(t, eval.Fitness(improved, entities.ScenarioShortage), fit)
	}
}

func TestImproveWithZeroPasses(t *testing.T) {
	opt, eval := newOptimizer(3)
	gen := planner.NewGenerator(farmFixture(), rand.New(rand.NewSource(9)))

	p := gen.Generate(3)
	before := eval.Fitness(p, entities.ScenarioMarkdown)
	out, fit := opt.Improve(p, entities.ScenarioMarkdown, 0)

	assert.Equal(t, before, fit)
	assert.Equal(t, before, eval.Fitness(out, entities.ScenarioMarkdown))
}

func TestImproveDoesNotMutateInput(t *testing.T) {
	opt, _ := newOptimizer(4)
	gen := planner.NewGenerator(farmFixture(), rand.New(rand.NewSource(11)))

	p := gen.Generate(3)
	snapshot := p.Clone()
	opt.Improve(p, entities.ScenarioShortage, 10)

	assert.Equal(t, snapshot, p, "the caller's plan must stay untouched")
}

func TestOptimizeEndToEnd(t *testing.T) {
	opt, eval := newOptimizer(5)
	opt.Restarts = 3
	opt.MaxPasses = 10

	plan, fit := opt.Optimize(entities.ScenarioShortage, 3)
	require.NotNil(t, plan)
	assert.Equal(t, 3, plan.Horizon())
	assert.Equal(t, eval.Fitness(plan, entities.ScenarioShortage), fit)

	// every plot is covered for the whole horizon
	for _, plot := range farmFixture().Plots() {
		require.Len(t, plan[plot.Name], 3, "plot %s", plot.Name)
	}
}
