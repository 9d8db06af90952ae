package serviceImp

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"agroplan/entities"
	"agroplan/pkg/dataset"
	"agroplan/pkg/export"
	planrepo "agroplan/pkg/plan/repository"
	"agroplan/pkg/plan/service"
	"agroplan/pkg/planner"
)

type PlanSvc struct {
	ds        *dataset.Dataset
	opt       *planner.Optimizer
	validator *planner.Validator
	repo      planrepo.PlanRepository
	horizon   int
	outputDir string
}

func NewPlanService(ds *dataset.Dataset, opt *planner.Optimizer, v *planner.Validator, repo planrepo.PlanRepository, horizon int, outputDir string) service.PlanService {
	return &PlanSvc{ds: ds, opt: opt, validator: v, repo: repo, horizon: horizon, outputDir: outputDir}
}

func (s *PlanSvc) Generate(scenario string) (*entities.PlanRun, error) {
	if !entities.ValidScenario(scenario) {
		return nil, fmt.Errorf("unknown scenario %q", scenario)
	}
	log.Printf("[plan] optimizing scenario=%s horizon=%d", scenario, s.horizon)
	plan, fitness := s.opt.Optimize(scenario, s.horizon)

	report := s.validator.Validate(plan)
	if !report.Rotation {
		log.Printf("[plan] warn: legume rotation constraint not satisfied")
	}
	if !report.NoReplant {
		log.Printf("[plan] warn: replant constraint not satisfied")
	}
	if !report.Concentration {
		log.Printf("[plan] warn: concentration constraint not satisfied")
	}
	if !report.MinArea {
		log.Printf("[plan] warn: minimum area constraint not satisfied")
	}

	run := &entities.PlanRun{
		RunID:           uuid.NewString(),
		Scenario:        scenario,
		Horizon:         s.horizon,
		Fitness:         fitness,
		RotationOK:      report.Rotation,
		ReplantOK:       report.NoReplant,
		ConcentrationOK: report.Concentration,
		MinAreaOK:       report.MinArea,
	}
	if err := s.repo.CreateRun(run, s.cells(run.RunID, plan)); err != nil {
		return nil, err
	}
	log.Printf("[plan] run %s fitness=%.2f valid=%v", run.RunID, fitness, report.OK())
	return run, nil
}

func (s *PlanSvc) List() ([]entities.PlanRun, error) { return s.repo.ListRuns() }

func (s *PlanSvc) Get(runID string) (*entities.PlanRun, []entities.PlanCell, error) {
	return s.repo.FindRun(runID)
}

func (s *PlanSvc) Export(runID string) (string, error) {
	run, cells, err := s.repo.FindRun(runID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}
	plan := s.planFromCells(cells, run.Horizon)
	name := fmt.Sprintf("result_%s_%s", run.Scenario, run.RunID[:8])
	path, err := export.Write(s.outputDir, name, plan, s.ds)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetExportPath(runID, path); err != nil {
		return "", err
	}
	log.Printf("[export] run %s written to %s", runID, path)
	return path, nil
}

// cells flattens a plan into persistence rows, in the dataset's stable
// plot order.
func (s *PlanSvc) cells(runID string, p planner.Plan) []entities.PlanCell {
	var out []entities.PlanCell
	for _, plot := range s.ds.Plots() {
		for year, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				if cell, ok := py[season]; ok {
					out = append(out, entities.PlanCell{
						RunID:    runID,
						PlotName: plot.Name,
						Year:     year,
						Season:   season,
						CropID:   cell.CropID,
						AreaMu:   cell.Area,
					})
				}
			}
		}
	}
	return out
}

func (s *PlanSvc) planFromCells(cells []entities.PlanCell, horizon int) planner.Plan {
	p := planner.NewPlan(s.ds.Plots(), horizon)
	for _, c := range cells {
		if years, ok := p[c.PlotName]; ok && c.Year < len(years) {
			years[c.Year][c.Season] = planner.Cell{CropID: c.CropID, Area: c.AreaMu}
		}
	}
	return p
}
