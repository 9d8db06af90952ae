package service

import "agroplan/entities"

type PlanService interface {
	// Generate runs the optimizer for one scenario, validates the result,
	// persists it and returns the stored run.
	Generate(scenario string) (*entities.PlanRun, error)
	List() ([]entities.PlanRun, error)
	Get(runID string) (*entities.PlanRun, []entities.PlanCell, error)
	// Export writes the run's workbook (CSV fallback) and returns the path.
	Export(runID string) (string, error)
}
