package repository

import "agroplan/entities"

type PlanRepository interface {
	CreateRun(run *entities.PlanRun, cells []entities.PlanCell) error
	ListRuns() ([]entities.PlanRun, error)
	FindRun(runID string) (*entities.PlanRun, []entities.PlanCell, error)
	SetExportPath(runID, path string) error
}
