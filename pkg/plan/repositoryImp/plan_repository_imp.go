package repositoryImp

import (
	"gorm.io/gorm"

	"agroplan/entities"
	"agroplan/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) CreateRun(run *entities.PlanRun, cells []entities.PlanCell) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		if len(cells) > 0 {
			if err := tx.Create(&cells).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *planRepo) ListRuns() ([]entities.PlanRun, error) {
	var out []entities.PlanRun
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *planRepo) FindRun(runID string) (*entities.PlanRun, []entities.PlanCell, error) {
	var run entities.PlanRun
	if err := r.db.Where("run_id = ?", runID).First(&run).Error; err != nil { return nil, nil, err }
	var cells []entities.PlanCell
	if err := r.db.Where("run_id = ?", runID).Order("plot_name, year, season").Find(&cells).Error; err != nil { return nil, nil, err }
	return &run, cells, nil
}

func (r *planRepo) SetExportPath(runID, path string) error {
	return r.db.Model(&entities.PlanRun{}).Where("run_id = ?", runID).Update("export_path", path).Error
}
