package repositoryImp

import (
	"gorm.io/gorm"

	"agroplan/entities"
	"agroplan/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) SaveDataset(plots []entities.Plot, crops []entities.Crop, stats []entities.CropStat, plantings []entities.PlantingRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(plots) > 0 {
			if err := tx.Create(&plots).Error; err != nil {
				return err
			}
		}
		if len(crops) > 0 {
			if err := tx.Create(&crops).Error; err != nil {
				return err
			}
		}
		if len(stats) > 0 {
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		}
		if len(plantings) > 0 {
			if err := tx.Create(&plantings).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *farmRepo) LoadAll() ([]entities.Plot, []entities.Crop, []entities.CropStat, []entities.PlantingRecord, error) {
	var plots []entities.Plot
	var crops []entities.Crop
	var stats []entities.CropStat
	var plantings []entities.PlantingRecord
	if err := r.db.Order("name").Find(&plots).Error; err != nil { return nil, nil, nil, nil, err }
	if err := r.db.Order("crop_id").Find(&crops).Error; err != nil { return nil, nil, nil, nil, err }
	if err := r.db.Find(&stats).Error; err != nil { return nil, nil, nil, nil, err }
	if err := r.db.Find(&plantings).Error; err != nil { return nil, nil, nil, nil, err }
	return plots, crops, stats, plantings, nil
}

func (r *farmRepo) CreatePlot(p *entities.Plot) error { return r.db.Create(p).Error }

func (r *farmRepo) ListPlots() ([]entities.Plot, error) {
	var out []entities.Plot
	if err := r.db.Order("name").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *farmRepo) CountPlots() (int64, error) {
	var n int64
	if err := r.db.Model(&entities.Plot{}).Count(&n).Error; err != nil { return 0, err }
	return n, nil
}

func (r *farmRepo) ListCrops() ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Order("crop_id").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *farmRepo) StatsByCrop(cropID uint) ([]entities.CropStat, error) {
	var out []entities.CropStat
	if err := r.db.Where("crop_id = ?", cropID).Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *farmRepo) UpdatePriceBand(cropName string, min, max float64) (int64, error) {
	var crop entities.Crop
	if err := r.db.Where("name = ?", cropName).First(&crop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	res := r.db.Model(&entities.CropStat{}).
		Where("crop_id = ?", crop.CropID).
		Updates(map[string]interface{}{"price_min": min, "price_max": max})
	return res.RowsAffected, res.Error
}
