package repository

import "agroplan/entities"

type FarmRepository interface {
	SaveDataset(plots []entities.Plot, crops []entities.Crop, stats []entities.CropStat, plantings []entities.PlantingRecord) error
	LoadAll() ([]entities.Plot, []entities.Crop, []entities.CropStat, []entities.PlantingRecord, error)

	CreatePlot(p *entities.Plot) error
	ListPlots() ([]entities.Plot, error)
	CountPlots() (int64, error)
	ListCrops() ([]entities.Crop, error)
	StatsByCrop(cropID uint) ([]entities.CropStat, error)

	// UpdatePriceBand rewrites the price interval of every stats row for the
	// named crop; returns the number of rows touched.
	UpdatePriceBand(cropName string, min, max float64) (int64, error)
}
