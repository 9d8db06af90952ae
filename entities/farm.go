package entities

import "time"

type Plot struct {
	PlotID   uint    `gorm:"primaryKey" json:"plot_id"`
	Name     string  `json:"name" gorm:"uniqueIndex"`
	LandType string  `json:"land_type"` // flat_dry|terrace|hillside|irrigated|greenhouse|smart_greenhouse
	AreaMu   float64 `json:"area_mu"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Crop struct {
	CropID       uint   `gorm:"primaryKey" json:"crop_id"`
	Name         string `json:"name"`
	Category     string `json:"category"` // grain|grain_legume|vegetable|vegetable_legume|fungus
	SuitableLand string `json:"suitable_land"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Crop) IsLegume() bool { return legumeCategory(c.Category) }

func (c Crop) IsGrain() bool {
	return c.Category == CategoryGrain || c.Category == CategoryGrainLegume
}

func (c Crop) IsVegetable() bool {
	return c.Category == CategoryVegetable || c.Category == CategoryVegetableLegume
}

func (c Crop) IsFungus() bool { return c.Category == CategoryFungus }

// PlantingRecord is one observed planting from the baseline year (2023).
type PlantingRecord struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	PlotName string  `json:"plot_name" gorm:"index"`
	CropID   uint    `json:"crop_id" gorm:"index"`
	Season   string  `json:"season"` // single|first|second
	AreaMu   float64 `json:"area_mu"`
	Year     int     `json:"year"`
}

// CropStat holds yield/cost/price statistics for one (crop, land type, season).
type CropStat struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	CropID     uint    `json:"crop_id" gorm:"index:idx_stat_key"`
	LandType   string  `json:"land_type" gorm:"index:idx_stat_key"`
	Season     string  `json:"season" gorm:"index:idx_stat_key"`
	YieldPerMu float64 `json:"yield_per_mu"`
	CostPerMu  float64 `json:"cost_per_mu"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
}

func (s CropStat) MeanPrice() float64 { return (s.PriceMin + s.PriceMax) / 2 }
