package planner_test

import (
	"agroplan/entities"
	"agroplan/pkg/dataset"
)

// farmFixture covers every land type with a small but complete crop set.
func farmFixture() *dataset.Dataset {
	plots := []entities.Plot{
		{Name: "D1", LandType: entities.LandFlatDry, AreaMu: 10},
		{Name: "D2", LandType: entities.LandFlatDry, AreaMu: 12},
		{Name: "D3", LandType: entities.LandFlatDry, AreaMu: 8},
		{Name: "T1", LandType: entities.LandTerrace, AreaMu: 8},
		{Name: "H1", LandType: entities.LandHillside, AreaMu: 6},
		{Name: "I1", LandType: entities.LandIrrigated, AreaMu: 10},
		{Name: "I2", LandType: entities.LandIrrigated, AreaMu: 9},
		{Name: "G1", LandType: entities.LandGreenhouse, AreaMu: 6},
		{Name: "S1", LandType: entities.LandSmartGreenhouse, AreaMu: 6},
	}
	crops := []entities.Crop{
		{CropID: 1, Name: "wheat", Category: entities.CategoryGrain},
		{CropID: 2, Name: "soybean", Category: entities.CategoryGrainLegume},
		{CropID: 3, Name: "maize", Category: entities.CategoryGrain},
		{CropID: 18, Name: "rice", Category: entities.CategoryGrain},
		{CropID: 20, Name: "cucumber", Category: entities.CategoryVegetable},
		{CropID: 21, Name: "cowpea", Category: entities.CategoryVegetableLegume},
		{CropID: 37, Name: "radish", Category: entities.CategoryVegetable},
		{CropID: 40, Name: "shiitake", Category: entities.CategoryFungus},
	}
	stat := func(crop uint, land, season string) entities.CropStat {
		return entities.CropStat{
			CropID: crop, LandType: land, Season: season,
			YieldPerMu: 500, CostPerMu: 200, PriceMin: 2, PriceMax: 3,
		}
	}
	var stats []entities.CropStat
	for _, crop := range []uint{1, 2, 3} {
		stats = append(stats,
			stat(crop, entities.LandFlatDry, entities.SeasonSingle),
			stat(crop, entities.LandTerrace, entities.SeasonSingle),
			stat(crop, entities.LandHillside, entities.SeasonSingle),
		)
	}
	stats = append(stats, stat(18, entities.LandIrrigated, entities.SeasonSingle))
	for _, crop := range []uint{20, 21} {
		stats = append(stats,
			stat(crop, entities.LandIrrigated, entities.SeasonFirst),
			stat(crop, entities.LandGreenhouse, entities.SeasonFirst),
			stat(crop, entities.LandSmartGreenhouse, entities.SeasonFirst),
			stat(crop, entities.LandSmartGreenhouse, entities.SeasonSecond),
		)
	}
	stats = append(stats,
		stat(37, entities.LandIrrigated, entities.SeasonSecond),
		stat(40, entities.LandGreenhouse, entities.SeasonSecond),
	)
	plantings := []entities.PlantingRecord{
		{PlotName: "D1", CropID: 1, Season: entities.SeasonSingle, AreaMu: 10, Year: 2023},
		{PlotName: "I1", CropID: 18, Season: entities.SeasonSingle, AreaMu: 10, Year: 2023},
		{PlotName: "G1", CropID: 20, Season: entities.SeasonFirst, AreaMu: 6, Year: 2023},
	}
	return dataset.New(plots, crops, stats, plantings)
}

func contains(ids []uint, want uint) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
