package repositoryImp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/database"
	"agroplan/entities"
	"agroplan/pkg/farm/repositoryImp"
)

func TestSaveAndLoadDataset(t *testing.T) {
	repo := repositoryImp.New(database.OpenSQLite(":memory:"))

	plots := []entities.Plot{
		{Name: "D1", LandType: entities.LandFlatDry, AreaMu: 10},
		{Name: "A1", LandType: entities.LandIrrigated, AreaMu: 15},
	}
	crops := []entities.Crop{{CropID: 1, Name: "wheat", Category: entities.CategoryGrain}}
	stats := []entities.CropStat{
		{CropID: 1, LandType: entities.LandFlatDry, Season: entities.SeasonSingle, YieldPerMu: 400, CostPerMu: 300, PriceMin: 2, PriceMax: 3},
	}
	plantings := []entities.PlantingRecord{
		{PlotName: "D1", CropID: 1, Season: entities.SeasonSingle, AreaMu: 10, Year: 2023},
	}
	require.NoError(t, repo.SaveDataset(plots, crops, stats, plantings))

	gotPlots, gotCrops, gotStats, gotPlantings, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, gotPlots, 2)
	assert.Equal(t, "A1", gotPlots[0].Name, "plots come back in name order")
	assert.Len(t, gotCrops, 1)
	assert.Len(t, gotStats, 1)
	assert.Len(t, gotPlantings, 1)

	n, err := repo.CountPlots()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCreatePlotAndList(t *testing.T) {
	repo := repositoryImp.New(database.OpenSQLite(":memory:"))

	p := &entities.Plot{Name: "G1", LandType: entities.LandGreenhouse, AreaMu: 0.6}
	require.NoError(t, repo.CreatePlot(p))
	assert.NotZero(t, p.PlotID)

	// duplicate names are rejected by the unique index
	assert.Error(t, repo.CreatePlot(&entities.Plot{Name: "G1", LandType: entities.LandGreenhouse, AreaMu: 1}))

	plots, err := repo.ListPlots()
	require.NoError(t, err)
	assert.Len(t, plots, 1)
}

func TestUpdatePriceBand(t *testing.T) {
	repo := repositoryImp.New(database.OpenSQLite(":memory:"))

	crops := []entities.Crop{{CropID: 1, Name: "wheat", Category: entities.CategoryGrain}}
	stats := []entities.CropStat{
		{CropID: 1, LandType: entities.LandFlatDry, Season: entities.SeasonSingle, PriceMin: 2, PriceMax: 3},
		{CropID: 1, LandType: entities.LandTerrace, Season: entities.SeasonSingle, PriceMin: 2, PriceMax: 3},
	}
	require.NoError(t, repo.SaveDataset(nil, crops, stats, nil))

	n, err := repo.UpdatePriceBand("wheat", 2.6, 3.4)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "every stats row of the crop is rewritten")

	got, err := repo.StatsByCrop(1)
	require.NoError(t, err)
	for _, s := range got {
		assert.InDelta(t, 2.6, s.PriceMin, 1e-9)
		assert.InDelta(t, 3.4, s.PriceMax, 1e-9)
	}

	n, err = repo.UpdatePriceBand("no-such-crop", 1, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}
