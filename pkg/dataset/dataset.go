package dataset

import (
	"sort"

	"agroplan/entities"
)

// Key addresses one statistics row.
type Key struct {
	CropID   uint
	LandType string
	Season   string
}

// Classes are the crop index sets the generator draws from. Built once at
// construction; the rice and second-season root-vegetable sets are derived
// from which stats rows exist rather than hard-coded crop ids.
type Classes struct {
	Grains          []uint // category grain or grain_legume
	Legumes         []uint // any category containing the legume marker
	FieldVegetables []uint // vegetables excluding the root/leaf second-season set
	RootVegetables  []uint // crops costable on (irrigated, second)
	PaddyRice       []uint // crops costable on (irrigated, single)
	Fungi           []uint
}

// Dataset is an immutable snapshot of the farm records plus derived indexes.
// Shared by reference across generator, evaluator and validator.
type Dataset struct {
	plots    []entities.Plot
	crops    map[uint]entities.Crop
	stats    map[Key]entities.CropStat
	expected map[uint]float64

	Classes Classes
}

func New(plots []entities.Plot, crops []entities.Crop, stats []entities.CropStat, plantings []entities.PlantingRecord) *Dataset {
	d := &Dataset{
		plots:    make([]entities.Plot, len(plots)),
		crops:    make(map[uint]entities.Crop, len(crops)),
		stats:    make(map[Key]entities.CropStat, len(stats)),
		expected: make(map[uint]float64),
	}
	copy(d.plots, plots)
	// Stable plot order keeps every evaluation walk deterministic.
	sort.Slice(d.plots, func(i, j int) bool { return d.plots[i].Name < d.plots[j].Name })

	for _, c := range crops {
		d.crops[c.CropID] = c
	}
	for _, s := range stats {
		d.stats[Key{s.CropID, s.LandType, s.Season}] = s
	}

	d.deriveExpectedSales(plantings)
	d.buildClasses()
	return d
}

// deriveExpectedSales sums yield_per_mu x observed area over the baseline
// plantings. Records without a matching stats row contribute nothing.
func (d *Dataset) deriveExpectedSales(plantings []entities.PlantingRecord) {
	byName := make(map[string]entities.Plot, len(d.plots))
	for _, p := range d.plots {
		byName[p.Name] = p
	}
	for _, rec := range plantings {
		plot, ok := byName[rec.PlotName]
		if !ok {
			continue
		}
		stat, ok := d.stats[Key{rec.CropID, plot.LandType, rec.Season}]
		if !ok {
			continue
		}
		d.expected[rec.CropID] += stat.YieldPerMu * rec.AreaMu
	}
}

func (d *Dataset) buildClasses() {
	ids := make([]uint, 0, len(d.crops))
	for id := range d.crops {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	inRoot := make(map[uint]bool)
	for _, id := range ids {
		c := d.crops[id]
		if _, ok := d.stats[Key{id, entities.LandIrrigated, entities.SeasonSecond}]; ok {
			d.Classes.RootVegetables = append(d.Classes.RootVegetables, id)
			inRoot[id] = true
		}
		if _, ok := d.stats[Key{id, entities.LandIrrigated, entities.SeasonSingle}]; ok {
			d.Classes.PaddyRice = append(d.Classes.PaddyRice, id)
		}
		if c.IsGrain() {
			d.Classes.Grains = append(d.Classes.Grains, id)
		}
		if c.IsLegume() {
			d.Classes.Legumes = append(d.Classes.Legumes, id)
		}
		if c.IsFungus() {
			d.Classes.Fungi = append(d.Classes.Fungi, id)
		}
	}
	for _, id := range ids {
		if d.crops[id].IsVegetable() && !inRoot[id] {
			d.Classes.FieldVegetables = append(d.Classes.FieldVegetables, id)
		}
	}
}

// Plots returns the plots in stable name order. Callers must not mutate.
func (d *Dataset) Plots() []entities.Plot { return d.plots }

func (d *Dataset) Crop(id uint) (entities.Crop, bool) {
	c, ok := d.crops[id]
	return c, ok
}

func (d *Dataset) Stat(cropID uint, landType, season string) (entities.CropStat, bool) {
	s, ok := d.stats[Key{cropID, landType, season}]
	return s, ok
}

func (d *Dataset) ExpectedSales(cropID uint) (float64, bool) {
	v, ok := d.expected[cropID]
	return v, ok
}
