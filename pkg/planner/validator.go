package planner

import (
	"agroplan/entities"
	"agroplan/pkg/dataset"
)

// Report carries the post-optimization verdict of the four hard rules.
// Diagnostics only; a failed check never blocks export.
type Report struct {
	Rotation      bool `json:"rotation"`
	NoReplant     bool `json:"no_replant"`
	Concentration bool `json:"concentration"`
	MinArea       bool `json:"min_area"`
}

func (r Report) OK() bool {
	return r.Rotation && r.NoReplant && r.Concentration && r.MinArea
}

// Validator re-checks the constraints as hard pass/fail, independent of the
// evaluator's penalty arithmetic.
type Validator struct {
	ds *dataset.Dataset
	w  Weights
}

func NewValidator(ds *dataset.Dataset, w Weights) *Validator {
	return &Validator{ds: ds, w: w}
}

func (v *Validator) Validate(p Plan) Report {
	return Report{
		Rotation:      v.ValidateRotation(p),
		NoReplant:     v.ValidateNoReplant(p),
		Concentration: v.ValidateConcentration(p),
		MinArea:       v.ValidateMinArea(p),
	}
}

// ValidateRotation: every plot plants a legume at least once per horizon.
func (v *Validator) ValidateRotation(p Plan) bool {
	for _, plot := range v.ds.Plots() {
		planted := false
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				if cell, ok := py[season]; ok {
					if crop, ok := v.ds.Crop(cell.CropID); ok && crop.IsLegume() {
						planted = true
					}
				}
			}
		}
		if !planted {
			return false
		}
	}
	return true
}

// ValidateNoReplant: no cell repeats the chronologically preceding cell's
// crop on the same plot.
func (v *Validator) ValidateNoReplant(p Plan) bool {
	for _, plot := range v.ds.Plots() {
		var prev uint
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				cell, ok := py[season]
				if !ok {
					continue
				}
				if cell.CropID == prev {
					return false
				}
				prev = cell.CropID
			}
		}
	}
	return true
}

// ValidateConcentration: in every (year, season) stratum each planted crop
// covers between MinPlots and MaxPlots distinct plots.
func (v *Validator) ValidateConcentration(p Plan) bool {
	horizon := p.Horizon()
	for year := 0; year < horizon; year++ {
		for _, season := range entities.SeasonOrder {
			counts := map[uint]int{}
			for _, plot := range v.ds.Plots() {
				years := p[plot.Name]
				if year >= len(years) {
					continue
				}
				if cell, ok := years[year][season]; ok {
					counts[cell.CropID]++
				}
			}
			for _, n := range counts {
				if n < v.w.MinPlots || n > v.w.MaxPlots {
					return false
				}
			}
		}
	}
	return true
}

// ValidateMinArea: no planted cell falls below the minimum workable area.
func (v *Validator) ValidateMinArea(p Plan) bool {
	for _, plot := range v.ds.Plots() {
		for _, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				if cell, ok := py[season]; ok && cell.Area < v.w.MinArea {
					return false
				}
			}
		}
	}
	return true
}
