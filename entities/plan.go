package entities

import "time"

// PlanRun is one completed optimization run for a scenario.
type PlanRun struct {
	RunID    string  `gorm:"primaryKey" json:"run_id"`
	Scenario string  `json:"scenario"` // shortage|markdown
	Horizon  int     `json:"horizon"`
	Fitness  float64 `json:"fitness"`

	// Validator verdicts, diagnostics only.
	RotationOK      bool `json:"rotation_ok"`
	ReplantOK       bool `json:"replant_ok"`
	ConcentrationOK bool `json:"concentration_ok"`
	MinAreaOK       bool `json:"min_area_ok"`

	ExportPath string `json:"export_path,omitempty"`
	CreatedAt  time.Time
}

// PlanCell is one planted cell of a persisted run.
type PlanCell struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	RunID    string  `json:"run_id" gorm:"index"`
	PlotName string  `json:"plot_name"`
	Year     int     `json:"year"` // 0-based index into the horizon
	Season   string  `json:"season"`
	CropID   uint    `json:"crop_id"`
	AreaMu   float64 `json:"area_mu"`
}
