package entities

import "strings"

// Land types.
const (
	LandFlatDry         = "flat_dry"
	LandTerrace         = "terrace"
	LandHillside        = "hillside"
	LandIrrigated       = "irrigated"
	LandGreenhouse      = "greenhouse"
	LandSmartGreenhouse = "smart_greenhouse"
)

// Season labels within a planning year.
const (
	SeasonSingle = "single"
	SeasonFirst  = "first"
	SeasonSecond = "second"
)

// SeasonOrder is the fixed chronological walk order inside one year.
var SeasonOrder = []string{SeasonSingle, SeasonFirst, SeasonSecond}

// Crop categories.
const (
	CategoryGrain           = "grain"
	CategoryGrainLegume     = "grain_legume"
	CategoryVegetable       = "vegetable"
	CategoryVegetableLegume = "vegetable_legume"
	CategoryFungus          = "fungus"
)

// Market scenarios for production beyond the demand baseline.
const (
	ScenarioShortage = "shortage" // excess earns nothing
	ScenarioMarkdown = "markdown" // excess sells at half price
)

func ValidScenario(s string) bool {
	return s == ScenarioShortage || s == ScenarioMarkdown
}

func ValidLandType(t string) bool {
	switch t {
	case LandFlatDry, LandTerrace, LandHillside, LandIrrigated, LandGreenhouse, LandSmartGreenhouse:
		return true
	}
	return false
}

// OpenFieldLand reports single-season dry field types.
func OpenFieldLand(t string) bool {
	return t == LandFlatDry || t == LandTerrace || t == LandHillside
}

func legumeCategory(cat string) bool { return strings.Contains(cat, "legume") }
