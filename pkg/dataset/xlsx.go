package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"agroplan/entities"
)

// Attachment workbook sheet names (source data is the published Chinese set).
const (
	sheetPlots     = "乡村的现有耕地"
	sheetCrops     = "乡村种植的农作物"
	sheetPlantings = "2023年的农作物种植情况"
	sheetStats     = "2023年统计的相关数据"
)

var landTypeLabels = map[string]string{
	"平旱地":  entities.LandFlatDry,
	"梯田":   entities.LandTerrace,
	"山坡地":  entities.LandHillside,
	"水浇地":  entities.LandIrrigated,
	"普通大棚": entities.LandGreenhouse,
	"智慧大棚": entities.LandSmartGreenhouse,
}

var seasonLabels = map[string]string{
	"单季":  entities.SeasonSingle,
	"第一季": entities.SeasonFirst,
	"第二季": entities.SeasonSecond,
}

var categoryLabels = map[string]string{
	"粮食":      entities.CategoryGrain,
	"粮食（豆类）":  entities.CategoryGrainLegume,
	"蔬菜":      entities.CategoryVegetable,
	"蔬菜（豆类）":  entities.CategoryVegetableLegume,
	"食用菌":     entities.CategoryFungus,
}

// LoadWorkbooks reads the two attachment workbooks into normalized records.
// Rows with a blank or non-numeric crop id (annotation rows) are skipped, as
// are labels that don't map onto the known enums.
func LoadWorkbooks(attach1, attach2 string) ([]entities.Plot, []entities.Crop, []entities.CropStat, []entities.PlantingRecord, error) {
	f1, err := excelize.OpenFile(attach1)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open %s: %w", attach1, err)
	}
	defer f1.Close()
	f2, err := excelize.OpenFile(attach2)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open %s: %w", attach2, err)
	}
	defer f2.Close()

	plots, err := loadPlots(f1)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	crops, err := loadCrops(f1)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	plantings, err := loadPlantings(f2)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	stats, err := loadStats(f2)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return plots, crops, stats, plantings, nil
}

type sheet struct {
	rows [][]string
	cols map[string]int
}

func readSheet(f *excelize.File, name string) (*sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s: empty", name)
	}
	s := &sheet{rows: rows[1:], cols: map[string]int{}}
	for i, h := range rows[0] {
		s.cols[strings.TrimSpace(h)] = i
	}
	return s, nil
}

func (s *sheet) cell(row []string, col string) string {
	i, ok := s.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseUintCell(v string) (uint, bool) {
	// crop ids sometimes carry a trailing ".0" from spreadsheet typing
	v = strings.TrimSuffix(v, ".0")
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func parseFloatCell(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func loadPlots(f *excelize.File) ([]entities.Plot, error) {
	s, err := readSheet(f, sheetPlots)
	if err != nil {
		return nil, err
	}
	var out []entities.Plot
	for _, row := range s.rows {
		name := s.cell(row, "地块名称")
		lt, ok := landTypeLabels[s.cell(row, "地块类型")]
		if name == "" || !ok {
			continue
		}
		out = append(out, entities.Plot{
			Name:     name,
			LandType: lt,
			AreaMu:   parseFloatCell(s.cell(row, "地块面积/亩")),
		})
	}
	return out, nil
}

func loadCrops(f *excelize.File) ([]entities.Crop, error) {
	s, err := readSheet(f, sheetCrops)
	if err != nil {
		return nil, err
	}
	var out []entities.Crop
	for _, row := range s.rows {
		id, ok := parseUintCell(s.cell(row, "作物编号"))
		if !ok {
			continue
		}
		cat, ok := categoryLabels[s.cell(row, "作物类型")]
		if !ok {
			continue
		}
		out = append(out, entities.Crop{
			CropID:       id,
			Name:         s.cell(row, "作物名称"),
			Category:     cat,
			SuitableLand: s.cell(row, "种植耕地"),
		})
	}
	return out, nil
}

func loadPlantings(f *excelize.File) ([]entities.PlantingRecord, error) {
	s, err := readSheet(f, sheetPlantings)
	if err != nil {
		return nil, err
	}
	var out []entities.PlantingRecord
	for _, row := range s.rows {
		plot := s.cell(row, "种植地块")
		id, ok := parseUintCell(s.cell(row, "作物编号"))
		if plot == "" || !ok {
			continue
		}
		season, ok := seasonLabels[s.cell(row, "种植季次")]
		if !ok {
			continue
		}
		out = append(out, entities.PlantingRecord{
			PlotName: plot,
			CropID:   id,
			Season:   season,
			AreaMu:   parseFloatCell(s.cell(row, "种植面积/亩")),
			Year:     2023,
		})
	}
	return out, nil
}

func loadStats(f *excelize.File) ([]entities.CropStat, error) {
	s, err := readSheet(f, sheetStats)
	if err != nil {
		return nil, err
	}
	var out []entities.CropStat
	for _, row := range s.rows {
		id, ok := parseUintCell(s.cell(row, "作物编号"))
		if !ok {
			continue
		}
		lt, ok := landTypeLabels[s.cell(row, "地块类型")]
		if !ok {
			continue
		}
		season, ok := seasonLabels[s.cell(row, "种植季次")]
		if !ok {
			continue
		}
		lo, hi, err := parsePriceBand(s.cell(row, "销售单价/(元/斤)"))
		if err != nil {
			continue
		}
		out = append(out, entities.CropStat{
			CropID:     id,
			LandType:   lt,
			Season:     season,
			YieldPerMu: parseFloatCell(s.cell(row, "亩产量/斤")),
			CostPerMu:  parseFloatCell(s.cell(row, "种植成本/(元/亩)")),
			PriceMin:   lo,
			PriceMax:   hi,
		})
	}
	return out, nil
}

// parsePriceBand parses "2.50-4.00" into its bounds.
func parsePriceBand(v string) (float64, float64, error) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("price band %q: want min-max", v)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("price band %q: %w", v, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("price band %q: %w", v, err)
	}
	return lo, hi, nil
}
