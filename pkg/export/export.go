// Package export serializes a finished plan to the result workbook: one row
// per (season, year), one column per crop holding the planted area, plus an
// accumulated plot-name column. Falls back to plain CSV when the xlsx write
// fails.
package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"agroplan/entities"
	"agroplan/pkg/dataset"
	"agroplan/pkg/planner"
)

// StartYear labels horizon year 0 in row headers.
const StartYear = 2024

// Rows follow the original result layout: first, second, then single season
// blocks, each spanning the horizon.
var rowSeasons = []string{entities.SeasonFirst, entities.SeasonSecond, entities.SeasonSingle}

// Write tries xlsx first, then retries once as CSV. Returns the path
// actually written.
func Write(dir, name string, p planner.Plan, ds *dataset.Dataset) (string, error) {
	xlsxPath := filepath.Join(dir, name+".xlsx")
	if err := WriteWorkbook(xlsxPath, p, ds); err != nil {
		log.Printf("[export] xlsx write failed (%v), retrying as csv", err)
		csvPath := filepath.Join(dir, name+".csv")
		if err2 := WriteCSV(csvPath, p, ds); err2 != nil {
			return "", fmt.Errorf("export %s: xlsx: %v; csv: %w", name, err, err2)
		}
		return csvPath, nil
	}
	return xlsxPath, nil
}

// WriteWorkbook writes the plan as a single-sheet xlsx.
func WriteWorkbook(path string, p planner.Plan, ds *dataset.Dataset) error {
	table := buildTable(p, ds)
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range table {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// WriteCSV writes the same table as the plain-text fallback format.
func WriteCSV(path string, p planner.Plan, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	for _, row := range buildTable(p, ds) {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// buildTable renders header + one row per (season, year). Crop columns hold
// the total area planted to that crop in the stratum; the plots column lists
// the plots planted in it.
func buildTable(p planner.Plan, ds *dataset.Dataset) [][]string {
	cropIDs := sortedCropIDs(ds)
	colOf := make(map[uint]int, len(cropIDs))

	header := []string{"season_year", "plots"}
	for i, id := range cropIDs {
		crop, _ := ds.Crop(id)
		colOf[id] = i + 2
		header = append(header, crop.Name)
	}

	horizon := p.Horizon()
	rowOf := map[string]int{}
	table := [][]string{header}
	for _, season := range rowSeasons {
		for year := 0; year < horizon; year++ {
			key := season + strconv.Itoa(year)
			rowOf[key] = len(table)
			row := make([]string, len(header))
			row[0] = fmt.Sprintf("%s %d", season, StartYear+year)
			table = append(table, row)
		}
	}

	areas := map[string]map[uint]float64{} // row key -> crop -> total area
	for _, plot := range ds.Plots() {
		for year, py := range p[plot.Name] {
			for _, season := range entities.SeasonOrder {
				cell, ok := py[season]
				if !ok {
					continue
				}
				key := season + strconv.Itoa(year)
				row := table[rowOf[key]]
				if row[1] == "" {
					row[1] = plot.Name
				} else {
					row[1] += " " + plot.Name
				}
				if areas[key] == nil {
					areas[key] = map[uint]float64{}
				}
				areas[key][cell.CropID] += cell.Area
			}
		}
	}
	for key, byCrop := range areas {
		row := table[rowOf[key]]
		for id, area := range byCrop {
			row[colOf[id]] = strconv.FormatFloat(area, 'f', -1, 64)
		}
	}
	return table
}

func sortedCropIDs(ds *dataset.Dataset) []uint {
	var ids []uint
	// class indexes jointly cover every plantable crop
	seen := map[uint]bool{}
	for _, set := range [][]uint{
		ds.Classes.Grains, ds.Classes.FieldVegetables, ds.Classes.RootVegetables,
		ds.Classes.PaddyRice, ds.Classes.Fungi, ds.Classes.Legumes,
	} {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
