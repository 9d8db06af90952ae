// Package market refreshes crop price bands from an HTML price bulletin.
package market

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Quote is one crop price band read from a bulletin table.
type Quote struct {
	Crop     string  `json:"crop"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
}

// ParseBulletin extracts quotes from the first table-like structure of an
// HTML document. Accepts rows of (crop, min, max) or (crop, "min-max");
// rows that don't parse (headers, footnotes) are skipped.
func ParseBulletin(r io.Reader) ([]Quote, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var quotes []Quote
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if q, ok := parseRow(cells); ok {
			quotes = append(quotes, q)
		}
	})
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no price rows found")
	}
	return quotes, nil
}

func parseRow(cells []string) (Quote, bool) {
	switch len(cells) {
	case 2:
		parts := strings.SplitN(cells[1], "-", 2)
		if len(parts) != 2 {
			return Quote{}, false
		}
		lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if cells[0] == "" || err1 != nil || err2 != nil {
			return Quote{}, false
		}
		return Quote{Crop: cells[0], PriceMin: lo, PriceMax: hi}, true
	case 3:
		lo, err1 := strconv.ParseFloat(cells[1], 64)
		hi, err2 := strconv.ParseFloat(cells[2], 64)
		if cells[0] == "" || err1 != nil || err2 != nil {
			return Quote{}, false
		}
		return Quote{Crop: cells[0], PriceMin: lo, PriceMax: hi}, true
	}
	return Quote{}, false
}
