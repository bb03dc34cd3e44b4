// Package report turns the flat entry log into per-street rollups.
package report

import (
	"sort"

	"github.com/makmour/WasteBinTracker/internal/models"
)

// BinCounts is the per-street histogram over the four bin-type tags.
// Each field counts entries tagged with that type, not tag occurrences:
// an entry listing Green twice still counts once toward Green.
type BinCounts struct {
	Green  int `json:"Green"`
	Blue   int `json:"Blue"`
	Brown  int `json:"Brown"`
	Yellow int `json:"Yellow"`
}

// StreetReport is one street's rollup.
type StreetReport struct {
	Street     string    `json:"street"`
	TotalBins  int       `json:"totalBins"`
	BinCounts  BinCounts `json:"binCounts"`
	EntryCount int       `json:"entryCount"`
	LastSurvey string    `json:"lastSurvey"`
}

// lastSurveyLayout formats the most recent survey date for display.
const lastSurveyLayout = "2006-01-02"

// BuildStreetReports groups the entry log by street and computes each
// street's totals. The result is sorted by total bin count descending;
// ties keep the order streets were first seen in the input.
func BuildStreetReports(entries []models.BinSurveyEntry) []StreetReport {
	index := make(map[string]int)
	reports := make([]StreetReport, 0)
	latest := make(map[string]models.BinSurveyEntry)

	for _, entry := range entries {
		i, ok := index[entry.Street]
		if !ok {
			i = len(reports)
			index[entry.Street] = i
			reports = append(reports, StreetReport{Street: entry.Street})
			latest[entry.Street] = entry
		}

		r := &reports[i]
		r.TotalBins += entry.Quantity
		r.EntryCount++
		countTypes(&r.BinCounts, entry.BinTypes)

		if entry.Datetime.After(latest[entry.Street].Datetime) {
			latest[entry.Street] = entry
		}
	}

	for i := range reports {
		reports[i].LastSurvey = latest[reports[i].Street].Datetime.Format(lastSurveyLayout)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TotalBins > reports[j].TotalBins
	})
	return reports
}

// countTypes bumps each histogram bucket at most once per entry.
func countTypes(counts *BinCounts, types models.BinTypeList) {
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		switch t {
		case "Green":
			counts.Green++
		case "Blue":
			counts.Blue++
		case "Brown":
			counts.Brown++
		case "Yellow":
			counts.Yellow++
		}
	}
}

// Summary totals the rollups for the survey overview.
type Summary struct {
	TotalBins    int `json:"totalBins"`
	TotalSurveys int `json:"totalSurveys"`
	StreetCount  int `json:"streetCount"`
}

// Summarize collapses a set of street reports into overall totals.
func Summarize(reports []StreetReport) Summary {
	var s Summary
	for _, r := range reports {
		s.TotalBins += r.TotalBins
		s.TotalSurveys += r.EntryCount
	}
	s.StreetCount = len(reports)
	return s
}
