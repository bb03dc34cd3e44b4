package report

import (
	"testing"
	"time"

	"github.com/makmour/WasteBinTracker/internal/models"
)

func entry(street string, qty int, dt time.Time, types ...string) models.BinSurveyEntry {
	return models.BinSurveyEntry{
		Street:   street,
		Quantity: qty,
		Datetime: dt,
		BinTypes: models.BinTypeList(types),
	}
}

// TestBuildStreetReports_Aggregation covers the reference scenario:
// StreetA (qty 3 Green + qty 2 Blue) and StreetB (qty 5 Yellow) tie at
// 5 total bins, and the tie keeps first-seen order.
func TestBuildStreetReports_Aggregation(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.BinSurveyEntry{
		entry("StreetA", 3, base, "Green"),
		entry("StreetA", 2, base.Add(time.Hour), "Blue"),
		entry("StreetB", 5, base.Add(2*time.Hour), "Yellow"),
	}

	reports := BuildStreetReports(entries)
	if len(reports) != 2 {
		t.Fatalf("expected 2 street reports, got %d", len(reports))
	}

	a := reports[0]
	if a.Street != "StreetA" {
		t.Fatalf("tie must keep first-seen order, got %q first", a.Street)
	}
	if a.TotalBins != 5 {
		t.Errorf("StreetA: expected 5 total bins, got %d", a.TotalBins)
	}
	if a.BinCounts.Green != 1 || a.BinCounts.Blue != 1 || a.BinCounts.Brown != 0 || a.BinCounts.Yellow != 0 {
		t.Errorf("StreetA: unexpected histogram %+v", a.BinCounts)
	}
	if a.EntryCount != 2 {
		t.Errorf("StreetA: expected 2 entries, got %d", a.EntryCount)
	}
	if a.LastSurvey != "2025-06-01" {
		t.Errorf("StreetA: unexpected last survey %q", a.LastSurvey)
	}

	b := reports[1]
	if b.Street != "StreetB" || b.TotalBins != 5 || b.BinCounts.Yellow != 1 {
		t.Errorf("StreetB: unexpected report %+v", b)
	}
}

// TestBuildStreetReports_CountsEntriesNotTags verifies the histogram counts
// entries tagged with a type, not tag occurrences within an entry.
func TestBuildStreetReports_CountsEntriesNotTags(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.BinSurveyEntry{
		entry("Metaxa", 3, base, "Green", "Green", "Blue"),
	}

	reports := BuildStreetReports(entries)
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	counts := reports[0].BinCounts
	if counts.Green != 1 {
		t.Errorf("Green listed twice in one entry must count once, got %d", counts.Green)
	}
	if counts.Blue != 1 {
		t.Errorf("expected Blue count 1, got %d", counts.Blue)
	}
}

// TestBuildStreetReports_SortDescending verifies ordering by total bins.
func TestBuildStreetReports_SortDescending(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.BinSurveyEntry{
		entry("Low", 1, base, "Green"),
		entry("High", 10, base, "Blue"),
		entry("Mid", 4, base, "Brown"),
	}

	reports := BuildStreetReports(entries)
	want := []string{"High", "Mid", "Low"}
	for i, street := range want {
		if reports[i].Street != street {
			t.Errorf("position %d: expected %q, got %q", i, street, reports[i].Street)
		}
	}
}

// TestBuildStreetReports_LastSurvey verifies the most recent datetime wins
// regardless of input order.
func TestBuildStreetReports_LastSurvey(t *testing.T) {
	old := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 20, 16, 0, 0, 0, time.UTC)
	entries := []models.BinSurveyEntry{
		entry("Metaxa", 1, recent, "Green"),
		entry("Metaxa", 1, old, "Blue"),
	}

	reports := BuildStreetReports(entries)
	if reports[0].LastSurvey != "2025-06-20" {
		t.Errorf("expected last survey 2025-06-20, got %q", reports[0].LastSurvey)
	}
}

// TestSummarize verifies the overview totals.
func TestSummarize(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.BinSurveyEntry{
		entry("StreetA", 3, base, "Green"),
		entry("StreetA", 2, base, "Blue"),
		entry("StreetB", 5, base, "Yellow"),
	}

	s := Summarize(BuildStreetReports(entries))
	if s.TotalBins != 10 {
		t.Errorf("expected 10 total bins, got %d", s.TotalBins)
	}
	if s.TotalSurveys != 3 {
		t.Errorf("expected 3 surveys, got %d", s.TotalSurveys)
	}
	if s.StreetCount != 2 {
		t.Errorf("expected 2 streets, got %d", s.StreetCount)
	}
}

// TestBuildStreetReports_Empty returns an empty slice, not nil panics.
func TestBuildStreetReports_Empty(t *testing.T) {
	reports := BuildStreetReports(nil)
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}
