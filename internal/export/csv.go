// Package export serializes the entry log for external consumption.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/makmour/WasteBinTracker/internal/models"
	"github.com/makmour/WasteBinTracker/internal/report"
)

// EntryCSVHeader is the column list of the full-log export.
var EntryCSVHeader = []string{
	"ID", "Date/Time", "Street", "Latitude", "Longitude",
	"Bin Types", "Quantity", "Comments", "Synced",
}

// WriteEntriesCSV writes one row per entry. Datetimes are RFC 3339 UTC
// instants; bin types are joined with ", "; absent comments become an
// empty field. Fields with embedded delimiters are quoted by the writer.
func WriteEntriesCSV(w io.Writer, entries []models.BinSurveyEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EntryCSVHeader); err != nil {
		return err
	}
	for _, e := range entries {
		comments := ""
		if e.Comments != nil {
			comments = *e.Comments
		}
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Datetime.UTC().Format(time.RFC3339),
			e.Street,
			strconv.FormatFloat(e.Latitude, 'f', -1, 64),
			strconv.FormatFloat(e.Longitude, 'f', -1, 64),
			strings.Join(e.BinTypes, ", "),
			strconv.Itoa(e.Quantity),
			comments,
			strconv.FormatBool(e.Synced),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// StreetReportCSVHeader is the column list of the per-street report export.
var StreetReportCSVHeader = []string{
	"Street", "Total Bins", "Green", "Blue", "Brown", "Yellow",
	"Surveys", "Last Survey",
}

// WriteStreetReportCSV writes one row per aggregated street.
func WriteStreetReportCSV(w io.Writer, reports []report.StreetReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(StreetReportCSVHeader); err != nil {
		return err
	}
	for _, r := range reports {
		row := []string{
			r.Street,
			strconv.Itoa(r.TotalBins),
			strconv.Itoa(r.BinCounts.Green),
			strconv.Itoa(r.BinCounts.Blue),
			strconv.Itoa(r.BinCounts.Brown),
			strconv.Itoa(r.BinCounts.Yellow),
			strconv.Itoa(r.EntryCount),
			r.LastSurvey,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
