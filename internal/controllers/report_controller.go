package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/makmour/WasteBinTracker/internal/export"
	"github.com/makmour/WasteBinTracker/internal/logger"
	"github.com/makmour/WasteBinTracker/internal/report"
	"github.com/makmour/WasteBinTracker/internal/services"
)

// ReportController serves the per-street aggregation.
type ReportController struct {
	store services.EntryStore
}

func NewReportController(store services.EntryStore) *ReportController {
	return &ReportController{store: store}
}

func (ctr *ReportController) Register(g *echo.Group) {
	g.GET("/reports", ctr.GetReports)
	g.GET("/reports/csv", ctr.ExportReportCSV)
}

// GetReports handles GET /reports: the full entry log rolled up per
// street, sorted by total bin count descending, plus overall totals.
func (ctr *ReportController) GetReports(c echo.Context) error {
	entries, err := ctr.store.GetAll(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to build street reports")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to build street reports",
		})
	}

	reports := report.BuildStreetReports(entries)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary": report.Summarize(reports),
		"streets": reports,
	})
}

// ExportReportCSV handles GET /reports/csv as a file download.
func (ctr *ReportController) ExportReportCSV(c echo.Context) error {
	entries, err := ctr.store.GetAll(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to export street report")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to export street report",
		})
	}

	filename := fmt.Sprintf("street-report-%d.csv", time.Now().UnixMilli())
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteStreetReportCSV(c.Response(), report.BuildStreetReports(entries))
}
