package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/makmour/WasteBinTracker/internal/export"
	"github.com/makmour/WasteBinTracker/internal/logger"
	"github.com/makmour/WasteBinTracker/internal/services"
)

// ExportController serves the full-log downloads.
type ExportController struct {
	store services.EntryStore
}

func NewExportController(store services.EntryStore) *ExportController {
	return &ExportController{store: store}
}

func (ctr *ExportController) Register(g *echo.Group) {
	g.GET("/export/csv", ctr.ExportCSV)
	g.GET("/export/geojson", ctr.ExportGeoJSON)
}

// ExportCSV handles GET /export/csv.
func (ctr *ExportController) ExportCSV(c echo.Context) error {
	entries, err := ctr.store.GetAll(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to export CSV")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to export CSV",
		})
	}

	setAttachment(c, "text/csv", "csv")
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteEntriesCSV(c.Response(), entries)
}

// ExportGeoJSON handles GET /export/geojson.
func (ctr *ExportController) ExportGeoJSON(c echo.Context) error {
	entries, err := ctr.store.GetAll(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to export GeoJSON")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to export GeoJSON",
		})
	}

	setAttachment(c, "application/geo+json", "geojson")
	c.Response().WriteHeader(http.StatusOK)
	return export.WriteGeoJSON(c.Response(), entries)
}

func setAttachment(c echo.Context, contentType, ext string) {
	filename := fmt.Sprintf("waste-bin-survey-%d.%s", time.Now().UnixMilli(), ext)
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
}
