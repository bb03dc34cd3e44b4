package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/makmour/WasteBinTracker/internal/gazetteer"
	"github.com/makmour/WasteBinTracker/internal/geo"
)

// StreetController serves the gazetteer and the location-aware street
// selection modes.
type StreetController struct{}

func NewStreetController() *StreetController {
	return &StreetController{}
}

func (ctr *StreetController) Register(g *echo.Group) {
	g.GET("/streets", ctr.GetStreets)
}

// GetStreets handles GET /streets?mode=nearby|search|all.
// Nearby needs a lat/lon fix and returns streets ranked by estimated
// distance; search filters by the q parameter; all returns the leading
// slice of the gazetteer in its static order.
func (ctr *StreetController) GetStreets(c echo.Context) error {
	municipality := gazetteer.Default()
	if name := c.QueryParam("municipality"); name != "" {
		m, ok := gazetteer.Lookup(name)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Unknown municipality",
			})
		}
		municipality = m
	}

	mode := c.QueryParam("mode")
	if mode == "" {
		mode = "all"
	}

	switch mode {
	case "nearby":
		lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
		if latErr != nil || lonErr != nil {
			// No GPS fix is a degraded mode, not a server fault; the
			// caller should fall back to search or all.
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Nearby mode requires a lat and lon fix",
			})
		}
		fix := geo.Point{Latitude: lat, Longitude: lon}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"municipality": municipality.Name,
			"mode":         mode,
			"streets":      geo.Nearby(municipality, fix),
		})
	case "search":
		return c.JSON(http.StatusOK, map[string]interface{}{
			"municipality": municipality.Name,
			"mode":         mode,
			"streets":      geo.Search(municipality, c.QueryParam("q")),
		})
	case "all":
		return c.JSON(http.StatusOK, map[string]interface{}{
			"municipality": municipality.Name,
			"mode":         mode,
			"streets":      geo.All(municipality),
		})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Unknown mode; expected nearby, search or all",
		})
	}
}
