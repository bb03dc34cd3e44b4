package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/makmour/WasteBinTracker/internal/gazetteer"
	"github.com/makmour/WasteBinTracker/internal/logger"
	"github.com/makmour/WasteBinTracker/internal/models"
	"github.com/makmour/WasteBinTracker/internal/services"
)

// maxPhotoSize caps uploaded photos at 10 MB.
const maxPhotoSize = 10 << 20

// EntryController groups the HTTP routes for survey entries.
type EntryController struct {
	store     services.EntryStore
	uploadDir string
}

// NewEntryController receives the storage implementation and the directory
// uploaded photos are written to.
func NewEntryController(store services.EntryStore, uploadDir string) *EntryController {
	return &EntryController{store: store, uploadDir: uploadDir}
}

// Register wires the entry routes onto the group.
// The unsynced route must come before the :id route.
func (ctr *EntryController) Register(g *echo.Group) {
	g.GET("/entries", ctr.GetEntries)
	g.GET("/entries/unsynced", ctr.GetUnsyncedEntries)
	g.GET("/entries/:id", ctr.GetEntry)
	g.POST("/entries", ctr.CreateEntry)
	g.PATCH("/entries/:id", ctr.UpdateEntry)
	g.DELETE("/entries/:id", ctr.DeleteEntry)
	g.PATCH("/entries/:id/sync", ctr.MarkSynced)
	g.DELETE("/streets/:street/reset", ctr.ResetStreet)
}

// GetEntries handles GET /entries, most recent first.
func (ctr *EntryController) GetEntries(c echo.Context) error {
	entries, err := ctr.store.GetAll(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to fetch entries")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch entries",
		})
	}
	return c.JSON(http.StatusOK, entries)
}

// GetUnsyncedEntries handles GET /entries/unsynced.
func (ctr *EntryController) GetUnsyncedEntries(c echo.Context) error {
	entries, err := ctr.store.GetUnsynced(c.Request().Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to fetch unsynced entries")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch unsynced entries",
		})
	}
	return c.JSON(http.StatusOK, entries)
}

// GetEntry handles GET /entries/:id.
func (ctr *EntryController) GetEntry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid entry id",
		})
	}

	entry, err := ctr.store.GetByID(c.Request().Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Entry not found",
		})
	}
	if err != nil {
		logger.Log.WithError(err).Error("failed to fetch entry")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch entry",
		})
	}
	return c.JSON(http.StatusOK, entry)
}

// CreateEntry handles POST /entries. It accepts a JSON body or a multipart
// form with an optional photo file; an uploaded photo attaches a
// server-relative URI to the entry.
func (ctr *EntryController) CreateEntry(c echo.Context) error {
	ins, err := ctr.bindInsert(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body: " + err.Error(),
		})
	}

	if fieldErrs := validateInsert(ins); len(fieldErrs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "Invalid data",
			"errors": fieldErrs,
		})
	}

	if file, ok := photoFile(c); ok {
		if err := validatePhoto(file); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}
		uri, err := ctr.storePhoto(file)
		if err != nil {
			logger.Log.WithError(err).Error("failed to store photo")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to store photo",
			})
		}
		ins.PhotoURI = uri
	}

	entry, err := ctr.store.Create(c.Request().Context(), *ins)
	if err != nil {
		logger.Log.WithError(err).Error("failed to create entry")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create entry",
		})
	}
	return c.JSON(http.StatusCreated, entry)
}

// UpdateEntry handles PATCH /entries/:id. Only the fields present in the
// body are changed; a multipart photo replaces the stored photo URI.
func (ctr *EntryController) UpdateEntry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid entry id",
		})
	}

	var patch models.UpdateEntry
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		patch, err = ctr.bindMultipartPatch(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request body: " + err.Error(),
			})
		}
	} else if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if file, ok := photoFile(c); ok {
		if err := validatePhoto(file); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}
		uri, err := ctr.storePhoto(file)
		if err != nil {
			logger.Log.WithError(err).Error("failed to store photo")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to store photo",
			})
		}
		patch.PhotoURI = uri
	}

	entry, err := ctr.store.Update(c.Request().Context(), id, patch)
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Entry not found",
		})
	}
	if err != nil {
		logger.Log.WithError(err).Error("failed to update entry")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update entry",
		})
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /entries/:id.
func (ctr *EntryController) DeleteEntry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid entry id",
		})
	}

	existed, err := ctr.store.Delete(c.Request().Context(), id)
	if err != nil {
		logger.Log.WithError(err).Error("failed to delete entry")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to delete entry",
		})
	}
	if !existed {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Entry not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkSynced handles PATCH /entries/:id/sync.
func (ctr *EntryController) MarkSynced(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid entry id",
		})
	}

	existed, err := ctr.store.MarkSynced(c.Request().Context(), id)
	if err != nil {
		logger.Log.WithError(err).Error("failed to mark entry as synced")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to mark entry as synced",
		})
	}
	if !existed {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Entry not found",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Entry marked as synced",
	})
}

// ResetStreet handles DELETE /streets/:street/reset. It removes every entry
// recorded for the street and reports how many were deleted.
func (ctr *EntryController) ResetStreet(c echo.Context) error {
	street, err := url.PathUnescape(c.Param("street"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid street name",
		})
	}

	count, err := ctr.store.DeleteByStreet(c.Request().Context(), street)
	if err != nil {
		logger.Log.WithError(err).Error("failed to reset street data")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to reset street data",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      fmt.Sprintf("Deleted %d entries for %s", count, street),
		"deletedCount": count,
	})
}

// bindInsert reads the new-entry fields from a JSON body or multipart form.
func (ctr *EntryController) bindInsert(c echo.Context) (*models.InsertEntry, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return ctr.bindMultipartInsert(c)
	}

	var ins models.InsertEntry
	if err := c.Bind(&ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

func (ctr *EntryController) bindMultipartInsert(c echo.Context) (*models.InsertEntry, error) {
	lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}
	qty, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}

	ins := models.InsertEntry{
		Municipality: c.FormValue("municipality"),
		Street:       c.FormValue("street"),
		Latitude:     &lat,
		Longitude:    &lon,
		BinTypes:     formBinTypes(c),
		Quantity:     qty,
	}
	if comments := c.FormValue("comments"); comments != "" {
		ins.Comments = &comments
	}
	return &ins, nil
}

func (ctr *EntryController) bindMultipartPatch(c echo.Context) (models.UpdateEntry, error) {
	var patch models.UpdateEntry

	if v := c.FormValue("street"); v != "" {
		patch.Street = &v
	}
	if v := c.FormValue("municipality"); v != "" {
		patch.Municipality = &v
	}
	if v := c.FormValue("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return patch, fmt.Errorf("latitude: %w", err)
		}
		patch.Latitude = &lat
	}
	if v := c.FormValue("longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return patch, fmt.Errorf("longitude: %w", err)
		}
		patch.Longitude = &lon
	}
	if v := c.FormValue("quantity"); v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			return patch, fmt.Errorf("quantity: %w", err)
		}
		patch.Quantity = &qty
	}
	if v := c.FormValue("comments"); v != "" {
		patch.Comments = &v
	}
	if types := formBinTypes(c); len(types) > 0 {
		patch.BinTypes = types
	}
	return patch, nil
}

// formBinTypes reads bin types from repeated form values, accepting a
// comma-separated list in a single value as well.
func formBinTypes(c echo.Context) models.BinTypeList {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	values := form.Value["binTypes"]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	types := make(models.BinTypeList, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			types = append(types, v)
		}
	}
	return types
}

// photoFile returns the uploaded photo header when the request carries one.
// A missing photo field is not an error.
func photoFile(c echo.Context) (*multipart.FileHeader, bool) {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil, false
	}
	return file, true
}

// validatePhoto rejects uploads the client got wrong: oversized files and
// anything that is not an image.
func validatePhoto(file *multipart.FileHeader) error {
	if file.Size > maxPhotoSize {
		return fmt.Errorf("photo exceeds the %d byte limit", maxPhotoSize)
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return fmt.Errorf("only image files are allowed")
	}
	return nil
}

// storePhoto writes a validated photo under the upload directory with a
// generated filename and returns its server-relative URI.
func (ctr *EntryController) storePhoto(file *multipart.FileHeader) (*string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(ctr.uploadDir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	uri := "/uploads/" + name
	return &uri, nil
}

// validateInsert checks the required entry fields and returns field-level
// messages for anything malformed.
func validateInsert(ins *models.InsertEntry) map[string]string {
	errs := make(map[string]string)
	if ins.Street == "" {
		errs["street"] = "street is required"
	}
	if len(ins.BinTypes) == 0 {
		errs["binTypes"] = "at least one bin type is required"
	}
	for _, t := range ins.BinTypes {
		if !gazetteer.IsBinType(t) {
			errs["binTypes"] = fmt.Sprintf("unknown bin type %q", t)
			break
		}
	}
	if ins.Quantity < 1 {
		errs["quantity"] = "quantity must be at least 1"
	}
	if ins.Latitude == nil || ins.Longitude == nil {
		errs["location"] = "latitude and longitude are required"
	}
	return errs
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
