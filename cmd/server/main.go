package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/makmour/WasteBinTracker/internal/config"
	"github.com/makmour/WasteBinTracker/internal/controllers"
	"github.com/makmour/WasteBinTracker/internal/database"
	"github.com/makmour/WasteBinTracker/internal/logger"
	"github.com/makmour/WasteBinTracker/internal/models"
	"github.com/makmour/WasteBinTracker/internal/services"
)

func main() {
	logger.Init()

	// Load configs
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load configs: %v", err)
	}

	// Pick the storage backend; callers only ever see the EntryStore
	// interface, so the choice is invisible past this point.
	var store services.EntryStore
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.BinSurveyEntry{}, &models.User{}); err != nil {
			logger.Log.Fatalf("migration failed: %v", err)
		}
		store = services.NewGormStore(db)
	default:
		store = services.NewMemoryStore()
	}
	logger.Log.Infof("storage backend: %s", cfg.StorageBackend)

	// Photo uploads land here and are served back under /uploads.
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Fatalf("Failed to create upload dir: %v", err)
	}

	entryCtrl := controllers.NewEntryController(store, cfg.UploadDir)
	streetCtrl := controllers.NewStreetController()
	reportCtrl := controllers.NewReportController(store)
	exportCtrl := controllers.NewExportController(store)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	api := e.Group("/api")
	entryCtrl.Register(api)
	streetCtrl.Register(api)
	reportCtrl.Register(api)
	exportCtrl.Register(api)

	e.Static("/uploads", cfg.UploadDir)

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
