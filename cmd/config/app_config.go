package config

import (
	"Dining-Menu-Backend/internal/api/handlers"
	"Dining-Menu-Backend/internal/api/routes"
	"Dining-Menu-Backend/internal/middleware"
	"Dining-Menu-Backend/internal/utils"
	"Dining-Menu-Backend/pkg/ingest"
	"Dining-Menu-Backend/pkg/location"
	"Dining-Menu-Backend/pkg/menu"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	locationRepository := location.NewLocationRepository(db)
	menuRepository := menu.NewMenuRepository(db)

	// Service
	locationService := location.NewLocationService(locationRepository)
	menuService := menu.NewMenuService(menuRepository, locationRepository, locationService)
	ingestService := ingest.NewIngestService(menuService)

	// Handler
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	ingestHandler := handlers.NewIngestHandler(ingestService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		LocationHandler: locationHandler,
		MenuHandler:     menuHandler,
		IngestHandler:   ingestHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
