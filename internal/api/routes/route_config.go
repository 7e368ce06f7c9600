package routes

import (
	"Dining-Menu-Backend/internal/api/handlers"
	"Dining-Menu-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	LocationHandler handlers.LocationHandler
	MenuHandler     handlers.MenuHandler
	IngestHandler   handlers.IngestHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Locations()
	c.Menus()
	c.GuestRoute()
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/v1/locations")
	{
		locations.Post("/resolve", c.LocationHandler.ResolveLocation)
		locations.Get("", c.LocationHandler.GetLocations)
		locations.Get("/nearby", c.LocationHandler.GetLocationsNearby)
		locations.Get("/nearby-by-name", c.LocationHandler.GetNearestLocationsByName)
	}
}

func (c *Config) Menus() {
	menus := c.App.Group("/api/v1/menus")
	{
		menus.Post("", c.MenuHandler.IngestMenu)
		menus.Post("/batch", c.IngestHandler.IngestBatch)
		menus.Get("", c.MenuHandler.GetMenus)
		menus.Get("/detailed", c.MenuHandler.GetMenusWithFoods)
		menus.Get("/nearby", c.MenuHandler.GetMenusNearby)
		menus.Get("/exists", c.MenuHandler.CheckMenuExists)
	}

	c.App.Get("/api/v1/information-sources", c.MenuHandler.GetInformationSources)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
