// Seeds the Cal Dining information source and dining hall locations so
// lookup-only menu ingestion has canonical rows to resolve against.
package main

import (
	"Dining-Menu-Backend/cmd/config"
	migration "Dining-Menu-Backend/cmd/database/migrate"
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"
	"Dining-Menu-Backend/internal/utils"
	"Dining-Menu-Backend/pkg/location"
	"Dining-Menu-Backend/pkg/menu"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()

	menuRepository := menu.NewMenuRepository(db)
	sourceID, err := seedInformationSource(ctx, menuRepository)
	if err != nil {
		log.Fatalf("failed to seed information source: %v", err)
	}
	fmt.Printf("Created/found Cal Dining information source with ID: %s\n", sourceID)

	locationRepository := location.NewLocationRepository(db)
	locationService := location.NewLocationService(locationRepository)

	seedLocations := []domain.ResolveLocationRequest{
		{
			Name:        "Crossroads",
			Description: "Crossroads dining hall at UC Berkeley",
			Latitude:    37.867002796350604,
			Longitude:   -122.25622229402228,
		},
		{
			Name:        "Foothill",
			Description: "Foothill dining hall at UC Berkeley",
			Latitude:    37.87574317540418,
			Longitude:   -122.25605167267514,
		},
		{
			Name:        "Clark Kerr Campus",
			Description: "Clark Kerr Campus dining hall at UC Berkeley",
			Latitude:    37.864143308702076,
			Longitude:   -122.24888972575017,
		},
		{
			Name:        "Cafe 3",
			Description: "Cafe 3 dining hall at UC Berkeley",
			Latitude:    37.86732112692691,
			Longitude:   -122.26022742849526,
		},
	}

	fmt.Println("Creating Cal Dining locations...")
	for _, seed := range seedLocations {
		id, err := locationService.ResolveLocation(ctx, seed)
		if err != nil {
			log.Errorf("error creating location %q: %v", seed.Name, err)
			continue
		}
		fmt.Printf("Created/found location %q with ID: %s\n", seed.Name, id)
	}

	fmt.Println("Seed data creation completed!")
}

func seedInformationSource(ctx context.Context, repo menu.MenuRepository) (uuid.UUID, error) {
	const name = "Cal Dining"

	existing, err := repo.FindInformationSourceByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	source := &entities.InformationSource{
		ID:                         uuid.New(),
		Name:                       name,
		Description:                "Nutrition information available at https://dining.berkeley.edu/menus/",
		ErrorConfidenceDescription: "Nutrition information is derived from the USDA database and supplier data; actual values vary with sourcing, preparation and portion size.",
	}
	if err := repo.CreateInformationSource(ctx, source); err != nil {
		if utils.IsUniqueViolation(err) {
			winner, findErr := repo.FindInformationSourceByName(ctx, name)
			if findErr == nil {
				return winner.ID, nil
			}
		}
		return uuid.Nil, err
	}
	return source.ID, nil
}
