package migration

import (
	"Dining-Menu-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Extensions for uuid defaults, earth_box radius queries and the macro
	// embedding column.
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"vector\";")

	if err := db.AutoMigrate(&entities.Location{}); err != nil {
		log.Fatalf("Error migrating location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InformationSource{}); err != nil {
		log.Fatalf("Error migrating information source database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutrientProfile{}); err != nil {
		log.Fatalf("Error migrating nutrient profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ServingUnit{}); err != nil {
		log.Fatalf("Error migrating serving unit database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Menu{}); err != nil {
		log.Fatalf("Error migrating menu database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuFood{}); err != nil {
		log.Fatalf("Error migrating menu food database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
