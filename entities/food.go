package entities

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Food struct {
	ID                           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                         string    `json:"name"`
	Brand                        string    `json:"brand"`
	ServingSize                  float64   `gorm:"type:numeric(10,3)" json:"serving_size"` // grams
	MacroPercentageErrorEstimate float64   `json:"macro_percentage_error_estimate"`
	InformationSourceID          uuid.UUID `gorm:"type:uuid" json:"information_source_id"`
	NutrientProfileID            uuid.UUID `gorm:"type:uuid" json:"nutrient_profile_id"`

	// MacroEmbedding holds the nutrient profile flattened into canonical field
	// order. Its dimension is fixed by nutrition.FieldCount.
	MacroEmbedding pgvector.Vector `gorm:"type:vector(28)" json:"-"`

	InformationSource *InformationSource `gorm:"foreignKey:InformationSourceID"`
	NutrientProfile   *NutrientProfile   `gorm:"foreignKey:NutrientProfileID"`
	ServingUnits      []*ServingUnit     `gorm:"foreignKey:FoodID"`
	Timestamp
}

type ServingUnit struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_serving_units_food_name" json:"food_id"`
	Name   string    `gorm:"uniqueIndex:idx_serving_units_food_name" json:"name"` // e.g. "cup"
	Grams  float64   `gorm:"type:numeric(10,3)" json:"grams"`                     // grams per unit

	Timestamp
}
