package entities

import (
	"github.com/google/uuid"
)

// NutrientProfile is owned 1:1 by its Food and never updated after creation.
// Field order here matches the canonical embedding order in pkg/nutrition.
type NutrientProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	Calories   float64 `gorm:"type:numeric(10,3)" json:"calories"`  // kcal
	Protein    float64 `gorm:"type:numeric(10,3)" json:"protein"`   // g
	Fat        float64 `gorm:"type:numeric(10,3)" json:"fat"`       // g
	Carbs      float64 `gorm:"type:numeric(10,3)" json:"carbs"`     // g
	Fiber      float64 `gorm:"type:numeric(10,3)" json:"fiber"`     // g
	Sugar      float64 `gorm:"type:numeric(10,3)" json:"sugar"`     // g
	Sodium     float64 `gorm:"type:numeric(10,3)" json:"sodium"`    // mg
	Potassium  float64 `gorm:"type:numeric(10,3)" json:"potassium"` // mg
	VitaminA   float64 `gorm:"type:numeric(10,3)" json:"vitamin_a"` // IU
	VitaminC   float64 `gorm:"type:numeric(10,3)" json:"vitamin_c"` // mg
	Calcium    float64 `gorm:"type:numeric(10,3)" json:"calcium"`   // mg
	Iron       float64 `gorm:"type:numeric(10,3)" json:"iron"`      // mg
	Magnesium  float64 `gorm:"type:numeric(10,3)" json:"magnesium"` // mg
	Phosphorus float64 `gorm:"type:numeric(10,3)" json:"phosphorus"`
	Zinc       float64 `gorm:"type:numeric(10,3)" json:"zinc"`
	Copper     float64 `gorm:"type:numeric(10,3)" json:"copper"`
	Manganese  float64 `gorm:"type:numeric(10,3)" json:"manganese"`
	Selenium   float64 `gorm:"type:numeric(10,3)" json:"selenium"`
	VitaminB1  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b1"`
	VitaminB2  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b2"`
	VitaminB3  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b3"`
	VitaminB5  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b5"`
	VitaminB6  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b6"`
	VitaminB7  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b7"`
	VitaminB9  float64 `gorm:"type:numeric(10,3)" json:"vitamin_b9"`
	VitaminB12 float64 `gorm:"type:numeric(10,3)" json:"vitamin_b12"`
	VitaminE   float64 `gorm:"type:numeric(10,3)" json:"vitamin_e"`
	VitaminK   float64 `gorm:"type:numeric(10,3)" json:"vitamin_k"`

	Timestamp
}
