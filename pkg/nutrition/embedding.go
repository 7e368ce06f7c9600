// Package nutrition converts nutrient profiles to and from the fixed-order
// embedding stored on every food row.
package nutrition

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"

	"github.com/pgvector/pgvector-go"
)

// FieldCount is the embedding dimension. Changing it, or the order in Fields,
// breaks every previously stored embedding.
const FieldCount = 28

// fieldNames is the canonical field order, version 1. Append-only is not
// allowed either: the list is frozen at 28.
var fieldNames = [FieldCount]string{
	"calories",
	"protein",
	"fat",
	"carbs",
	"fiber",
	"sugar",
	"sodium",
	"potassium",
	"vitamin_a",
	"vitamin_c",
	"calcium",
	"iron",
	"magnesium",
	"phosphorus",
	"zinc",
	"copper",
	"manganese",
	"selenium",
	"vitamin_b1",
	"vitamin_b2",
	"vitamin_b3",
	"vitamin_b5",
	"vitamin_b6",
	"vitamin_b7",
	"vitamin_b9",
	"vitamin_b12",
	"vitamin_e",
	"vitamin_k",
}

var fieldIndex = func() map[string]int {
	m := make(map[string]int, FieldCount)
	for i, name := range fieldNames {
		m[name] = i
	}
	return m
}()

// Fields returns the canonical field names in embedding order.
func Fields() []string {
	return fieldNames[:]
}

// FieldIndex returns the embedding index of a canonical field name.
func FieldIndex(name string) (int, bool) {
	i, ok := fieldIndex[name]
	return i, ok
}

// Flatten lays the profile out in canonical order. Fields the scraper never set
// are zero values and encode as 0, not as unknown. No normalization is applied;
// similarity search over these vectors must normalize externally.
func Flatten(m domain.Macros) []float32 {
	return []float32{
		float32(m.Calories),
		float32(m.Protein),
		float32(m.Fat),
		float32(m.Carbs),
		float32(m.Fiber),
		float32(m.Sugar),
		float32(m.Sodium),
		float32(m.Potassium),
		float32(m.VitaminA),
		float32(m.VitaminC),
		float32(m.Calcium),
		float32(m.Iron),
		float32(m.Magnesium),
		float32(m.Phosphorus),
		float32(m.Zinc),
		float32(m.Copper),
		float32(m.Manganese),
		float32(m.Selenium),
		float32(m.VitaminB1),
		float32(m.VitaminB2),
		float32(m.VitaminB3),
		float32(m.VitaminB5),
		float32(m.VitaminB6),
		float32(m.VitaminB7),
		float32(m.VitaminB9),
		float32(m.VitaminB12),
		float32(m.VitaminE),
		float32(m.VitaminK),
	}
}

// Encode builds the pgvector value stored on the foods row.
func Encode(m domain.Macros) pgvector.Vector {
	return pgvector.NewVector(Flatten(m))
}

// Decode rebuilds a profile from a flattened vector. Vectors of the wrong
// length decode positionally as far as they go; callers should only pass
// vectors produced by Encode.
func Decode(values []float32) domain.Macros {
	var padded [FieldCount]float64
	for i, v := range values {
		if i >= FieldCount {
			break
		}
		padded[i] = float64(v)
	}
	return domain.Macros{
		Calories:   padded[0],
		Protein:    padded[1],
		Fat:        padded[2],
		Carbs:      padded[3],
		Fiber:      padded[4],
		Sugar:      padded[5],
		Sodium:     padded[6],
		Potassium:  padded[7],
		VitaminA:   padded[8],
		VitaminC:   padded[9],
		Calcium:    padded[10],
		Iron:       padded[11],
		Magnesium:  padded[12],
		Phosphorus: padded[13],
		Zinc:       padded[14],
		Copper:     padded[15],
		Manganese:  padded[16],
		Selenium:   padded[17],
		VitaminB1:  padded[18],
		VitaminB2:  padded[19],
		VitaminB3:  padded[20],
		VitaminB5:  padded[21],
		VitaminB6:  padded[22],
		VitaminB7:  padded[23],
		VitaminB9:  padded[24],
		VitaminB12: padded[25],
		VitaminE:   padded[26],
		VitaminK:   padded[27],
	}
}

// Profile copies a scraped profile into its owned row.
func Profile(m domain.Macros) *entities.NutrientProfile {
	return &entities.NutrientProfile{
		Calories:   m.Calories,
		Protein:    m.Protein,
		Fat:        m.Fat,
		Carbs:      m.Carbs,
		Fiber:      m.Fiber,
		Sugar:      m.Sugar,
		Sodium:     m.Sodium,
		Potassium:  m.Potassium,
		VitaminA:   m.VitaminA,
		VitaminC:   m.VitaminC,
		Calcium:    m.Calcium,
		Iron:       m.Iron,
		Magnesium:  m.Magnesium,
		Phosphorus: m.Phosphorus,
		Zinc:       m.Zinc,
		Copper:     m.Copper,
		Manganese:  m.Manganese,
		Selenium:   m.Selenium,
		VitaminB1:  m.VitaminB1,
		VitaminB2:  m.VitaminB2,
		VitaminB3:  m.VitaminB3,
		VitaminB5:  m.VitaminB5,
		VitaminB6:  m.VitaminB6,
		VitaminB7:  m.VitaminB7,
		VitaminB9:  m.VitaminB9,
		VitaminB12: m.VitaminB12,
		VitaminE:   m.VitaminE,
		VitaminK:   m.VitaminK,
	}
}

// ProfileMacros is the inverse of Profile, used by the read APIs.
func ProfileMacros(p *entities.NutrientProfile) domain.Macros {
	if p == nil {
		return domain.Macros{}
	}
	return domain.Macros{
		Calories:   p.Calories,
		Protein:    p.Protein,
		Fat:        p.Fat,
		Carbs:      p.Carbs,
		Fiber:      p.Fiber,
		Sugar:      p.Sugar,
		Sodium:     p.Sodium,
		Potassium:  p.Potassium,
		VitaminA:   p.VitaminA,
		VitaminC:   p.VitaminC,
		Calcium:    p.Calcium,
		Iron:       p.Iron,
		Magnesium:  p.Magnesium,
		Phosphorus: p.Phosphorus,
		Zinc:       p.Zinc,
		Copper:     p.Copper,
		Manganese:  p.Manganese,
		Selenium:   p.Selenium,
		VitaminB1:  p.VitaminB1,
		VitaminB2:  p.VitaminB2,
		VitaminB3:  p.VitaminB3,
		VitaminB5:  p.VitaminB5,
		VitaminB6:  p.VitaminB6,
		VitaminB7:  p.VitaminB7,
		VitaminB9:  p.VitaminB9,
		VitaminB12: p.VitaminB12,
		VitaminE:   p.VitaminE,
		VitaminK:   p.VitaminK,
	}
}
