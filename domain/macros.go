package domain

// Macros carries the full nutrient profile of one food as scraped. A field absent
// from the input stays at its zero value and is stored as 0, not as unknown.
// Units follow the upstream data: calories in kcal, sodium/potassium in mg,
// vitamin A in IU, everything else in g or mg per the json name.
type Macros struct {
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Carbs      float64 `json:"carbs"`
	Fiber      float64 `json:"fiber"`
	Sugar      float64 `json:"sugar"`
	Sodium     float64 `json:"sodium"`
	Potassium  float64 `json:"potassium"`
	VitaminA   float64 `json:"vitamin_a"`
	VitaminC   float64 `json:"vitamin_c"`
	Calcium    float64 `json:"calcium"`
	Iron       float64 `json:"iron"`
	Magnesium  float64 `json:"magnesium"`
	Phosphorus float64 `json:"phosphorus"`
	Zinc       float64 `json:"zinc"`
	Copper     float64 `json:"copper"`
	Manganese  float64 `json:"manganese"`
	Selenium   float64 `json:"selenium"`
	VitaminB1  float64 `json:"vitamin_b1"`
	VitaminB2  float64 `json:"vitamin_b2"`
	VitaminB3  float64 `json:"vitamin_b3"`
	VitaminB5  float64 `json:"vitamin_b5"`
	VitaminB6  float64 `json:"vitamin_b6"`
	VitaminB7  float64 `json:"vitamin_b7"`
	VitaminB9  float64 `json:"vitamin_b9"`
	VitaminB12 float64 `json:"vitamin_b12"`
	VitaminE   float64 `json:"vitamin_e"`
	VitaminK   float64 `json:"vitamin_k"`
}
