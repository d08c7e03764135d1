package models

type StoneType string

const (
	StoneNone             StoneType = ""
	StoneCalciumOxalate   StoneType = "calcium-oxalate"
	StoneCalciumPhosphate StoneType = "calcium-phosphate"
	StoneUricAcid         StoneType = "uric-acid"
	StoneOther            StoneType = "other"
)

func (t StoneType) Valid() bool {
	switch t {
	case StoneNone, StoneCalciumOxalate, StoneCalciumPhosphate, StoneUricAcid, StoneOther:
		return true
	}
	return false
}

type HealthProfile struct {
	Name           string    `json:"name"`
	MedicalHistory string    `json:"medical_history"`
	StoneType      StoneType `json:"stone_type"`
}

type FoodItem struct {
	Item string `json:"item"`
	// Water is the approximate water content, empty for foods to avoid.
	Water string `json:"water,omitempty"`
}

type Recommendation struct {
	StoneType         StoneType  `json:"stone_type"`
	PrimaryGoal       string     `json:"primary_goal"`
	KeyRecommendation string     `json:"key_recommendation"`
	Avoid             []FoodItem `json:"avoid"`
	Increase          []FoodItem `json:"increase"`
	Note              string     `json:"note"`
}

var recommendations = map[StoneType]Recommendation{
	StoneUricAcid: {
		PrimaryGoal:       "Reduce urine acidity & increase urine production",
		KeyRecommendation: "Alkalize urine (milk, vegetables, citrate), Limit purines",
		Avoid: []FoodItem{
			{Item: "Red meat"},
			{Item: "Organ meats (liver, kidneys)"},
			{Item: "Shellfish"},
			{Item: "Beer"},
			{Item: "High purine foods"},
		},
		Increase: []FoodItem{
			{Item: "Water intake", Water: "Essential"},
			{Item: "Citrus fruits", Water: "87%"},
			{Item: "Vegetables", Water: "90-96%"},
			{Item: "Low-fat dairy", Water: "85-90%"},
			{Item: "Watermelon", Water: "92%"},
			{Item: "Cucumber", Water: "96%"},
		},
		Note: "Increase fluids",
	},
	StoneCalciumPhosphate: {
		PrimaryGoal:       "Reduce urine alkalinity (pH)",
		KeyRecommendation: "Acidify urine (cranberry juice, lemon juice)",
		Avoid: []FoodItem{
			{Item: "High sodium foods"},
			{Item: "Excessive alkali medications"},
			{Item: "Too much animal protein"},
			{Item: "Processed foods"},
		},
		Increase: []FoodItem{
			{Item: "Cranberry juice", Water: "90%"},
			{Item: "Lemon juice (in water)", Water: "89%"},
			{Item: "Oranges", Water: "87%"},
			{Item: "Strawberries", Water: "91%"},
			{Item: "Celery", Water: "95%"},
			{Item: "Moderate fluids", Water: "Moderate"},
		},
		Note: "Not high Calcium, moderate fluids",
	},
	StoneCalciumOxalate: {
		PrimaryGoal:       "Reduce urine oxalate & prevent calcium crystallization",
		KeyRecommendation: "Adequate Calcium (1,000-1,200 mg/day), Moderate Oxalate intake",
		Avoid: []FoodItem{
			{Item: "Spinach"},
			{Item: "Nuts"},
			{Item: "Chocolate"},
			{Item: "Excessive vitamin C supplements"},
			{Item: "High oxalate foods"},
		},
		Increase: []FoodItem{
			{Item: "Calcium-rich foods (dairy)", Water: "87%"},
			{Item: "Water intake", Water: "Essential"},
			{Item: "Citrus fruits", Water: "87%"},
			{Item: "Watermelon", Water: "92%"},
			{Item: "Cucumber", Water: "96%"},
			{Item: "Lettuce", Water: "96%"},
		},
		Note: "Moderate fluids",
	},
	StoneOther: {
		PrimaryGoal:       "Maintain adequate hydration",
		KeyRecommendation: "Focus on general hydration and balanced diet",
		Avoid: []FoodItem{
			{Item: "Dehydration"},
			{Item: "Excessive sodium"},
			{Item: "High sugar drinks"},
			{Item: "Processed foods"},
		},
		Increase: []FoodItem{
			{Item: "Water throughout the day", Water: "Essential"},
			{Item: "Watermelon", Water: "92%"},
			{Item: "Cucumber", Water: "96%"},
			{Item: "Strawberries", Water: "91%"},
			{Item: "Celery", Water: "95%"},
			{Item: "Oranges", Water: "87%"},
			{Item: "Lettuce", Water: "96%"},
		},
		Note: "Consult healthcare provider for specific recommendations",
	},
}

// RecommendationFor returns the dietary guidance for a stone type. There is
// none for StoneNone or unknown types.
func RecommendationFor(t StoneType) (Recommendation, bool) {
	rec, ok := recommendations[t]
	if !ok {
		return Recommendation{}, false
	}
	rec.StoneType = t
	rec.Avoid = append([]FoodItem(nil), rec.Avoid...)
	rec.Increase = append([]FoodItem(nil), rec.Increase...)
	return rec, true
}
