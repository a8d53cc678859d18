package domain

// RecipeType selects how the backend treats a recipe family.
type RecipeType string

const (
	RecipeMain     RecipeType = "MAIN"
	RecipePreDough RecipeType = "PRE_DOUGH"
	RecipeExtra    RecipeType = "EXTRA"
)

// RecipeImportRecord is one recipe family in a batch-import file. The
// console validates the shape; the backend owns the meaning.
type RecipeImportRecord struct {
	Name     string          `json:"name" validate:"required"`
	Type     RecipeType      `json:"type" validate:"required,oneof=MAIN PRE_DOUGH EXTRA"`
	Category string          `json:"category" validate:"required"`
	Versions []RecipeVersion `json:"versions" validate:"required,min=1,dive"`
}

// RecipeVersion is one revision of a recipe family.
type RecipeVersion struct {
	Notes        string            `json:"notes"`
	TargetTemp   *float64          `json:"targetTemp,omitempty"`
	LossRatio    *float64          `json:"lossRatio,omitempty" validate:"omitempty,gte=0,lt=1"`
	DivisionLoss *float64          `json:"divisionLoss,omitempty" validate:"omitempty,gte=0"`
	Ingredients  []DoughIngredient `json:"ingredients" validate:"required,min=1,dive"`
	Products     []RecipeProduct   `json:"products,omitempty" validate:"omitempty,dive"`
	Procedure    []string          `json:"procedure,omitempty"`
}

// DoughIngredient is a dough component expressed as a ratio.
type DoughIngredient struct {
	Name         string   `json:"name" validate:"required"`
	Ratio        *float64 `json:"ratio,omitempty" validate:"omitempty,gte=0"`
	FlourRatio   *float64 `json:"flourRatio,omitempty" validate:"omitempty,gte=0"`
	IsFlour      *bool    `json:"isFlour,omitempty"`
	WaterContent *float64 `json:"waterContent,omitempty" validate:"omitempty,gte=0"`
}

// RecipeProduct is a finished product made from a version's dough.
type RecipeProduct struct {
	Name      string              `json:"name" validate:"required"`
	Weight    float64             `json:"weight" validate:"gt=0"`
	Fillings  []ProductIngredient `json:"fillings,omitempty" validate:"omitempty,dive"`
	MixIn     []ProductIngredient `json:"mixIn,omitempty" validate:"omitempty,dive"`
	Toppings  []ProductIngredient `json:"toppings,omitempty" validate:"omitempty,dive"`
	Procedure []string            `json:"procedure,omitempty"`
}

// ProductIngredient is an add-on given as a ratio or an absolute weight.
type ProductIngredient struct {
	Name          string   `json:"name" validate:"required"`
	Ratio         *float64 `json:"ratio,omitempty" validate:"omitempty,gte=0"`
	WeightInGrams *float64 `json:"weightInGrams,omitempty" validate:"omitempty,gte=0"`
}
