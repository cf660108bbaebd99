package catalog

import "shaker/internal/cocktail"

// drinkRecord is the catalog's wire shape: sparse scalar fields plus up to 15
// individually named ingredient/measure slot pairs. Every field may be null.
type drinkRecord struct {
	IDDrink         string  `json:"idDrink"`
	StrDrink        string  `json:"strDrink"`
	StrCategory     *string `json:"strCategory"`
	StrAlcoholic    *string `json:"strAlcoholic"`
	StrGlass        *string `json:"strGlass"`
	StrInstructions *string `json:"strInstructions"`
	StrDrinkThumb   *string `json:"strDrinkThumb"`

	StrIngredient1  *string `json:"strIngredient1"`
	StrIngredient2  *string `json:"strIngredient2"`
	StrIngredient3  *string `json:"strIngredient3"`
	StrIngredient4  *string `json:"strIngredient4"`
	StrIngredient5  *string `json:"strIngredient5"`
	StrIngredient6  *string `json:"strIngredient6"`
	StrIngredient7  *string `json:"strIngredient7"`
	StrIngredient8  *string `json:"strIngredient8"`
	StrIngredient9  *string `json:"strIngredient9"`
	StrIngredient10 *string `json:"strIngredient10"`
	StrIngredient11 *string `json:"strIngredient11"`
	StrIngredient12 *string `json:"strIngredient12"`
	StrIngredient13 *string `json:"strIngredient13"`
	StrIngredient14 *string `json:"strIngredient14"`
	StrIngredient15 *string `json:"strIngredient15"`

	StrMeasure1  *string `json:"strMeasure1"`
	StrMeasure2  *string `json:"strMeasure2"`
	StrMeasure3  *string `json:"strMeasure3"`
	StrMeasure4  *string `json:"strMeasure4"`
	StrMeasure5  *string `json:"strMeasure5"`
	StrMeasure6  *string `json:"strMeasure6"`
	StrMeasure7  *string `json:"strMeasure7"`
	StrMeasure8  *string `json:"strMeasure8"`
	StrMeasure9  *string `json:"strMeasure9"`
	StrMeasure10 *string `json:"strMeasure10"`
	StrMeasure11 *string `json:"strMeasure11"`
	StrMeasure12 *string `json:"strMeasure12"`
	StrMeasure13 *string `json:"strMeasure13"`
	StrMeasure14 *string `json:"strMeasure14"`
	StrMeasure15 *string `json:"strMeasure15"`
}

// drinksResponse wraps both search and lookup payloads. A null Drinks field is
// the catalog's "no matches" answer, not an error.
type drinksResponse struct {
	Drinks []drinkRecord `json:"drinks"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ingredientSlots lines the numbered fields back up as an ordered pair list.
func (d *drinkRecord) ingredientSlots() [15][2]*string {
	return [15][2]*string{
		{d.StrIngredient1, d.StrMeasure1},
		{d.StrIngredient2, d.StrMeasure2},
		{d.StrIngredient3, d.StrMeasure3},
		{d.StrIngredient4, d.StrMeasure4},
		{d.StrIngredient5, d.StrMeasure5},
		{d.StrIngredient6, d.StrMeasure6},
		{d.StrIngredient7, d.StrMeasure7},
		{d.StrIngredient8, d.StrMeasure8},
		{d.StrIngredient9, d.StrMeasure9},
		{d.StrIngredient10, d.StrMeasure10},
		{d.StrIngredient11, d.StrMeasure11},
		{d.StrIngredient12, d.StrMeasure12},
		{d.StrIngredient13, d.StrMeasure13},
		{d.StrIngredient14, d.StrMeasure14},
		{d.StrIngredient15, d.StrMeasure15},
	}
}

// normalize turns a slot-encoded record into the canonical recipe shape.
// Slots are scanned in increasing order; a slot with an empty or absent
// ingredient name is skipped outright, and a populated slot with an absent
// measure gets an empty measure. Null scalars become empty strings so nothing
// downstream ever sees a nil.
func (d *drinkRecord) normalize() cocktail.Recipe {
	var ingredients []cocktail.Ingredient
	for _, slot := range d.ingredientSlots() {
		name := deref(slot[0])
		if name == "" {
			continue
		}
		ingredients = append(ingredients, cocktail.Ingredient{
			Name:    name,
			Measure: deref(slot[1]),
		})
	}

	return cocktail.Recipe{
		ID:           d.IDDrink,
		Name:         d.StrDrink,
		Image:        deref(d.StrDrinkThumb),
		Category:     deref(d.StrCategory),
		Alcoholic:    deref(d.StrAlcoholic),
		Glass:        deref(d.StrGlass),
		Instructions: deref(d.StrInstructions),
		Ingredients:  ingredients,
	}
}
