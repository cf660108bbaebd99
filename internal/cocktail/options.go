package cocktail

// Form option lists for the create/edit surface. Mirrors the catalog's glass
// taxonomy; "Other" catches anything the list misses.
var GlassOptions = []string{
	"Martini glass",
	"Cocktail glass",
	"Shot glass",
	"Highball glass",
	"Coffee mug",
	"Collins glass",
	"Old-fashioned glass",
	"Wine glass",
	"Champagne glass",
	"Whiskey sour glass",
	"Margarita glass",
	"Pint glass",
	"Beer pilsner",
	"Punch bowl",
	"Hurricane glass",
	"Irish coffee cup",
	"Cordial glass",
	"Nick and nora glass",
	"Pitcher",
	"White wine glass",
	"Other",
}

var AlcoholicOptions = []string{"Alcoholic", "Non-Alcoholic"}
