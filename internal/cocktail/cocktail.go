package cocktail

import (
	"errors"
	"strings"
)

// ErrNotFound is the expected outcome for "no recipe with this id", from either
// the local store or the remote catalog. It is a normal result, not a fault.
var ErrNotFound = errors.New("cocktail not found")

// Ingredient is one line of a recipe. Measure may be empty when the recipe
// doesn't specify a quantity.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Recipe is the canonical shape shared by the local store and the remote
// catalog. Remote-origin ids are opaque catalog strings; local-origin ids
// carry the store's reserved prefix so the two namespaces never collide.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Image        string       `json:"image"`
	Category     string       `json:"category"`
	Alcoholic    string       `json:"alcoholic"`
	Glass        string       `json:"glass"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
	IsCustom     bool         `json:"isCustom,omitempty"`
}

// HasImage reports whether the recipe carries a usable image URL. Catalog data
// sometimes ships placeholder URLs or URLs with a literal null/undefined token
// glued on the end; those count as no image.
func (r *Recipe) HasImage() bool {
	return r.Image != "" &&
		!strings.Contains(r.Image, "placeholder") &&
		!strings.HasSuffix(r.Image, "null") &&
		!strings.HasSuffix(r.Image, "undefined")
}

// Validate checks the recipe the way the create/edit form does: name,
// alcoholic, glass and instructions must be non-empty after trimming, and at
// least one ingredient needs a name. Category stays optional.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Alcoholic) == "" {
		return errors.New("alcoholic type is required")
	}
	if strings.TrimSpace(r.Glass) == "" {
		return errors.New("glass is required")
	}
	if strings.TrimSpace(r.Instructions) == "" {
		return errors.New("instructions are required")
	}
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) != "" {
			return nil
		}
	}
	return errors.New("at least one ingredient is required")
}
