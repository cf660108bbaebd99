package cocktail

import (
	"strings"
	"testing"
)

func TestHasImage(t *testing.T) {
	cases := []struct {
		name  string
		image string
		want  bool
	}{
		{"real url", "https://example.com/margarita.jpg", true},
		{"empty", "", false},
		{"placeholder url", "https://example.com/placeholder.png", false},
		{"trailing null token", "https://example.com/images/null", false},
		{"trailing undefined token", "https://example.com/images/undefined", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Recipe{Image: tc.image}
			if got := r.HasImage(); got != tc.want {
				t.Fatalf("HasImage(%q) = %v, want %v", tc.image, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Recipe {
		return Recipe{
			Name:         "Moscow Mule",
			Alcoholic:    "Alcoholic",
			Glass:        "Highball glass",
			Instructions: "Mix.",
			Ingredients:  []Ingredient{{Name: "Vodka", Measure: "2 oz"}},
		}
	}

	t.Run("valid recipe", func(t *testing.T) {
		r := valid()
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("category is optional", func(t *testing.T) {
		r := valid()
		r.Category = ""
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("whitespace name rejected", func(t *testing.T) {
		r := valid()
		r.Name = "   "
		if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "name") {
			t.Fatalf("expected name error, got %v", err)
		}
	})

	t.Run("missing glass rejected", func(t *testing.T) {
		r := valid()
		r.Glass = ""
		if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "glass") {
			t.Fatalf("expected glass error, got %v", err)
		}
	})

	t.Run("missing alcoholic rejected", func(t *testing.T) {
		r := valid()
		r.Alcoholic = ""
		if err := r.Validate(); err == nil {
			t.Fatal("expected error for missing alcoholic type")
		}
	})

	t.Run("missing instructions rejected", func(t *testing.T) {
		r := valid()
		r.Instructions = ""
		if err := r.Validate(); err == nil {
			t.Fatal("expected error for missing instructions")
		}
	})

	t.Run("no usable ingredient rejected", func(t *testing.T) {
		r := valid()
		r.Ingredients = []Ingredient{{Name: "  ", Measure: "2 oz"}}
		if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "ingredient") {
			t.Fatalf("expected ingredient error, got %v", err)
		}
	})

	t.Run("one named ingredient among blanks is enough", func(t *testing.T) {
		r := valid()
		r.Ingredients = []Ingredient{{Name: ""}, {Name: "Lime juice"}}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
