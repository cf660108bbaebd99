// Package store owns the user's custom recipes. It is the only writer of
// local durable state: every mutation reads the whole collection out of the
// slot, applies one change, and writes the whole collection back.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"shaker/internal/cache"
	"shaker/internal/cocktail"
)

// CustomIDPrefix tags every locally issued recipe id. The remote catalog
// never issues ids with this prefix, so the two namespaces cannot collide.
const CustomIDPrefix = "custom-"

const slotKey = "custom_cocktails"

// ErrWriteFailed marks a persistence failure on a mutation. Unlike read
// failures it is never downgraded; silently dropping a user's recipe is worse
// than surfacing the fault.
var ErrWriteFailed = errors.New("recipe store write failed")

// Store is a handle over one slot of durable storage. Construct one per
// process (or per test, over a memory cache); there is no ambient global.
// Mutations are serialized through the mutex, so overlapping calls on one
// Store cannot lose updates to each other.
type Store struct {
	cache cache.Cache

	mu         sync.Mutex
	lastIssued int64
}

func New(c cache.Cache) *Store {
	return &Store{cache: c}
}

// ListAll returns every stored recipe in persisted order, each re-stamped as
// custom. An absent or unreadable slot reads as "no custom recipes yet" —
// corrupt storage degrades to empty rather than failing the read path.
func (s *Store) ListAll() []cocktail.Recipe {
	raw, ok := s.cache.Get(slotKey)
	if !ok {
		return []cocktail.Recipe{}
	}

	var recipes []cocktail.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		slog.Error("custom recipe slot unreadable, treating as empty", "error", err)
		return []cocktail.Recipe{}
	}

	for i := range recipes {
		recipes[i].IsCustom = true
	}
	return recipes
}

// GetByID returns the stored recipe with the exact id, or cocktail.ErrNotFound.
func (s *Store) GetByID(id string) (*cocktail.Recipe, error) {
	for _, recipe := range s.ListAll() {
		if recipe.ID == id {
			return &recipe, nil
		}
	}
	return nil, cocktail.ErrNotFound
}

// Create assigns a fresh local id to the draft, stamps it custom, and appends
// it to the collection. Ingredients without a name are dropped before
// persisting. On a persist failure the create must be treated as not having
// happened.
func (s *Store) Create(draft cocktail.Recipe) (*cocktail.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes := s.ListAll()

	draft.Ingredients = namedIngredients(draft.Ingredients)
	draft.ID = s.nextID(recipes)
	draft.IsCustom = true

	if err := s.persist(append(recipes, draft)); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Update replaces the stored recipe with the same id, preserving collection
// order. An unknown id is a no-op returning false; update never creates.
func (s *Store) Update(recipe cocktail.Recipe) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes := s.ListAll()
	idx := lo.IndexOf(lo.Map(recipes, func(r cocktail.Recipe, _ int) string { return r.ID }), recipe.ID)
	if idx == -1 {
		return false, nil
	}

	recipe.Ingredients = namedIngredients(recipe.Ingredients)
	recipe.IsCustom = true
	recipes[idx] = recipe
	if err := s.persist(recipes); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the recipe with the given id and reports whether anything
// was actually removed. Nothing is written when the id wasn't present.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes := s.ListAll()
	remaining := lo.Filter(recipes, func(r cocktail.Recipe, _ int) bool {
		return r.ID != id
	})
	if len(remaining) == len(recipes) {
		return false, nil
	}

	if err := s.persist(remaining); err != nil {
		return false, err
	}
	return true, nil
}

// namedIngredients drops entries without a name. Stored recipes only ever
// hold ingredients with non-empty names, on create and update alike.
func namedIngredients(ingredients []cocktail.Ingredient) []cocktail.Ingredient {
	return lo.Filter(ingredients, func(ing cocktail.Ingredient, _ int) bool {
		return strings.TrimSpace(ing.Name) != ""
	})
}

// nextID issues CustomIDPrefix plus a millisecond timestamp, bumped past the
// last issued value so back-to-back creates stay unique, and past any id
// already in the collection just in case the clock went backwards across runs.
func (s *Store) nextID(existing []cocktail.Recipe) string {
	now := time.Now().UnixMilli()
	if now <= s.lastIssued {
		now = s.lastIssued + 1
	}

	taken := lo.SliceToMap(existing, func(r cocktail.Recipe) (string, struct{}) {
		return r.ID, struct{}{}
	})
	for {
		id := fmt.Sprintf("%s%d", CustomIDPrefix, now)
		if _, ok := taken[id]; !ok {
			s.lastIssued = now
			return id
		}
		now++
	}
}

// persist writes the whole collection back in one shot. The custom flag is
// derived state and is stripped before marshaling; reads reconstitute it.
func (s *Store) persist(recipes []cocktail.Recipe) error {
	stored := make([]cocktail.Recipe, len(recipes))
	copy(stored, recipes)
	for i := range stored {
		stored[i].IsCustom = false
	}

	data := lo.Must(json.Marshal(stored))
	if err := s.cache.Set(slotKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
