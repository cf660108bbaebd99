package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"shaker/internal/cocktail"
	"shaker/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.CatalogConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	return client, server
}

func TestSearchByName_SendsQueryAndNormalizes(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(`{"drinks":[{
			"idDrink":"11007",
			"strDrink":"Margarita",
			"strCategory":"Ordinary Drink",
			"strAlcoholic":"Alcoholic",
			"strGlass":"Cocktail glass",
			"strInstructions":"Shake with ice.",
			"strDrinkThumb":"https://example.com/margarita.jpg",
			"strIngredient1":"Tequila",
			"strMeasure1":"1 1/2 oz",
			"strIngredient2":"Triple sec",
			"strMeasure2":"1/2 oz"
		}]}`))
	})

	recipes, err := client.SearchByName(context.Background(), "margarita")
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	require.NotNil(t, capturedReq)
	require.Equal(t, "/search.php", capturedReq.URL.Path)
	require.Equal(t, "margarita", capturedReq.URL.Query().Get("s"))
	require.NotEmpty(t, capturedReq.Header.Get("X-Correlation-ID"))

	got := recipes[0]
	require.Equal(t, "11007", got.ID)
	require.Equal(t, "Margarita", got.Name)
	require.False(t, got.IsCustom)
	require.Equal(t, []cocktail.Ingredient{
		{Name: "Tequila", Measure: "1 1/2 oz"},
		{Name: "Triple sec", Measure: "1/2 oz"},
	}, got.Ingredients)
}

func TestSearchByName_NullDrinksIsEmptySuccess(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"drinks":null}`))
	})

	recipes, err := client.SearchByName(context.Background(), "no-such-drink")
	require.NoError(t, err)
	require.Empty(t, recipes)
}

func TestSearchByName_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	})

	_, err := client.SearchByName(context.Background(), "margarita")
	require.ErrorIs(t, err, ErrUnavailable)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	require.Equal(t, "search", statusErr.Operation)
}

func TestSearchByName_MalformedBodyIsUnavailable(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	})

	_, err := client.SearchByName(context.Background(), "margarita")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchByID_Found(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(`{"drinks":[{"idDrink":"11000","strDrink":"Mojito"}]}`))
	})

	recipe, err := client.FetchByID(context.Background(), "11000")
	require.NoError(t, err)
	require.Equal(t, "/lookup.php", capturedReq.URL.Path)
	require.Equal(t, "11000", capturedReq.URL.Query().Get("i"))
	require.Equal(t, "Mojito", recipe.Name)
}

func TestFetchByID_UnknownIDIsNotFoundNotError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"drinks":null}`))
	})

	_, err := client.FetchByID(context.Background(), "999999")
	require.ErrorIs(t, err, cocktail.ErrNotFound)
	require.False(t, errors.Is(err, ErrUnavailable))
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(config.CatalogConfig{})
	require.Equal(t, DefaultBaseURL, client.baseURL)
	require.NotNil(t, client.httpClient)
}
