package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoodall/listing-finder/internal/api/handlers"
	"github.com/mgoodall/listing-finder/internal/search"
)

func TestCategoriesHandler_List(t *testing.T) {
	t.Parallel()

	h := handlers.NewCategoriesHandler()

	_, api := humatest.New(t)
	handlers.RegisterCategoriesRoutes(api, h)

	resp := api.Get("/api/v1/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Categories []handlers.CategoryInfo `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	require.Len(t, body.Categories, len(search.Catalog()))

	// The unrestricted entry comes first and carries no IDs.
	assert.Equal(t, search.AllCategories, body.Categories[0].Name)
	assert.Empty(t, body.Categories[0].IDs)

	names := make(map[string][]string, len(body.Categories))
	for _, c := range body.Categories {
		names[c.Name] = c.IDs
	}
	assert.Equal(t, []string{"9355"}, names["Cell Phones & Smartphones"])
	assert.Equal(t, []string{"267"}, names["Books"])
	assert.Equal(t, []string{"9394"}, names["Tech Accessories"])
}
