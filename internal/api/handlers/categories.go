package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mgoodall/listing-finder/internal/search"
)

// CategoryInfo is one catalog category in the categories response.
type CategoryInfo struct {
	Name string   `json:"name" doc:"Category display name" example:"Books"`
	IDs  []string `json:"ids,omitempty" doc:"Marketplace category identifiers; empty means unrestricted"`
}

// CategoriesOutput is the response body for the categories endpoint.
type CategoriesOutput struct {
	Body struct {
		Categories []CategoryInfo `json:"categories" doc:"Supported categories in presentation order"`
	}
}

// CategoriesHandler serves the fixed category catalog.
type CategoriesHandler struct{}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler() *CategoriesHandler {
	return &CategoriesHandler{}
}

// List returns the supported search categories.
func (*CategoriesHandler) List(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	catalog := search.Catalog()

	out := &CategoriesOutput{}
	out.Body.Categories = make([]CategoryInfo, 0, len(catalog))
	for _, c := range catalog {
		out.Body.Categories = append(out.Body.Categories, CategoryInfo{
			Name: c.Name,
			IDs:  c.IDs,
		})
	}
	return out, nil
}

// RegisterCategoriesRoutes registers category endpoints with the Huma API.
func RegisterCategoriesRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List search categories",
		Description: "Returns the fixed set of categories a search can be restricted to.",
		Tags:        []string{"search"},
	}, h.List)
}
