package search

import "strings"

// ExclusionPolicy enumerates the query exclusion clause variants a
// category can carry.
type ExclusionPolicy int

// Exclusion policy constants.
const (
	// ExcludeNone appends no exclusion clause.
	ExcludeNone ExclusionPolicy = iota
	// ExcludeAccessories appends the long accessory/parts exclusion list
	// used for phone and tablet categories.
	ExcludeAccessories
	// ExcludeDefects appends the short defective-item exclusion list
	// used for the accessories category.
	ExcludeDefects
)

// AllCategories is the catalog entry that applies no category restriction.
const AllCategories = "All Categories"

// Category is one entry of the fixed category catalog.
type Category struct {
	Name       string
	IDs        []string // empty means no category restriction
	Exclusions ExclusionPolicy
}

// CategoryIDs returns the comma-joined category identifier list for the
// Browse API, or the empty string for an unrestricted category.
func (c Category) CategoryIDs() string {
	return strings.Join(c.IDs, ",")
}

// catalog is the fixed category catalog, in presentation order.
var catalog = []Category{
	{Name: AllCategories},
	{Name: "Cell Phones & Smartphones", IDs: []string{"9355"}, Exclusions: ExcludeAccessories},
	{Name: "Tablets & eBook Readers", IDs: []string{"171485"}, Exclusions: ExcludeAccessories},
	{Name: "Books", IDs: []string{"267"}},
	{Name: "Consumer Electronics", IDs: []string{"293"}},
	{Name: "Sporting Goods", IDs: []string{"888"}},
	{Name: "Men's Clothing", IDs: []string{"1059"}},
	{Name: "Men's Shoes", IDs: []string{"93427"}},
	{Name: "DVD & Blu-ray", IDs: []string{"617"}},
	{Name: "Tech Accessories", IDs: []string{"9394"}, Exclusions: ExcludeDefects},
}

// Catalog returns the category catalog in presentation order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCategory finds a catalog entry by name. An empty name resolves
// to the unrestricted AllCategories entry.
func LookupCategory(name string) (Category, bool) {
	if name == "" {
		name = AllCategories
	}
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
