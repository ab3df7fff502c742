package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Exclusion clauses appended to the query as negative term lists.
const (
	accessoryExclusions = "-(case,cover,keyboard,manual,guide,screen,protector," +
		"folio,box,accessory,cable,cord,charger,pen,for parts,not working)"
	defectExclusions = "-(broken,defective,not working,for parts)"
)

// Fixed filter clauses: single currency, and the accepted condition
// identifiers (new, used, and refurbished variants).
const (
	currencyClause   = "priceCurrency:USD"
	conditionsClause = "conditions:{1000|1500|2000|2500|3000}"
)

// QueryBuilder translates search criteria into a Browse API query string
// and filter expression. Pure; holds only deployment policy.
type QueryBuilder struct {
	priceFloor int
}

// NewQueryBuilder creates a QueryBuilder with the given server-side price
// floor. Floors below 1 are raised to 1.
func NewQueryBuilder(priceFloor int) *QueryBuilder {
	if priceFloor < 1 {
		priceFloor = 1
	}
	return &QueryBuilder{priceFloor: priceFloor}
}

// Build returns the query string and filter expression for the criteria.
// The category restriction is not part of either; it travels as a
// separate request parameter (see Category.CategoryIDs).
func (b *QueryBuilder) Build(c Criteria) (query, filter string) {
	return b.buildQuery(c), b.buildFilter(c)
}

func (b *QueryBuilder) buildQuery(c Criteria) string {
	q := fmt.Sprintf("%q", c.Term)

	cat, ok := LookupCategory(c.Category)
	if !ok {
		return q
	}

	switch cat.Exclusions {
	case ExcludeAccessories:
		return q + " " + accessoryExclusions
	case ExcludeDefects:
		return q + " " + defectExclusions
	default:
		return q
	}
}

func (b *QueryBuilder) buildFilter(c Criteria) string {
	clauses := []string{
		fmt.Sprintf(
			"price:[%d..%s]",
			b.priceFloor,
			strconv.FormatFloat(c.MaxPrice, 'f', -1, 64),
		),
		currencyClause,
		conditionsClause,
	}

	if c.ListingType != ListingAny {
		clauses = append(clauses, fmt.Sprintf("buyingOptions:{%s}", c.ListingType))
	}

	return strings.Join(clauses, ",")
}
