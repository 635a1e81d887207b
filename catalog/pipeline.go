package catalog

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wildbreeze/storefront-api/models"
)

// Sort orders accepted by the listing endpoint.
const (
	SortPriceAsc       = "price_asc"
	SortPriceDesc      = "price_desc"
	SortAlphabeticalAZ = "alphabetical_az"
	SortAlphabeticalZA = "alphabetical_za"
	SortDateNewOld     = "date_new_old"
	SortDateOldNew     = "date_old_new"
)

// Availability filter values.
const (
	InStock    = "in_stock"
	OutOfStock = "out_of_stock"
)

// Query holds the optional listing filters and sort order. Empty fields are
// skipped; present filters narrow the result set (logical AND).
type Query struct {
	Availability string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
}

// ParseQuery builds a Query from raw URL query values. Malformed price
// bounds are ignored rather than rejected, matching the listing endpoint's
// best-effort contract.
func ParseQuery(get func(string) string) Query {
	q := Query{
		Availability: get("availability"),
		Category:     get("category"),
		Sort:         get("sort"),
	}
	if raw := get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &v
		}
	}
	if raw := get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &v
		}
	}
	return q
}

// Apply filters and sorts products according to q. The input slice is not
// modified. Default order is newest first.
func Apply(products []models.Product, q Query) []models.Product {
	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q.Availability == InStock && !p.IsAvailable {
			continue
		}
		if q.Availability == OutOfStock && p.IsAvailable {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, q.Sort)
	return results
}

func sortProducts(products []models.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortAlphabeticalAZ:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) < 0
		})
	case SortAlphabeticalZA:
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) > 0
		})
	case SortDateOldNew:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	default: // SortDateNewOld and unspecified
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
