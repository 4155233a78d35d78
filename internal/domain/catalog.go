package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// CategoryPremium is a pseudo-category: it matches the IsPremium flag,
// not the category field.
const CategoryPremium = "premium"

type CatalogFilter struct {
	Category string
	Query    string
	Lang     Lang
	MinPrice *float64
	MaxPrice *float64
	Sort     SortKey
}

// RatingSource resolves average ratings keyed by product id. Missing
// products rate as zero.
type RatingSource interface {
	Rating(productID uuid.UUID) float64
}

// FilterProducts applies the catalog pipeline over the full collection:
// category, then free-text, then price range, then sort. The input slice
// is never mutated; the result is a fresh ordered sequence.
func FilterProducts(products []Product, f CatalogFilter, ratings RatingSource) []Product {
	out := make([]Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range products {
		if !matchCategory(p, f.Category) {
			continue
		}
		if query != "" && !matchText(p, query, f.Lang) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f, ratings)
	return out
}

func matchCategory(p Product, category string) bool {
	c := strings.TrimSpace(category)
	if c == "" || strings.EqualFold(c, "all") {
		return true
	}
	if strings.EqualFold(c, CategoryPremium) {
		return p.IsPremium
	}
	return strings.EqualFold(p.Category, c)
}

func matchText(p Product, query string, lang Lang) bool {
	hay := strings.ToLower(p.Name(lang)) + " " + strings.ToLower(p.Description(lang)) + " " + strings.ToLower(p.Category)
	return strings.Contains(hay, query)
}

func sortProducts(list []Product, f CatalogFilter, ratings RatingSource) {
	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return ratingOf(ratings, list[i].ID) > ratingOf(ratings, list[j].ID)
		})
	case SortName:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name(f.Lang)) < strings.ToLower(list[j].Name(f.Lang))
		})
	default:
		// available first, original order otherwise
		sort.SliceStable(list, func(i, j int) bool { return list[i].Available && !list[j].Available })
	}
}

func ratingOf(src RatingSource, id uuid.UUID) float64 {
	if src == nil {
		return 0
	}
	return src.Rating(id)
}
