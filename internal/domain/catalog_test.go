package domain

import (
	"testing"

	"github.com/google/uuid"
)

func fptr(v float64) *float64 { return &v }

func testProducts() []Product {
	return []Product{
		{ID: uuid.New(), NameEN: "Ribeye Steak", NameAR: "ستيك ريب آي", Category: "beef", Price: 95, Available: true, IsPremium: true},
		{ID: uuid.New(), NameEN: "Lamb Shoulder", NameAR: "كتف غنم", Category: "lamb", Price: 60, Available: false},
		{ID: uuid.New(), NameEN: "Chicken Breast", NameAR: "صدر دجاج", Category: "chicken", Price: 25, Available: true},
		{ID: uuid.New(), NameEN: "Beef Mince", NameAR: "لحم مفروم", Category: "mince", Price: 35, Available: true},
		{ID: uuid.New(), NameEN: "Wagyu Cubes", NameAR: "مكعبات واغيو", Category: "beef", Price: 180, Available: true, IsPremium: true},
	}
}

func TestFilterProductsCategory(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"all empty", "", 5},
		{"all keyword", "all", 5},
		{"beef", "beef", 2},
		{"case insensitive", "BEEF", 2},
		{"premium flag not field", "premium", 2},
		{"unknown", "seafood", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(products, CatalogFilter{Category: tt.category}, nil)
			if len(got) != tt.want {
				t.Errorf("got %d products, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterProductsPremiumMatchesFlag(t *testing.T) {
	products := testProducts()
	got := FilterProducts(products, CatalogFilter{Category: "premium"}, nil)
	for _, p := range got {
		if !p.IsPremium {
			t.Errorf("non-premium product %q in premium filter", p.NameEN)
		}
	}
}

func TestFilterProductsText(t *testing.T) {
	products := testProducts()

	got := FilterProducts(products, CatalogFilter{Query: "ribeye", Lang: LangEN}, nil)
	if len(got) != 1 || got[0].NameEN != "Ribeye Steak" {
		t.Errorf("en query: got %+v", names(got))
	}

	got = FilterProducts(products, CatalogFilter{Query: "دجاج", Lang: LangAR}, nil)
	if len(got) != 1 || got[0].NameEN != "Chicken Breast" {
		t.Errorf("ar query: got %+v", names(got))
	}

	// category text is searchable too
	got = FilterProducts(products, CatalogFilter{Query: "mince", Lang: LangEN}, nil)
	if len(got) != 1 {
		t.Errorf("category query: got %+v", names(got))
	}
}

func TestFilterProductsPriceRange(t *testing.T) {
	products := testProducts()
	got := FilterProducts(products, CatalogFilter{MinPrice: fptr(30), MaxPrice: fptr(100)}, nil)
	for _, p := range got {
		if p.Price < 30 || p.Price > 100 {
			t.Errorf("product %q price %v outside [30,100]", p.NameEN, p.Price)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d products, want 3", len(got))
	}
}

func TestFilterProductsSortPrice(t *testing.T) {
	products := testProducts()

	low := FilterProducts(products, CatalogFilter{Sort: SortPriceLow}, nil)
	for i := 1; i < len(low); i++ {
		if low[i].Price < low[i-1].Price {
			t.Fatalf("price-low not non-decreasing: %v", prices(low))
		}
	}

	high := FilterProducts(products, CatalogFilter{Sort: SortPriceHigh}, nil)
	for i := 1; i < len(high); i++ {
		if high[i].Price > high[i-1].Price {
			t.Fatalf("price-high not non-increasing: %v", prices(high))
		}
	}
}

type fixedRatings map[uuid.UUID]float64

func (m fixedRatings) Rating(id uuid.UUID) float64 { return m[id] }

func TestFilterProductsSortRating(t *testing.T) {
	products := testProducts()
	ratings := fixedRatings{
		products[2].ID: 4.8,
		products[0].ID: 3.5,
	}
	got := FilterProducts(products, CatalogFilter{Sort: SortRating}, ratings)
	if got[0].ID != products[2].ID {
		t.Errorf("top rated = %q, want Chicken Breast", got[0].NameEN)
	}
	if got[1].ID != products[0].ID {
		t.Errorf("second = %q, want Ribeye Steak", got[1].NameEN)
	}
}

func TestFilterProductsSortName(t *testing.T) {
	products := testProducts()
	got := FilterProducts(products, CatalogFilter{Sort: SortName, Lang: LangEN}, nil)
	if got[0].NameEN != "Beef Mince" {
		t.Errorf("first by name = %q, want Beef Mince", got[0].NameEN)
	}
}

func TestFilterProductsDefaultAvailableFirst(t *testing.T) {
	products := testProducts()
	got := FilterProducts(products, CatalogFilter{}, nil)
	seenUnavailable := false
	for _, p := range got {
		if !p.Available {
			seenUnavailable = true
		} else if seenUnavailable {
			t.Fatalf("available product %q after an unavailable one", p.NameEN)
		}
	}
	// stable: available items keep their relative order
	if got[0].NameEN != "Ribeye Steak" || got[len(got)-1].NameEN != "Lamb Shoulder" {
		t.Errorf("default order = %v", names(got))
	}
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	first := products[0].ID
	FilterProducts(products, CatalogFilter{Sort: SortPriceLow}, nil)
	if products[0].ID != first {
		t.Error("input slice was reordered")
	}
}

func names(list []Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.NameEN
	}
	return out
}

func prices(list []Product) []float64 {
	out := make([]float64, len(list))
	for i, p := range list {
		out[i] = p.Price
	}
	return out
}
