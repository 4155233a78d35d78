package domain

import (
	"math"

	"github.com/google/uuid"
)

const (
	// VATRate is the fixed 5% surcharge applied on the basket subtotal.
	VATRate = 0.05
	// MinQtyStep is the smallest weight increment (kg). Quantities below
	// it are treated as removal.
	MinQtyStep = 0.25
)

// BasketItem carries a snapshot of the product taken at add-time; the
// live product record may change afterwards without touching the line.
type BasketItem struct {
	ProductID uuid.UUID `json:"productId"`
	NameEN    string    `json:"nameEn"`
	NameAR    string    `json:"nameAr"`
	UnitPrice float64   `json:"unitPrice"`
	ImageURL  string    `json:"imageUrl"`
	Qty       float64   `json:"qty"`
}

type Basket struct {
	Items []BasketItem `json:"items"`
}

type BasketTotals struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// Add merges by product id, summing quantities. The incoming snapshot
// wins so a re-add refreshes name/price/image.
func (b *Basket) Add(item BasketItem) {
	if item.Qty < MinQtyStep {
		item.Qty = MinQtyStep
	}
	for i := range b.Items {
		if b.Items[i].ProductID == item.ProductID {
			qty := b.Items[i].Qty + item.Qty
			b.Items[i] = item
			b.Items[i].Qty = qty
			return
		}
	}
	b.Items = append(b.Items, item)
}

func (b *Basket) Remove(productID uuid.UUID) {
	kept := b.Items[:0]
	for _, it := range b.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	b.Items = kept
}

// SetQuantity replaces a line's quantity. Below the minimum step the
// line is removed entirely.
func (b *Basket) SetQuantity(productID uuid.UUID, qty float64) {
	if qty < MinQtyStep {
		b.Remove(productID)
		return
	}
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items[i].Qty = qty
			return
		}
	}
}

func (b *Basket) Clear() { b.Items = nil }

// Totals derives subtotal, VAT and total. VAT is always computed from
// the subtotal, never carried independently; rounding happens here, at
// display precision, not in the stored lines.
func (b *Basket) Totals() BasketTotals {
	sub := 0.0
	for _, it := range b.Items {
		sub += it.UnitPrice * it.Qty
	}
	t := BasketTotals{
		Subtotal: RoundCurrency(sub),
		VAT:      RoundCurrency(sub * VATRate),
	}
	t.Total = RoundCurrency(t.Subtotal + t.VAT)
	return t
}

func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
