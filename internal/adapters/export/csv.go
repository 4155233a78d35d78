package export

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

// productRow is the flat CSV shape for admin bulk edits. Numeric and
// boolean columns stay strings on import so a hand-edited sheet with
// "yes"/"1"/"true" still round-trips.
type productRow struct {
	ID            string `csv:"id"`
	NameEN        string `csv:"name_en"`
	NameAR        string `csv:"name_ar"`
	DescriptionEN string `csv:"description_en"`
	DescriptionAR string `csv:"description_ar"`
	Category      string `csv:"category"`
	Price         string `csv:"price"`
	Available     string `csv:"available"`
	IsPremium     string `csv:"is_premium"`
	ImageURL      string `csv:"image_url"`
}

func ProductsCSV(list []domain.Product) ([]byte, error) {
	rows := make([]productRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, productRow{
			ID:            p.ID.String(),
			NameEN:        p.NameEN,
			NameAR:        p.NameAR,
			DescriptionEN: p.DescriptionEN,
			DescriptionAR: p.DescriptionAR,
			Category:      p.Category,
			Price:         fmt.Sprintf("%.2f", p.Price),
			Available:     fmt.Sprintf("%t", p.Available),
			IsPremium:     fmt.Sprintf("%t", p.IsPremium),
			ImageURL:      p.ImageURL,
		})
	}
	return gocsv.MarshalBytes(&rows)
}

// ParseProductsCSV turns an uploaded sheet back into products. Rows
// without an id get a fresh one (new product); bad rows fail the whole
// import so a partial sheet never lands.
func ParseProductsCSV(data []byte) ([]domain.Product, error) {
	var rows []productRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for i, r := range rows {
		p := domain.Product{
			NameEN:        strings.TrimSpace(r.NameEN),
			NameAR:        strings.TrimSpace(r.NameAR),
			DescriptionEN: r.DescriptionEN,
			DescriptionAR: r.DescriptionAR,
			Category:      strings.ToLower(strings.TrimSpace(r.Category)),
			ImageURL:      strings.TrimSpace(r.ImageURL),
		}
		if p.NameEN == "" && p.NameAR == "" {
			return nil, fmt.Errorf("row %d: missing product name", i+1)
		}
		if strings.TrimSpace(r.ID) != "" {
			id, err := uuid.Parse(strings.TrimSpace(r.ID))
			if err != nil {
				return nil, fmt.Errorf("row %d: bad id: %w", i+1, err)
			}
			p.ID = id
		} else {
			p.ID = uuid.New()
		}
		price, err := cast.ToFloat64E(strings.TrimSpace(r.Price))
		if err != nil || price < 0 {
			return nil, fmt.Errorf("row %d: bad price %q", i+1, r.Price)
		}
		p.Price = price
		p.Available = cast.ToBool(strings.TrimSpace(r.Available))
		p.IsPremium = cast.ToBool(strings.TrimSpace(r.IsPremium))
		out = append(out, p)
	}
	return out, nil
}
