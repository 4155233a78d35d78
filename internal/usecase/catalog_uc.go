package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type CatalogUC struct {
	Products domain.ProductRepo
	Reviews  domain.ReviewRepo
}

type ratingMap map[uuid.UUID]float64

func (m ratingMap) Rating(id uuid.UUID) float64 { return m[id] }

// List pulls the full collection and runs the filter/sort pipeline over
// it. Ratings are only resolved when the sort actually needs them.
func (uc *CatalogUC) List(ctx context.Context, f domain.CatalogFilter) ([]domain.Product, error) {
	all, err := uc.Products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var src domain.RatingSource
	if f.Sort == domain.SortRating && uc.Reviews != nil {
		avgs, err := uc.Reviews.AverageRatings(ctx)
		if err != nil {
			return nil, err
		}
		src = ratingMap(avgs)
	}
	return domain.FilterProducts(all, f, src), nil
}

func (uc *CatalogUC) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) Create(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Update(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: product id", domain.ErrInvalid)
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	if _, err := uc.Products.FindByID(ctx, p.ID); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: product id", domain.ErrInvalid)
	}
	return uc.Products.Delete(ctx, id)
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.NameEN) == "" && strings.TrimSpace(p.NameAR) == "" {
		return fmt.Errorf("%w: product name", domain.ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price", domain.ErrInvalid)
	}
	return nil
}
