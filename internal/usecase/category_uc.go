package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

// CategoryUC is the category registry: reads serve bilingual display
// names from a local cache, writes go through the repo and then refetch
// the full collection. The cache is eventually consistent with the
// store after each mutation round-trip.
type CategoryUC struct {
	Categories domain.CategoryRepo

	mu    sync.RWMutex
	cache []domain.Category
}

// List seeds the default categories when the store is empty, then
// refetches and returns the whole collection.
func (uc *CategoryUC) List(ctx context.Context) ([]domain.Category, error) {
	n, err := uc.Categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		defaults := domain.DefaultCategories()
		for i := range defaults {
			if err := uc.Categories.Save(ctx, &defaults[i]); err != nil {
				return nil, err
			}
		}
	}
	return uc.refetch(ctx)
}

// DisplayName returns the localized name for a category id, falling
// back to the raw id when unknown.
func (uc *CategoryUC) DisplayName(id string, lang domain.Lang) string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, c := range uc.cache {
		if strings.EqualFold(c.ID, id) {
			return c.Name(lang)
		}
	}
	return id
}

func (uc *CategoryUC) Save(ctx context.Context, c *domain.Category) error {
	c.ID = strings.ToLower(strings.TrimSpace(c.ID))
	if c.ID == "" {
		return fmt.Errorf("%w: category id", domain.ErrInvalid)
	}
	if strings.TrimSpace(c.NameEN) == "" && strings.TrimSpace(c.NameAR) == "" {
		return fmt.Errorf("%w: category name", domain.ErrInvalid)
	}
	if err := uc.Categories.Save(ctx, c); err != nil {
		return err
	}
	_, err := uc.refetch(ctx)
	return err
}

func (uc *CategoryUC) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: category id", domain.ErrInvalid)
	}
	if err := uc.Categories.Delete(ctx, id); err != nil {
		return err
	}
	_, err := uc.refetch(ctx)
	return err
}

func (uc *CategoryUC) refetch(ctx context.Context) ([]domain.Category, error) {
	list, err := uc.Categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.cache = list
	uc.mu.Unlock()
	return list, nil
}
