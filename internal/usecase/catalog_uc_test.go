package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

func TestCatalogListRatingSort(t *testing.T) {
	p1 := domain.Product{ID: uuid.New(), NameEN: "Ribeye", Price: 90, Available: true}
	p2 := domain.Product{ID: uuid.New(), NameEN: "Mince", Price: 30, Available: true}
	uc := &CatalogUC{
		Products: newFakeProducts(p1, p2),
		Reviews:  &fakeReviews{avgs: map[uuid.UUID]float64{p2.ID: 4.9, p1.ID: 2.0}},
	}

	list, err := uc.List(context.Background(), domain.CatalogFilter{Sort: domain.SortRating})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list[0].ID != p2.ID {
		t.Errorf("top rated = %q, want Mince", list[0].NameEN)
	}
}

func TestCatalogCreate(t *testing.T) {
	repo := newFakeProducts()
	uc := &CatalogUC{Products: repo}

	p := domain.Product{NameAR: "لحم جمل", Price: 70}
	if err := uc.Create(context.Background(), &p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("Create() did not assign an id")
	}
	if _, err := repo.FindByID(context.Background(), p.ID); err != nil {
		t.Errorf("created product not persisted: %v", err)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	uc := &CatalogUC{Products: newFakeProducts()}

	tests := []struct {
		name    string
		product domain.Product
	}{
		{"no name", domain.Product{Price: 10}},
		{"negative price", domain.Product{NameEN: "Veal", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.product
			if err := uc.Create(context.Background(), &p); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("Create() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestCatalogUpdateRequiresExisting(t *testing.T) {
	uc := &CatalogUC{Products: newFakeProducts()}
	p := domain.Product{ID: uuid.New(), NameEN: "Ghost", Price: 1}
	if err := uc.Update(context.Background(), &p); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestCatalogDeleteNilID(t *testing.T) {
	uc := &CatalogUC{Products: newFakeProducts()}
	if err := uc.Delete(context.Background(), uuid.Nil); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("Delete() error = %v, want ErrInvalid", err)
	}
}
