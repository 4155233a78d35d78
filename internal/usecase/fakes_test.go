package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type fakeProducts struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Product
	order []uuid.UUID
}

func newFakeProducts(list ...domain.Product) *fakeProducts {
	f := &fakeProducts{items: map[uuid.UUID]domain.Product{}}
	for _, p := range list {
		f.items[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return f
}

func (f *fakeProducts) Save(_ context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		f.order = append(f.order, p.ID)
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProducts) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProducts) ListAll(_ context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeProducts) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProducts) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

func (f *fakeProducts) CountUnavailable(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.items {
		if !p.Available {
			n++
		}
	}
	return n, nil
}

type fakeCategories struct {
	mu    sync.Mutex
	items []domain.Category
}

func (f *fakeCategories) Save(_ context.Context, c *domain.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = *c
			return nil
		}
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCategories) ListAll(_ context.Context) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Category(nil), f.items...), nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCategories) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.items)), nil
}

type fakeOrders struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Order
	order []uuid.UUID
}

func newFakeOrders(list ...domain.Order) *fakeOrders {
	f := &fakeOrders{items: map[uuid.UUID]domain.Order{}}
	for _, o := range list {
		f.items[o.ID] = o
		f.order = append(f.order, o.ID)
	}
	return f
}

func (f *fakeOrders) Save(_ context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[o.ID]; !ok {
		f.order = append(f.order, o.ID)
	}
	f.items[o.ID] = *o
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrders) List(_ context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Order{}
	for _, id := range f.order {
		o := f.items[id]
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrders) ListInRange(_ context.Context, from, to time.Time) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Order{}
	for _, id := range f.order {
		o := f.items[id]
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

type fakeZones struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.DeliveryZone
}

func newFakeZones(list ...domain.DeliveryZone) *fakeZones {
	f := &fakeZones{items: map[uuid.UUID]domain.DeliveryZone{}}
	for _, z := range list {
		f.items[z.ID] = z
	}
	return f
}

func (f *fakeZones) Save(_ context.Context, z *domain.DeliveryZone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[z.ID] = *z
	return nil
}

func (f *fakeZones) FindByID(_ context.Context, id uuid.UUID) (*domain.DeliveryZone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	z, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &z, nil
}

func (f *fakeZones) ListAll(_ context.Context) ([]domain.DeliveryZone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.DeliveryZone, 0, len(f.items))
	for _, z := range f.items {
		out = append(out, z)
	}
	return out, nil
}

func (f *fakeZones) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeFinance struct {
	mu    sync.Mutex
	items []domain.FinanceRecord
}

func (f *fakeFinance) Save(_ context.Context, rec *domain.FinanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *rec)
	return nil
}

func (f *fakeFinance) ListInRange(_ context.Context, from, to time.Time) ([]domain.FinanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.FinanceRecord{}
	for _, r := range f.items {
		if r.OccurredAt.Before(from) || r.OccurredAt.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeFinance) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeReviews struct {
	mu    sync.Mutex
	items []domain.Review
	avgs  map[uuid.UUID]float64
}

func (f *fakeReviews) Save(_ context.Context, rev *domain.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *rev)
	return nil
}

func (f *fakeReviews) ListByProduct(_ context.Context, productID uuid.UUID) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Review{}
	for _, r := range f.items {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) AverageRatings(_ context.Context) (map[uuid.UUID]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.avgs != nil {
		return f.avgs, nil
	}
	return map[uuid.UUID]float64{}, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	placed []uuid.UUID
}

func (f *fakeNotifier) OrderPlaced(o *domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, o.ID)
}
