package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountUnavailable(ctx context.Context) (int64, error)
}

type CategoryRepo interface {
	Save(ctx context.Context, c *Category) error
	ListAll(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type OrderRepo interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, f OrderFilter) ([]Order, int64, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]Order, error)
}

type ZoneRepo interface {
	Save(ctx context.Context, z *DeliveryZone) error
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryZone, error)
	ListAll(ctx context.Context) ([]DeliveryZone, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FinanceRepo interface {
	Save(ctx context.Context, rec *FinanceRecord) error
	ListInRange(ctx context.Context, from, to time.Time) ([]FinanceRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepo interface {
	Save(ctx context.Context, rev *Review) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)
	AverageRatings(ctx context.Context) (map[uuid.UUID]float64, error)
}

// Notifier is told about newly placed orders; implementations must not
// block the request path.
type Notifier interface {
	OrderPlaced(o *Order)
}
