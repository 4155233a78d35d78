package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

var (
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

type CheckoutInput struct {
	CustomerName string
	Phone        string
	Email        string
	Address      string
	Notes        string
	ZoneID       *uuid.UUID
}

type OrderUC struct {
	Orders   domain.OrderRepo
	Products domain.ProductRepo
	Zones    domain.ZoneRepo
	Finance  domain.FinanceRepo
	Notify   domain.Notifier
}

// Checkout turns the basket into a persisted order. Line prices are
// re-resolved against the live catalog so a stale cookie cannot fix a
// price, then subtotal/VAT/total are recomputed and the zone fee added.
func (uc *OrderUC) Checkout(ctx context.Context, basket *domain.Basket, in CheckoutInput) (*domain.Order, error) {
	if len(basket.Items) == 0 {
		return nil, fmt.Errorf("%w: empty basket", domain.ErrInvalid)
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrInvalid)
	}
	if !phoneRe.MatchString(strings.ReplaceAll(in.Phone, " ", "")) {
		return nil, fmt.Errorf("%w: phone", domain.ErrInvalid)
	}
	if in.Email != "" && !emailRe.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: email", domain.ErrInvalid)
	}

	o := &domain.Order{
		ID:           uuid.New(),
		Status:       domain.OrderStatusPending,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        strings.ReplaceAll(in.Phone, " ", ""),
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		Notes:        in.Notes,
	}

	for _, it := range basket.Items {
		p, err := uc.Products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product %s", domain.ErrInvalid, it.ProductID)
		}
		if !p.Available {
			return nil, fmt.Errorf("%w: %s is unavailable", domain.ErrInvalid, p.NameEN)
		}
		pid := p.ID
		o.Items = append(o.Items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: &pid,
			TitleEN:   p.NameEN,
			TitleAR:   p.NameAR,
			UnitPrice: p.Price,
			Qty:       it.Qty,
		})
	}

	sub := 0.0
	for _, it := range o.Items {
		sub += it.UnitPrice * it.Qty
	}
	o.SubtotalNet = domain.RoundCurrency(sub)
	o.VATAmount = domain.RoundCurrency(sub * domain.VATRate)

	if in.ZoneID != nil {
		z, err := uc.Zones.FindByID(ctx, *in.ZoneID)
		if err != nil {
			return nil, fmt.Errorf("%w: delivery zone", domain.ErrInvalid)
		}
		if !z.Active {
			return nil, fmt.Errorf("%w: delivery zone inactive", domain.ErrInvalid)
		}
		o.ZoneID = in.ZoneID
		o.ZoneName = z.NameEN
		o.DeliveryFee = z.Fee
	}
	o.Total = domain.RoundCurrency(o.SubtotalNet + o.VATAmount + o.DeliveryFee)

	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	if uc.Notify != nil {
		uc.Notify.OrderPlaced(o)
	}
	return o, nil
}

func (uc *OrderUC) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

func (uc *OrderUC) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: status %q", domain.ErrInvalid, f.Status)
	}
	return uc.Orders.List(ctx, f)
}

// UpdateStatus records the transition plus the acting user. Delivery
// books the order total as an income record once.
func (uc *OrderUC) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, notes, actor string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalid, status)
	}
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := o.Status
	o.Status = status
	o.StatusNotes = notes
	o.UpdatedBy = actor
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	if status == domain.OrderStatusDelivered && prev != domain.OrderStatusDelivered && uc.Finance != nil {
		rec := &domain.FinanceRecord{
			ID:         uuid.New(),
			Kind:       domain.FinanceIncome,
			Amount:     o.Total,
			Category:   "orders",
			Note:       "order " + o.ID.String(),
			OccurredAt: time.Now(),
		}
		if err := uc.Finance.Save(ctx, rec); err != nil {
			return nil, err
		}
	}
	return o, nil
}
