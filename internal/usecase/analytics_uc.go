package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

// AnalyticsUC reshapes order/product/finance data into dashboard
// figures. The dashboard itself is served from a snapshot refreshed on
// a fixed interval; overlapping refreshes are not de-duplicated, the
// last writer wins. Acceptable staleness for read-only display.
type AnalyticsUC struct {
	Orders     domain.OrderRepo
	Products   domain.ProductRepo
	Finance    domain.FinanceRepo
	Categories domain.CategoryRepo

	mu       sync.RWMutex
	snapshot *domain.DashboardStats
}

func (uc *AnalyticsUC) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	uc.mu.RLock()
	snap := uc.snapshot
	uc.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return uc.Refresh(ctx)
}

// Refresh recomputes the dashboard snapshot over the trailing 30 days.
func (uc *AnalyticsUC) Refresh(ctx context.Context) (*domain.DashboardStats, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -29)

	orders, err := uc.Orders.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stats := &domain.DashboardStats{GeneratedAt: time.Now()}
	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		stats.OrdersCount++
		stats.Revenue += o.Total
		if o.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	if stats.OrdersCount > 0 {
		stats.AvgOrderValue = domain.RoundCurrency(stats.Revenue / float64(stats.OrdersCount))
	}
	stats.Revenue = domain.RoundCurrency(stats.Revenue)

	if stats.ProductsCount, err = uc.Products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UnavailableCount, err = uc.Products.CountUnavailable(ctx); err != nil {
		return nil, err
	}

	recs, err := uc.Finance.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		switch r.Kind {
		case domain.FinanceIncome:
			stats.Income += r.Amount
		case domain.FinanceExpense:
			stats.Expense += r.Amount
		}
	}
	stats.Income = domain.RoundCurrency(stats.Income)
	stats.Expense = domain.RoundCurrency(stats.Expense)
	stats.Net = domain.RoundCurrency(stats.Income - stats.Expense)

	uc.mu.Lock()
	uc.snapshot = stats
	uc.mu.Unlock()
	return stats, nil
}

// RevenueChart buckets non-cancelled order totals per day over the
// requested period. Empty days are emitted so charts get a full axis.
func (uc *AnalyticsUC) RevenueChart(ctx context.Context, period string) ([]domain.RevenuePoint, error) {
	from, to := periodRange(period)
	orders, err := uc.Orders.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	const day = "2006-01-02"
	byDay := map[string]*domain.RevenuePoint{}
	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		k := o.CreatedAt.Format(day)
		pt := byDay[k]
		if pt == nil {
			pt = &domain.RevenuePoint{Day: k}
			byDay[k] = pt
		}
		pt.Revenue = domain.RoundCurrency(pt.Revenue + o.Total)
		pt.Orders++
	}
	points := []domain.RevenuePoint{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		k := d.Format(day)
		if pt := byDay[k]; pt != nil {
			points = append(points, *pt)
		} else {
			points = append(points, domain.RevenuePoint{Day: k})
		}
	}
	return points, nil
}

func (uc *AnalyticsUC) OrdersByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	orders, err := uc.Orders.ListInRange(ctx, time.Now().AddDate(-1, 0, 0), time.Now())
	if err != nil {
		return nil, err
	}
	counts := map[domain.OrderStatus]int64{}
	for _, o := range orders {
		counts[o.Status]++
	}
	out := []domain.StatusCount{}
	for _, st := range []domain.OrderStatus{
		domain.OrderStatusPending, domain.OrderStatusConfirmed, domain.OrderStatusPreparing,
		domain.OrderStatusOutForDelivery, domain.OrderStatusDelivered, domain.OrderStatusCancelled,
	} {
		out = append(out, domain.StatusCount{Status: st, Count: counts[st]})
	}
	return out, nil
}

// SalesByCategory aggregates item revenue per product category for the
// period, decorated with the bilingual category names.
func (uc *AnalyticsUC) SalesByCategory(ctx context.Context, period string) ([]domain.CategorySales, error) {
	from, to := periodRange(period)
	orders, err := uc.Orders.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	products, err := uc.Products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	catOf := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		catOf[p.ID] = p.Category
	}

	agg := map[string]*domain.CategorySales{}
	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		for _, it := range o.Items {
			cat := "uncategorized"
			if it.ProductID != nil {
				if c, ok := catOf[*it.ProductID]; ok && c != "" {
					cat = c
				}
			}
			cs := agg[cat]
			if cs == nil {
				cs = &domain.CategorySales{Category: cat}
				agg[cat] = cs
			}
			cs.Qty += it.Qty
			cs.Revenue = domain.RoundCurrency(cs.Revenue + it.UnitPrice*it.Qty)
		}
	}

	cats, err := uc.Categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.CategorySales{}
	for _, c := range cats {
		if cs := agg[c.ID]; cs != nil {
			cs.NameEN = c.NameEN
			cs.NameAR = c.NameAR
			out = append(out, *cs)
			delete(agg, c.ID)
		}
	}
	for _, cs := range agg {
		out = append(out, *cs)
	}
	return out, nil
}

func periodRange(period string) (time.Time, time.Time) {
	days := 30
	switch period {
	case "7d", "week":
		days = 7
	case "30d", "month", "":
		days = 30
	case "90d", "quarter":
		days = 90
	}
	to := time.Now()
	return to.AddDate(0, 0, -(days - 1)), to
}
