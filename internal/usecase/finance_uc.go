package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type FinanceUC struct {
	Finance domain.FinanceRepo
}

func (uc *FinanceUC) Add(ctx context.Context, rec *domain.FinanceRecord) error {
	if !rec.Kind.Valid() {
		return fmt.Errorf("%w: kind %q", domain.ErrInvalid, rec.Kind)
	}
	if rec.Amount <= 0 {
		return fmt.Errorf("%w: amount", domain.ErrInvalid)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now()
	}
	return uc.Finance.Save(ctx, rec)
}

func (uc *FinanceUC) List(ctx context.Context, from, to time.Time) ([]domain.FinanceRecord, error) {
	from, to = normalizeRange(from, to)
	return uc.Finance.ListInRange(ctx, from, to)
}

func (uc *FinanceUC) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: record id", domain.ErrInvalid)
	}
	return uc.Finance.Delete(ctx, id)
}

func (uc *FinanceUC) Summary(ctx context.Context, from, to time.Time) (domain.FinanceSummary, error) {
	from, to = normalizeRange(from, to)
	recs, err := uc.Finance.ListInRange(ctx, from, to)
	if err != nil {
		return domain.FinanceSummary{}, err
	}
	var s domain.FinanceSummary
	for _, r := range recs {
		switch r.Kind {
		case domain.FinanceIncome:
			s.Income += r.Amount
		case domain.FinanceExpense:
			s.Expense += r.Amount
		}
	}
	s.Income = domain.RoundCurrency(s.Income)
	s.Expense = domain.RoundCurrency(s.Expense)
	s.Net = domain.RoundCurrency(s.Income - s.Expense)
	return s, nil
}

func normalizeRange(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -29)
	}
	if from.After(to) {
		from, to = to, from
	}
	return from, to
}
