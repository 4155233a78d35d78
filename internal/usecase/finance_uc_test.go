package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

func TestFinanceAddDefaults(t *testing.T) {
	repo := &fakeFinance{}
	uc := &FinanceUC{Finance: repo}

	rec := domain.FinanceRecord{Kind: domain.FinanceExpense, Amount: 250, Category: "supplies"}
	if err := uc.Add(context.Background(), &rec); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("id not assigned")
	}
	if rec.OccurredAt.IsZero() {
		t.Error("occurred_at not defaulted")
	}
}

func TestFinanceAddValidation(t *testing.T) {
	uc := &FinanceUC{Finance: &fakeFinance{}}

	tests := []struct {
		name string
		rec  domain.FinanceRecord
	}{
		{"bad kind", domain.FinanceRecord{Kind: "transfer", Amount: 10}},
		{"zero amount", domain.FinanceRecord{Kind: domain.FinanceIncome, Amount: 0}},
		{"negative amount", domain.FinanceRecord{Kind: domain.FinanceExpense, Amount: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			if err := uc.Add(context.Background(), &rec); !errors.Is(err, domain.ErrInvalid) {
				t.Errorf("Add() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFinanceSummary(t *testing.T) {
	now := time.Now()
	repo := &fakeFinance{items: []domain.FinanceRecord{
		{ID: uuid.New(), Kind: domain.FinanceIncome, Amount: 500, OccurredAt: now.AddDate(0, 0, -1)},
		{ID: uuid.New(), Kind: domain.FinanceIncome, Amount: 120.5, OccurredAt: now.AddDate(0, 0, -2)},
		{ID: uuid.New(), Kind: domain.FinanceExpense, Amount: 200, OccurredAt: now.AddDate(0, 0, -3)},
		// outside the default 30-day window
		{ID: uuid.New(), Kind: domain.FinanceIncome, Amount: 9999, OccurredAt: now.AddDate(0, 0, -60)},
	}}
	uc := &FinanceUC{Finance: repo}

	s, err := uc.Summary(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if s.Income != 620.5 {
		t.Errorf("income = %v, want 620.5", s.Income)
	}
	if s.Expense != 200 {
		t.Errorf("expense = %v, want 200", s.Expense)
	}
	if s.Net != 420.5 {
		t.Errorf("net = %v, want 420.5", s.Net)
	}
}

func TestFinanceListSwapsInvertedRange(t *testing.T) {
	now := time.Now()
	repo := &fakeFinance{items: []domain.FinanceRecord{
		{ID: uuid.New(), Kind: domain.FinanceIncome, Amount: 50, OccurredAt: now.AddDate(0, 0, -5)},
	}}
	uc := &FinanceUC{Finance: repo}

	got, err := uc.List(context.Background(), now, now.AddDate(0, 0, -10))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d records with inverted range, want 1", len(got))
	}
}

func TestFinanceDeleteNilID(t *testing.T) {
	uc := &FinanceUC{Finance: &fakeFinance{}}
	if err := uc.Delete(context.Background(), uuid.Nil); !errors.Is(err, domain.ErrInvalid) {
		t.Errorf("Delete() error = %v, want ErrInvalid", err)
	}
}
