package domain

import (
	"time"

	"github.com/google/uuid"
)

type FinanceKind string

const (
	FinanceIncome  FinanceKind = "income"
	FinanceExpense FinanceKind = "expense"
)

func (k FinanceKind) Valid() bool {
	return k == FinanceIncome || k == FinanceExpense
}

type FinanceRecord struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Kind       FinanceKind `gorm:"type:varchar(10);index" json:"kind"`
	Amount     float64     `gorm:"type:decimal(12,2)" json:"amount"`
	Category   string      `gorm:"size:100" json:"category"`
	Note       string      `gorm:"type:text" json:"note"`
	OccurredAt time.Time   `gorm:"index" json:"occurredAt"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type FinanceSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}
