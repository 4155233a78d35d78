package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type FinanceRepo struct{ db *gorm.DB }

func NewFinanceRepo(db *gorm.DB) *FinanceRepo { return &FinanceRepo{db: db} }

func (r *FinanceRepo) Save(ctx context.Context, rec *domain.FinanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *FinanceRepo) ListInRange(ctx context.Context, from, to time.Time) ([]domain.FinanceRecord, error) {
	var list []domain.FinanceRecord
	if err := r.db.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at <= ?", from, to).
		Order("occurred_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *FinanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.FinanceRecord{}).Error
}
