package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Save(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *ReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]domain.Review, error) {
	var list []domain.Review
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ReviewRepo) AverageRatings(ctx context.Context) (map[uuid.UUID]float64, error) {
	type row struct {
		ProductID uuid.UUID
		Avg       float64
	}
	var rows []row
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("product_id, AVG(rating) as avg").Group("product_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		out[r.ProductID] = r.Avg
	}
	return out, nil
}
