package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jetixia-Updates/Butcher-sub004/internal/domain"
)

type ZoneRepo struct{ db *gorm.DB }

func NewZoneRepo(db *gorm.DB) *ZoneRepo { return &ZoneRepo{db: db} }

func (r *ZoneRepo) Save(ctx context.Context, z *domain.DeliveryZone) error {
	return r.db.WithContext(ctx).Save(z).Error
}

func (r *ZoneRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.DeliveryZone, error) {
	var z domain.DeliveryZone
	if err := r.db.WithContext(ctx).First(&z, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &z, nil
}

func (r *ZoneRepo) ListAll(ctx context.Context) ([]domain.DeliveryZone, error) {
	var list []domain.DeliveryZone
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.DeliveryZone{}).Error
}
