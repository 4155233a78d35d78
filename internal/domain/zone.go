package domain

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryZone struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NameEN    string    `gorm:"size:120" json:"nameEn"`
	NameAR    string    `gorm:"size:120" json:"nameAr"`
	Fee       float64   `gorm:"type:decimal(12,2);default:0" json:"fee"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (z DeliveryZone) Name(lang Lang) string {
	if lang == LangAR && z.NameAR != "" {
		return z.NameAR
	}
	return z.NameEN
}
