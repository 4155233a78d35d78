package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lang selects which side of the bilingual fields is shown.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

func ParseLang(s string) Lang {
	if s == string(LangAR) {
		return LangAR
	}
	return LangEN
}

type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NameEN        string    `gorm:"size:180" json:"nameEn"`
	NameAR        string    `gorm:"size:180" json:"nameAr"`
	DescriptionEN string    `gorm:"type:text" json:"descriptionEn"`
	DescriptionAR string    `gorm:"type:text" json:"descriptionAr"`
	Category      string    `gorm:"size:100;index" json:"category"`
	Price         float64   `gorm:"type:decimal(12,2)" json:"price"`
	Available     bool      `gorm:"default:true;index" json:"available"`
	IsPremium     bool      `gorm:"default:false" json:"isPremium"`
	ImageURL      string    `gorm:"size:255" json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p Product) Name(lang Lang) string {
	if lang == LangAR && p.NameAR != "" {
		return p.NameAR
	}
	return p.NameEN
}

func (p Product) Description(lang Lang) string {
	if lang == LangAR && p.DescriptionAR != "" {
		return p.DescriptionAR
	}
	return p.DescriptionEN
}
