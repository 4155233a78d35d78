package domain

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey;size:60" json:"id"`
	NameEN    string    `gorm:"size:120" json:"nameEn"`
	NameAR    string    `gorm:"size:120" json:"nameAr"`
	Icon      string    `gorm:"size:60" json:"icon"`
	Color     string    `gorm:"size:20" json:"color"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Category) Name(lang Lang) string {
	if lang == LangAR && c.NameAR != "" {
		return c.NameAR
	}
	return c.NameEN
}

// DefaultCategories is the seed set applied once when the store is empty.
func DefaultCategories() []Category {
	return []Category{
		{ID: "beef", NameEN: "Beef", NameAR: "لحم بقري", Icon: "cow", Color: "#b91c1c", SortOrder: 1, Active: true},
		{ID: "lamb", NameEN: "Lamb", NameAR: "لحم غنم", Icon: "sheep", Color: "#9a3412", SortOrder: 2, Active: true},
		{ID: "veal", NameEN: "Veal", NameAR: "لحم عجل", Icon: "calf", Color: "#a16207", SortOrder: 3, Active: true},
		{ID: "chicken", NameEN: "Chicken", NameAR: "دجاج", Icon: "chicken", Color: "#ca8a04", SortOrder: 4, Active: true},
		{ID: "camel", NameEN: "Camel", NameAR: "لحم جمل", Icon: "camel", Color: "#92400e", SortOrder: 5, Active: true},
		{ID: "mince", NameEN: "Mince & Sausage", NameAR: "مفروم ونقانق", Icon: "grinder", Color: "#7f1d1d", SortOrder: 6, Active: true},
		{ID: "marinated", NameEN: "Marinated", NameAR: "متبلات", Icon: "bowl", Color: "#c2410c", SortOrder: 7, Active: true},
		{ID: "offal", NameEN: "Offal", NameAR: "سقط", Icon: "liver", Color: "#881337", SortOrder: 8, Active: true},
	}
}
