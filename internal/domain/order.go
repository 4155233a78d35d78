package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Status       OrderStatus `gorm:"type:varchar(30);index" json:"status"`
	Items        []OrderItem `json:"items"`
	CustomerName string      `gorm:"size:140" json:"customerName"`
	Phone        string      `gorm:"size:50" json:"phone"`
	Email        string      `gorm:"size:140" json:"email"`
	Address      string      `gorm:"size:255" json:"address"`
	ZoneID       *uuid.UUID  `gorm:"type:uuid;index" json:"zoneId"`
	ZoneName     string      `gorm:"size:120" json:"zoneName"`
	DeliveryFee  float64     `gorm:"type:decimal(12,2);default:0" json:"deliveryFee"`
	SubtotalNet  float64     `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	VATAmount    float64     `gorm:"type:decimal(12,2);default:0" json:"vat"`
	Total        float64     `gorm:"type:decimal(12,2)" json:"total"`
	Notes        string      `gorm:"type:text" json:"notes"`
	StatusNotes  string      `gorm:"type:text" json:"statusNotes"`
	UpdatedBy    string      `gorm:"size:120" json:"updatedBy"`
	Notified     bool        `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index" json:"-"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	TitleEN   string     `gorm:"size:180" json:"titleEn"`
	TitleAR   string     `gorm:"size:180" json:"titleAr"`
	UnitPrice float64    `gorm:"type:decimal(12,2)" json:"unitPrice"`
	Qty       float64    `gorm:"type:decimal(8,2);not null" json:"qty"`
}

type OrderFilter struct {
	Status   OrderStatus
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}
