package domain

import "time"

type DashboardStats struct {
	OrdersCount      int64     `json:"ordersCount"`
	PendingOrders    int64     `json:"pendingOrders"`
	Revenue          float64   `json:"revenue"`
	AvgOrderValue    float64   `json:"avgOrderValue"`
	ProductsCount    int64     `json:"productsCount"`
	UnavailableCount int64     `json:"unavailableCount"`
	Income           float64   `json:"income"`
	Expense          float64   `json:"expense"`
	Net              float64   `json:"net"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

type RevenuePoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

type CategorySales struct {
	Category string  `json:"category"`
	NameEN   string  `json:"nameEn"`
	NameAR   string  `json:"nameAr"`
	Qty      float64 `json:"qty"`
	Revenue  float64 `json:"revenue"`
}
