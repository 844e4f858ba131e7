package view

import "time"

type MerchantProductRow struct {
	ID       string
	Name     string
	Category string
	Price    string
	StockQty int
	Status   string
}

type MerchantProductsPage struct {
	Items   []MerchantProductRow
	Page    int
	HasMore bool
	Error   string
}

type ProductForm struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Category    string
	Price       string // major units as typed, e.g. "1500.00"
	StockQty    int
	Status      string
	ImageURL    string
}

type MerchantOrderRow struct {
	ID        string
	Number    string
	Customer  string
	Status    string
	Total     string
	CreatedAt time.Time
}

type MerchantOrdersPage struct {
	Items        []MerchantOrderRow
	Page         int
	HasMore      bool
	FilterStatus string
	Statuses     []string
	Error        string
}

type CustomerRow struct {
	Name       string
	Email      string
	Phone      string
	OrderCount int
	Spent      string
	LastOrder  time.Time
}

type SettingsForm struct {
	Name         string
	Description  string
	City         string
	Country      string
	Currency     string
	IsOpen       bool
	PayoutBank   string
	PayoutNumber string
}
