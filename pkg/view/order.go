package view

import "time"

type OrderItem struct {
	ProductName string
	Qty         int
	PriceEach   string
	LineTotal   string
}

type OrderDetail struct {
	ID        string
	StoreName string
	Status    string
	Subtotal  string
	Delivery  string
	Total     string
	CreatedAt time.Time

	Address string

	Items []OrderItem
}

type OrderListItem struct {
	ID        string
	Number    string
	StoreName string
	Status    string
	Total     string
	ItemCount int
	CreatedAt time.Time
}

type OrderListPage struct {
	Items    []OrderListItem
	Page     int
	HasMore  bool
	Statuses []string
	Error    string
}
