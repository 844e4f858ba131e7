package api

import "time"

// Entities mirror the backend API resources. Everything here is a snapshot
// of the last successful fetch; nothing is persisted on this side.

type Store struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LogoURL     string  `json:"logoUrl"`
	BannerURL   string  `json:"bannerUrl"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Currency    string  `json:"currency"`
	IsOpen      bool    `json:"isOpen"`
}

type ProductImage struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type Product struct {
	ID          string         `json:"id"`
	StoreID     string         `json:"storeId"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	PriceCents  int64          `json:"priceCents"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"` // "active" | "draft" | "archived"
	StockQty    int            `json:"stockQty"`
	Images      []ProductImage `json:"images"`

	// Populated on the detail endpoint only.
	StoreName string `json:"storeName"`
	StoreSlug string `json:"storeSlug"`
}

type CartItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ImageURL    string `json:"imageUrl"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Quantity    int    `json:"quantity"`
}

type Cart struct {
	ID            string     `json:"id"`
	StoreID       string     `json:"storeId"`
	Items         []CartItem `json:"items"`
	SubtotalCents int64      `json:"subtotalCents"`
	Currency      string     `json:"currency"`
}

type DeliveryZone struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	FeeCents int64  `json:"feeCents"`
	Currency string `json:"currency"`
	EtaDays  int    `json:"etaDays"`
}

// Order statuses as the backend reports them.
const (
	OrderPending        = "PENDING"
	OrderConfirmed      = "CONFIRMED"
	OrderReadyForPickup = "READY_FOR_PICKUP"
	OrderPickedUp       = "PICKED_UP"
	OrderInTransit      = "IN_TRANSIT"
	OrderDelivered      = "DELIVERED"
	OrderCancelled      = "CANCELLED"
	OrderFailedDelivery = "FAILED_DELIVERY"
)

// OrderStatuses lists every status in progression order, for filters and
// the merchant status select.
var OrderStatuses = []string{
	OrderPending,
	OrderConfirmed,
	OrderReadyForPickup,
	OrderPickedUp,
	OrderInTransit,
	OrderDelivered,
	OrderCancelled,
	OrderFailedDelivery,
}

type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    int    `json:"quantity"`
}

type DeliveryAddress struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Landmark string `json:"landmark,omitempty"`
	ZoneID   string `json:"zoneId"`
}

type Order struct {
	ID              string          `json:"id"`
	StoreID         string          `json:"storeId"`
	StoreName       string          `json:"storeName"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	SubtotalCents   int64           `json:"subtotalCents"`
	DeliveryCents   int64           `json:"deliveryCents"`
	TotalCents      int64           `json:"totalCents"`
	Currency        string          `json:"currency"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	OrderCount int       `json:"orderCount"`
	SpentCents int64     `json:"spentCents"`
	Currency   string    `json:"currency"`
	LastOrder  time.Time `json:"lastOrderAt"`
}

type StoreSettings struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Currency     string `json:"currency"`
	IsOpen       bool   `json:"isOpen"`
	PayoutBank   string `json:"payoutBank"`
	PayoutNumber string `json:"payoutNumber"`
}

// Session is the login payload the backend returns. The token is opaque to
// this layer; only presence and expiry are checked here.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // "customer" | "merchant"
	ExpiresAt time.Time `json:"expiresAt"`
}

// ListOptions are the query parameters every list endpoint accepts.
type ListOptions struct {
	Page      int
	Limit     int
	Category  string
	SortBy    string
	SortOrder string // "asc" | "desc"
}

// Pagination is the slice of the response envelope list endpoints add.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}
