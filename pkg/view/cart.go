package view

type CartItem struct {
	ID          string
	ProductID   string
	ProductName string
	ImageURL    string
	PriceEach   string
	Qty         int
	LineTotal   string
}

type CartPage struct {
	Items    []CartItem
	Subtotal string
	Currency string
	Count    int
}
