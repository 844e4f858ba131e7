package view

type ZoneOption struct {
	ID    string
	Label string
	Fee   string
}

type CheckoutForm struct {
	FullName string
	Phone    string
	Street   string
	City     string
	Landmark string
	ZoneID   string
	Note     string
	IdemKey  string
}

type CheckoutSummary struct {
	Items    int
	Subtotal string
	Currency string
}
