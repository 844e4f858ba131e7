package view

type ProductDetail struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       string
	InStock     bool
	Images      []string

	StoreName string
	StoreSlug string
}
