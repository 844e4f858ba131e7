package view

// StoreHeader is the hero block at the top of a store page.
type StoreHeader struct {
	Name        string
	Slug        string
	Description string
	LogoURL     string
	BannerURL   string
	City        string
	Country     string
	Rating      float64
	RatingCount int
	IsOpen      bool
}

// StoreProductCard is one card in the store's product grid.
type StoreProductCard struct {
	ID       string
	Name     string
	Category string
	ImageURL string
	Price    string
	InStock  bool
}

// StorePage drives the full store page: header, filters and the
// accumulated product grid with its Load More control.
type StorePage struct {
	Store      StoreHeader
	Products   []StoreProductCard
	Categories []string

	Category  string
	SortBy    string
	SortOrder string
	Pages     int

	HasMore     bool
	ListError   string
	RatingError string
	CSRFToken   string
}
