package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
)

type HomeHandler struct {
	API *api.Client
}

func NewHomeHandler(client *api.Client) *HomeHandler {
	return &HomeHandler{API: client}
}

type storeCard struct {
	Name    string
	Slug    string
	LogoURL string
	City    string
	Country string
	Rating  float64
	IsOpen  bool
	Tagline string
}

// Index is the landing page: a browseable, incrementally loaded grid of
// marketplace stores.
func (h *HomeHandler) Index(c *gin.Context) {
	pages := intQuery(c, "pages", 1, 10)

	list := fetch.NewPagedList(listFilter(c, 12), pagedLoader(h.API.ListStores))
	runPages(c, list, pages)

	cards := make([]storeCard, 0, len(list.Items()))
	for _, s := range list.Items() {
		cards = append(cards, storeCard{
			Name:    s.Name,
			Slug:    s.Slug,
			LogoURL: s.LogoURL,
			City:    s.City,
			Country: s.Country,
			Rating:  s.Rating,
			IsOpen:  s.IsOpen,
			Tagline: s.Description,
		})
	}

	render.Page(c, http.StatusOK, "home", gin.H{
		"Title":     "Shop African stores",
		"Stores":    cards,
		"HasMore":   list.HasMore(),
		"NextPages": fmt.Sprintf("%d", pages+1),
		"Category":  list.Filter().Category,
		"Error":     list.ErrMessage(),
	})
}
