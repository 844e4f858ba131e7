package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// StoreHandler serves the public store page: header, category filters and
// the incrementally loaded product grid.
type StoreHandler struct {
	API   *api.Client
	Flash *flash.Codec
}

func NewStoreHandler(client *api.Client, fl *flash.Codec) *StoreHandler {
	return &StoreHandler{API: client, Flash: fl}
}

func (h *StoreHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	store := fetch.NewResource(func(ctx context.Context, key string) (api.Store, error) {
		return h.API.GetStoreBySlug(ctx, key)
	})
	store.Load(c.Request.Context(), slug)

	st, ok := store.Get()
	if !ok {
		// A missing store gets the friendly 404; every other failure
		// (outage, rejected token) keeps its own kind and surface.
		err := store.Err()
		if apperr.IsKind(err, apperr.NotFound) {
			err = apperr.NotFoundErr("Store not found.")
		}
		middleware.Fail(c, err)
		return
	}

	pages := intQuery(c, "pages", 1, 10)
	list := fetch.NewPagedList(listFilter(c, 24), func(ctx context.Context, f fetch.Filter) (fetch.Page[api.Product], error) {
		items, pg, err := h.API.GetStoreProducts(ctx, slug, apiOpts(f))
		if err != nil {
			return fetch.Page[api.Product]{}, err
		}
		return fetch.Page[api.Product]{Items: items, HasMore: pg.HasMore}, nil
	})
	runPages(c, list, pages)

	// Filter bar is decoration; a failed category fetch renders an empty bar.
	categories, err := h.API.GetStoreCategories(c.Request.Context(), slug)
	if err != nil {
		categories = nil
	}

	f := list.Filter()
	vm := view.StorePage{
		Store:      mapStoreHeader(st),
		Products:   mapStoreProducts(list.Items()),
		Categories: categories,
		Category:   f.Category,
		SortBy:     f.SortBy,
		SortOrder:  f.SortOrder,
		Pages:      pages,
		HasMore:    list.HasMore(),
		ListError:  list.ErrMessage(),
	}

	render.Page(c, http.StatusOK, "store", gin.H{
		"Title":   st.Name,
		"Page":    vm,
		"MoreURL": moreURL(c, slug, f, pages+1),
	})
}

// Rate handles the store rating form. Fire-and-forget: on success we
// redirect back to the store without re-fetching the rating snapshot.
func (h *StoreHandler) Rate(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		middleware.Fail(c, apperr.NotFoundErr("Store not found."))
		return
	}

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	comment := c.PostForm("comment")

	s, ok := middleware.CurrentSession(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/login?return_to="+url.QueryEscape("/stores/"+slug),
			view.FlashWarning, "Sign in to rate this store.")
		return
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		return h.API.WithToken(s.Token).RateStore(ctx, slug, api.RateStoreInput{Rating: rating, Comment: comment})
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/stores/"+slug, view.FlashError, mut.ErrMessage())
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/stores/"+slug, view.FlashSuccess, "Thanks for rating this store.")
}

func mapStoreHeader(s api.Store) view.StoreHeader {
	return view.StoreHeader{
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		BannerURL:   s.BannerURL,
		City:        s.City,
		Country:     s.Country,
		Rating:      s.Rating,
		RatingCount: s.RatingCount,
		IsOpen:      s.IsOpen,
	}
}

func mapStoreProducts(items []api.Product) []view.StoreProductCard {
	out := make([]view.StoreProductCard, 0, len(items))
	for _, p := range items {
		img := ""
		if len(p.Images) > 0 {
			img = p.Images[0].URL
		}
		out = append(out, view.StoreProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			ImageURL: img,
			Price:    view.MoneyFromCents(p.PriceCents, p.Currency),
			InStock:  p.StockQty > 0,
		})
	}
	return out
}

// moreURL builds the Load More link, carrying the filter along so the
// accumulated list stays one query.
func moreURL(c *gin.Context, slug string, f fetch.Filter, pages int) string {
	q := url.Values{}
	q.Set("pages", strconv.Itoa(pages))
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sortOrder", f.SortOrder)
	}
	return "/stores/" + url.PathEscape(slug) + "?" + q.Encode()
}
