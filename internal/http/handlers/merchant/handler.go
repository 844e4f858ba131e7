// Package merchant holds the store-owner dashboard: products, orders,
// customers and settings. Every route here sits behind RequireMerchant,
// and every API call carries the merchant's session token.
package merchant

import (
	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/storage"
)

type Handler struct {
	API     *api.Client
	Flash   *flash.Codec
	Uploads storage.Storage
}

func New(client *api.Client, fl *flash.Codec, uploads storage.Storage) *Handler {
	return &Handler{API: client, Flash: fl, Uploads: uploads}
}

// client returns the API client bound to the merchant's token.
func (h *Handler) client(c *gin.Context) *api.Client {
	s, _ := middleware.CurrentSession(c)
	return h.API.WithToken(s.Token)
}
