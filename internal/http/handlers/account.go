package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
)

// AccountHandler serves the consumer account area. Everything here sits
// behind RequireAuth.
type AccountHandler struct {
	API *api.Client
}

func NewAccountHandler(client *api.Client) *AccountHandler {
	return &AccountHandler{API: client}
}

func (h *AccountHandler) Profile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	res := fetch.NewResource(func(ctx context.Context, key string) (api.Customer, error) {
		return h.API.WithToken(key).GetProfile(ctx)
	})
	res.Load(c.Request.Context(), s.Token)

	data := gin.H{"Title": "My account"}
	if p, ok := res.Get(); ok {
		data["Profile"] = p
	} else {
		middleware.Fail(c, res.Err())
		return
	}
	render.Page(c, http.StatusOK, "account", data)
}
