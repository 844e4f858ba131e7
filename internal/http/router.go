package apphttp

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/config"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/cartcookie"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/handlers"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/handlers/merchant"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/mailer"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/storage"
)

const (
	sessionCookie = "a2z_session"
	flashCookie   = "a2z_flash"
	cartCookie    = "a2z_cart"
)

// NewRouter wires the middleware chain and every route group.
func NewRouter(logger *slog.Logger, cfg config.Config, client *api.Client, uploads storage.Storage, mail mailer.Service, templatesDir string) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewCodec(cfg.CookieSecret, sessionCookie, cfg.CookieSecure)
	flashes := flash.NewCodec(cfg.CookieSecret, flashCookie, cfg.CookieSecure)
	carts := cartcookie.New(cfg.CookieSecret, cartCookie, cfg.CookieSecure)

	tmpl, err := render.Templates(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = 8 << 20

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(middleware.ErrorHandlerCfg{
			Logger:     logger,
			Sessions:   sessions,
			Flash:      flashes,
			RenderPage: render.ErrorPage,
		}),
		render.SiteContext(cfg.Site),
		middleware.FlashMiddleware(flashes),
		middleware.Session(sessions),
		middleware.CartCount(carts),
	)

	home := handlers.NewHomeHandler(client)
	stores := handlers.NewStoreHandler(client, flashes)
	products := handlers.NewProductHandler(client)
	cart := handlers.NewCartHandler(client, flashes, carts)
	checkout := handlers.NewCheckoutHandler(client, flashes, carts)
	orders := handlers.NewOrdersHandler(client)
	auth := handlers.NewAuthHandler(client, flashes, sessions)
	account := handlers.NewAccountHandler(client)
	accountOrders := handlers.NewAccountOrdersHandler(client)
	support := handlers.NewSupportHandler(mail, flashes, cfg.Site)
	dash := merchant.New(client, flashes, uploads)

	// Storefront
	r.GET("/", home.Index)
	r.GET("/stores/:slug", stores.Show)
	r.POST("/stores/:slug/rate", stores.Rate)
	r.GET("/products/:id", products.Show)

	// Cart & checkout
	r.GET("/cart", cart.Get)
	r.POST("/cart/add", cart.Add)
	r.POST("/cart/items/update", cart.Update)
	r.POST("/cart/items/remove", cart.Remove)
	r.GET("/checkout", checkout.Get)
	r.POST("/checkout", checkout.Post)

	// Public order tracking
	r.GET("/orders/track", orders.Track)
	r.GET("/orders/track/:id", orders.Track)

	// Support contact form
	r.GET("/support", support.Get)
	r.POST("/support", support.Post)

	// Auth
	r.GET("/login", auth.LoginGet)
	r.POST("/login", auth.LoginPost)
	r.GET("/register", auth.RegisterGet)
	r.POST("/register", auth.RegisterPost)
	r.POST("/logout", auth.Logout)

	// Consumer account area
	acc := r.Group("/account", middleware.RequireAuth(flashes))
	{
		acc.GET("", account.Profile)
		acc.GET("/orders", accountOrders.List)
		acc.GET("/orders/:id", orders.Detail)
	}

	// Merchant dashboard
	m := r.Group("/merchant", middleware.RequireMerchant(flashes))
	{
		m.GET("", dash.Dashboard)
		m.GET("/products", dash.Products)
		m.GET("/products/new", dash.NewProduct)
		m.POST("/products/new", dash.SaveProduct)
		m.GET("/products/:id/edit", dash.EditProduct)
		m.POST("/products/:id/edit", dash.SaveProduct)
		m.POST("/products/:id/delete", dash.DeleteProduct)
		m.GET("/orders", dash.Orders)
		m.POST("/orders/:id/status", dash.UpdateOrderStatus)
		m.GET("/customers", dash.Customers)
		m.GET("/settings", dash.Settings)
		m.POST("/settings", dash.SaveSettings)
	}

	return r, nil
}
