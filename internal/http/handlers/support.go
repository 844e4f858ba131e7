package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/config"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/middleware"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/validation"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/mailer"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// SupportHandler relays contact-form messages to the marketplace support
// inbox.
type SupportHandler struct {
	Mail  mailer.Service
	Flash *flash.Codec
	Site  config.Site
}

func NewSupportHandler(mail mailer.Service, fl *flash.Codec, site config.Site) *SupportHandler {
	return &SupportHandler{Mail: mail, Flash: fl, Site: site}
}

type supportInput struct {
	Name    string `form:"name" binding:"required,min=2,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,min=10,max=4000"`
}

func (h *SupportHandler) Get(c *gin.Context) {
	data := gin.H{
		"Title":       "Contact support",
		"Name":        "",
		"Email":       "",
		"Message":     "",
		"FieldErrors": validation.FieldErrors{},
	}
	if s, ok := middleware.CurrentSession(c); ok {
		data["Name"] = s.Name
		data["Email"] = s.Email
	}
	render.Page(c, http.StatusOK, "support", data)
}

func (h *SupportHandler) Post(c *gin.Context) {
	var in supportInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "support", gin.H{
			"Title":       "Contact support",
			"Name":        in.Name,
			"Email":       in.Email,
			"Message":     in.Message,
			"FieldErrors": validation.FromBindError(err, &in),
		})
		return
	}

	if h.Site.SupportEmail == "" {
		render.Page(c, http.StatusOK, "support", gin.H{
			"Title":       "Contact support",
			"Name":        in.Name,
			"Email":       in.Email,
			"Message":     in.Message,
			"FieldErrors": validation.FieldErrors{},
			"Error":       "Support mail is not set up yet. Please try again later.",
		})
		return
	}

	mut := fetch.NewMutation(func(ctx context.Context) error {
		return h.Mail.Send(ctx, mailer.Email{
			FromName: h.Site.Name,
			From:     "no-reply@" + mailDomain(h.Site.SupportEmail),
			To:       []string{h.Site.SupportEmail},
			ReplyTo:  in.Email,
			Subject:  "Support request from " + strings.TrimSpace(in.Name),
			TextBody: fmt.Sprintf("From: %s <%s>\n\n%s\n", in.Name, in.Email, in.Message),
		})
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.Page(c, http.StatusBadGateway, "support", gin.H{
			"Title":       "Contact support",
			"Name":        in.Name,
			"Email":       in.Email,
			"Message":     in.Message,
			"FieldErrors": validation.FieldErrors{},
			"Error":       "We couldn't send your message. Please try again.",
		})
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/support", view.FlashSuccess, "Thanks! We'll get back to you soon.")
}

func mailDomain(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 {
		return addr[i+1:]
	}
	return "local"
}
