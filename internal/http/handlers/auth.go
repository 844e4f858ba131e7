package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/api"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/fetch"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/flash"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/render"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/session"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/http/validation"
	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/pkg/view"
)

// AuthHandler relays login/register forms to the backend and stores the
// returned token in the session cookie. No credential ever gets checked
// on this side.
type AuthHandler struct {
	API      *api.Client
	Flash    *flash.Codec
	Sessions *session.Codec
}

func NewAuthHandler(client *api.Client, fl *flash.Codec, sc *session.Codec) *AuthHandler {
	return &AuthHandler{API: client, Flash: fl, Sessions: sc}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required,min=6,max=128"`
}

func (h *AuthHandler) LoginGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "login", gin.H{
		"Title":       "Sign in",
		"ReturnTo":    normalizeReturnTo(c.Query("return_to")),
		"Email":       "",
		"FieldErrors": validation.FieldErrors{},
	})
}

func (h *AuthHandler) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "login", gin.H{
			"Title":       "Sign in",
			"ReturnTo":    returnTo,
			"Email":       in.Email,
			"FieldErrors": validation.FromBindError(err, &in),
		})
		return
	}

	var sess api.Session
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		sess, err = h.API.Login(ctx, api.LoginInput{Email: in.Email, Password: in.Password})
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.Page(c, http.StatusUnauthorized, "login", gin.H{
			"Title":       "Sign in",
			"ReturnTo":    returnTo,
			"Email":       in.Email,
			"Error":       mut.ErrMessage(),
			"FieldErrors": validation.FieldErrors{},
		})
		return
	}

	h.Sessions.Set(c, sessionFromAPI(sess))

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	} else if sess.Role == session.RoleMerchant {
		dest = "/merchant"
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Welcome back, "+sess.Name+".")
}

type registerInput struct {
	Name     string `form:"name" binding:"required,min=2,max=100"`
	Email    string `form:"email" binding:"required,email,max=255"`
	Phone    string `form:"phone" binding:"required,min=7,max=20"`
	Password string `form:"password" binding:"required,min=6,max=128"`
}

func (h *AuthHandler) RegisterGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "register", gin.H{
		"Title":       "Create account",
		"Form":        registerInput{},
		"FieldErrors": validation.FieldErrors{},
	})
}

func (h *AuthHandler) RegisterPost(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "register", gin.H{
			"Title":       "Create account",
			"Form":        in,
			"FieldErrors": validation.FromBindError(err, &in),
		})
		return
	}

	var sess api.Session
	mut := fetch.NewMutation(func(ctx context.Context) error {
		var err error
		sess, err = h.API.Register(ctx, api.RegisterInput{
			Name:     in.Name,
			Email:    in.Email,
			Phone:    in.Phone,
			Password: in.Password,
		})
		return err
	})
	if err := mut.Do(c.Request.Context()); err != nil {
		render.Page(c, http.StatusBadRequest, "register", gin.H{
			"Title":       "Create account",
			"Form":        in,
			"Error":       mut.ErrMessage(),
			"FieldErrors": validation.FieldErrors{},
		})
		return
	}

	h.Sessions.Set(c, sessionFromAPI(sess))
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashSuccess, "Welcome to GoFromA2zAfrica.")
}

// Logout clears the session cookie. The backend token is left to expire;
// revocation is the backend's concern.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "You have been signed out.")
}

func sessionFromAPI(s api.Session) session.Session {
	return session.Session{
		Token:     s.Token,
		UserID:    s.UserID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}
