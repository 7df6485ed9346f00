package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bluewear/internal/backend"
	"bluewear/internal/render"
	"bluewear/internal/session"
	"bluewear/internal/view"
)

type Handler struct {
	api *backend.Client
}

func NewHandler(api *backend.Client) *Handler {
	return &Handler{api: api}
}

func (h *Handler) LoginForm(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Login)
	render.Page(c, http.StatusOK, "login.html", gin.H{"Email": ""})
}

// Login submits credentials to the backend. Failures of any kind keep the
// user unset and show the server's detail message when there is one.
func (h *Handler) Login(c *gin.Context) {
	sess := session.FromContext(c)
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	u, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		msg := "Login failed"
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			msg = apiErr.Detail
		}
		render.Page(c, http.StatusOK, "login.html", gin.H{
			"Error": msg,
			"Email": email,
		})
		return
	}

	sess.SetUser(u)
	c.Redirect(http.StatusSeeOther, sess.Navigate(view.Home).Path())
}

func (h *Handler) Account(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Account)

	if sess.User() == nil {
		c.Redirect(http.StatusSeeOther, view.Login.Path())
		return
	}
	render.Page(c, http.StatusOK, "account.html", gin.H{})
}

func (h *Handler) Logout(c *gin.Context) {
	sess := session.FromContext(c)
	sess.ClearUser()
	c.Redirect(http.StatusSeeOther, sess.Navigate(view.Home).Path())
}
