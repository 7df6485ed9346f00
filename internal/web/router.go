package web

import (
	"github.com/gin-gonic/gin"

	"bluewear/internal/admin"
	"bluewear/internal/auth"
	"bluewear/internal/backend"
	"bluewear/internal/session"
	"bluewear/internal/shop"
)

// NewRouter assembles the full storefront: shared middleware, templates
// and every view route.
func NewRouter(api *backend.Client, sessions *session.Store, templatesGlob string) *gin.Engine {
	shopH := shop.NewHandler(api)
	authH := auth.NewHandler(api)
	adminH := admin.NewHandler(api)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.LoadHTMLGlob(templatesGlob)
	r.Use(sessions.Middleware())

	r.GET("/", shopH.Home)
	r.GET("/shop", shopH.Shop)

	r.GET("/cart", shopH.CartPage)
	r.POST("/cart/items", shopH.AddItem)
	r.POST("/cart/items/:id/increment", shopH.IncrementItem)
	r.POST("/cart/items/:id/decrement", shopH.DecrementItem)
	r.POST("/checkout", shopH.Checkout)
	r.GET("/orders", shopH.OrdersPage)

	r.GET("/login", authH.LoginForm)
	r.POST("/login", authH.Login)
	r.GET("/account", authH.Account)
	r.POST("/logout", authH.Logout)

	r.GET("/admin", adminH.Dashboard)
	r.POST("/admin/products", adminH.CreateProduct)
	r.POST("/admin/products/:id/delete", adminH.DeleteProduct)
	r.POST("/admin/orders/:id/mark-paid", adminH.MarkPaid)

	return r
}
