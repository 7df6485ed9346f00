package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluewear/internal/backend"
	"bluewear/internal/cart"
	"bluewear/internal/domain/order"
	"bluewear/internal/domain/product"
	"bluewear/internal/render"
	"bluewear/internal/session"
	"bluewear/internal/view"
)

const featuredCount = 6

type Handler struct {
	api *backend.Client
}

func NewHandler(api *backend.Client) *Handler {
	return &Handler{api: api}
}

// Home renders the hero plus the first few products as "Featured".
// Products are fetched fresh on every page load.
func (h *Handler) Home(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Home)

	products, err := h.api.ListProducts(c.Request.Context())
	data := gin.H{"Products": Featured(products)}
	if err != nil {
		data["LoadError"] = "Could not load products. Please try again."
	}
	render.Page(c, http.StatusOK, "home.html", data)
}

func (h *Handler) Shop(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Shop)

	products, err := h.api.ListProducts(c.Request.Context())
	data := gin.H{"Products": products}
	if err != nil {
		data["LoadError"] = "Could not load products. Please try again."
	}
	render.Page(c, http.StatusOK, "shop.html", data)
}

func (h *Handler) CartPage(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Cart)

	render.Page(c, http.StatusOK, "cart.html", gin.H{
		"Lines":    sess.Cart.Items(),
		"Subtotal": cart.FormatUSD(sess.Cart.Subtotal()),
	})
}

// AddItem puts one unit of a product in the cart. The product is looked
// up from a fresh listing, so a stale page cannot add a deleted product.
func (h *Handler) AddItem(c *gin.Context) {
	sess := session.FromContext(c)
	id := c.PostForm("product_id")

	back := view.Shop
	if v, ok := view.Parse(c.PostForm("from")); ok {
		back = v
	}

	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		sess.SetFlash("Could not add to cart. Please try again.")
		c.Redirect(http.StatusSeeOther, sess.Navigate(back).Path())
		return
	}
	for _, p := range products {
		if p.ID == id {
			sess.Cart.Add(p)
			break
		}
	}
	c.Redirect(http.StatusSeeOther, sess.Navigate(back).Path())
}

func (h *Handler) DecrementItem(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Cart.Decrement(c.Param("id"))
	c.Redirect(http.StatusSeeOther, view.Cart.Path())
}

func (h *Handler) IncrementItem(c *gin.Context) {
	sess := session.FromContext(c)
	id := c.Param("id")

	// the + button only works on lines already in the cart
	for _, l := range sess.Cart.Items() {
		if l.ID == id {
			sess.Cart.Add(l.Product)
			break
		}
	}
	c.Redirect(http.StatusSeeOther, view.Cart.Path())
}

// Checkout turns the cart into an order. An empty cart is a no-op. The
// cart is cleared only when the backend accepted the order; on failure
// the shopper keeps the cart and sees why.
func (h *Handler) Checkout(c *gin.Context) {
	sess := session.FromContext(c)

	lines := sess.Cart.Items()
	if len(lines) == 0 {
		c.Redirect(http.StatusSeeOther, view.Cart.Path())
		return
	}

	name, email := "Guest", "guest@example.com"
	if u := sess.User(); u != nil {
		name, email = u.Name, u.Email
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ProductID: l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}

	payload := order.Order{
		CustomerName:    name,
		CustomerEmail:   email,
		ShippingAddress: "N/A", // address collection is not built yet
		Items:           items,
	}

	if _, err := h.api.CreateOrder(c.Request.Context(), payload); err != nil {
		sess.SetFlash("Checkout failed: " + err.Error())
		c.Redirect(http.StatusSeeOther, view.Cart.Path())
		return
	}

	sess.Cart.Clear()
	sess.SetFlash("Order created. Use the QR to pay. Admin can mark paid in Manage.")
	c.Redirect(http.StatusSeeOther, sess.Navigate(view.Orders).Path())
}

func (h *Handler) OrdersPage(c *gin.Context) {
	sess := session.FromContext(c)
	sess.Navigate(view.Orders)
	render.Page(c, http.StatusOK, "orders.html", gin.H{})
}

// Featured is the home-page slice of the catalog.
func Featured(products []product.Product) []product.Product {
	if len(products) > featuredCount {
		return products[:featuredCount]
	}
	return products
}
