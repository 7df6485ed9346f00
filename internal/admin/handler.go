package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bluewear/internal/backend"
	"bluewear/internal/domain/product"
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

// ProductForm mirrors the add-product inputs so a rejected submission can
// be redisplayed as typed.
type ProductForm struct {
	Title       string
	Price       string
	Description string
	ImageURL    string
}

func formFromRequest(c *gin.Context) ProductForm {
	return ProductForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Description: strings.TrimSpace(c.PostForm("description")),
		ImageURL:    strings.TrimSpace(c.PostForm("image_url")),
	}
}

// guard applies the navigator rule: only admins enter the admin view,
// everyone else lands back on home with no error shown.
func (h *Handler) guard(c *gin.Context) (*session.Session, bool) {
	sess := session.FromContext(c)
	if sess.Navigate(view.Admin) != view.Admin {
		c.Redirect(http.StatusSeeOther, view.Home.Path())
		return nil, false
	}
	return sess, true
}

// Dashboard loads products and orders fresh on every render. The monthly
// report is fetched only when the refresh button set report=1.
func (h *Handler) Dashboard(c *gin.Context) {
	if _, ok := h.guard(c); !ok {
		return
	}
	h.renderDashboard(c, gin.H{})
}

func (h *Handler) renderDashboard(c *gin.Context, extra gin.H) {
	ctx := c.Request.Context()
	data := gin.H{}

	products, err := h.api.ListProducts(ctx)
	if err != nil {
		data["ProductsError"] = "Failed to load products: " + err.Error()
	}
	data["Products"] = products

	orders, err := h.api.ListOrders(ctx)
	if err != nil {
		data["OrdersError"] = "Failed to load orders: " + err.Error()
	}
	data["Orders"] = orders

	if c.Query("report") == "1" {
		report, err := h.api.MonthlyReport(ctx)
		if err != nil {
			data["ReportError"] = "Failed to load report: " + err.Error()
		} else {
			data["Report"] = report
		}
	}

	for k, v := range extra {
		data[k] = v
	}
	render.Page(c, http.StatusOK, "admin.html", data)
}

// CreateProduct validates the form before anything is sent: a price that
// does not parse as a non-negative number rejects the submission instead
// of being coerced to zero.
func (h *Handler) CreateProduct(c *gin.Context) {
	sess, ok := h.guard(c)
	if !ok {
		return
	}

	form := formFromRequest(c)
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		h.renderDashboard(c, gin.H{
			"Form":      form,
			"FormError": "Price must be a non-negative number",
		})
		return
	}
	if form.Title == "" {
		h.renderDashboard(c, gin.H{
			"Form":      form,
			"FormError": "Title is required",
		})
		return
	}

	_, err = h.api.CreateProduct(c.Request.Context(), product.CreateInput{
		Title:       form.Title,
		Price:       price,
		Description: form.Description,
		ImageURL:    form.ImageURL,
	})
	if err != nil {
		sess.SetFlash("Failed to create product: " + err.Error())
	}
	c.Redirect(http.StatusSeeOther, view.Admin.Path())
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	sess, ok := h.guard(c)
	if !ok {
		return
	}
	if err := h.api.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		sess.SetFlash("Failed to delete product: " + err.Error())
	}
	c.Redirect(http.StatusSeeOther, view.Admin.Path())
}

// MarkPaid forwards the transition to the backend; the backend stays the
// authority on order status, the UI just hides the button on paid orders.
func (h *Handler) MarkPaid(c *gin.Context) {
	sess, ok := h.guard(c)
	if !ok {
		return
	}
	if err := h.api.MarkOrderPaid(c.Request.Context(), c.Param("id")); err != nil {
		sess.SetFlash("Failed to mark order paid: " + err.Error())
	}
	c.Redirect(http.StatusSeeOther, view.Admin.Path())
}
