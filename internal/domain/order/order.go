package order

const (
	StatusCreated = "created"
	StatusPaid    = "paid"
)

type Item struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	ID              string  `json:"id,omitempty"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	ShippingAddress string  `json:"shipping_address"`
	Items           []Item  `json:"items"`
	Subtotal        float64 `json:"subtotal,omitempty"`
	Status          string  `json:"status,omitempty"`
}

func (o Order) IsPaid() bool {
	return o.Status == StatusPaid
}

type StatusSummary struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Report is the backend-computed monthly aggregate, keyed by order status.
type Report struct {
	TotalOrders  int                      `json:"total_orders"`
	TotalRevenue float64                  `json:"total_revenue"`
	Summary      map[string]StatusSummary `json:"summary"`
}
