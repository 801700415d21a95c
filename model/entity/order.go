package entity

import "strings"

// Order statuses as the backend spells them. Comparison is case-insensitive
// throughout; use Order.StatusIs.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses lists the valid statuses in display order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order is a customer order. Orders are never created or deleted by the
// admin panel; only the status-update and cancel operations mutate them.
type Order struct {
	ID                 string          `json:"_id"`
	User               OrderUser       `json:"user"`
	Status             string          `json:"status"`
	ItemsPrice         float64         `json:"itemsPrice,omitempty"`
	ShippingPrice      float64         `json:"shippingPrice,omitempty"`
	TaxPrice           float64         `json:"taxPrice,omitempty"`
	TotalPrice         float64         `json:"totalPrice"`
	ShippingAddress    ShippingAddress `json:"shippingAddress"`
	OrderItems         []OrderItem     `json:"orderItems"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	CancelledBy        string          `json:"cancelledBy,omitempty"`
	CancelledAt        string          `json:"cancelledAt,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
}

type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	ItemID   string  `json:"item,omitempty"`
}

// StatusIs compares the order status case-insensitively.
func (o Order) StatusIs(status string) bool {
	return strings.EqualFold(o.Status, status)
}

// OrdersOverview is the /orders/stats/overview payload.
type OrdersOverview struct {
	TotalOrders      int     `json:"totalOrders"`
	PendingOrders    int     `json:"pendingOrders"`
	ProcessingOrders int     `json:"processingOrders"`
	ShippedOrders    int     `json:"shippedOrders"`
	DeliveredOrders  int     `json:"deliveredOrders"`
	CancelledOrders  int     `json:"cancelledOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
