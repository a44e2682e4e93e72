package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderReady      OrderStatus = "Ready"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Completed and Cancelled are terminal.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if !ValidOrderStatus(to) || s == to {
		return false
	}
	switch s {
	case OrderCompleted, OrderCancelled:
		return false
	case OrderPending:
		return to == OrderProcessing || to == OrderReady || to == OrderCompleted || to == OrderCancelled
	case OrderProcessing:
		return to == OrderReady || to == OrderCompleted || to == OrderCancelled
	case OrderReady:
		return to == OrderCompleted || to == OrderCancelled
	}
	return false
}

// Order is created only by checkout settlement and mutated only through
// status transitions. Items is a deep clone of the cart at settlement
// time; later cart changes must not show up here.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId,omitempty"`
	CustomerName  string      `json:"customerName"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Date          time.Time   `json:"date"`
	ItemsCount    int         `json:"itemsCount"`
	Items         []CartLine  `json:"items"`
	Address       string      `json:"address,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Note          string      `json:"note,omitempty"`
}
