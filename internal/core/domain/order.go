package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the fulfilment state of a gig order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")

// Order is a buyer's purchase of a gig at the listed price.
type Order struct {
	ID         int64       `json:"id"`
	GigID      int64       `json:"gig_id"`
	BuyerID    int64       `json:"buyer_id"`
	Status     OrderStatus `json:"status"`
	TotalPrice float64     `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
}
