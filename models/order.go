package models

import (
	"time"
)

// Order is created once per completed Stripe Checkout session by the payment
// webhook and never updated afterwards. StripeSessionID carries a unique index
// so a redelivered webhook event cannot materialize a second order.
// The id is exposed as "_id"; the order screens key and label orders by that
// name, same as products.
type Order struct {
	ID              string      `json:"_id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StripeSessionID string      `json:"stripe_session_id" gorm:"uniqueIndex;not null"`
	CustomerEmail   *string     `json:"customer_email"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:numeric(10,2)"`
	Currency        string      `json:"currency"`
	PaymentStatus   string      `json:"payment_status"`
	OrderItems      []OrderItem `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem belongs to exactly one Order and is written in the same
// transaction as it. UnitPrice stores the Stripe line total (amount_total/100),
// not price-per-unit; the storefront renders it as such.
type OrderItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID     string    `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time `json:"createdAt"`
}
