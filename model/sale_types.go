package model

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// OrderStatus is only ever changed by the back office.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Sale is one order record; a checkout writes one per cart line.
type Sale struct {
	ID              string          `db:"id" json:"id"`
	CustomerID      string          `db:"customer_id" json:"customer_id"`
	ProductID       string          `db:"product_id" json:"product_id"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	BagsNumber      int64           `db:"bags_number" json:"bags_number"`
	Rate            decimal.Decimal `db:"rate" json:"rate"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	SaleDate        string          `db:"sale_date" json:"sale_date"`
	PaymentStatus   PaymentStatus   `db:"payment_status" json:"payment_status"`
	PaymentMethod   string          `db:"payment_method" json:"payment_method"`
	OrderStatus     OrderStatus     `db:"order_status" json:"order_status"`
	DeliveryAddress string          `db:"delivery_address" json:"delivery_address"`
	DeliveryPhone   string          `db:"delivery_phone" json:"delivery_phone"`
	OrderNotes      string          `db:"order_notes" json:"order_notes,omitempty"`
	Source          string          `db:"source" json:"source"`
}

// OrderProduct is the product reference joined onto order lookups.
type OrderProduct struct {
	Brand       string `db:"brand" json:"brand"`
	SubType     string `db:"sub_type" json:"sub_type"`
	ProductType string `db:"product_type" json:"product_type"`
}

// OrderCustomer is the customer reference joined onto a tracked order.
type OrderCustomer struct {
	Name       string `db:"name" json:"name"`
	Phone      string `db:"phone" json:"phone"`
	IsVerified bool   `db:"is_verified" json:"is_verified"`
}

// OrderSummary is a row of the by-phone order list.
type OrderSummary struct {
	ID            string          `db:"id" json:"id"`
	SaleDate      string          `db:"sale_date" json:"sale_date"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	BagsNumber    int64           `db:"bags_number" json:"bags_number"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	PaymentStatus PaymentStatus   `db:"payment_status" json:"payment_status"`
	OrderStatus   OrderStatus     `db:"order_status" json:"order_status"`
	Product       OrderProduct    `db:"product" json:"product"`
}

// OrderDetail is a single tracked order with its customer and product.
type OrderDetail struct {
	OrderSummary
	DeliveryAddress string        `db:"delivery_address" json:"delivery_address"`
	DeliveryPhone   string        `db:"delivery_phone" json:"delivery_phone"`
	Customer        OrderCustomer `db:"customer" json:"customer"`
}
