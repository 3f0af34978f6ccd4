package model

import "github.com/shopspring/decimal"

// StockStatus is the storefront availability label computed by the website_products view.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// Product is a row of website_products. The storefront never writes it.
type Product struct {
	ID                 string          `db:"id" json:"id"`
	ProductType        string          `db:"product_type" json:"product_type"`
	Brand              string          `db:"brand" json:"brand"`
	SubType            string          `db:"sub_type" json:"sub_type"`
	PricePerBag        decimal.Decimal `db:"price_per_bag" json:"price_per_bag"`
	Description        string          `db:"description" json:"description"`
	WebsiteDescription string          `db:"website_description" json:"website_description"`
	ImageURL           string          `db:"image_url" json:"image_url"`
	CurrentStock       int64           `db:"current_stock" json:"current_stock"`
	StockStatus        StockStatus     `db:"stock_status" json:"stock_status"`
}

// Inventory is the per-product stock counter, in bags.
type Inventory struct {
	ProductID    string `db:"product_id" json:"product_id"`
	CurrentStock int64  `db:"current_stock" json:"current_stock"`
	LastUpdated  string `db:"last_updated" json:"last_updated"`
}
