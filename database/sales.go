package database

import (
	"context"

	"github.com/google/uuid"

	"storefront/model"
)

// InsertSale writes one order record and returns its id.
func (s *Store) InsertSale(ctx context.Context, sale *model.Sale) (string, error) {
	id := uuid.NewString()
	_, err := s.exec(ctx, `INSERT INTO sales (
			id, customer_id, product_id, quantity, bags_number, rate, total_amount,
			sale_date, payment_status, payment_method, order_status,
			delivery_address, delivery_phone, order_notes, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sale.CustomerID, sale.ProductID, sale.Quantity, sale.BagsNumber, sale.Rate, sale.TotalAmount,
		sale.SaleDate, sale.PaymentStatus, sale.PaymentMethod, sale.OrderStatus,
		sale.DeliveryAddress, sale.DeliveryPhone, nullIfEmpty(sale.OrderNotes), sale.Source)
	if err != nil {
		return "", wrap("InsertSale", err)
	}
	sale.ID = id
	return id, nil
}

// ListOrdersByCustomer returns the customer's storefront orders, newest
// sale date first.
func (s *Store) ListOrdersByCustomer(ctx context.Context, customerID string) ([]model.OrderSummary, error) {
	orders := []model.OrderSummary{}
	err := s.selectAll(ctx, &orders, `
		SELECT s.id, CAST(s.sale_date AS TEXT) AS sale_date, s.quantity, s.bags_number, s.total_amount,
			s.payment_status, s.order_status,
			COALESCE(p.brand, '') AS "product.brand",
			COALESCE(p.sub_type, '') AS "product.sub_type",
			COALESCE(p.product_type, '') AS "product.product_type"
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.customer_id = ? AND s.source = ?
		ORDER BY s.sale_date DESC`, customerID, s.source)
	if err != nil {
		return nil, wrap("ListOrdersByCustomer", err)
	}
	return orders, nil
}

// GetOrderDetail returns one storefront order joined with its customer and
// product, or ErrNotFound.
func (s *Store) GetOrderDetail(ctx context.Context, id string) (*model.OrderDetail, error) {
	var d model.OrderDetail
	err := s.get(ctx, &d, `
		SELECT s.id, CAST(s.sale_date AS TEXT) AS sale_date, s.quantity, s.bags_number, s.total_amount,
			s.payment_status, s.order_status,
			COALESCE(s.delivery_address, '') AS delivery_address,
			COALESCE(s.delivery_phone, '') AS delivery_phone,
			c.name AS "customer.name",
			c.phone AS "customer.phone",
			c.is_verified AS "customer.is_verified",
			p.brand AS "product.brand",
			COALESCE(p.sub_type, '') AS "product.sub_type",
			p.product_type AS "product.product_type"
		FROM sales s
		INNER JOIN customers c ON c.id = s.customer_id
		INNER JOIN products p ON p.id = s.product_id
		WHERE s.id = ? AND s.source = ?`, id, s.source)
	if err != nil {
		return nil, wrap("GetOrderDetail", err)
	}
	return &d, nil
}
