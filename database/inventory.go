package database

import (
	"context"
	"time"

	"storefront/model"
)

func (s *Store) GetInventory(ctx context.Context, productID string) (*model.Inventory, error) {
	var inv model.Inventory
	err := s.get(ctx, &inv, `SELECT product_id, current_stock, COALESCE(CAST(last_updated AS TEXT), '') AS last_updated
		FROM inventory WHERE product_id = ?`, productID)
	if err != nil {
		return nil, wrap("GetInventory", err)
	}
	return &inv, nil
}

// UpdateInventoryStock overwrites the stock counter. Returns ErrNotFound
// when no inventory row exists for the product.
func (s *Store) UpdateInventoryStock(ctx context.Context, productID string, stock int64, at time.Time) error {
	n, err := s.exec(ctx, `UPDATE inventory SET current_stock = ?, last_updated = ? WHERE product_id = ?`,
		stock, at.UTC().Format(time.RFC3339Nano), productID)
	if err != nil {
		return wrap("UpdateInventoryStock", err)
	}
	if n == 0 {
		return wrap("UpdateInventoryStock", errNoRows)
	}
	return nil
}
