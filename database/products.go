package database

import (
	"context"
	"database/sql"

	"storefront/model"
)

var errNoRows = sql.ErrNoRows

const productColumns = `id, product_type, brand, sub_type, price_per_bag, description,
	website_description, image_url, current_stock, stock_status`

// ListWebsiteProducts returns the storefront catalog ordered by brand.
func (s *Store) ListWebsiteProducts(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := s.selectAll(ctx, &products, `SELECT `+productColumns+` FROM website_products ORDER BY brand, id`); err != nil {
		return nil, wrap("ListWebsiteProducts", err)
	}
	return products, nil
}

// ListFeaturedProducts returns the limit cheapest products by price per bag.
func (s *Store) ListFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	products := []model.Product{}
	if err := s.selectAll(ctx, &products, `SELECT `+productColumns+` FROM website_products
		ORDER BY price_per_bag ASC, id LIMIT ?`, limit); err != nil {
		return nil, wrap("ListFeaturedProducts", err)
	}
	return products, nil
}

func (s *Store) GetWebsiteProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := s.get(ctx, &p, `SELECT `+productColumns+` FROM website_products WHERE id = ?`, id); err != nil {
		return nil, wrap("GetWebsiteProduct", err)
	}
	return &p, nil
}
