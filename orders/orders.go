package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/database"
	"storefront/model"
)

var ErrOrderNotFound = errors.New("order not found")

type Store interface {
	GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]model.OrderSummary, error)
	GetOrderDetail(ctx context.Context, id string) (*model.OrderDetail, error)
}

// Service answers order-tracking lookups. Only storefront orders are
// visible; the store applies the provenance filter.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ByPhone lists the orders of the customer with this exact phone, newest
// first. An unknown phone yields an empty list.
func (s *Service) ByPhone(ctx context.Context, phone string) ([]model.OrderSummary, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []model.OrderSummary{}, nil
	}
	c, err := s.store.GetCustomerByPhone(ctx, phone)
	if errors.Is(err, database.ErrNotFound) {
		return []model.OrderSummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup customer by phone failed: %w", err)
	}
	list, err := s.store.ListOrdersByCustomer(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders failed: %w", err)
	}
	return list, nil
}

// ByID returns one order or ErrOrderNotFound.
func (s *Service) ByID(ctx context.Context, id string) (*model.OrderDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrOrderNotFound
	}
	d, err := s.store.GetOrderDetail(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s failed: %w", id, err)
	}
	return d, nil
}
