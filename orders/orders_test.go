package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/database"
	"storefront/model"
)

type fakeStore struct {
	customers map[string]string
	orders    map[string][]model.OrderSummary
	details   map[string]model.OrderDetail
	err       error
}

func (f *fakeStore) GetCustomerByPhone(_ context.Context, phone string) (*model.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.customers[phone]
	if !ok {
		return nil, fmt.Errorf("GetCustomerByPhone: %w", database.ErrNotFound)
	}
	return &model.Customer{ID: id, Phone: phone}, nil
}

func (f *fakeStore) ListOrdersByCustomer(_ context.Context, id string) ([]model.OrderSummary, error) {
	return f.orders[id], nil
}

func (f *fakeStore) GetOrderDetail(_ context.Context, id string) (*model.OrderDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("GetOrderDetail: %w", database.ErrNotFound)
	}
	return &d, nil
}

func newFake() *fakeStore {
	return &fakeStore{
		customers: map[string]string{"0300": "c1"},
		orders: map[string][]model.OrderSummary{
			"c1": {{ID: "s2", SaleDate: "2024-03-10"}, {ID: "s1", SaleDate: "2024-03-01"}},
		},
		details: map[string]model.OrderDetail{
			"s1": {
				OrderSummary: model.OrderSummary{ID: "s1", OrderStatus: model.OrderConfirmed, PaymentStatus: model.PaymentPending},
				Customer:     model.OrderCustomer{Name: "Ali", Phone: "0300"},
			},
		},
	}
}

func TestByPhone(t *testing.T) {
	svc := NewService(newFake())

	list, err := svc.ByPhone(context.Background(), "0300")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID)

	list, err = svc.ByPhone(context.Background(), "0999")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestByPhoneStoreFailure(t *testing.T) {
	f := newFake()
	f.err = errors.New("unreachable")
	_, err := NewService(f).ByPhone(context.Background(), "0300")
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	svc := NewService(newFake())

	d, err := svc.ByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", d.Customer.Name)

	_, err = svc.ByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	f := newFake()
	f.err = errors.New("unreachable")
	_, err = NewService(f).ByID(context.Background(), "s1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrOrderNotFound))
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		status   model.OrderStatus
		index    int
		progress int
		reached  int
	}{
		{model.OrderPending, 0, 0, 1},
		{model.OrderConfirmed, 1, 33, 2},
		{model.OrderProcessing, 2, 66, 3},
		{model.OrderDelivered, 3, 100, 4},
		{model.OrderCancelled, -1, 0, 0},
		{model.OrderStatus("lost"), -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.index, StatusIndex(tt.status))
			assert.Equal(t, tt.progress, Progress(tt.status))
			n := 0
			for _, s := range Timeline(tt.status) {
				if s.Reached {
					n++
				}
			}
			assert.Equal(t, tt.reached, n)
		})
	}
	assert.Equal(t, "Order Placed", Steps[0].Label)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusLabel("pending"))
	assert.Equal(t, "Paid", StatusLabel("paid"))
}

func TestTrackOrderHandler(t *testing.T) {
	svc := NewService(newFake())

	rec := httptest.NewRecorder()
	TrackOrderHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/api/track-order/s1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		StatusIndex      int    `json:"status_index"`
		Unverified       bool   `json:"unverified"`
		OrderStatusLabel string `json:"order_status_label"`
		Timeline         []Step `json:"timeline"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.StatusIndex)
	assert.True(t, body.Unverified)
	assert.Equal(t, "Confirmed", body.OrderStatusLabel)
	assert.Len(t, body.Timeline, 4)

	rec = httptest.NewRecorder()
	TrackOrderHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/api/track-order/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersHandler(t *testing.T) {
	svc := NewService(newFake())

	rec := httptest.NewRecorder()
	ListOrdersHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/api/orders?phone=0999", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phone":"0999","orders":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ListOrdersHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
