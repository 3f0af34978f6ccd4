package orders

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront/model"
	"storefront/render"
)

type orderListResponse struct {
	Phone  string               `json:"phone"`
	Orders []model.OrderSummary `json:"orders"`
}

type trackResponse struct {
	Order              *model.OrderDetail `json:"order"`
	Timeline           []Step             `json:"timeline"`
	StatusIndex        int                `json:"status_index"`
	Progress           int                `json:"progress"`
	OrderStatusLabel   string             `json:"order_status_label"`
	PaymentStatusLabel string             `json:"payment_status_label"`
	Unverified         bool               `json:"unverified"`
}

func ListOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		if strings.TrimSpace(phone) == "" {
			render.Error(w, "phone is required.", http.StatusBadRequest)
			return
		}
		list, err := svc.ByPhone(r.Context(), phone)
		if err != nil {
			zap.L().Error("order lookup by phone failed", zap.Error(err))
			render.Error(w, "Failed to load orders.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, orderListResponse{Phone: phone, Orders: list})
	}
}

// TrackOrderHandler serves /api/track-order/{id}.
func TrackOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/track-order/")
		if id == "" {
			render.Error(w, "order id is required.", http.StatusBadRequest)
			return
		}
		d, err := svc.ByID(r.Context(), id)
		if errors.Is(err, ErrOrderNotFound) {
			render.Error(w, "Order not found.", http.StatusNotFound)
			return
		}
		if err != nil {
			zap.L().Error("track order failed", zap.String("id", id), zap.Error(err))
			render.Error(w, "Failed to load order.", http.StatusInternalServerError)
			return
		}
		render.JSON(w, http.StatusOK, trackResponse{
			Order:              d,
			Timeline:           Timeline(d.OrderStatus),
			StatusIndex:        StatusIndex(d.OrderStatus),
			Progress:           Progress(d.OrderStatus),
			OrderStatusLabel:   StatusLabel(string(d.OrderStatus)),
			PaymentStatusLabel: StatusLabel(string(d.PaymentStatus)),
			Unverified:         !d.Customer.IsVerified,
		})
	}
}
