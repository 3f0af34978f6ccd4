package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/database"
	"storefront/model"
	"storefront/render"
)

// BrowserIdentifier resolves the per-browser id carried by the request.
type BrowserIdentifier interface {
	BrowserID(w http.ResponseWriter, r *http.Request) (string, error)
}

type ProductFinder interface {
	GetWebsiteProduct(ctx context.Context, id string) (*model.Product, error)
}

// View is the JSON shape of a cart.
type View struct {
	SessionID   string          `json:"session_id"`
	Items       []Line          `json:"items"`
	TotalBags   int64           `json:"total_bags"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

func NewView(s *Store) View {
	lines := s.Lines()
	return View{
		SessionID:   s.SessionID(),
		Items:       lines,
		TotalBags:   s.TotalBags(),
		TotalAmount: s.TotalAmount(),
		ItemCount:   len(lines),
	}
}

type lineRequest struct {
	ProductID string      `json:"productId"`
	Quantity  interface{} `json:"quantity"`
}

var defaultAddQuantity = decimal.NewFromInt(1)

// mutate resolves the browser, runs fn on its cart and answers with the
// resulting cart view.
func mutate(carts *Manager, sessions BrowserIdentifier, w http.ResponseWriter, r *http.Request, fn func(*Store) error) {
	browserID, err := sessions.BrowserID(w, r)
	if err != nil {
		zap.L().Error("resolve browser id failed", zap.Error(err))
		render.Error(w, "Failed to read session.", http.StatusInternalServerError)
		return
	}

	var view View
	err = carts.WithCart(browserID, func(s *Store) error {
		if err := fn(s); err != nil {
			return err
		}
		view = NewView(s)
		return nil
	})
	if err != nil {
		writeCartError(w, err)
		return
	}
	render.JSON(w, http.StatusOK, view)
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		render.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, database.ErrNotFound):
		render.Error(w, "Product not found.", http.StatusNotFound)
	default:
		zap.L().Error("cart operation failed", zap.Error(err))
		render.Error(w, "Failed to update cart.", http.StatusInternalServerError)
	}
}

func decodeLine(w http.ResponseWriter, r *http.Request) (lineRequest, bool) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, "Invalid request body.", http.StatusBadRequest)
		return req, false
	}
	if req.ProductID == "" {
		render.Error(w, "productId is required.", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func GetCartHandler(carts *Manager, sessions BrowserIdentifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		mutate(carts, sessions, w, r, func(*Store) error { return nil })
	}
}

// AddHandler adds a catalog product. A missing or zero quantity adds one ton.
func AddHandler(carts *Manager, sessions BrowserIdentifier, products ProductFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, ok := decodeLine(w, r)
		if !ok {
			return
		}
		tons := ParseQuantity(req.Quantity)
		if tons.IsZero() {
			tons = defaultAddQuantity
		}
		if !tons.IsPositive() {
			render.Error(w, ErrInvalidQuantity.Error(), http.StatusBadRequest)
			return
		}

		p, err := products.GetWebsiteProduct(r.Context(), req.ProductID)
		if err != nil {
			writeCartError(w, err)
			return
		}
		mutate(carts, sessions, w, r, func(s *Store) error {
			return s.Add(*p, tons)
		})
	}
}

func UpdateHandler(carts *Manager, sessions BrowserIdentifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, ok := decodeLine(w, r)
		if !ok {
			return
		}
		mutate(carts, sessions, w, r, func(s *Store) error {
			return s.SetQuantityInput(req.ProductID, req.Quantity)
		})
	}
}

func RemoveHandler(carts *Manager, sessions BrowserIdentifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req, ok := decodeLine(w, r)
		if !ok {
			return
		}
		mutate(carts, sessions, w, r, func(s *Store) error {
			return s.Remove(req.ProductID)
		})
	}
}

func ClearHandler(carts *Manager, sessions BrowserIdentifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		mutate(carts, sessions, w, r, func(s *Store) error {
			return s.Clear()
		})
	}
}
