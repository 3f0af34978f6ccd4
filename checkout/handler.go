package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"storefront/cart"
	"storefront/render"
)

type checkoutResponse struct {
	Result      *Result `json:"result"`
	Summary     string  `json:"summary"`
	RedirectURL string  `json:"redirect_url"`
}

type failureResponse struct {
	Message string  `json:"message"`
	Result  *Result `json:"result,omitempty"`
}

func summaryLines(lines []cart.Line) []render.SummaryLine {
	out := make([]render.SummaryLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, render.SummaryLine{
			Brand:    l.Product.Brand,
			SubType:  l.Product.SubType,
			Quantity: l.Quantity,
			Bags:     l.Bags,
			Total:    l.Total,
		})
	}
	return out
}

// CheckoutHandler submits the browser's cart. The cart lock is held for
// the whole submission so a concurrent edit cannot change the lines being
// written.
func CheckoutHandler(carts *cart.Manager, sessions cart.BrowserIdentifier, submitter *Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var form DeliveryForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			render.Error(w, "Invalid request body.", http.StatusBadRequest)
			return
		}

		browserID, err := sessions.BrowserID(w, r)
		if err != nil {
			zap.L().Error("resolve browser id failed", zap.Error(err))
			render.Error(w, "Failed to read session.", http.StatusInternalServerError)
			return
		}

		var (
			result    *Result
			submitted []cart.Line
		)
		err = carts.WithCart(browserID, func(s *cart.Store) error {
			submitted = s.Lines()
			var serr error
			result, serr = submitter.Submit(r.Context(), s, form)
			return serr
		})

		var verr *ValidationError
		var subErr *SubmissionError
		switch {
		case err == nil:
			render.JSON(w, http.StatusOK, checkoutResponse{
				Result:      result,
				Summary:     render.OrderSummary(summaryLines(submitted), result.Phone),
				RedirectURL: result.RedirectURL,
			})
		case errors.As(err, &verr):
			render.Error(w, verr.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmptyCart):
			render.Error(w, "Your cart is empty.", http.StatusConflict)
		case errors.As(err, &subErr):
			zap.L().Error("order submission aborted",
				zap.Int("line", subErr.Line),
				zap.String("step", subErr.Step),
				zap.Int("committed", result.Committed()),
				zap.Error(subErr.Err))
			render.JSON(w, http.StatusBadGateway, failureResponse{Message: UserMessage(subErr.Err), Result: result})
		default:
			zap.L().Error("checkout failed", zap.Error(err))
			render.JSON(w, http.StatusInternalServerError, failureResponse{Message: UserMessage(err)})
		}
	}
}
