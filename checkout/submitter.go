package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"storefront/cart"
	"storefront/database"
	"storefront/model"
	"storefront/units"
)

const fallbackMessage = "Failed to create order. Please try again."

type CustomerStore interface {
	GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, c *model.Customer) (string, error)
}

type SaleStore interface {
	InsertSale(ctx context.Context, sale *model.Sale) (string, error)
}

// Basket is the cart being checked out.
type Basket interface {
	Lines() []cart.Line
	Clear() error
}

// Adjuster receives a stock decrement for every committed line.
type Adjuster interface {
	Adjust(productID string, bags int64)
}

type LineStatus string

const (
	LineCommitted LineStatus = "committed"
	LineFailed    LineStatus = "failed"
	LineSkipped   LineStatus = "skipped"
)

// LineOutcome reports what happened to one cart line.
type LineOutcome struct {
	ProductID  string     `json:"product_id"`
	Status     LineStatus `json:"status"`
	SaleID     string     `json:"sale_id,omitempty"`
	CustomerID string     `json:"customer_id,omitempty"`
	Bags       int64      `json:"bags"`
	Error      string     `json:"error,omitempty"`
}

// Result is returned for both complete and aborted submissions.
type Result struct {
	Phone       string        `json:"phone"`
	Lines       []LineOutcome `json:"lines"`
	RedirectURL string        `json:"redirect_url,omitempty"`
}

func (r *Result) Committed() int {
	n := 0
	for _, l := range r.Lines {
		if l.Status == LineCommitted {
			n++
		}
	}
	return n
}

// SubmissionError is the failure that stopped a submission at Line.
// Earlier lines stay committed.
type SubmissionError struct {
	Line      int
	ProductID string
	Step      string
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("line %d (%s) %s: %v", e.Line+1, e.ProductID, e.Step, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Submitter turns a cart into order records, one per line.
type Submitter struct {
	customers CustomerStore
	sales     SaleStore
	adjuster  Adjuster
	source    string
	now       func() time.Time
}

func NewSubmitter(customers CustomerStore, sales SaleStore, adjuster Adjuster, source string) *Submitter {
	return &Submitter{
		customers: customers,
		sales:     sales,
		adjuster:  adjuster,
		source:    source,
		now:       time.Now,
	}
}

// Submit writes the cart's lines in order. Each line resolves the customer
// by phone, inserts the sale and then schedules the stock decrement. The
// first failure stops the loop; lines written before it are kept. The cart
// is cleared only when every line was written.
func (s *Submitter) Submit(ctx context.Context, basket Basket, form DeliveryForm) (*Result, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	lines := basket.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	result := &Result{Phone: form.Phone, Lines: make([]LineOutcome, len(lines))}
	for i, l := range lines {
		result.Lines[i] = LineOutcome{ProductID: l.Product.ID, Status: LineSkipped}
	}

	saleDate := s.now().Format("2006-01-02")
	for i, line := range lines {
		outcome := &result.Lines[i]

		customerID, err := s.resolveCustomer(ctx, form)
		if err != nil {
			outcome.Status, outcome.Error = LineFailed, err.Error()
			return result, &SubmissionError{Line: i, ProductID: line.Product.ID, Step: "resolve customer", Err: err}
		}
		outcome.CustomerID = customerID

		bags := units.BagsFor(line.Quantity)
		sale := &model.Sale{
			CustomerID:      customerID,
			ProductID:       line.Product.ID,
			Quantity:        line.Quantity,
			BagsNumber:      bags,
			Rate:            line.Product.PricePerBag,
			TotalAmount:     units.LineTotal(bags, line.Product.PricePerBag),
			SaleDate:        saleDate,
			PaymentStatus:   model.PaymentPending,
			PaymentMethod:   form.PaymentMethod,
			OrderStatus:     model.OrderPending,
			DeliveryAddress: form.Address,
			DeliveryPhone:   form.Phone,
			OrderNotes:      form.Notes,
			Source:          s.source,
		}
		saleID, err := s.sales.InsertSale(ctx, sale)
		if err != nil {
			outcome.Status, outcome.Error = LineFailed, err.Error()
			return result, &SubmissionError{Line: i, ProductID: line.Product.ID, Step: "insert sale", Err: err}
		}
		outcome.Status, outcome.SaleID, outcome.Bags = LineCommitted, saleID, bags
		zap.L().Info("order line committed",
			zap.String("sale_id", saleID),
			zap.String("product_id", line.Product.ID),
			zap.Int64("bags", bags))

		if s.adjuster != nil {
			s.adjuster.Adjust(line.Product.ID, bags)
		}
	}

	if err := basket.Clear(); err != nil {
		zap.L().Warn("clear cart after checkout failed", zap.Error(err))
	}
	result.RedirectURL = "/order-success?phone=" + url.QueryEscape(form.Phone)
	return result, nil
}

// resolveCustomer reuses the customer with the form's phone or creates one.
func (s *Submitter) resolveCustomer(ctx context.Context, form DeliveryForm) (string, error) {
	existing, err := s.customers.GetCustomerByPhone(ctx, form.Phone)
	if err == nil {
		zap.L().Debug("found existing customer", zap.String("customer_id", existing.ID))
		return existing.ID, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return "", err
	}

	id, err := s.customers.CreateCustomer(ctx, &model.Customer{
		Name:       form.Name,
		Phone:      form.Phone,
		Email:      form.Email,
		Address:    form.Address,
		IsVerified: false,
		Source:     s.source,
	})
	if err != nil {
		return "", err
	}
	zap.L().Info("created customer", zap.String("customer_id", id))
	return id, nil
}

// UserMessage is the single alert text shown for a failed submission. A
// store error is shown as its JSON form, anything else by its message.
func UserMessage(err error) string {
	if err == nil {
		return fallbackMessage
	}
	var qe *database.QueryError
	if errors.As(err, &qe) {
		if b, jerr := json.Marshal(qe); jerr == nil {
			return string(b)
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
