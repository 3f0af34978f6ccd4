package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"storefront/model"
	"storefront/units"
)

const (
	sessionKey = "cart_session_id"
	itemsKey   = "cart_items"
)

var ErrInvalidQuantity = errors.New("quantity must be a multiple of 0.5 tons between 0.5 and 10000")

// Line is one product in the cart. Bags and Total are derived from
// Quantity and the product's price and are recomputed on every change.
type Line struct {
	Product  model.Product   `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Bags     int64           `json:"bags"`
	Total    decimal.Decimal `json:"total"`
}

func newLine(p model.Product, tons decimal.Decimal) Line {
	l := Line{Product: p}
	l.setQuantity(tons)
	return l
}

func (l *Line) setQuantity(tons decimal.Decimal) {
	l.Quantity = tons
	l.Bags = units.BagsFor(tons)
	l.Total = units.LineTotal(l.Bags, l.Product.PricePerBag)
}

// Store is one browser's cart. Every mutation is written through to
// storage before it returns.
type Store struct {
	storage   Storage
	sessionID string
	lines     []Line
}

// Open restores the cart held in storage, issuing a session token on
// first use. Unreadable saved items are discarded and the cart starts empty.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage}

	id, ok, err := storage.Get(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("read cart session failed: %w", err)
	}
	if !ok || id == "" {
		id = uuid.NewString()
		if err := storage.Set(sessionKey, id); err != nil {
			return nil, fmt.Errorf("write cart session failed: %w", err)
		}
	}
	s.sessionID = id

	raw, ok, err := storage.Get(itemsKey)
	if err != nil {
		return nil, fmt.Errorf("read cart items failed: %w", err)
	}
	if ok && raw != "" {
		var lines []Line
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			zap.L().Warn("discarding unreadable saved cart", zap.String("session", id), zap.Error(err))
		} else {
			s.lines = lines
		}
	}
	return s, nil
}

func (s *Store) SessionID() string { return s.sessionID }

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) IsEmpty() bool { return len(s.lines) == 0 }

func (s *Store) TotalBags() int64 {
	var n int64
	for _, l := range s.lines {
		n += l.Bags
	}
	return n
}

func (s *Store) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Total)
	}
	return total
}

// Add puts tons of p into the cart, increasing the existing line for the
// same product. Stock is not checked.
func (s *Store) Add(p model.Product, tons decimal.Decimal) error {
	if !units.IsValidQuantity(tons) {
		return ErrInvalidQuantity
	}
	if i := s.index(p.ID); i >= 0 {
		sum := s.lines[i].Quantity.Add(tons)
		if !units.IsValidQuantity(sum) {
			return ErrInvalidQuantity
		}
		s.lines[i].setQuantity(sum)
	} else {
		s.lines = append(s.lines, newLine(p, tons))
	}
	return s.persist()
}

// Remove deletes the line for productID; absent ids are a no-op.
func (s *Store) Remove(productID string) error {
	i := s.index(productID)
	if i < 0 {
		return nil
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.persist()
}

// SetQuantity replaces a line's quantity. Zero or negative removes it.
func (s *Store) SetQuantity(productID string, tons decimal.Decimal) error {
	if !tons.IsPositive() {
		return s.Remove(productID)
	}
	if !units.IsValidQuantity(tons) {
		return ErrInvalidQuantity
	}
	i := s.index(productID)
	if i < 0 {
		return nil
	}
	s.lines[i].setQuantity(tons)
	return s.persist()
}

// SetQuantityInput is SetQuantity for raw form input. Anything that does
// not parse as a number counts as zero.
func (s *Store) SetQuantityInput(productID string, raw interface{}) error {
	return s.SetQuantity(productID, ParseQuantity(raw))
}

// Clear empties the cart and keeps the session token.
func (s *Store) Clear() error {
	s.lines = nil
	return s.persist()
}

func (s *Store) index(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart items failed: %w", err)
	}
	if err := s.storage.Set(itemsKey, string(b)); err != nil {
		return fmt.Errorf("write cart items failed: %w", err)
	}
	return nil
}

// ParseQuantity reads a ton quantity from loosely typed input such as a
// JSON number, numeric string or form value. Unparseable input is zero.
func ParseQuantity(raw interface{}) decimal.Decimal {
	str, err := cast.ToStringE(raw)
	if err != nil {
		return decimal.Zero
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero
	}
	return d
}
