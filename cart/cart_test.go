package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/model"
)

func tons(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func product(id, price string) model.Product {
	return model.Product{ID: id, Brand: "Brand " + id, ProductType: "opc", PricePerBag: tons(price)}
}

func TestAddAndDerivedFields(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)

	require.NoError(t, s.Add(product("p1", "1000"), tons("1.5")))
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(30), lines[0].Bags)
	assert.True(t, lines[0].Total.Equal(tons("30000")))

	require.NoError(t, s.Add(product("p1", "1000"), tons("0.5")))
	lines = s.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Quantity.Equal(tons("2")))
	assert.Equal(t, int64(40), lines[0].Bags)
	assert.True(t, lines[0].Total.Equal(tons("40000")))
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)

	for _, q := range []string{"0", "-1", "0.3", "1.25"} {
		err := s.Add(product("p1", "1000"), tons(q))
		assert.True(t, errors.Is(err, ErrInvalidQuantity), q)
	}
	assert.True(t, s.IsEmpty())
}

func TestOversizedQuantityRejected(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)

	err = s.Add(product("p1", "500"), ParseQuantity("500000000000000000"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, s.IsEmpty())

	require.NoError(t, s.Add(product("p1", "500"), tons("9999.5")))
	assert.ErrorIs(t, s.Add(product("p1", "500"), tons("1")), ErrInvalidQuantity)
	assert.ErrorIs(t, s.SetQuantity("p1", tons("20000")), ErrInvalidQuantity)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(199990), lines[0].Bags)
	assert.True(t, lines[0].Total.Equal(tons("99995000")))
	assert.Equal(t, lines[0].Bags, s.TotalBags())
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)

	require.NoError(t, s.Add(product("b", "10"), tons("1")))
	require.NoError(t, s.Add(product("a", "10"), tons("1")))
	require.NoError(t, s.Add(product("b", "10"), tons("1")))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[0].Product.ID)
	assert.Equal(t, "a", lines[1].Product.ID)
}

func TestSetQuantity(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)
	require.NoError(t, s.Add(product("p1", "1200"), tons("1")))
	require.NoError(t, s.Add(product("p2", "1100"), tons("1")))

	require.NoError(t, s.SetQuantity("p1", tons("2.5")))
	assert.Equal(t, int64(50), s.Lines()[0].Bags)
	assert.True(t, s.Lines()[0].Total.Equal(tons("60000")))

	assert.ErrorIs(t, s.SetQuantity("p1", tons("0.7")), ErrInvalidQuantity)

	require.NoError(t, s.SetQuantity("p2", tons("0")))
	require.Len(t, s.Lines(), 1)

	require.NoError(t, s.SetQuantity("p1", tons("-3")))
	assert.True(t, s.IsEmpty())

	require.NoError(t, s.SetQuantity("missing", tons("1")))
	assert.True(t, s.IsEmpty())
}

func TestSetQuantityInputTreatsGarbageAsZero(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)
	require.NoError(t, s.Add(product("p1", "1200"), tons("1")))

	require.NoError(t, s.SetQuantityInput("p1", "3"))
	assert.True(t, s.Lines()[0].Quantity.Equal(tons("3")))

	require.NoError(t, s.SetQuantityInput("p1", "abc"))
	assert.True(t, s.IsEmpty())
}

func TestRemoveAndClear(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)
	require.NoError(t, s.Add(product("p1", "1"), tons("1")))
	require.NoError(t, s.Add(product("p2", "1"), tons("1")))

	require.NoError(t, s.Remove("nope"))
	assert.Len(t, s.Lines(), 2)
	require.NoError(t, s.Remove("p1"))
	assert.Equal(t, "p2", s.Lines()[0].Product.ID)

	id := s.SessionID()
	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, id, s.SessionID())
}

func TestTotals(t *testing.T) {
	s, err := Open(NewMemoryStorage())
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.TotalBags())
	assert.True(t, s.TotalAmount().IsZero())

	require.NoError(t, s.Add(product("p1", "1000"), tons("1")))
	require.NoError(t, s.Add(product("p2", "500"), tons("0.5")))
	assert.Equal(t, int64(30), s.TotalBags())
	assert.True(t, s.TotalAmount().Equal(tons("25000")))

	var bags int64
	total := decimal.Zero
	for _, l := range s.Lines() {
		bags += l.Bags
		total = total.Add(l.Total)
	}
	assert.Equal(t, bags, s.TotalBags())
	assert.True(t, total.Equal(s.TotalAmount()))
}

func TestReopenRestoresLinesAndSession(t *testing.T) {
	storage := NewMemoryStorage()
	s, err := Open(storage)
	require.NoError(t, err)
	require.NoError(t, s.Add(product("p1", "1250.5"), tons("1.5")))
	require.NoError(t, s.Add(product("p2", "990"), tons("3")))

	again, err := Open(storage)
	require.NoError(t, err)
	assert.Equal(t, s.SessionID(), again.SessionID())

	want, got := s.Lines(), again.Lines()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Product.ID, got[i].Product.ID)
		assert.True(t, want[i].Quantity.Equal(got[i].Quantity))
		assert.Equal(t, want[i].Bags, got[i].Bags)
		assert.True(t, want[i].Total.Equal(got[i].Total))
		assert.True(t, want[i].Product.PricePerBag.Equal(got[i].Product.PricePerBag))
	}
}

func TestOpenDiscardsCorruptItems(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(itemsKey, "{not json"))
	require.NoError(t, storage.Set(sessionKey, "fixed-session"))

	s, err := Open(storage)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "fixed-session", s.SessionID())
}

func TestParseQuantity(t *testing.T) {
	assert.True(t, ParseQuantity(1.5).Equal(tons("1.5")))
	assert.True(t, ParseQuantity("2").Equal(tons("2")))
	assert.True(t, ParseQuantity(" 0.5 ").Equal(tons("0.5")))
	assert.True(t, ParseQuantity(nil).IsZero())
	assert.True(t, ParseQuantity("x").IsZero())
	assert.True(t, ParseQuantity([]int{1}).IsZero())
}
