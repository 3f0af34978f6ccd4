package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryLine is one ordered product as shown on the confirmation.
type SummaryLine struct {
	Brand    string
	SubType  string
	Quantity decimal.Decimal
	Bags     int64
	Total    decimal.Decimal
}

// FormatAmount renders a rupee amount with thousands grouping, e.g.
// "Rs. 20,000". It works on the decimal digits directly, so totals of any
// size keep every digit.
func FormatAmount(amount decimal.Decimal) string {
	digits := amount.Round(2).String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	whole, frac := digits, ""
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		whole, frac = digits[:i], digits[i:]
	}
	return "Rs. " + sign + groupThousands(whole) + frac
}

func groupThousands(whole string) string {
	if len(whole) <= 3 {
		return whole
	}
	var sb strings.Builder
	head := len(whole) % 3
	if head > 0 {
		sb.WriteString(whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(whole[i : i+3])
	}
	return sb.String()
}

// OrderSummary is the plain-text recap attached to a successful checkout.
func OrderSummary(lines []SummaryLine, phone string) string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder
	var bags int64
	total := decimal.Zero

	fmt.Fprintf(&sb, "Order reference: %s\n", phone)
	for _, l := range lines {
		name := l.Brand
		if l.SubType != "" {
			name += " " + l.SubType
		}
		fmt.Fprintf(&sb, "- %s: %s tons (%s bags) %s\n",
			name, l.Quantity.String(), p.Sprintf("%d", l.Bags), FormatAmount(l.Total))
		bags += l.Bags
		total = total.Add(l.Total)
	}
	fmt.Fprintf(&sb, "Total: %s bags, %s", p.Sprintf("%d", bags), FormatAmount(total))
	return sb.String()
}
