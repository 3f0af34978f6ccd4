package orders

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"storefront/model"
)

// Step is one stage of the tracking timeline.
type Step struct {
	Status      model.OrderStatus `json:"status"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Reached     bool              `json:"reached"`
}

var Steps = []Step{
	{Status: model.OrderPending, Label: "Order Placed", Description: "Your order has been received"},
	{Status: model.OrderConfirmed, Label: "Confirmed", Description: "Order verified and confirmed"},
	{Status: model.OrderProcessing, Label: "Processing", Description: "Preparing your order"},
	{Status: model.OrderDelivered, Label: "Delivered", Description: "Order delivered successfully"},
}

// StatusIndex is the position of status on the timeline, or -1 for
// cancelled and unknown statuses.
func StatusIndex(status model.OrderStatus) int {
	for i, s := range Steps {
		if s.Status == status {
			return i
		}
	}
	return -1
}

// Progress is how far along the timeline status is, from 0 to 100.
func Progress(status model.OrderStatus) int {
	i := StatusIndex(status)
	if i < 0 {
		return 0
	}
	return i * 100 / (len(Steps) - 1)
}

// Timeline returns the steps with Reached set up to status.
func Timeline(status model.OrderStatus) []Step {
	current := StatusIndex(status)
	out := make([]Step, len(Steps))
	for i, s := range Steps {
		s.Reached = current >= 0 && i <= current
		out[i] = s
	}
	return out
}

// StatusLabel capitalises a payment or order status for display.
func StatusLabel(status string) string {
	// a Caser is stateful, so each call gets its own
	return cases.Title(language.English).String(status)
}
