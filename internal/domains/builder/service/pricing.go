package service

import (
	"github.com/shopspring/decimal"

	"pcstore-backend/internal/domains/builder/model"
)

// TotalPrice sums the effective price of every bound slot. Sale prices win
// over list prices; an empty selection totals zero. Exact decimal arithmetic
// throughout, no floats.
func TotalPrice(sel *model.Selection) decimal.Decimal {
	total := decimal.Zero
	if sel == nil {
		return total
	}
	for i := range sel.Slots {
		if sel.Slots[i].Product != nil {
			total = total.Add(sel.Slots[i].Product.EffectivePrice())
		}
	}
	return total
}
