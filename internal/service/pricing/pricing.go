package pricing

import (
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/selection"
)

type Quote struct {
	Nights       int   `json:"nights"`
	RoomSubtotal int64 `json:"roomSubtotal"`
	FoodSubtotal int64 `json:"foodSubtotal"`
	Total        int64 `json:"total"`
}

// CalculateQuote prices the current selection. Room charges multiply by
// nights, floored to 1 so an incomplete date range still previews a non-zero
// room price during selection. Food charges are flat per unit. Room types or
// food items missing from the catalog contribute nothing.
func CalculateQuote(groups map[string]domain.RoomTypeGroup, food []domain.FoodItem, sel *selection.Selection, stay domain.StayRange) Quote {
	nights := stay.Nights()
	effectiveNights := nights
	if effectiveNights == 0 {
		effectiveNights = 1
	}

	var roomSubtotal int64
	for roomType, qty := range sel.RoomQuantities() {
		group, ok := groups[roomType]
		if !ok {
			continue
		}
		roomSubtotal += group.PricePerNight * int64(qty) * int64(effectiveNights)
	}

	priceByID := make(map[int64]int64, len(food))
	for _, item := range food {
		priceByID[item.ID] = item.Price
	}

	var foodSubtotal int64
	for foodID, qty := range sel.FoodQuantities() {
		foodSubtotal += priceByID[foodID] * int64(qty)
	}

	return Quote{
		Nights:       nights,
		RoomSubtotal: roomSubtotal,
		FoodSubtotal: foodSubtotal,
		Total:        roomSubtotal + foodSubtotal,
	}
}
