package selection

// CapReason is an advisory signal for the presentation layer. The clamp is
// applied either way.
type CapReason string

const (
	CapNone         CapReason = ""
	CapAvailability CapReason = "quantity capped: insufficient availability"
	CapMaxPerItem   CapReason = "quantity capped: maximum per item"
)

// Selection holds the in-progress quantities for rooms (by type label) and
// food items (by id). A quantity of zero is represented by key absence, so
// map size equals the number of distinct items in the cart.
type Selection struct {
	maxPerItem     int
	roomQuantities map[string]int
	foodQuantities map[int64]int
}

func New(maxPerItem int) *Selection {
	return &Selection{
		maxPerItem:     maxPerItem,
		roomQuantities: make(map[string]int),
		foodQuantities: make(map[int64]int),
	}
}

// SetRoomQuantity sets an absolute quantity for a room type, clamped to
// [0, min(maxPerItem, availableCount)].
func (s *Selection) SetRoomQuantity(roomType string, quantity, availableCount int) CapReason {
	clamped, reason := s.clamp(quantity, availableCount)
	if clamped == 0 {
		delete(s.roomQuantities, roomType)
	} else {
		s.roomQuantities[roomType] = clamped
	}
	return reason
}

// AdjustRoomQuantity applies a signed delta to the current room-type
// quantity through the same clamp policy.
func (s *Selection) AdjustRoomQuantity(roomType string, delta, availableCount int) CapReason {
	return s.SetRoomQuantity(roomType, s.roomQuantities[roomType]+delta, availableCount)
}

// SetFoodQuantity sets an absolute quantity for a food item. Food has no
// availability ceiling, only the fixed per-item cap.
func (s *Selection) SetFoodQuantity(foodID int64, quantity int) CapReason {
	clamped, reason := s.clamp(quantity, s.maxPerItem)
	if clamped == 0 {
		delete(s.foodQuantities, foodID)
	} else {
		s.foodQuantities[foodID] = clamped
	}
	return reason
}

func (s *Selection) AdjustFoodQuantity(foodID int64, delta int) CapReason {
	return s.SetFoodQuantity(foodID, s.foodQuantities[foodID]+delta)
}

// clamp forces quantity into [0, min(maxPerItem, ceiling)] and reports which
// bound cut it, availability first.
func (s *Selection) clamp(quantity, ceiling int) (int, CapReason) {
	limit := s.maxPerItem
	reason := CapMaxPerItem
	if ceiling < limit {
		limit = ceiling
		reason = CapAvailability
	}
	if quantity > limit {
		return limit, reason
	}
	if quantity < 0 {
		return 0, CapNone
	}
	return quantity, CapNone
}

func (s *Selection) RoomQuantity(roomType string) int { return s.roomQuantities[roomType] }
func (s *Selection) FoodQuantity(foodID int64) int    { return s.foodQuantities[foodID] }

// RoomCount is the sum of all selected room quantities.
func (s *Selection) RoomCount() int {
	total := 0
	for _, qty := range s.roomQuantities {
		total += qty
	}
	return total
}

func (s *Selection) RoomQuantities() map[string]int {
	out := make(map[string]int, len(s.roomQuantities))
	for k, v := range s.roomQuantities {
		out[k] = v
	}
	return out
}

func (s *Selection) FoodQuantities() map[int64]int {
	out := make(map[int64]int, len(s.foodQuantities))
	for k, v := range s.foodQuantities {
		out[k] = v
	}
	return out
}

// Reset discards all quantities. Used on confirmed submission only.
func (s *Selection) Reset() {
	s.roomQuantities = make(map[string]int)
	s.foodQuantities = make(map[int64]int)
}

// Restore replaces the current quantities wholesale, re-clamping nothing;
// callers rehydrating a snapshot are trusted to have stored clamped values.
func (s *Selection) Restore(rooms map[string]int, food map[int64]int) {
	s.roomQuantities = make(map[string]int, len(rooms))
	for k, v := range rooms {
		if v > 0 {
			s.roomQuantities[k] = v
		}
	}
	s.foodQuantities = make(map[int64]int, len(food))
	for k, v := range food {
		if v > 0 {
			s.foodQuantities[k] = v
		}
	}
}
