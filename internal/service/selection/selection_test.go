package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ClampToAvailability(t *testing.T) {
	sel := New(10)

	reason := sel.SetRoomQuantity("DELUXE", 7, 3)
	assert.Equal(t, CapAvailability, reason)
	assert.Equal(t, 3, sel.RoomQuantity("DELUXE"))

	// repeating the same set is a no-op
	reason = sel.SetRoomQuantity("DELUXE", 7, 3)
	assert.Equal(t, CapAvailability, reason)
	assert.Equal(t, 3, sel.RoomQuantity("DELUXE"))
}

func TestSelection_ClampToMaxPerItem(t *testing.T) {
	sel := New(10)

	reason := sel.SetRoomQuantity("DELUXE", 15, 20)
	assert.Equal(t, CapMaxPerItem, reason)
	assert.Equal(t, 10, sel.RoomQuantity("DELUXE"))

	reason = sel.SetFoodQuantity(1, 11)
	assert.Equal(t, CapMaxPerItem, reason)
	assert.Equal(t, 10, sel.FoodQuantity(1))
}

func TestSelection_AvailabilityWinsWhenTighter(t *testing.T) {
	sel := New(10)

	reason := sel.SetRoomQuantity("DELUXE", 50, 4)
	assert.Equal(t, CapAvailability, reason)
	assert.Equal(t, 4, sel.RoomQuantity("DELUXE"))
}

func TestSelection_NoSignalWithinBounds(t *testing.T) {
	sel := New(10)

	assert.Equal(t, CapNone, sel.SetRoomQuantity("DELUXE", 2, 5))
	assert.Equal(t, CapNone, sel.SetFoodQuantity(1, 3))
}

func TestSelection_ZeroCollapse(t *testing.T) {
	sel := New(10)

	sel.SetRoomQuantity("DELUXE", 2, 5)
	sel.SetFoodQuantity(1, 2)
	sel.SetRoomQuantity("DELUXE", 0, 5)
	sel.SetFoodQuantity(1, 0)

	assert.Empty(t, sel.RoomQuantities())
	assert.Empty(t, sel.FoodQuantities())
	assert.Equal(t, 0, sel.RoomCount())
}

func TestSelection_NegativeClampsToZero(t *testing.T) {
	sel := New(10)

	sel.SetRoomQuantity("DELUXE", 3, 5)
	reason := sel.AdjustRoomQuantity("DELUXE", -7, 5)
	assert.Equal(t, CapNone, reason)
	assert.Empty(t, sel.RoomQuantities())

	reason = sel.SetFoodQuantity(1, -2)
	assert.Equal(t, CapNone, reason)
	assert.Empty(t, sel.FoodQuantities())
}

func TestSelection_AdjustDeltas(t *testing.T) {
	sel := New(10)

	sel.AdjustRoomQuantity("DELUXE", 1, 3)
	sel.AdjustRoomQuantity("DELUXE", 1, 3)
	assert.Equal(t, 2, sel.RoomQuantity("DELUXE"))

	reason := sel.AdjustRoomQuantity("DELUXE", 5, 3)
	assert.Equal(t, CapAvailability, reason)
	assert.Equal(t, 3, sel.RoomQuantity("DELUXE"))

	sel.AdjustFoodQuantity(7, 2)
	sel.AdjustFoodQuantity(7, -1)
	assert.Equal(t, 1, sel.FoodQuantity(7))
}

func TestSelection_RoomCount(t *testing.T) {
	sel := New(10)
	sel.SetRoomQuantity("DELUXE", 2, 5)
	sel.SetRoomQuantity("SUITE", 1, 2)
	assert.Equal(t, 3, sel.RoomCount())
}

func TestSelection_Reset(t *testing.T) {
	sel := New(10)
	sel.SetRoomQuantity("DELUXE", 2, 5)
	sel.SetFoodQuantity(1, 2)

	sel.Reset()
	assert.Equal(t, 0, sel.RoomCount())
	assert.Empty(t, sel.FoodQuantities())
}

func TestSelection_RestoreDropsZeroEntries(t *testing.T) {
	sel := New(10)
	sel.Restore(map[string]int{"DELUXE": 2, "SUITE": 0}, map[int64]int{1: 1, 2: 0})

	assert.Equal(t, map[string]int{"DELUXE": 2}, sel.RoomQuantities())
	assert.Equal(t, map[int64]int{1: 1}, sel.FoodQuantities())
}
