package domain

import "sort"

type Room struct {
	ID            int64
	RoomNumber    int
	RoomType      string
	PricePerNight int64
	Available     bool
}

// RoomTypeGroup is derived from the flat room list and never persisted.
// AvailableRoomIDs keeps the input order of the room list, which makes
// allocation deterministic.
type RoomTypeGroup struct {
	Type             string
	PricePerNight    int64
	AvailableCount   int
	TotalCount       int
	AvailableRoomIDs []int64
}

// GroupRoomsByType folds a flat room list into per-type groups. The nightly
// price of a group is the price of the first room seen for that type; rooms
// of one type are assumed to share a price.
func GroupRoomsByType(rooms []Room) map[string]RoomTypeGroup {
	groups := make(map[string]RoomTypeGroup, len(rooms))
	for _, room := range rooms {
		g, ok := groups[room.RoomType]
		if !ok {
			g = RoomTypeGroup{Type: room.RoomType, PricePerNight: room.PricePerNight}
		}
		g.TotalCount++
		if room.Available {
			g.AvailableCount++
			g.AvailableRoomIDs = append(g.AvailableRoomIDs, room.ID)
		}
		groups[room.RoomType] = g
	}
	return groups
}

// AllocateRooms maps selected per-type quantities to concrete room IDs by
// taking the first N available IDs of each group. Types are walked in sorted
// order so repeated calls over the same selection allocate identically.
// Quantities are expected to be clamped to availability upstream; a quantity
// larger than the pool takes the whole pool.
func AllocateRooms(quantities map[string]int, groups map[string]RoomTypeGroup) []int64 {
	types := make([]string, 0, len(quantities))
	for roomType := range quantities {
		types = append(types, roomType)
	}
	sort.Strings(types)

	var roomIDs []int64
	for _, roomType := range types {
		group, ok := groups[roomType]
		if !ok {
			continue
		}
		n := quantities[roomType]
		if n > len(group.AvailableRoomIDs) {
			n = len(group.AvailableRoomIDs)
		}
		roomIDs = append(roomIDs, group.AvailableRoomIDs[:n]...)
	}
	return roomIDs
}
