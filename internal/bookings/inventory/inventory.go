// Package inventory exposes a read-only, id-ordered view of one hotel's rooms.
package inventory

import (
	"iter"
	"slices"

	"hotelbooking/pkg/model"
)

type Inventory struct {
	rooms []model.Room
}

// New copies rooms and sorts them by ascending id. The caller's slice is not modified.
func New(rooms []model.Room) *Inventory {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b model.Room) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return &Inventory{rooms: sorted}
}

// RoomsWithCapacityAtLeast lazily yields rooms holding at least people guests, in id order.
func (inv *Inventory) RoomsWithCapacityAtLeast(people int) iter.Seq[model.Room] {
	return func(yield func(model.Room) bool) {
		for _, room := range inv.rooms {
			if room.Capacity < people {
				continue
			}
			if !yield(room) {
				return
			}
		}
	}
}

// FirstWithCapacityAtLeast returns the lowest-id room that fits people.
func (inv *Inventory) FirstWithCapacityAtLeast(people int) (model.Room, bool) {
	for room := range inv.RoomsWithCapacityAtLeast(people) {
		return room, true
	}
	return model.Room{}, false
}

// Room looks a room up by id.
func (inv *Inventory) Room(id int64) (model.Room, bool) {
	i, found := slices.BinarySearchFunc(inv.rooms, id, func(r model.Room, id int64) int {
		switch {
		case r.ID < id:
			return -1
		case r.ID > id:
			return 1
		}
		return 0
	})
	if !found {
		return model.Room{}, false
	}
	return inv.rooms[i], true
}
