package store

import (
	"sync"

	"hostel-manager-go/models"
)

// RoomStore holds the authoritative room collection. Rooms are kept in
// newest-first order; lookups go through an id index. All collection state is
// owned here and mutated only through the methods below.
type RoomStore struct {
	mu    sync.RWMutex
	rooms []models.Room
	index map[string]int // id -> position in rooms
}

// NewRoomStore creates an empty RoomStore.
func NewRoomStore() *RoomStore {
	return &RoomStore{
		index: make(map[string]int),
	}
}

// cloneRoom copies a room with its own occupant slice. The copy always
// carries a non-nil slice so an empty occupant list serializes as [].
func cloneRoom(r models.Room) models.Room {
	c := r
	c.Occupants = make([]string, len(r.Occupants))
	copy(c.Occupants, r.Occupants)
	return c
}

// roomNoTaken reports whether roomNo belongs to a room other than excludeID.
// Caller must hold the lock.
func (s *RoomStore) roomNoTaken(roomNo, excludeID string) bool {
	for _, r := range s.rooms {
		if r.RoomNo == roomNo && r.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *RoomStore) reindex() {
	s.index = make(map[string]int, len(s.rooms))
	for i, r := range s.rooms {
		s.index[r.ID] = i
	}
}

// Add inserts a new room at the front of the collection. It fails with
// ErrDuplicateRoomNo if the room number is already in use.
func (s *RoomStore) Add(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roomNoTaken(room.RoomNo, room.ID) {
		return ErrDuplicateRoomNo
	}

	s.rooms = append([]models.Room{cloneRoom(room)}, s.rooms...)
	s.reindex()
	return nil
}

// Get retrieves a copy of the room with the given id.
func (s *RoomStore) Get(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	return cloneRoom(s.rooms[i]), nil
}

// Update edits the room number, capacity and type of an existing room. The
// occupant list is untouched. It fails with ErrDuplicateRoomNo if the new
// number collides with a different room, and with ErrCapacityBelowOccupancy
// if the new capacity is smaller than the current occupant count.
func (s *RoomStore) Update(id, roomNo string, capacity int, roomType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	if s.roomNoTaken(roomNo, id) {
		return ErrDuplicateRoomNo
	}
	if capacity < len(s.rooms[i].Occupants) {
		return ErrCapacityBelowOccupancy
	}

	s.rooms[i].RoomNo = roomNo
	s.rooms[i].Capacity = capacity
	s.rooms[i].Type = roomType
	return nil
}

// Remove deletes an empty room. It fails with ErrRoomNotEmpty while occupants
// remain; callers must unassign them first.
func (s *RoomStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	if len(s.rooms[i].Occupants) > 0 {
		return ErrRoomNotEmpty
	}

	s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
	s.reindex()
	return nil
}

// List returns a copy of all rooms, newest first.
func (s *RoomStore) List() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, cloneRoom(r))
	}
	return out
}

// SetOccupants overwrites the occupant list of a room. Only the allocation
// service may call this; it is the write half of the room side of the
// room-student link.
func (s *RoomStore) SetOccupants(id string, occupants []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.rooms[i].Occupants = append([]string(nil), occupants...)
	return nil
}

// Replace swaps the whole collection, preserving the given order. Used when
// loading a snapshot at startup.
func (s *RoomStore) Replace(rooms []models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms = make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		s.rooms = append(s.rooms, cloneRoom(r))
	}
	s.reindex()
}
