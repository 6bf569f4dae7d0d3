package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-manager-go/models"
	"hostel-manager-go/store"
)

func room(id, roomNo string, capacity int, occupants ...string) models.Room {
	return models.Room{
		ID:        id,
		RoomNo:    roomNo,
		Capacity:  capacity,
		Type:      models.RoomTypeDouble,
		Occupants: occupants,
	}
}

func TestRoomStore_AddAndGet(t *testing.T) {
	s := store.NewRoomStore()

	require.NoError(t, s.Add(room("r1", "101", 2)))

	got, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, "101", got.RoomNo)
	assert.Equal(t, 2, got.Capacity)
	assert.Empty(t, got.Occupants)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoomStore_AddRejectsDuplicateRoomNo(t *testing.T) {
	s := store.NewRoomStore()

	require.NoError(t, s.Add(room("r1", "101", 2)))
	err := s.Add(room("r2", "101", 3))
	assert.ErrorIs(t, err, store.ErrDuplicateRoomNo)

	// The rejected room must not have been inserted.
	assert.Len(t, s.List(), 1)
}

func TestRoomStore_ListNewestFirst(t *testing.T) {
	s := store.NewRoomStore()

	require.NoError(t, s.Add(room("r1", "101", 2)))
	require.NoError(t, s.Add(room("r2", "102", 2)))
	require.NoError(t, s.Add(room("r3", "103", 2)))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"r3", "r2", "r1"}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestRoomStore_UpdateValidations(t *testing.T) {
	s := store.NewRoomStore()
	require.NoError(t, s.Add(room("r1", "101", 2)))
	require.NoError(t, s.Add(room("r2", "102", 3, "s1", "s2")))

	// Renaming onto another room's number is rejected.
	err := s.Update("r1", "102", 2, models.RoomTypeDouble)
	assert.ErrorIs(t, err, store.ErrDuplicateRoomNo)

	// Keeping your own number is fine.
	require.NoError(t, s.Update("r1", "101", 4, models.RoomTypeTriple))
	got, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Capacity)
	assert.Equal(t, models.RoomTypeTriple, got.Type)

	// Shrinking below the current occupant count is rejected.
	err = s.Update("r2", "102", 1, models.RoomTypeDouble)
	assert.ErrorIs(t, err, store.ErrCapacityBelowOccupancy)

	err = s.Update("missing", "200", 2, models.RoomTypeSingle)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoomStore_RemoveGuardsOccupiedRooms(t *testing.T) {
	s := store.NewRoomStore()
	require.NoError(t, s.Add(room("r1", "101", 2, "s1")))

	err := s.Remove("r1")
	assert.ErrorIs(t, err, store.ErrRoomNotEmpty)

	require.NoError(t, s.SetOccupants("r1", nil))
	require.NoError(t, s.Remove("r1"))

	_, err = s.Get("r1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.Remove("r1"), store.ErrNotFound)
}

func TestRoomStore_ReturnsCopies(t *testing.T) {
	s := store.NewRoomStore()
	require.NoError(t, s.Add(room("r1", "101", 2, "s1")))

	got, err := s.Get("r1")
	require.NoError(t, err)
	got.Occupants[0] = "tampered"
	got.RoomNo = "999"

	fresh, err := s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, "101", fresh.RoomNo)
	assert.Equal(t, []string{"s1"}, fresh.Occupants)

	list := s.List()
	list[0].Occupants[0] = "tampered"
	fresh, err = s.Get("r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, fresh.Occupants)
}

func TestRoomStore_Replace(t *testing.T) {
	s := store.NewRoomStore()
	require.NoError(t, s.Add(room("old", "1", 1)))

	s.Replace([]models.Room{
		room("r1", "101", 2),
		room("r2", "102", 3),
	})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "r1", list[0].ID)

	_, err := s.Get("old")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get("r2")
	assert.NoError(t, err)
}
