package models

// Room types offered by the hostel.
const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeTriple = "Triple"
)

// Gender values accepted on student records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Capacity bounds for a room.
const (
	MinCapacity = 1
	MaxCapacity = 10
)

// Room represents a fixed-capacity room
type Room struct {
	ID        string   `json:"id"`        // Unique room ID
	RoomNo    string   `json:"roomNo"`    // Room number, unique across all rooms
	Capacity  int      `json:"capacity"`  // Number of beds, 1-10
	Type      string   `json:"type"`      // One of the RoomType constants
	Occupants []string `json:"occupants"` // IDs of students currently assigned, len <= Capacity
}

// Student represents a student
type Student struct {
	ID     string `json:"id"`               // Unique student ID
	Name   string `json:"name"`             // Student name
	Course string `json:"course"`           // Course of study
	Gender string `json:"gender"`           // One of the Gender constants
	RoomID string `json:"roomId,omitempty"` // ID of the assigned room; empty when unassigned
}

// Assigned reports whether the student currently occupies a room.
func (s Student) Assigned() bool {
	return s.RoomID != ""
}

// Room occupancy status labels, derived from occupant count and never stored.
const (
	StatusAvailable       = "Available"
	StatusPartiallyFilled = "Partially Filled"
	StatusFull            = "Full"
)

// RoomStatus derives the occupancy status of a room from its current occupants.
func RoomStatus(r Room) string {
	switch {
	case len(r.Occupants) == 0:
		return StatusAvailable
	case len(r.Occupants) < r.Capacity:
		return StatusPartiallyFilled
	default:
		return StatusFull
	}
}

// ValidRoomType reports whether t is one of the RoomType constants.
func ValidRoomType(t string) bool {
	return t == RoomTypeSingle || t == RoomTypeDouble || t == RoomTypeTriple
}

// ValidGender reports whether g is one of the Gender constants.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
