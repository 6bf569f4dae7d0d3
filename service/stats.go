package service

import (
	"math"

	"hostel-manager-go/store"
)

// Overall occupancy tier labels, derived from the occupancy rate.
const (
	TierEmpty       = "Empty"
	TierGood        = "Good Capacity"
	TierNearingFull = "Nearing Full"
	TierHouseFull   = "House Full"
)

// Stats is the aggregate occupancy report derived from the current store
// contents. AvailableBeds is the raw signed difference; a negative value
// signals inconsistent data and is left to the caller to present.
type Stats struct {
	TotalRooms    int    `json:"totalRooms"`
	TotalStudents int    `json:"totalStudents"`
	TotalBeds     int    `json:"totalBeds"`
	OccupiedBeds  int    `json:"occupiedBeds"`
	AvailableBeds int    `json:"availableBeds"`
	OccupancyRate int    `json:"occupancyRate"` // whole percent, round half up
	Status        string `json:"status"`        // one of the Tier constants
}

// StatsReporter derives aggregate figures from the two stores. All methods
// are read-only; nothing is cached.
type StatsReporter struct {
	rooms    *store.RoomStore
	students *store.StudentStore
}

// NewStatsReporter creates a StatsReporter over the two stores.
func NewStatsReporter(rooms *store.RoomStore, students *store.StudentStore) *StatsReporter {
	if rooms == nil || students == nil {
		panic("stores cannot be nil for StatsReporter")
	}
	return &StatsReporter{
		rooms:    rooms,
		students: students,
	}
}

// Report computes the occupancy statistics from current store contents.
func (r *StatsReporter) Report() Stats {
	rooms := r.rooms.List()
	students := r.students.List()

	totalBeds := 0
	for _, room := range rooms {
		totalBeds += room.Capacity
	}

	occupied := 0
	for _, student := range students {
		if student.Assigned() {
			occupied++
		}
	}

	rate := 0
	if totalBeds > 0 {
		rate = int(math.Round(float64(occupied) / float64(totalBeds) * 100))
	}

	return Stats{
		TotalRooms:    len(rooms),
		TotalStudents: len(students),
		TotalBeds:     totalBeds,
		OccupiedBeds:  occupied,
		AvailableBeds: totalBeds - occupied,
		OccupancyRate: rate,
		Status:        OccupancyTier(rate),
	}
}

// OccupancyTier maps a whole-percent occupancy rate to its tier label.
func OccupancyTier(rate int) string {
	switch {
	case rate == 0:
		return TierEmpty
	case rate < 70:
		return TierGood
	case rate < 100:
		return TierNearingFull
	default:
		return TierHouseFull
	}
}
