package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-manager-go/models"
	"hostel-manager-go/service"
	"hostel-manager-go/store"
)

func TestStatsReporter_EmptyState(t *testing.T) {
	reporter := service.NewStatsReporter(store.NewRoomStore(), store.NewStudentStore())

	stats := reporter.Report()
	assert.Zero(t, stats.TotalRooms)
	assert.Zero(t, stats.TotalBeds)
	assert.Zero(t, stats.OccupancyRate, "no beds means rate 0, not a division error")
	assert.Equal(t, service.TierEmpty, stats.Status)
}

func TestStatsReporter_Scenario(t *testing.T) {
	// Two rooms of capacity 2 and 3, three students assigned.
	rooms := store.NewRoomStore()
	students := store.NewStudentStore()
	a := service.NewAllocator(rooms, students, &stubPersister{})
	reporter := service.NewStatsReporter(rooms, students)

	r1, err := a.CreateRoom("101", 2, models.RoomTypeDouble)
	require.NoError(t, err)
	r2, err := a.CreateRoom("102", 3, models.RoomTypeTriple)
	require.NoError(t, err)

	ids := make([]string, 0, 4)
	for _, name := range []string{"Amina", "Brian", "Chao", "Dina"} {
		s, err := a.CreateStudent(name, "BSc", models.GenderFemale)
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	require.NoError(t, a.Assign(ids[0], r1.ID))
	require.NoError(t, a.Assign(ids[1], r2.ID))
	require.NoError(t, a.Assign(ids[2], r2.ID))

	stats := reporter.Report()
	assert.Equal(t, 2, stats.TotalRooms)
	assert.Equal(t, 4, stats.TotalStudents)
	assert.Equal(t, 5, stats.TotalBeds)
	assert.Equal(t, 3, stats.OccupiedBeds)
	assert.Equal(t, 2, stats.AvailableBeds)
	assert.Equal(t, 60, stats.OccupancyRate)
	assert.Equal(t, service.TierGood, stats.Status)
}

func TestStatsReporter_RoundsHalfUp(t *testing.T) {
	rooms := store.NewRoomStore()
	students := store.NewStudentStore()
	a := service.NewAllocator(rooms, students, &stubPersister{})
	reporter := service.NewStatsReporter(rooms, students)

	// One bed occupied of eight: 12.5% rounds up to 13.
	r1, err := a.CreateRoom("101", 8, models.RoomTypeTriple)
	require.NoError(t, err)
	s1, err := a.CreateStudent("Amina", "BSc", models.GenderFemale)
	require.NoError(t, err)
	require.NoError(t, a.Assign(s1.ID, r1.ID))

	assert.Equal(t, 13, reporter.Report().OccupancyRate)
}

func TestOccupancyTier_Boundaries(t *testing.T) {
	cases := []struct {
		rate int
		want string
	}{
		{0, service.TierEmpty},
		{1, service.TierGood},
		{69, service.TierGood},
		{70, service.TierNearingFull},
		{99, service.TierNearingFull},
		{100, service.TierHouseFull},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, service.OccupancyTier(tc.rate), "rate %d", tc.rate)
	}
}
