package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-manager-go/export"
	"hostel-manager-go/models"
)

func fixtures() ([]models.Room, []models.Student) {
	rooms := []models.Room{
		{ID: "r1", RoomNo: "101", Capacity: 2, Type: models.RoomTypeDouble, Occupants: []string{"s1"}},
		{ID: "r2", RoomNo: "102", Capacity: 1, Type: models.RoomTypeSingle, Occupants: []string{}},
	}
	students := []models.Student{
		{ID: "s1", Name: "Amina", Course: "BSc CS", Gender: models.GenderFemale, RoomID: "r1"},
		{ID: "s2", Name: "Brian", Course: "BEng", Gender: models.GenderMale},
	}
	return rooms, students
}

func TestCSV(t *testing.T) {
	rooms, students := fixtures()

	data, err := export.CSV(rooms, students)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "Type,ID,Name/No,Details,Status", lines[0])
	assert.Equal(t, "Room,r1,101,Double,1/2 Beds", lines[1])
	assert.Equal(t, "Room,r2,102,Single,0/1 Beds", lines[2])
	assert.Equal(t, "Student,s1,Amina,BSc CS,Room 101", lines[3])
	assert.Equal(t, "Student,s2,Brian,BEng,Unassigned", lines[4])
}

func TestCSV_Empty(t *testing.T) {
	data, err := export.CSV(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Type,ID,Name/No,Details,Status", strings.TrimSpace(string(data)))
}

func TestWorkbook(t *testing.T) {
	rooms, students := fixtures()

	f, err := export.Workbook(rooms, students)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Type", got)

	got, err = f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "1/2 Beds", got)

	got, err = f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "Amina", got)

	got, err = f.GetCellValue(sheet, "E5")
	require.NoError(t, err)
	assert.Equal(t, "Unassigned", got)
}
