// Package export serializes the current rooms and students into downloadable
// report formats. Both formats share the same grid: a header row, one row per
// room, then one row per student.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hostel-manager-go/models"
)

// Suggested download names.
const (
	CSVFileName  = "studygpt_data.csv"
	XLSXFileName = "studygpt_data.xlsx"
)

var header = []string{"Type", "ID", "Name/No", "Details", "Status"}

// rows builds the shared report grid. Room rows carry occupancy in the last
// column; student rows carry the room number or "Unassigned".
func rows(rooms []models.Room, students []models.Student) [][]string {
	roomNoByID := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomNoByID[r.ID] = r.RoomNo
	}

	out := make([][]string, 0, 1+len(rooms)+len(students))
	out = append(out, header)

	for _, r := range rooms {
		out = append(out, []string{
			"Room",
			r.ID,
			r.RoomNo,
			r.Type,
			fmt.Sprintf("%d/%d Beds", len(r.Occupants), r.Capacity),
		})
	}
	for _, s := range students {
		status := "Unassigned"
		if roomNo, ok := roomNoByID[s.RoomID]; s.Assigned() && ok {
			status = "Room " + roomNo
		}
		out = append(out, []string{
			"Student",
			s.ID,
			s.Name,
			s.Course,
			status,
		})
	}
	return out
}

// CSV renders the report grid as CSV text.
func CSV(rooms []models.Room, students []models.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows(rooms, students)); err != nil {
		return nil, fmt.Errorf("failed to write CSV export: %w", err)
	}
	return buf.Bytes(), nil
}

// Workbook renders the report grid as a single-sheet XLSX workbook.
func Workbook(rooms []models.Room, students []models.Student) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows(rooms, students) {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell reference for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return f, nil
}
