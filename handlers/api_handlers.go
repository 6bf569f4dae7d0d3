package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hostel-manager-go/export"
	"hostel-manager-go/models"
	"hostel-manager-go/service"
	"hostel-manager-go/store"
)

// APIHandler holds the dependencies for API handlers
type APIHandler struct {
	Allocator *service.Allocator
	Stats     *service.StatsReporter
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(allocator *service.Allocator, stats *service.StatsReporter) *APIHandler {
	return &APIHandler{
		Allocator: allocator,
		Stats:     stats,
	}
}

// roomRequest is the body for creating or editing a room.
type roomRequest struct {
	RoomNo   string `json:"roomNo"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

// studentRequest is the body for creating or editing a student.
type studentRequest struct {
	Name   string `json:"name"`
	Course string `json:"course"`
	Gender string `json:"gender"`
}

// assignRequest is the body for linking a student to a room.
type assignRequest struct {
	StudentID string `json:"studentId"`
	RoomID    string `json:"roomId"`
}

// roomView is a room plus its derived occupancy status.
type roomView struct {
	models.Room
	Status string `json:"status"`
}

func viewRoom(r models.Room) roomView {
	return roomView{Room: r, Status: models.RoomStatus(r)}
}

// writeError maps business-rule errors to HTTP statuses. Expected rule
// violations surface their message for user display; anything unrecognized
// is a 500 with a generic body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateRoomNo),
		errors.Is(err, store.ErrRoomNotEmpty),
		errors.Is(err, store.ErrCapacityBelowOccupancy),
		errors.Is(err, service.ErrRoomFull),
		errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrNotAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("Unexpected error in handler")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// --- Room Handlers ---

// GetRooms handles GET /api/rooms. An optional ?status= query narrows the
// list: "available" keeps rooms with free beds, "partially" rooms that are
// part-filled, "full" rooms at capacity.
func (h *APIHandler) GetRooms(c *gin.Context) {
	rooms := h.Allocator.Rooms()

	filter := c.Query("status")
	views := make([]roomView, 0, len(rooms))
	for _, r := range rooms {
		switch filter {
		case "available":
			if len(r.Occupants) >= r.Capacity {
				continue
			}
		case "partially":
			if models.RoomStatus(r) != models.StatusPartiallyFilled {
				continue
			}
		case "full":
			if models.RoomStatus(r) != models.StatusFull {
				continue
			}
		}
		views = append(views, viewRoom(r))
	}

	c.JSON(http.StatusOK, views)
}

// CreateRoom handles POST /api/rooms
func (h *APIHandler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.Allocator.CreateRoom(req.RoomNo, req.Capacity, req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewRoom(room))
}

// UpdateRoom handles PUT /api/rooms/:roomId
func (h *APIHandler) UpdateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.Allocator.EditRoom(c.Param("roomId"), req.RoomNo, req.Capacity, req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewRoom(room))
}

// DeleteRoom handles DELETE /api/rooms/:roomId
func (h *APIHandler) DeleteRoom(c *gin.Context) {
	if err := h.Allocator.DeleteRoom(c.Param("roomId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// --- Student Handlers ---

// GetStudents handles GET /api/students
func (h *APIHandler) GetStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.Allocator.Students())
}

// CreateStudent handles POST /api/students
func (h *APIHandler) CreateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	student, err := h.Allocator.CreateStudent(req.Name, req.Course, req.Gender)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent handles PUT /api/students/:studentId
func (h *APIHandler) UpdateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	student, err := h.Allocator.EditStudent(c.Param("studentId"), req.Name, req.Course, req.Gender)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /api/students/:studentId
func (h *APIHandler) DeleteStudent(c *gin.Context) {
	if err := h.Allocator.DeleteStudent(c.Param("studentId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// --- Assignment Handlers ---

// AssignStudent handles POST /api/assignments
func (h *APIHandler) AssignStudent(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.Allocator.Assign(req.StudentID, req.RoomID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student assigned"})
}

// UnassignStudent handles DELETE /api/assignments/:studentId
func (h *APIHandler) UnassignStudent(c *gin.Context) {
	if err := h.Allocator.Unassign(c.Param("studentId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student unassigned"})
}

// --- Stats Handler ---

// GetStats handles GET /api/stats
func (h *APIHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.Report())
}

// --- Export Handlers ---

// ExportCSV handles GET /api/export/csv
func (h *APIHandler) ExportCSV(c *gin.Context) {
	data, err := export.CSV(h.Allocator.Rooms(), h.Allocator.Students())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFileName+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportXLSX handles GET /api/export/xlsx
func (h *APIHandler) ExportXLSX(c *gin.Context) {
	f, err := export.Workbook(h.Allocator.Rooms(), h.Allocator.Students())
	if err != nil {
		writeError(c, err)
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.XLSXFileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
