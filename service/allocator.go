package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hostel-manager-go/models"
	"hostel-manager-go/store"
)

// Persister writes the full state back to durable storage after a successful
// mutation. A persistence failure never rolls the in-memory state back; it is
// logged and the next successful mutation retries the full write.
type Persister interface {
	SaveSnapshot(rooms []models.Room, students []models.Student) error
}

// Allocator owns the room-student link. It is the only component allowed to
// create or break the link, so the bijection between "room lists student" and
// "student points to room" is enforced in one place. Every mutating method
// validates everything first and applies everything after, so a rejected
// operation leaves both stores exactly as they were.
type Allocator struct {
	rooms     *store.RoomStore
	students  *store.StudentStore
	persister Persister
}

// NewAllocator creates an Allocator over the two stores.
func NewAllocator(rooms *store.RoomStore, students *store.StudentStore, persister Persister) *Allocator {
	if rooms == nil || students == nil {
		panic("stores cannot be nil for Allocator")
	}
	if persister == nil {
		panic("Persister cannot be nil for Allocator")
	}
	return &Allocator{
		rooms:     rooms,
		students:  students,
		persister: persister,
	}
}

// persist writes the current snapshot. State is already consistent when this
// runs, so a write failure is logged rather than surfaced to the caller.
func (a *Allocator) persist() {
	if err := a.persister.SaveSnapshot(a.rooms.List(), a.students.List()); err != nil {
		logrus.WithError(err).Error("Failed to persist snapshot")
	}
}

// --- Room Operations ---

// CreateRoom validates and adds a new room. The room starts with no occupants.
func (a *Allocator) CreateRoom(roomNo string, capacity int, roomType string) (models.Room, error) {
	roomNo = strings.TrimSpace(roomNo)
	if roomNo == "" {
		return models.Room{}, fmt.Errorf("%w: room number cannot be empty", ErrValidation)
	}
	if capacity < models.MinCapacity || capacity > models.MaxCapacity {
		return models.Room{}, fmt.Errorf("%w: capacity must be between %d and %d", ErrValidation, models.MinCapacity, models.MaxCapacity)
	}
	if !models.ValidRoomType(roomType) {
		return models.Room{}, fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}

	room := models.Room{
		ID:        uuid.NewString(),
		RoomNo:    roomNo,
		Capacity:  capacity,
		Type:      roomType,
		Occupants: []string{},
	}
	if err := a.rooms.Add(room); err != nil {
		return models.Room{}, err
	}

	logrus.WithFields(logrus.Fields{"room_id": room.ID, "room_no": room.RoomNo}).Info("Room created")
	a.persist()
	return room, nil
}

// EditRoom updates number, capacity and type of an existing room. The
// occupant list is not touched; shrinking capacity below the current
// occupant count is rejected.
func (a *Allocator) EditRoom(roomID, roomNo string, capacity int, roomType string) (models.Room, error) {
	roomNo = strings.TrimSpace(roomNo)
	if roomNo == "" {
		return models.Room{}, fmt.Errorf("%w: room number cannot be empty", ErrValidation)
	}
	if capacity < models.MinCapacity || capacity > models.MaxCapacity {
		return models.Room{}, fmt.Errorf("%w: capacity must be between %d and %d", ErrValidation, models.MinCapacity, models.MaxCapacity)
	}
	if !models.ValidRoomType(roomType) {
		return models.Room{}, fmt.Errorf("%w: unknown room type %q", ErrValidation, roomType)
	}

	if err := a.rooms.Update(roomID, roomNo, capacity, roomType); err != nil {
		return models.Room{}, err
	}

	room, err := a.rooms.Get(roomID)
	if err != nil {
		return models.Room{}, err
	}
	a.persist()
	return room, nil
}

// DeleteRoom removes an empty room. Deleting a room with occupants is
// rejected; this entry point never cascades.
func (a *Allocator) DeleteRoom(roomID string) error {
	if err := a.rooms.Remove(roomID); err != nil {
		return err
	}
	logrus.WithField("room_id", roomID).Info("Room deleted")
	a.persist()
	return nil
}

// --- Student Operations ---

// CreateStudent validates and adds a new student, initially unassigned.
func (a *Allocator) CreateStudent(name, course, gender string) (models.Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, fmt.Errorf("%w: student name cannot be empty", ErrValidation)
	}
	if !models.ValidGender(gender) {
		return models.Student{}, fmt.Errorf("%w: unknown gender %q", ErrValidation, gender)
	}

	student := models.Student{
		ID:     uuid.NewString(),
		Name:   name,
		Course: strings.TrimSpace(course),
		Gender: gender,
	}
	if err := a.students.Add(student); err != nil {
		return models.Student{}, err
	}

	logrus.WithFields(logrus.Fields{"student_id": student.ID, "name": student.Name}).Info("Student created")
	a.persist()
	return student, nil
}

// EditStudent updates the profile fields of a student. The room link is
// never touched by an edit.
func (a *Allocator) EditStudent(studentID, name, course, gender string) (models.Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, fmt.Errorf("%w: student name cannot be empty", ErrValidation)
	}
	if !models.ValidGender(gender) {
		return models.Student{}, fmt.Errorf("%w: unknown gender %q", ErrValidation, gender)
	}

	if err := a.students.Update(studentID, name, strings.TrimSpace(course), gender); err != nil {
		return models.Student{}, err
	}

	student, err := a.students.Get(studentID)
	if err != nil {
		return models.Student{}, err
	}
	a.persist()
	return student, nil
}

// DeleteStudent removes a student. An assigned student is first unlinked from
// its room as part of the same operation, so no room is ever left holding a
// dangling occupant id. The unlink here is silent; confirmation happens at
// the delete-request layer.
func (a *Allocator) DeleteStudent(studentID string) error {
	student, err := a.students.Get(studentID)
	if err != nil {
		return err
	}

	if student.Assigned() {
		if err := a.severLink(student); err != nil {
			return err
		}
	}
	if err := a.students.Remove(studentID); err != nil {
		return err
	}

	logrus.WithField("student_id", studentID).Info("Student deleted")
	a.persist()
	return nil
}

// --- Assignment Operations ---

// Assign links a student to a room. Re-assigning a student to the room it
// already occupies is a no-op success; any other assignment while linked is
// rejected, as is assignment to a full room.
func (a *Allocator) Assign(studentID, roomID string) error {
	student, err := a.students.Get(studentID)
	if err != nil {
		return err
	}
	room, err := a.rooms.Get(roomID)
	if err != nil {
		return err
	}

	if student.RoomID == roomID {
		return nil
	}
	if student.Assigned() {
		return ErrAlreadyAssigned
	}
	if len(room.Occupants) >= room.Capacity {
		return ErrRoomFull
	}

	// Validation passed; apply both sides of the link.
	if err := a.rooms.SetOccupants(roomID, append(room.Occupants, studentID)); err != nil {
		return err
	}
	if err := a.students.SetRoom(studentID, roomID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"student_id": studentID, "room_id": roomID}).Info("Student assigned")
	a.persist()
	return nil
}

// Unassign breaks the link between a student and its room.
func (a *Allocator) Unassign(studentID string) error {
	student, err := a.students.Get(studentID)
	if err != nil {
		return err
	}
	if !student.Assigned() {
		return ErrNotAssigned
	}

	if err := a.severLink(student); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"student_id": studentID, "room_id": student.RoomID}).Info("Student unassigned")
	a.persist()
	return nil
}

// severLink removes both sides of an existing link without persisting.
// Callers persist once their whole operation has applied.
func (a *Allocator) severLink(student models.Student) error {
	room, err := a.rooms.Get(student.RoomID)
	if err == nil {
		occupants := make([]string, 0, len(room.Occupants))
		for _, id := range room.Occupants {
			if id != student.ID {
				occupants = append(occupants, id)
			}
		}
		if err := a.rooms.SetOccupants(room.ID, occupants); err != nil {
			return err
		}
	}
	return a.students.SetRoom(student.ID, "")
}

// --- Query Surface ---

// Rooms returns all rooms, newest first.
func (a *Allocator) Rooms() []models.Room {
	return a.rooms.List()
}

// Students returns all students, newest first.
func (a *Allocator) Students() []models.Student {
	return a.students.List()
}

// Room retrieves a single room by id.
func (a *Allocator) Room(roomID string) (models.Room, error) {
	return a.rooms.Get(roomID)
}

// Student retrieves a single student by id.
func (a *Allocator) Student(studentID string) (models.Student, error) {
	return a.students.Get(studentID)
}
