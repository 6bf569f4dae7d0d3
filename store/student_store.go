package store

import (
	"sync"

	"hostel-manager-go/models"
)

// StudentStore holds the authoritative student collection, newest first.
type StudentStore struct {
	mu       sync.RWMutex
	students []models.Student
	index    map[string]int // id -> position in students
}

// NewStudentStore creates an empty StudentStore.
func NewStudentStore() *StudentStore {
	return &StudentStore{
		index: make(map[string]int),
	}
}

func (s *StudentStore) reindex() {
	s.index = make(map[string]int, len(s.students))
	for i, st := range s.students {
		s.index[st.ID] = i
	}
}

// Add inserts a new student at the front of the collection.
func (s *StudentStore) Add(student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = append([]models.Student{student}, s.students...)
	s.reindex()
	return nil
}

// Get retrieves a copy of the student with the given id.
func (s *StudentStore) Get(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return s.students[i], nil
}

// Update edits the profile fields of a student. The room link is never
// touched here; only the allocation service mutates it.
func (s *StudentStore) Update(id, name, course, gender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.students[i].Name = name
	s.students[i].Course = course
	s.students[i].Gender = gender
	return nil
}

// Remove deletes a student record. The allocation service clears any room
// link before calling this, so removal always succeeds for a known id.
func (s *StudentStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	s.reindex()
	return nil
}

// List returns a copy of all students, newest first.
func (s *StudentStore) List() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// SetRoom overwrites the room link of a student. Only the allocation service
// may call this; an empty roomID means unassigned.
func (s *StudentStore) SetRoom(id, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.students[i].RoomID = roomID
	return nil
}

// Replace swaps the whole collection, preserving the given order.
func (s *StudentStore) Replace(students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = make([]models.Student, len(students))
	copy(s.students, students)
	s.reindex()
}
