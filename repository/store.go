package repository

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"hr-management-backend/models"
)

// Record is anything persisted in a Collection.
type Record interface {
	Key() int
}

// Collection mirrors one JSON array file in memory. The file is read once on
// open and rewritten wholesale after every mutation. A missing or corrupt file
// loads as an empty collection; the error is logged, never surfaced, so a
// corrupted file is indistinguishable from "no data yet" to callers.
//
// The mutex serializes handler goroutines within this process only. Exactly
// one backend process must own the data directory; a second process touching
// the same files will race.
type Collection[T Record] struct {
	mu     sync.RWMutex
	path   string
	items  []T
	nextID int
}

func OpenCollection[T Record](path string) *Collection[T] {
	c := &Collection[T]{path: path, nextID: 1}
	c.load()
	return c
}

func (c *Collection[T]) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Error loading %s: %v", c.path, err)
		}
		return
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Error loading %s: %v", c.path, err)
		return
	}
	c.items = items
	for _, item := range items {
		if item.Key() >= c.nextID {
			c.nextID = item.Key() + 1
		}
	}
}

// save is called with c.mu held.
func (c *Collection[T]) save() {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		log.Printf("Error saving %s: %v", c.path, err)
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		log.Printf("Error saving %s: %v", c.path, err)
	}
}

func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Get(id int) (T, bool) {
	return c.Find(func(item T) bool { return item.Key() == id })
}

// Count returns the number of records currently in the collection.
func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Insert allocates the next id, appends the record built from it and persists.
// Ids are monotonic per collection: a deleted record's id is never recycled
// within the process lifetime.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := build(c.nextID)
	c.nextID++
	c.items = append(c.items, item)
	c.save()
	return item
}

// Update mutates the first record matching id in place and persists.
func (c *Collection[T]) Update(id int, mutate func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == id {
			mutate(&c.items[i])
			c.save()
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.save()
			return true
		}
	}
	return false
}

// Store opens every entity collection under a single data directory. One
// process owns the directory; there are no transactions spanning files.
type Store struct {
	Users         *Collection[models.User]
	Attendance    *Collection[models.AttendanceRecord]
	Tripets       *Collection[models.Tripet]
	Meetings      *Collection[models.Meeting]
	Timesheets    *Collection[models.TimesheetEntry]
	Trainings     *Collection[models.Training]
	Enrollments   *Collection[models.Enrollment]
	Certificates  *Collection[models.Certificate]
	Feedbacks     *Collection[models.Feedback]
	Announcements *Collection[models.Announcement]
	Leaves        *Collection[models.LeaveRequest]
	Salaries      *Collection[models.Salary]
}

func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		Users:         OpenCollection[models.User](filepath.Join(dir, "users.json")),
		Attendance:    OpenCollection[models.AttendanceRecord](filepath.Join(dir, "attendance.json")),
		Tripets:       OpenCollection[models.Tripet](filepath.Join(dir, "tripets.json")),
		Meetings:      OpenCollection[models.Meeting](filepath.Join(dir, "meetings.json")),
		Timesheets:    OpenCollection[models.TimesheetEntry](filepath.Join(dir, "timesheets.json")),
		Trainings:     OpenCollection[models.Training](filepath.Join(dir, "trainings.json")),
		Enrollments:   OpenCollection[models.Enrollment](filepath.Join(dir, "enrollments.json")),
		Certificates:  OpenCollection[models.Certificate](filepath.Join(dir, "certificates.json")),
		Feedbacks:     OpenCollection[models.Feedback](filepath.Join(dir, "feedbacks.json")),
		Announcements: OpenCollection[models.Announcement](filepath.Join(dir, "announcements.json")),
		Leaves:        OpenCollection[models.LeaveRequest](filepath.Join(dir, "leaves.json")),
		Salaries:      OpenCollection[models.Salary](filepath.Join(dir, "salaries.json")),
	}, nil
}
