package tracker

import (
	"fmt"
	"sync"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

type ApplicationStore struct {
	observers

	mu     sync.RWMutex
	items  []models.Application
	lastID int64
}

func NewApplicationStore(seed []models.Application) *ApplicationStore {
	s := &ApplicationStore{items: append([]models.Application{}, seed...)}
	for _, app := range seed {
		s.lastID = max(s.lastID, app.ID)
	}
	return s
}

func (s *ApplicationStore) List() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application{}, s.items...)
}

// ListByStudent returns the applications whose student name equals
// studentName exactly. The name is whatever was typed on the apply form, so a
// student who applies under a different spelling will not see the earlier
// applications.
func (s *ApplicationStore) ListByStudent(studentName string) []models.Application {
	matched := []models.Application{}
	if studentName == "" {
		return matched
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.items {
		if app.StudentName == studentName {
			matched = append(matched, app)
		}
	}
	return matched
}

// Create files a new application in the applied state. The scholarship id is
// not resolved here; a dangling id only shows up when the application is
// rendered.
func (s *ApplicationStore) Create(fields models.NewApplication) (models.Application, error) {
	if err := fields.Validate(); err != nil {
		rejected := reject(EntityApplication, err)
		logger.Debug.Printf("Application not created: %v", rejected)
		return models.Application{}, rejected
	}

	s.mu.Lock()
	s.lastID++
	created := models.Application{
		ID:            s.lastID,
		StudentName:   fields.StudentName,
		ScholarshipID: fields.ScholarshipID,
		Status:        models.StatusApplied,
	}
	items := make([]models.Application, 0, len(s.items)+1)
	items = append(items, s.items...)
	s.items = append(items, created)
	s.mu.Unlock()

	event := created
	s.notify(Event{Entity: EntityApplication, Kind: KindCreated, ID: created.ID, Application: &event})
	return created, nil
}

// UpdateStatus assigns status to the application with the given id. Any
// status may follow any other. It reports whether the id was found.
func (s *ApplicationStore) UpdateStatus(id int64, status models.Status) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	var (
		updated  models.Application
		previous models.Status
		found    bool
	)
	items := make([]models.Application, len(s.items))
	for i, app := range s.items {
		if app.ID == id {
			previous, found = app.Status, true
			app.Status = status
			updated = app
		}
		items[i] = app
	}
	if found {
		s.items = items
	}
	s.mu.Unlock()

	if !found {
		return false, nil
	}
	s.notify(Event{
		Entity:         EntityApplication,
		Kind:           KindStatusChanged,
		ID:             id,
		Application:    &updated,
		PreviousStatus: previous,
	})
	return true, nil
}
