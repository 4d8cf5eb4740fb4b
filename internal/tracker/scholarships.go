package tracker

import (
	"strings"
	"sync"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

type ScholarshipStore struct {
	observers

	mu     sync.RWMutex
	items  []models.Scholarship
	lastID int64
}

// NewScholarshipStore starts from seed, keeping the seeded ids. Fresh ids are
// handed out above the largest seeded one.
func NewScholarshipStore(seed []models.Scholarship) *ScholarshipStore {
	s := &ScholarshipStore{items: append([]models.Scholarship{}, seed...)}
	for _, sch := range seed {
		s.lastID = max(s.lastID, sch.ID)
	}
	return s
}

// List returns all scholarships in insertion order.
func (s *ScholarshipStore) List() []models.Scholarship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Scholarship{}, s.items...)
}

// FilterByName does a case-insensitive substring match against the name.
// An empty term matches everything.
func (s *ScholarshipStore) FilterByName(term string) []models.Scholarship {
	term = strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Scholarship{}
	for _, sch := range s.items {
		if strings.Contains(strings.ToLower(sch.Name), term) {
			matched = append(matched, sch)
		}
	}
	return matched
}

func (s *ScholarshipStore) Create(fields models.NewScholarship) (models.Scholarship, error) {
	if err := fields.Validate(); err != nil {
		rejected := reject(EntityScholarship, err)
		logger.Debug.Printf("Scholarship not created: %v", rejected)
		return models.Scholarship{}, rejected
	}

	s.mu.Lock()
	s.lastID++
	created := models.Scholarship{
		ID:          s.lastID,
		Name:        fields.Name,
		Description: fields.Description,
		Deadline:    fields.Deadline,
		Amount:      fields.Amount.Decimal,
	}
	items := make([]models.Scholarship, 0, len(s.items)+1)
	items = append(items, s.items...)
	s.items = append(items, created)
	s.mu.Unlock()

	event := created
	s.notify(Event{Entity: EntityScholarship, Kind: KindCreated, ID: created.ID, Scholarship: &event})
	return created, nil
}

// Delete removes the scholarship with the given id and reports whether it
// existed. Applications pointing at it are left as they are.
func (s *ScholarshipStore) Delete(id int64) bool {
	s.mu.Lock()
	var (
		removed models.Scholarship
		found   bool
	)
	items := make([]models.Scholarship, 0, len(s.items))
	for _, sch := range s.items {
		if sch.ID == id {
			removed, found = sch, true
			continue
		}
		items = append(items, sch)
	}
	if found {
		s.items = items
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(Event{Entity: EntityScholarship, Kind: KindDeleted, ID: id, Scholarship: &removed})
	return true
}

func (s *ScholarshipStore) Lookup(id int64) (models.Scholarship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sch := range s.items {
		if sch.ID == id {
			return sch, true
		}
	}
	return models.Scholarship{}, false
}
