package tracker

import (
	"sync"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

type Entity string

const (
	EntityScholarship Entity = "scholarship"
	EntityApplication Entity = "application"
)

type Kind string

const (
	KindCreated       Kind = "created"
	KindDeleted       Kind = "deleted"
	KindStatusChanged Kind = "status_changed"
)

// Event describes one successful mutation. It carries a copy of the record as
// it looked right after the change (the removed record for deletes).
type Event struct {
	Entity         Entity              `json:"entity"`
	Kind           Kind                `json:"kind"`
	ID             int64               `json:"id"`
	Scholarship    *models.Scholarship `json:"scholarship,omitempty"`
	Application    *models.Application `json:"application,omitempty"`
	PreviousStatus models.Status       `json:"previous_status,omitempty"`
}

type Observer func(Event)

type subscription struct {
	id int
	fn Observer
}

type observers struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

// Subscribe registers fn for every change event and returns a func that
// removes it again. Observers run synchronously, in subscription order, after
// the store lock is released, so they may read from the store.
func (o *observers) Subscribe(fn Observer) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, sub := range o.subs {
			if sub.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) notify(event Event) {
	o.mu.Lock()
	subs := append([]subscription(nil), o.subs...)
	o.mu.Unlock()

	for _, sub := range subs {
		sub.fn(event)
	}
}
