package event

import (
	"context"

	"github.com/google/uuid"
)

type StubRepository struct {
	Events []Event
	Err    error
}

func (s *StubRepository) Find(ctx context.Context, filter Filter) ([]Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	found := make([]Event, 0)
	for _, e := range s.Events {
		if e.Category != filter.Category || e.EnvType != filter.EnvType {
			continue
		}
		if filter.EnvType == EnvUser && e.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.EnvType == EnvGroup && e.GroupID != filter.GroupID {
			continue
		}
		found = append(found, e)
	}
	return found, nil
}

func (s *StubRepository) FindByID(ctx context.Context, id string) (*Event, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i], nil
		}
	}
	return nil, nil
}

func (s *StubRepository) Create(ctx context.Context, event Event) (Event, error) {
	if s.Err != nil {
		return Event{}, s.Err
	}
	event.ID = uuid.NewString()
	s.Events = append(s.Events, event)
	return event, nil
}

func (s *StubRepository) Save(ctx context.Context, event Event) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == event.ID {
			s.Events[i].Name = event.Name
			s.Events[i].Date = event.Date
			return nil
		}
	}
	return nil
}

func (s *StubRepository) Remove(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return nil
}
