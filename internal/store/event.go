package store

import (
	"context"
	"fmt"

	"paralympics-api-go/pkg/model"
)

const eventColumns = `id, type, year, country, host, start_date, end_date,
	duration, countries, events, sports, participants, highlights`

// GetEvent looks up an event by id. Exactly one row must match:
// zero rows yields ErrNotFound, more than one ErrAmbiguous.
func (s *Session) GetEvent(ctx context.Context, id int) (*model.Event, error) {
	rows, err := s.tx.QueryxContext(ctx,
		s.tx.Rebind("SELECT "+eventColumns+" FROM events WHERE id = ?"), id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	defer rows.Close()

	var event *model.Event
	for rows.Next() {
		if event != nil {
			return nil, ErrAmbiguous
		}
		var e model.Event
		if err := rows.StructScan(&e); err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		event = &e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// GetEventOptional looks up an event by id, reporting absence as an
// explicit false rather than an error. Used by the update path.
func (s *Session) GetEventOptional(ctx context.Context, id int) (*model.Event, bool, error) {
	event, err := s.GetEvent(ctx, id)
	if err == ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return event, true, nil
}

// ListEvents returns all events. The scan re-runs on every call.
func (s *Session) ListEvents(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	err := s.tx.SelectContext(ctx, &events, "SELECT "+eventColumns+" FROM events")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// InsertEvent stages a new event and fills in the store-assigned id
func (s *Session) InsertEvent(ctx context.Context, event *model.Event) error {
	err := s.tx.QueryRowContext(ctx,
		s.tx.Rebind(`INSERT INTO events
			(type, year, country, host, start_date, end_date, duration,
			 countries, events, sports, participants, highlights)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`),
		event.Type, event.Year, event.Country, event.Host, event.Start,
		event.End, event.Duration, event.Countries, event.Events,
		event.Sports, event.Participants, event.Highlights).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// UpdateEvent stages a full-row update of the event identified by its id
func (s *Session) UpdateEvent(ctx context.Context, event *model.Event) error {
	_, err := s.tx.ExecContext(ctx,
		s.tx.Rebind(`UPDATE events SET
			type = ?, year = ?, country = ?, host = ?, start_date = ?,
			end_date = ?, duration = ?, countries = ?, events = ?,
			sports = ?, participants = ?, highlights = ?
			WHERE id = ?`),
		event.Type, event.Year, event.Country, event.Host, event.Start,
		event.End, event.Duration, event.Countries, event.Events,
		event.Sports, event.Participants, event.Highlights, event.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent stages deletion of the event with the given id
func (s *Session) DeleteEvent(ctx context.Context, id int) error {
	_, err := s.tx.ExecContext(ctx,
		s.tx.Rebind("DELETE FROM events WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
