package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Find(ctx context.Context, filter Filter) ([]Event, error)
	FindByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Save(ctx context.Context, event Event) error
	Remove(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Find(ctx context.Context, filter Filter) ([]Event, error) {
	query := `SELECT id, name, date, category, env_type, created_by, group_id, created_at
		FROM event
		WHERE category = ? AND env_type = ?`
	args := []any{string(filter.Category), string(filter.EnvType)}

	if filter.EnvType == EnvUser {
		query += " AND created_by = ?"
		args = append(args, filter.CreatedBy)
	} else {
		query += " AND group_id = ?"
		args = append(args, filter.GroupID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			err := fmt.Errorf("could not scan event row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("failed while iterating event rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return events, nil
}

// FindByID returns nil without error when no event has the given id.
func (r *RepositoryImpl) FindByID(ctx context.Context, id string) (*Event, error) {
	query := `SELECT id, name, date, category, env_type, created_by, group_id, created_at
		FROM event
		WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("failed when trying to find event by id: %w", err)
		log.Error(err)
		return nil, err
	}

	return &event, nil
}

// Create stores a new Event and returns it with its assigned id.
func (r *RepositoryImpl) Create(ctx context.Context, event Event) (Event, error) {
	query := `INSERT INTO event (
					id,
					name,
					date,
					category,
					env_type,
					created_by,
					group_id,
					created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return Event{}, err
	}
	defer stmt.Close()

	event.ID = uuid.NewString()

	var groupIdParam any
	if event.GroupID != "" {
		groupIdParam = event.GroupID
	}
	_, err = stmt.ExecContext(ctx,
		event.ID,
		event.Name,
		event.Date.Unix(),
		string(event.Category),
		string(event.EnvType),
		event.CreatedBy,
		groupIdParam,
		event.CreatedAt.Unix(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return Event{}, err
	}

	return event, nil
}

// Save persists the mutable fields (name, date) of an existing event.
func (r *RepositoryImpl) Save(ctx context.Context, event Event) error {
	query := "UPDATE event SET name = ?, date = ? WHERE id = ?"

	_, err := r.db.ExecContext(ctx, query, event.Name, event.Date.Unix(), event.ID)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Remove(ctx context.Context, id string) error {
	query := "DELETE FROM event WHERE id = ?"

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var event Event
	var dateUnix, createdAtUnix int64
	var category, envType string
	var groupId sql.NullString

	err := row.Scan(&event.ID, &event.Name, &dateUnix, &category, &envType, &event.CreatedBy, &groupId, &createdAtUnix)
	if err != nil {
		return Event{}, err
	}

	event.Date = time.Unix(dateUnix, 0).UTC()
	event.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
	event.Category = Category(category)
	event.EnvType = EnvType(envType)
	if groupId.Valid {
		event.GroupID = groupId.String
	}

	return event, nil
}
