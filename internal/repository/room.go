package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// RoomRepository handles persistence for rooms. It also serves as the room
// catalog for the conflict audit.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository constructs a RoomRepository.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a room and fills in its generated id.
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO rooms (number, type, price, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		room.Number, room.Type, room.Price, room.Status,
	).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}

// List returns rooms ordered by id.
func (r *RoomRepository) List(ctx context.Context, skip, limit int) ([]model.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, number, type, price, status
		 FROM rooms
		 ORDER BY id
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Price, &room.Status); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetByID returns a single room or ErrNotFound.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	err := r.db.QueryRow(ctx,
		`SELECT id, number, type, price, status FROM rooms WHERE id = $1`,
		id,
	).Scan(&room.ID, &room.Number, &room.Type, &room.Price, &room.Status)
	if err != nil {
		return nil, notFound(err, "get room")
	}
	return &room, nil
}

// Delete removes a room. Bookings that referenced it keep their room ids.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a room with id is in the catalog.
func (r *RoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check room: %w", err)
	}
	return ok, nil
}

// RoomLabel returns the room number for id. A deleted room yields ok == false.
func (r *RoomRepository) RoomLabel(ctx context.Context, id int64) (string, bool, error) {
	var number string
	err := r.db.QueryRow(ctx, `SELECT number FROM rooms WHERE id = $1`, id).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("room label: %w", err)
	}
	return number, true, nil
}
