package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// AmenityRepository handles persistence for services and their assignments
// to rooms.
type AmenityRepository struct {
	db *pgxpool.Pool
}

// NewAmenityRepository constructs an AmenityRepository.
func NewAmenityRepository(db *pgxpool.Pool) *AmenityRepository {
	return &AmenityRepository{db: db}
}

// CreateService inserts a service and its image urls in one transaction.
func (r *AmenityRepository) CreateService(ctx context.Context, s *model.Service) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO services (name, description, charges)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			s.Name, s.Description, s.Charges,
		).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("insert service: %w", err)
		}
		for _, url := range s.ImageURLs {
			_, err := tx.Exec(ctx,
				`INSERT INTO service_images (service_id, image_url) VALUES ($1, $2)`,
				s.ID, url,
			)
			if err != nil {
				return fmt.Errorf("insert service image: %w", err)
			}
		}
		return nil
	})
}

// ListServices returns services in id order with their images.
func (r *AmenityRepository) ListServices(ctx context.Context, skip, limit int) ([]model.Service, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, COALESCE(s.description, ''), s.charges,
		        COALESCE(array_agg(i.image_url ORDER BY i.id) FILTER (WHERE i.image_url IS NOT NULL), '{}')
		 FROM services s
		 LEFT JOIN service_images i ON i.service_id = s.id
		 GROUP BY s.id
		 ORDER BY s.id
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Charges, &s.ImageURLs); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// ServiceExists reports whether a service with id exists.
func (r *AmenityRepository) ServiceExists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check service: %w", err)
	}
	return ok, nil
}

// DeleteService removes a service and its images.
func (r *AmenityRepository) DeleteService(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM service_images WHERE service_id = $1`, id); err != nil {
			return fmt.Errorf("delete service images: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete service: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Assign records a service delivered to a room.
func (r *AmenityRepository) Assign(ctx context.Context, a *model.AssignedService) error {
	a.AssignedAt = time.Now().UTC()
	err := r.db.QueryRow(ctx,
		`INSERT INTO assigned_services (service_id, employee_id, room_id, status, assigned_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.ServiceID, a.EmployeeID, a.RoomID, a.Status, a.AssignedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert assigned service: %w", err)
	}
	return nil
}

// ListAssigned returns assignments newest first, regardless of the room's
// booking state.
func (r *AmenityRepository) ListAssigned(ctx context.Context, skip, limit int) ([]model.AssignedService, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.service_id, a.employee_id, a.room_id, a.status, a.assigned_at,
		        COALESCE(s.name, ''), COALESCE(e.name, ''), COALESCE(rm.number, '')
		 FROM assigned_services a
		 LEFT JOIN services s ON s.id = a.service_id
		 LEFT JOIN employees e ON e.id = a.employee_id
		 LEFT JOIN rooms rm ON rm.id = a.room_id
		 ORDER BY a.assigned_at DESC
		 OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list assigned services: %w", err)
	}
	defer rows.Close()

	var assigned []model.AssignedService
	for rows.Next() {
		var a model.AssignedService
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.EmployeeID, &a.RoomID, &a.Status, &a.AssignedAt,
			&a.ServiceName, &a.EmployeeName, &a.RoomNumber); err != nil {
			return nil, fmt.Errorf("scan assigned service: %w", err)
		}
		assigned = append(assigned, a)
	}
	return assigned, rows.Err()
}

// UpdateAssignedStatus sets the status of an assignment.
func (r *AmenityRepository) UpdateAssignedStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE assigned_services SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update assigned service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAssigned removes an assignment.
func (r *AmenityRepository) DeleteAssigned(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assigned_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assigned service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
