package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// bookingTable names the tables backing one booking category. Regular and
// package bookings share a shape but live in separate tables with their own
// id sequences.
type bookingTable struct {
	bookings string
	rooms    string
	fk       string
	extra    string // extra selected columns, scanned after the shared ones
}

var (
	regularBookings = bookingTable{
		bookings: "bookings",
		rooms:    "booking_rooms",
		fk:       "booking_id",
	}
	packageBookings = bookingTable{
		bookings: "package_bookings",
		rooms:    "package_booking_rooms",
		fk:       "package_booking_id",
		extra:    ", b.package_id",
	}
)

// selectSQL builds a query returning each booking with its room ids in
// insertion order. where and tail are appended verbatim.
func (t bookingTable) selectSQL(where, tail string) string {
	return fmt.Sprintf(
		`SELECT b.id, b.guest_name, COALESCE(b.guest_mobile, ''), COALESCE(b.guest_email, ''), b.check_in, b.check_out,
		        b.adults, b.children, b.status, b.created_at,
		        COALESCE(array_agg(r.room_id ORDER BY r.id) FILTER (WHERE r.room_id IS NOT NULL), '{}')%s
		 FROM %s b
		 LEFT JOIN %s r ON r.%s = b.id
		 %s
		 GROUP BY b.id
		 %s`,
		t.extra, t.bookings, t.rooms, t.fk, where, tail,
	)
}

func scanBooking(row pgx.Row, b *model.Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.GuestName, &b.GuestMobile, &b.GuestEmail, &b.CheckIn, &b.CheckOut,
		&b.Adults, &b.Children, &b.Status, &b.CreatedAt, &b.RoomIDs,
	}
	return row.Scan(append(dest, extra...)...)
}

func statusStrings(statuses []model.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// BookingRepository handles persistence for regular and package bookings and
// serves as the booking store for the conflict audit.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// insert writes the booking row and its room occupations in one transaction.
func (r *BookingRepository) insert(ctx context.Context, t bookingTable, b *model.Booking, packageID *int64) error {
	b.CreatedAt = time.Now().UTC()

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cols := "guest_name, guest_mobile, guest_email, check_in, check_out, adults, children, status, created_at"
		vals := "$1, $2, $3, $4, $5, $6, $7, $8, $9"
		args := []any{b.GuestName, b.GuestMobile, b.GuestEmail, b.CheckIn, b.CheckOut, b.Adults, b.Children, string(b.Status), b.CreatedAt}
		if packageID != nil {
			cols += ", package_id"
			vals += ", $10"
			args = append(args, *packageID)
		}

		err := tx.QueryRow(ctx,
			fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING id`, t.bookings, cols, vals),
			args...,
		).Scan(&b.ID)
		if err != nil {
			return fmt.Errorf("insert %s: %w", t.bookings, err)
		}

		for _, roomID := range b.RoomIDs {
			_, err := tx.Exec(ctx,
				fmt.Sprintf(`INSERT INTO %s (%s, room_id) VALUES ($1, $2)`, t.rooms, t.fk),
				b.ID, roomID,
			)
			if err != nil {
				return fmt.Errorf("insert %s: %w", t.rooms, err)
			}
		}
		return nil
	})
}

func (r *BookingRepository) query(ctx context.Context, t bookingTable, sql string, args ...any) ([]model.Booking, []int64, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", t.bookings, err)
	}
	defer rows.Close()

	var (
		bookings   []model.Booking
		packageIDs []int64
	)
	for rows.Next() {
		var b model.Booking
		var packageID int64
		var extra []any
		if t.extra != "" {
			extra = append(extra, &packageID)
		}
		if err := scanBooking(rows, &b, extra...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", t.bookings, err)
		}
		bookings = append(bookings, b)
		packageIDs = append(packageIDs, packageID)
	}
	return bookings, packageIDs, rows.Err()
}

func (r *BookingRepository) updateStatus(ctx context.Context, t bookingTable, id int64, status model.BookingStatus) error {
	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, t.bookings),
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("update %s status: %w", t.bookings, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func toPackage(bookings []model.Booking, packageIDs []int64) []model.PackageBooking {
	if bookings == nil {
		return nil
	}
	out := make([]model.PackageBooking, len(bookings))
	for i := range bookings {
		out[i] = model.PackageBooking{Booking: bookings[i], PackageID: packageIDs[i]}
	}
	return out
}

// ─── Regular bookings ─────────────────────────────────────────────────────────

// Create inserts a regular booking with its rooms.
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) error {
	return r.insert(ctx, regularBookings, b, nil)
}

// List returns regular bookings, newest first.
func (r *BookingRepository) List(ctx context.Context, skip, limit int) ([]model.Booking, error) {
	bookings, _, err := r.query(ctx, regularBookings,
		regularBookings.selectSQL("", "ORDER BY b.id DESC OFFSET $1 LIMIT $2"), skip, limit)
	return bookings, err
}

// GetByID returns a single regular booking or ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	var b model.Booking
	err := scanBooking(r.db.QueryRow(ctx, regularBookings.selectSQL("WHERE b.id = $1", ""), id), &b)
	if err != nil {
		return nil, notFound(err, "get booking")
	}
	return &b, nil
}

// UpdateStatus sets the status of a regular booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	return r.updateStatus(ctx, regularBookings, id, status)
}

// ListBookings returns every regular booking whose status is in statuses, in
// id order.
func (r *BookingRepository) ListBookings(ctx context.Context, statuses []model.BookingStatus) ([]model.Booking, error) {
	bookings, _, err := r.query(ctx, regularBookings,
		regularBookings.selectSQL("WHERE b.status = ANY($1)", "ORDER BY b.id"), statusStrings(statuses))
	return bookings, err
}

// ─── Package bookings ─────────────────────────────────────────────────────────

// CreatePackage inserts a package booking with its rooms.
func (r *BookingRepository) CreatePackage(ctx context.Context, p *model.PackageBooking) error {
	return r.insert(ctx, packageBookings, &p.Booking, &p.PackageID)
}

// ListPackage returns package bookings, newest first.
func (r *BookingRepository) ListPackage(ctx context.Context, skip, limit int) ([]model.PackageBooking, error) {
	bookings, ids, err := r.query(ctx, packageBookings,
		packageBookings.selectSQL("", "ORDER BY b.id DESC OFFSET $1 LIMIT $2"), skip, limit)
	if err != nil {
		return nil, err
	}
	return toPackage(bookings, ids), nil
}

// GetPackageByID returns a single package booking or ErrNotFound.
func (r *BookingRepository) GetPackageByID(ctx context.Context, id int64) (*model.PackageBooking, error) {
	var p model.PackageBooking
	err := scanBooking(r.db.QueryRow(ctx, packageBookings.selectSQL("WHERE b.id = $1", ""), id), &p.Booking, &p.PackageID)
	if err != nil {
		return nil, notFound(err, "get package booking")
	}
	return &p, nil
}

// UpdatePackageStatus sets the status of a package booking.
func (r *BookingRepository) UpdatePackageStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	return r.updateStatus(ctx, packageBookings, id, status)
}

// ListPackageBookings returns every package booking whose status is in
// statuses, in id order.
func (r *BookingRepository) ListPackageBookings(ctx context.Context, statuses []model.BookingStatus) ([]model.PackageBooking, error) {
	bookings, ids, err := r.query(ctx, packageBookings,
		packageBookings.selectSQL("WHERE b.status = ANY($1)", "ORDER BY b.id"), statusStrings(statuses))
	if err != nil {
		return nil, err
	}
	return toPackage(bookings, ids), nil
}

// ─── Guests ───────────────────────────────────────────────────────────────────

// GuestForRoom returns the guest of the most recent active booking on roomID.
// Regular bookings take precedence over package bookings.
func (r *BookingRepository) GuestForRoom(ctx context.Context, roomID int64) (string, bool, error) {
	statuses := statusStrings(model.ActiveStatuses)
	for _, t := range []bookingTable{regularBookings, packageBookings} {
		var guest string
		err := r.db.QueryRow(ctx,
			fmt.Sprintf(
				`SELECT b.guest_name
				 FROM %s b
				 JOIN %s r ON r.%s = b.id
				 WHERE r.room_id = $1 AND b.status = ANY($2)
				 ORDER BY b.id DESC
				 LIMIT 1`,
				t.bookings, t.rooms, t.fk,
			),
			roomID, statuses,
		).Scan(&guest)
		if err == nil {
			return guest, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", false, fmt.Errorf("guest for room: %w", err)
		}
	}
	return "", false, nil
}
