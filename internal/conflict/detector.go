// Package conflict audits active bookings for rooms that are claimed twice
// over overlapping dates.
//
// The audit is read-only. It compares regular bookings with each other,
// package bookings with each other, then regular bookings against package
// bookings, and reports one Conflict per shared room for every pair whose
// stays overlap.
package conflict

import (
	"context"
	"fmt"
	"slices"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// Kind names which booking categories a Conflict involves.
type Kind string

const (
	RegularVsRegular Kind = "regular_vs_regular"
	PackageVsPackage Kind = "package_vs_package"
	RegularVsPackage Kind = "regular_vs_package"
)

// BookingStore lists bookings, with their rooms, whose status is in statuses.
type BookingStore interface {
	ListBookings(ctx context.Context, statuses []model.BookingStatus) ([]model.Booking, error)
	ListPackageBookings(ctx context.Context, statuses []model.BookingStatus) ([]model.PackageBooking, error)
}

// RoomCatalog resolves a room id to its display label. A room that no longer
// exists yields ok == false and a nil error.
type RoomCatalog interface {
	RoomLabel(ctx context.Context, roomID int64) (label string, ok bool, err error)
}

// Party is one side of a Conflict.
type Party struct {
	DisplayID string   `json:"display_id"`
	GuestName string   `json:"guest_name"`
	DateRange string   `json:"date_range"`
	Stay      Interval `json:"stay"`
}

// Conflict is a single room claimed by two active bookings with overlapping stays.
type Conflict struct {
	Kind      Kind   `json:"type"`
	RoomID    int64  `json:"room_id"`
	RoomLabel string `json:"room_number"`
	A         Party  `json:"booking_a"`
	B         Party  `json:"booking_b"`
}

// occupancy is the part of a booking the comparison needs.
type occupancy struct {
	party Party
	rooms []int64
}

// Detector runs the audit against an injected store and catalog.
type Detector struct {
	bookings BookingStore
	rooms    RoomCatalog
}

// NewDetector constructs a Detector.
func NewDetector(bookings BookingStore, rooms RoomCatalog) *Detector {
	return &Detector{bookings: bookings, rooms: rooms}
}

// Detect returns every conflict among the currently active bookings, ordered by
// pass (regular/regular, package/package, regular/package) and then by the
// order the store returned the bookings in. Any store or catalog error aborts
// the run and no partial result is returned.
func (d *Detector) Detect(ctx context.Context) ([]Conflict, error) {
	regular, err := d.bookings.ListBookings(ctx, model.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	packages, err := d.bookings.ListPackageBookings(ctx, model.ActiveStatuses)
	if err != nil {
		return nil, fmt.Errorf("list active package bookings: %w", err)
	}

	regOcc := make([]occupancy, 0, len(regular))
	for i := range regular {
		b := &regular[i]
		if b.Status.IsActive() {
			regOcc = append(regOcc, newOccupancy(b.DisplayID(), b))
		}
	}
	pkgOcc := make([]occupancy, 0, len(packages))
	for i := range packages {
		p := &packages[i]
		if p.Status.IsActive() {
			pkgOcc = append(pkgOcc, newOccupancy(p.DisplayID(), &p.Booking))
		}
	}

	conflicts := findConflicts(regOcc, pkgOcc)

	labels := make(map[int64]string)
	for i := range conflicts {
		c := &conflicts[i]
		label, cached := labels[c.RoomID]
		if !cached {
			name, ok, err := d.rooms.RoomLabel(ctx, c.RoomID)
			if err != nil {
				return nil, fmt.Errorf("look up room %d: %w", c.RoomID, err)
			}
			label = name
			if !ok {
				label = fmt.Sprintf("Room %d", c.RoomID)
			}
			labels[c.RoomID] = label
		}
		c.RoomLabel = label
	}
	return conflicts, nil
}

func newOccupancy(displayID string, b *model.Booking) occupancy {
	stay := Interval{Start: b.CheckIn, End: b.CheckOut}
	return occupancy{
		party: Party{
			DisplayID: displayID,
			GuestName: b.GuestName,
			DateRange: stay.String(),
			Stay:      stay,
		},
		rooms: b.RoomIDs,
	}
}

// findConflicts runs the three comparison passes. Room labels are left empty.
func findConflicts(regular, packages []occupancy) []Conflict {
	var out []Conflict
	for i := range regular {
		for j := i + 1; j < len(regular); j++ {
			out = appendPair(out, RegularVsRegular, regular[i], regular[j])
		}
	}
	for i := range packages {
		for j := i + 1; j < len(packages); j++ {
			out = appendPair(out, PackageVsPackage, packages[i], packages[j])
		}
	}
	for i := range regular {
		for j := range packages {
			out = appendPair(out, RegularVsPackage, regular[i], packages[j])
		}
	}
	return out
}

func appendPair(out []Conflict, kind Kind, a, b occupancy) []Conflict {
	shared := sharedRooms(a.rooms, b.rooms)
	if len(shared) == 0 || !a.party.Stay.Overlaps(b.party.Stay) {
		return out
	}
	for _, room := range shared {
		out = append(out, Conflict{Kind: kind, RoomID: room, A: a.party, B: b.party})
	}
	return out
}

// sharedRooms returns the rooms present in both a and b, in a's order and
// without duplicates.
func sharedRooms(a, b []int64) []int64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	var shared []int64
	for _, room := range a {
		if slices.Contains(b, room) && !slices.Contains(shared, room) {
			shared = append(shared, room)
		}
	}
	return shared
}
