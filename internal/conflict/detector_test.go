package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// ────────────────────────────────────────────────
// In-memory fakes
// ────────────────────────────────────────────────

// fakeStore returns its bookings unfiltered so the detector's own status
// check is exercised.
type fakeStore struct {
	regular  []model.Booking
	packages []model.PackageBooking
	err      error
	pkgErr   error
	statuses []model.BookingStatus
}

func (f *fakeStore) ListBookings(_ context.Context, statuses []model.BookingStatus) ([]model.Booking, error) {
	f.statuses = statuses
	return f.regular, f.err
}

func (f *fakeStore) ListPackageBookings(_ context.Context, _ []model.BookingStatus) ([]model.PackageBooking, error) {
	return f.packages, f.pkgErr
}

type fakeCatalog struct {
	labels  map[int64]string
	err     error
	lookups int
}

func (f *fakeCatalog) RoomLabel(_ context.Context, id int64) (string, bool, error) {
	f.lookups++
	if f.err != nil {
		return "", false, f.err
	}
	label, ok := f.labels[id]
	return label, ok, nil
}

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id int64, guest, in, out string, status model.BookingStatus, rooms ...int64) model.Booking {
	return model.Booking{
		ID:        id,
		GuestName: guest,
		CheckIn:   day(in),
		CheckOut:  day(out),
		Status:    status,
		RoomIDs:   rooms,
	}
}

func pkgBooking(id int64, guest, in, out string, status model.BookingStatus, rooms ...int64) model.PackageBooking {
	return model.PackageBooking{Booking: booking(id, guest, in, out, status, rooms...)}
}

func catalog() *fakeCatalog {
	return &fakeCatalog{labels: map[int64]string{101: "101", 102: "102", 103: "103", 205: "205"}}
}

// ────────────────────────────────────────────────
// Detect
// ────────────────────────────────────────────────

func TestDetect_OverlappingRegularBookings(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
		booking(2, "Bob", "2024-01-03", "2024-01-07", model.StatusBooked, 101),
	}}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)

	c := conflicts[0]
	assert.Equal(t, RegularVsRegular, c.Kind)
	assert.EqualValues(t, 101, c.RoomID)
	assert.Equal(t, "101", c.RoomLabel)
	assert.Equal(t, "BK-000001", c.A.DisplayID)
	assert.Equal(t, "Alice", c.A.GuestName)
	assert.Equal(t, "2024-01-01 to 2024-01-05", c.A.DateRange)
	assert.Equal(t, "BK-000002", c.B.DisplayID)
	assert.Equal(t, "Bob", c.B.GuestName)
	assert.Equal(t, "2024-01-03 to 2024-01-07", c.B.DateRange)
	assert.Equal(t, model.ActiveStatuses, store.statuses)
}

func TestDetect_BackToBackIsNotAConflict(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
		booking(2, "Bob", "2024-01-05", "2024-01-09", model.StatusBooked, 101),
	}}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetect_NoSharedRoomIsNotAConflict(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(1, "Alice", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
			booking(2, "Bob", "2024-01-01", "2024-01-05", model.StatusBooked, 102),
		},
		packages: []model.PackageBooking{
			pkgBooking(1, "Carol", "2024-01-01", "2024-01-05", model.StatusBooked, 103),
		},
	}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetect_PackageAgainstRegular(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(20, "Dan", "2024-02-05", "2024-02-08", model.StatusBooked, 205),
		},
		packages: []model.PackageBooking{
			pkgBooking(10, "Erin", "2024-02-01", "2024-02-10", model.StatusCheckedIn, 205),
		},
	}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, RegularVsPackage, conflicts[0].Kind)
	assert.Equal(t, "BK-000020", conflicts[0].A.DisplayID)
	assert.Equal(t, "PK-000010", conflicts[0].B.DisplayID)
	assert.Equal(t, "205", conflicts[0].RoomLabel)
}

func TestDetect_MissingRoomFallsBackToSyntheticLabel(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(20, "Dan", "2024-02-05", "2024-02-08", model.StatusBooked, 205),
		},
		packages: []model.PackageBooking{
			pkgBooking(10, "Erin", "2024-02-01", "2024-02-10", model.StatusCheckedIn, 205),
		},
	}
	rooms := &fakeCatalog{labels: map[int64]string{}}

	conflicts, err := NewDetector(store, rooms).Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Room 205", conflicts[0].RoomLabel)
}

func TestDetect_OneConflictPerSharedRoom(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-03-01", "2024-03-04", model.StatusBooked, 101, 102, 103),
		booking(2, "Bob", "2024-03-02", "2024-03-03", model.StatusBooked, 103, 102, 101),
	}}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 3)

	var rooms []int64
	for _, c := range conflicts {
		rooms = append(rooms, c.RoomID)
	}
	assert.Equal(t, []int64{101, 102, 103}, rooms)
}

func TestDetect_DuplicateRoomReferenceCountsOnce(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-03-01", "2024-03-04", model.StatusBooked, 101, 101),
		booking(2, "Bob", "2024-03-02", "2024-03-03", model.StatusBooked, 101),
	}}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestDetect_InactiveBookingsNeverParticipate(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(1, "Alice", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
			booking(2, "Bob", "2024-01-01", "2024-01-05", model.StatusCancelled, 101),
			booking(3, "Carl", "2024-01-01", "2024-01-05", model.StatusCheckedOut, 101),
			booking(4, "Dee", "2024-01-01", "2024-01-05", "Booked", 101),
		},
		packages: []model.PackageBooking{
			pkgBooking(1, "Eve", "2024-01-01", "2024-01-05", "pending", 101),
		},
	}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestDetect_CheckedInSpellingsAreEquivalent(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-01-01", "2024-01-05", "checked_in", 101),
		booking(2, "Bob", "2024-01-02", "2024-01-06", model.StatusCheckedIn, 101),
	}}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestDetect_PassOrderIsStable(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(1, "A", "2024-01-01", "2024-01-10", model.StatusBooked, 101),
			booking(2, "B", "2024-01-02", "2024-01-03", model.StatusBooked, 101),
			booking(3, "C", "2024-01-04", "2024-01-05", model.StatusBooked, 101),
		},
		packages: []model.PackageBooking{
			pkgBooking(7, "P", "2024-01-01", "2024-01-10", model.StatusBooked, 101),
			pkgBooking(8, "Q", "2024-01-09", "2024-01-12", model.StatusBooked, 101),
		},
	}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)

	type pair struct {
		kind Kind
		a, b string
	}
	var got []pair
	for _, c := range conflicts {
		got = append(got, pair{c.Kind, c.A.DisplayID, c.B.DisplayID})
	}
	assert.Equal(t, []pair{
		{RegularVsRegular, "BK-000001", "BK-000002"},
		{RegularVsRegular, "BK-000001", "BK-000003"},
		{PackageVsPackage, "PK-000007", "PK-000008"},
		{RegularVsPackage, "BK-000001", "PK-000007"},
		{RegularVsPackage, "BK-000001", "PK-000008"},
		{RegularVsPackage, "BK-000002", "PK-000007"},
		{RegularVsPackage, "BK-000003", "PK-000007"},
	}, got)
}

func TestDetect_SameIDAcrossCategoriesIsNotSelfPair(t *testing.T) {
	store := &fakeStore{
		regular: []model.Booking{
			booking(5, "Ann", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
		},
		packages: []model.PackageBooking{
			pkgBooking(5, "Ben", "2024-01-02", "2024-01-03", model.StatusBooked, 101),
		},
	}

	conflicts, err := NewDetector(store, catalog()).Detect(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "BK-000005", conflicts[0].A.DisplayID)
	assert.Equal(t, "PK-000005", conflicts[0].B.DisplayID)
}

func TestDetect_LabelsAreLookedUpOncePerRoom(t *testing.T) {
	store := &fakeStore{regular: []model.Booking{
		booking(1, "A", "2024-01-01", "2024-01-10", model.StatusBooked, 101),
		booking(2, "B", "2024-01-02", "2024-01-03", model.StatusBooked, 101),
		booking(3, "C", "2024-01-04", "2024-01-05", model.StatusBooked, 101),
	}}
	rooms := catalog()

	conflicts, err := NewDetector(store, rooms).Detect(context.Background())
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
	assert.Equal(t, 1, rooms.lookups)
}

func TestDetect_EmptyStore(t *testing.T) {
	rooms := catalog()
	conflicts, err := NewDetector(&fakeStore{}, rooms).Detect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Zero(t, rooms.lookups)
}

func TestDetect_StoreErrorIsFatal(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := NewDetector(&fakeStore{err: boom}, catalog()).Detect(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list active bookings")

	_, err = NewDetector(&fakeStore{pkgErr: boom}, catalog()).Detect(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list active package bookings")
}

func TestDetect_CatalogErrorYieldsNoPartialResult(t *testing.T) {
	boom := errors.New("timeout")
	store := &fakeStore{regular: []model.Booking{
		booking(1, "Alice", "2024-01-01", "2024-01-05", model.StatusBooked, 101),
		booking(2, "Bob", "2024-01-03", "2024-01-07", model.StatusBooked, 101),
	}}

	conflicts, err := NewDetector(store, &fakeCatalog{err: boom}).Detect(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, conflicts)
}

// ────────────────────────────────────────────────
// Pure helpers
// ────────────────────────────────────────────────

func TestSharedRooms(t *testing.T) {
	tests := []struct {
		name string
		a, b []int64
		want []int64
	}{
		{"disjoint", []int64{1, 2}, []int64{3, 4}, nil},
		{"empty a", nil, []int64{1}, nil},
		{"empty b", []int64{1}, nil, nil},
		{"partial", []int64{1, 2, 3}, []int64{3, 1}, []int64{1, 3}},
		{"duplicates", []int64{2, 2, 1}, []int64{2}, []int64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sharedRooms(tt.a, tt.b))
		})
	}
}

func TestSharedRooms_Symmetric(t *testing.T) {
	a := []int64{4, 1, 9, 7}
	b := []int64{7, 3, 4}
	assert.ElementsMatch(t, sharedRooms(a, b), sharedRooms(b, a))
}
