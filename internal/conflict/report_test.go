package conflict

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport_NoConflicts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, "No booking conflicts found!\n", buf.String())
}

func TestWriteReport_ListsEveryConflict(t *testing.T) {
	a := Interval{Start: day("2024-01-01"), End: day("2024-01-05")}
	b := Interval{Start: day("2024-01-03"), End: day("2024-01-07")}
	conflicts := []Conflict{
		{
			Kind:      RegularVsRegular,
			RoomID:    101,
			RoomLabel: "101",
			A:         Party{DisplayID: "BK-000001", GuestName: "Alice", DateRange: a.String(), Stay: a},
			B:         Party{DisplayID: "BK-000002", GuestName: "Bob", DateRange: b.String(), Stay: b},
		},
		{
			Kind:      RegularVsPackage,
			RoomID:    205,
			RoomLabel: "Room 205",
			A:         Party{DisplayID: "BK-000020", GuestName: "Dan", DateRange: b.String(), Stay: b},
			B:         Party{DisplayID: "PK-000010", GuestName: "Erin", DateRange: a.String(), Stay: a},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, conflicts))

	want := "Found 2 booking conflict(s):\n\n" +
		"Conflict 1:\n" +
		"  Room: 101 (ID: 101)\n" +
		"  BK-000001 (Alice): 2024-01-01 to 2024-01-05\n" +
		"  BK-000002 (Bob): 2024-01-03 to 2024-01-07\n" +
		"  Type: regular_vs_regular\n\n" +
		"Conflict 2:\n" +
		"  Room: Room 205 (ID: 205)\n" +
		"  BK-000020 (Dan): 2024-01-03 to 2024-01-07\n" +
		"  PK-000010 (Erin): 2024-01-01 to 2024-01-05\n" +
		"  Type: regular_vs_package\n\n"
	assert.Equal(t, want, buf.String())
}
