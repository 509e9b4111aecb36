package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

func TestPage(t *testing.T) {
	tests := []struct {
		skip, limit, def int
		wantSkip         int
		wantLimit        int
	}{
		{0, 0, 0, 0, 100},
		{0, 0, 20, 0, 20},
		{-5, 10, 20, 0, 10},
		{40, 1000, 20, 40, 500},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d/%d", tt.skip, tt.limit, tt.def), func(t *testing.T) {
			skip, limit := Page(tt.skip, tt.limit, tt.def)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestValidator_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Struct(model.CreateRoomRequest{Price: -1})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "is required", fields["number"])
	assert.Equal(t, "is required", fields["type"])
	assert.Equal(t, "must be greater than or equal to 0", fields["price"])
	assert.Contains(t, err.Error(), "validation failed: ")
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ValidationErrors{{Field: "x", Message: "bad"}}))
	assert.True(t, IsClientError(fmt.Errorf("wrapped: %w", &ReferenceError{Resource: "Room", ID: 1})))
	assert.False(t, IsClientError(errors.New("boom")))
	assert.False(t, IsClientError(nil))
}

func TestRoomService_Create(t *testing.T) {
	rooms := newMemRooms()
	svc := NewRoomService(rooms, NewValidator())

	room, err := svc.Create(context.Background(), model.CreateRoomRequest{Number: " 301 ", Type: "Deluxe", Price: 4500})
	require.NoError(t, err)
	assert.Equal(t, "301", room.Number)
	assert.Equal(t, "available", room.Status)

	_, err = svc.Create(context.Background(), model.CreateRoomRequest{Number: "302", Type: "Suite", Status: "haunted"})
	assert.True(t, IsClientError(err))
}
