package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/repository"
)

func newAmenityService() (*AmenityService, *memAmenities) {
	store := &memAmenities{}
	return NewAmenityService(store, newMemRooms(101), newMemLookup(), NewValidator()), store
}

func TestAmenityService_CreateService(t *testing.T) {
	svc, store := newAmenityService()

	s, err := svc.CreateService(context.Background(), model.CreateServiceRequest{Name: " Spa ", Charges: 1200})
	require.NoError(t, err)
	assert.Equal(t, "Spa", s.Name)
	assert.Equal(t, []string{}, s.ImageURLs)
	assert.Len(t, store.services, 1)

	_, err = svc.CreateService(context.Background(), model.CreateServiceRequest{
		Name:      "Massage",
		ImageURLs: []string{"not a url"},
	})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must be a valid URL", verrs[0].Message)
}

func TestAmenityService_Assign(t *testing.T) {
	svc, _ := newAmenityService()
	ctx := context.Background()
	_, err := svc.CreateService(ctx, model.CreateServiceRequest{Name: "Spa"})
	require.NoError(t, err)

	a, err := svc.Assign(ctx, model.AssignServiceRequest{ServiceID: 1, EmployeeID: 2, RoomID: 101})
	require.NoError(t, err)
	assert.Equal(t, "pending", a.Status)

	_, err = svc.Assign(ctx, model.AssignServiceRequest{ServiceID: 5, EmployeeID: 2, RoomID: 101})
	assert.EqualError(t, err, "Service with ID 5 not found")

	_, err = svc.Assign(ctx, model.AssignServiceRequest{ServiceID: 1, EmployeeID: 2, RoomID: 404})
	assert.EqualError(t, err, "Room with ID 404 not found")
}

func TestAmenityService_UpdateAssignedStatus(t *testing.T) {
	svc, store := newAmenityService()
	ctx := context.Background()
	_, err := svc.CreateService(ctx, model.CreateServiceRequest{Name: "Spa"})
	require.NoError(t, err)
	_, err = svc.Assign(ctx, model.AssignServiceRequest{ServiceID: 1, EmployeeID: 1, RoomID: 101})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAssignedStatus(ctx, 1, model.UpdateStatusRequest{Status: "in_progress"}))
	assert.Equal(t, "in_progress", store.assigned[0].Status)

	assert.True(t, IsClientError(svc.UpdateAssignedStatus(ctx, 1, model.UpdateStatusRequest{Status: "done"})))
	assert.ErrorIs(t, svc.UpdateAssignedStatus(ctx, 9, model.UpdateStatusRequest{Status: "completed"}), repository.ErrNotFound)

	require.NoError(t, svc.DeleteAssigned(ctx, 1))
	assert.Empty(t, store.assigned)
}
