package bookings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
	"github.com/m04kA/SMC-StayCalendar/pkg/ptr"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

const (
	managerID  = int64(100)
	propertyID = int64(7)
)

func newService() (*Service, *MockBookingRepository) {
	repo := &MockBookingRepository{}
	property := &MockPropertyClient{}
	property.On("GetProperty", mock.Anything, propertyID).
		Return(&propertyservice.Property{ID: propertyID, ManagerIDs: []int64{managerID}}, nil).Maybe()
	return NewService(repo, property, passTxManager{}, logger.NewNop()), repo
}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: propertyID,
		RoomID:     1,
		CheckIn:    types.MustParseDate("2024-03-01"),
		CheckOut:   types.MustParseDate("2024-03-04"),
		Status:     status,
		GuestName:  "Anna",
		Currency:   "EUR",
	}
}

func TestGetByID(t *testing.T) {
	svc, repo := newService()
	repo.On("GetByID", mock.Anything, int64(42)).Return(booking(domain.StatusConfirmed), nil)

	resp, err := svc.GetByID(context.Background(), 42, managerID)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "confirmed", resp.Status)

	_, err = svc.GetByID(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo := newService()
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 1, managerID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByProperty(t *testing.T) {
	svc, repo := newService()
	start := types.MustParseDate("2024-03-01")
	end := types.MustParseDate("2024-03-31")

	repo.On("ListByProperty", mock.Anything, domain.BookingsFilter{
		PropertyID: propertyID,
		RoomIDs:    []int64{1},
		Start:      &start,
		End:        &end,
		Status:     ptr.Ptr(domain.StatusConfirmed),
	}).Return([]*domain.Booking{booking(domain.StatusConfirmed)}, nil)

	resp, err := svc.ListByProperty(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     managerID,
		PropertyID: propertyID,
		RoomID:     ptr.Ptr(int64(1)),
		Start:      &start,
		End:        &end,
		Status:     ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(42), resp.Bookings[0].ID)
}

func TestListByProperty_InvalidInput(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ListByProperty(context.Background(), &models.GetPropertyBookingsRequest{
		UserID: managerID, PropertyID: propertyID, Status: ptr.Ptr("lost"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByProperty(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     managerID,
		PropertyID: propertyID,
		Start:      ptr.Ptr(types.MustParseDate("2024-03-05")),
		End:        ptr.Ptr(types.MustParseDate("2024-03-01")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		wantErr error
	}{
		{name: "pending", status: domain.StatusPending},
		{name: "confirmed", status: domain.StatusConfirmed},
		{name: "checked in", status: domain.StatusCheckedIn, wantErr: ErrCannotCancel},
		{name: "already cancelled", status: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			repo.On("GetByID", mock.Anything, int64(42)).Return(booking(tt.status), nil)
			repo.On("Cancel", mock.Anything, int64(42), "guest request").Return(nil).Maybe()

			err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
				UserID: managerID, CancellationReason: "guest request",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertCalled(t, "Cancel", mock.Anything, int64(42), "guest request")
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, repo := newService()

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID: managerID, CancellationReason: strings.Repeat("я", domain.MaxCancellationReasonLen+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "confirm", from: domain.StatusPending, to: "confirmed"},
		{name: "check in", from: domain.StatusConfirmed, to: "checked_in"},
		{name: "skip check in", from: domain.StatusConfirmed, to: "checked_out", wantErr: ErrInvalidTransition},
		{name: "cancel goes through Cancel", from: domain.StatusPending, to: "cancelled", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "lost", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			repo.On("GetByID", mock.Anything, int64(42)).Return(booking(tt.from), nil).Maybe()
			repo.On("UpdateStatus", mock.Anything, int64(42), domain.BookingStatus(tt.to)).Return(nil).Maybe()

			err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{UserID: managerID, Status: tt.to})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateStatus_AccessDenied(t *testing.T) {
	svc, repo := newService()
	repo.On("GetByID", mock.Anything, int64(42)).Return(booking(domain.StatusPending), nil)

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{UserID: 5, Status: "confirmed"})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
