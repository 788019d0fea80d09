package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

const (
	managerID  = int64(100)
	propertyID = int64(7)
	roomID     = int64(1)
)

type fixture struct {
	bookings *MockBookingRepository
	rooms    *MockRoomRepository
	property *MockPropertyClient
	metrics  *MockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &MockBookingRepository{},
		rooms:    &MockRoomRepository{},
		property: &MockPropertyClient{},
		metrics:  &MockMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.rooms, f.property, passTxManager{}, f.metrics, logger.NewNop())
	f.property.On("GetProperty", mock.Anything, propertyID).
		Return(&propertyservice.Property{ID: propertyID, ManagerIDs: []int64{managerID}}, nil).Maybe()
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:     managerID,
		PropertyID: propertyID,
		RoomID:     roomID,
		CheckIn:    types.MustParseDate("2024-03-05"),
		CheckOut:   types.MustParseDate("2024-03-07"),
		GuestName:  "Anna",
	}
}

func activeRoom() *domain.Room {
	return &domain.Room{ID: roomID, PropertyID: propertyID, Name: "Double", TotalUnits: 1, IsActive: true}
}

func existing(id int64, in, out string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		PropertyID: propertyID,
		RoomID:     roomID,
		CheckIn:    types.MustParseDate(in),
		CheckOut:   types.MustParseDate(out),
		Status:     domain.StatusConfirmed,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	req := validRequest()

	f.rooms.On("GetByID", mock.Anything, roomID).Return(activeRoom(), nil)
	// Выезд соседа в день заезда не является пересечением
	f.bookings.On("ListByProperty", mock.Anything, mock.MatchedBy(func(filter domain.BookingsFilter) bool {
		return filter.PropertyID == propertyID && filter.Start.Equal(req.CheckIn) && filter.End.Equal(req.CheckOut)
	})).Return([]*domain.Booking{existing(1, "2024-03-01", "2024-03-05")}, nil)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.RoomID == roomID && b.Status == domain.StatusConfirmed && b.Currency == domain.DefaultCurrency
	})).Return(&domain.Booking{ID: 55, RoomID: roomID}, nil)
	f.metrics.On("ObserveMutation", "create", "accepted").Once()

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.Booking.ID)
	assert.Empty(t, resp.Warnings)
	f.bookings.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestExecute_Conflict(t *testing.T) {
	f := newFixture()

	f.rooms.On("GetByID", mock.Anything, roomID).Return(activeRoom(), nil)
	f.bookings.On("ListByProperty", mock.Anything, mock.Anything).
		Return([]*domain.Booking{existing(9, "2024-03-06", "2024-03-08")}, nil)
	f.metrics.On("ObserveMutation", "create", "conflict").Once()

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.metrics.AssertExpectations(t)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	cancelled := existing(9, "2024-03-05", "2024-03-07")
	cancelled.Status = domain.StatusCancelled

	f.rooms.On("GetByID", mock.Anything, roomID).Return(activeRoom(), nil)
	f.bookings.On("ListByProperty", mock.Anything, mock.Anything).Return([]*domain.Booking{cancelled}, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 56}, nil)
	f.metrics.On("ObserveMutation", "create", "accepted")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_ExclusionViolationIsConflict(t *testing.T) {
	f := newFixture()

	f.rooms.On("GetByID", mock.Anything, roomID).Return(activeRoom(), nil)
	f.bookings.On("ListByProperty", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrOverlap)
	f.metrics.On("ObserveMutation", "create", "conflict")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_StayRules(t *testing.T) {
	room := activeRoom()
	room.MinStayNights = 3

	t.Run("rejected without override", func(t *testing.T) {
		f := newFixture()
		f.rooms.On("GetByID", mock.Anything, roomID).Return(room, nil)
		f.bookings.On("ListByProperty", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
		f.metrics.On("ObserveMutation", "create", "stay-rule")

		_, err := f.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrStayRuleViolation)
		f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("accepted with override", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Override = true

		f.rooms.On("GetByID", mock.Anything, roomID).Return(room, nil)
		f.bookings.On("ListByProperty", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
		f.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 57}, nil)
		f.metrics.On("ObserveMutation", "create", "accepted")

		resp, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, scheduling.WarningMinStay, resp.Warnings[0].Kind)
	})
}

func TestExecute_RoomChecks(t *testing.T) {
	otherProperty := activeRoom()
	otherProperty.PropertyID = 8
	inactive := activeRoom()
	inactive.IsActive = false

	tests := []struct {
		name    string
		room    *domain.Room
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: roomRepo.ErrRoomNotFound, wantErr: ErrRoomNotFound},
		{name: "other property", room: otherProperty, wantErr: ErrRoomNotFound},
		{name: "inactive", room: inactive, wantErr: ErrRoomInactive},
		{name: "db error", repoErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.room != nil {
				f.rooms.On("GetByID", mock.Anything, roomID).Return(tt.room, nil)
			} else {
				f.rooms.On("GetByID", mock.Anything, roomID).Return(nil, tt.repoErr)
			}
			f.metrics.On("ObserveMutation", "create", mock.Anything)

			_, err := f.uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_Access(t *testing.T) {
	t.Run("not a manager", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.UserID = 5

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAccessDenied)
		f.rooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("property not found", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.PropertyID = 8
		f.property.On("GetProperty", mock.Anything, int64(8)).Return(nil, propertyservice.ErrPropertyNotFound)

		_, err := f.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "checkout equals checkin", modify: func(r *Request) { r.CheckOut = r.CheckIn }},
		{name: "checkout before checkin", modify: func(r *Request) { r.CheckOut = r.CheckIn.AddDays(-1) }},
		{name: "missing checkin", modify: func(r *Request) { r.CheckIn = types.Date{} }},
		{name: "too long", modify: func(r *Request) { r.CheckOut = r.CheckIn.AddDays(domain.MaxStayNightsLimit + 1) }},
		{name: "empty guest", modify: func(r *Request) { r.GuestName = "" }},
		{name: "bad currency", modify: func(r *Request) { r.Currency = "EURO" }},
		{name: "negative amount", modify: func(r *Request) { r.TotalAmount = -1 }},
		{name: "cancelled status", modify: func(r *Request) {
			s := domain.StatusCancelled
			r.Status = &s
		}},
		{name: "no room", modify: func(r *Request) { r.RoomID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest()))
}
