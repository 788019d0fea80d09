package gesture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	gestureStore "github.com/m04kA/SMC-StayCalendar/internal/infra/cache/gesture"
	"github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
	"github.com/m04kA/SMC-StayCalendar/pkg/ptr"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

const (
	managerID  = int64(100)
	propertyID = int64(7)
	gestureID  = "3f8e2a7c-5b1d-4e9a-8c6f-2d4b7a9e1c3f"
)

var now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	bookings *MockBookingRepository
	store    *MockSessionStore
	updater  *MockStayUpdater
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &MockBookingRepository{},
		store:    &MockSessionStore{},
		updater:  &MockStayUpdater{},
	}
	property := &MockPropertyClient{}
	property.On("GetProperty", mock.Anything, propertyID).
		Return(&propertyservice.Property{ID: propertyID, ManagerIDs: []int64{managerID}}, nil).Maybe()

	f.uc = NewUseCase(f.bookings, f.store, f.updater, property, Settings{
		PixelsPerDay: []float64{24, 48, 96},
		DefaultZoom:  1,
		MaxDays:      31,
		TTL:          5 * time.Minute,
	}, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func booking() *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: propertyID,
		RoomID:     10,
		CheckIn:    types.MustParseDate("2024-03-01"),
		CheckOut:   types.MustParseDate("2024-03-05"),
		Status:     domain.StatusConfirmed,
		GuestName:  "Anna",
	}
}

func session(kind scheduling.GestureKind) *domain.GestureSession {
	return &domain.GestureSession{
		ID:         gestureID,
		UserID:     managerID,
		PropertyID: propertyID,
		Kind:       string(kind),
		Booking:    *booking(),
		StartedAt:  now,
	}
}

func TestBegin(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking(), nil)
	f.store.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.GestureSession) bool {
		return s.UserID == managerID && s.Kind == "resize-end" && s.Booking.ID == 42 && s.StartedAt.Equal(now)
	}), 5*time.Minute).Return(nil)

	resp, err := f.uc.Begin(context.Background(), &BeginRequest{UserID: managerID, BookingID: 42, Kind: scheduling.GestureResizeEnd})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.GestureID)
	assert.Equal(t, now.Add(5*time.Minute), resp.ExpiresAt)
	assert.Equal(t, int64(42), resp.Booking.ID)
	f.store.AssertExpectations(t)
}

func TestBegin_Rejections(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Begin(context.Background(), &BeginRequest{UserID: managerID, BookingID: 42, Kind: "swipe"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("checked out booking", func(t *testing.T) {
		f := newFixture()
		b := booking()
		b.Status = domain.StatusCheckedOut
		f.bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

		_, err := f.uc.Begin(context.Background(), &BeginRequest{UserID: managerID, BookingID: 42, Kind: scheduling.GestureDrag})

		assert.ErrorIs(t, err, ErrBookingNotMovable)
	})

	t.Run("not a manager", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking(), nil)

		_, err := f.uc.Begin(context.Background(), &BeginRequest{UserID: 5, BookingID: 42, Kind: scheduling.GestureDrag})

		assert.ErrorIs(t, err, ErrAccessDenied)
		f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPreview(t *testing.T) {
	f := newFixture()
	f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureDrag), nil)

	resp, err := f.uc.Preview(context.Background(), &PreviewRequest{
		UserID:       managerID,
		GestureID:    gestureID,
		DayDelta:     2,
		TargetRoomID: 11,
		WindowStart:  types.MustParseDate("2024-03-01"),
		Days:         7,
		Zoom:         ptr.Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.RoomID)
	assert.Equal(t, types.MustParseDate("2024-03-03"), resp.CheckIn)
	assert.Equal(t, types.MustParseDate("2024-03-07"), resp.CheckOut)
	assert.Equal(t, 96.0, resp.PixelsPerDay)
	assert.Equal(t, 192.0, resp.Position.Offset)
	assert.Equal(t, 384.0, resp.Position.Width)
	assert.True(t, resp.Position.Visible)
	f.updater.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

func TestPreview_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  PreviewRequest
	}{
		{name: "no window start", req: PreviewRequest{Days: 7}},
		{name: "too many days", req: PreviewRequest{WindowStart: types.MustParseDate("2024-03-01"), Days: 32}},
		{name: "zoom out of range", req: PreviewRequest{WindowStart: types.MustParseDate("2024-03-01"), Days: 7, Zoom: ptr.Ptr(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureDrag), nil)
			req := tt.req
			req.UserID = managerID
			req.GestureID = gestureID

			_, err := f.uc.Preview(context.Background(), &req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSessionOwnership(t *testing.T) {
	f := newFixture()
	f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureDrag), nil)
	f.store.On("Get", mock.Anything, "3f8e2a7c-0000-4e9a-8c6f-2d4b7a9e1c3f").Return(nil, gestureStore.ErrSessionNotFound)

	_, err := f.uc.Commit(context.Background(), &CommitRequest{UserID: 5, GestureID: gestureID, DayDelta: 1})
	assert.ErrorIs(t, err, ErrGestureNotFound)

	_, err = f.uc.Commit(context.Background(), &CommitRequest{UserID: managerID, GestureID: "3f8e2a7c-0000-4e9a-8c6f-2d4b7a9e1c3f"})
	assert.ErrorIs(t, err, ErrGestureNotFound)

	_, err = f.uc.Commit(context.Background(), &CommitRequest{UserID: managerID, GestureID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrGestureNotFound)

	f.updater.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

func TestCommit_Drag(t *testing.T) {
	f := newFixture()
	f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureDrag), nil)
	f.store.On("Delete", mock.Anything, gestureID).Return(nil)
	f.updater.On("Move", mock.Anything, &update_stay.MoveRequest{
		UserID: managerID, BookingID: 42, DayDelta: 4, TargetRoomID: 0,
		Expected: &update_stay.Snapshot{RoomID: 10, CheckIn: types.MustParseDate("2024-03-01"), CheckOut: types.MustParseDate("2024-03-05")},
	}).Return(&update_stay.Response{Accepted: false, BookingID: 42, Reason: scheduling.ReasonConflict}, nil)

	resp, err := f.uc.Commit(context.Background(), &CommitRequest{UserID: managerID, GestureID: gestureID, DayDelta: 4})

	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	// Отклонённый жест тоже завершается
	f.store.AssertCalled(t, "Delete", mock.Anything, gestureID)
}

func TestCommit_ResizeStayRuleKeepsSession(t *testing.T) {
	f := newFixture()
	f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureResizeStart), nil)
	f.updater.On("Resize", mock.Anything, &update_stay.ResizeRequest{
		UserID: managerID, BookingID: 42, Direction: scheduling.ResizeStart, DayDelta: 3,
		Expected: &update_stay.Snapshot{RoomID: 10, CheckIn: types.MustParseDate("2024-03-01"), CheckOut: types.MustParseDate("2024-03-05")},
	}).Return(nil, update_stay.ErrStayRuleViolation)

	_, err := f.uc.Commit(context.Background(), &CommitRequest{UserID: managerID, GestureID: gestureID, DayDelta: 3})

	assert.ErrorIs(t, err, update_stay.ErrStayRuleViolation)
	f.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	f := newFixture()
	f.store.On("Get", mock.Anything, gestureID).Return(session(scheduling.GestureDrag), nil)
	f.store.On("Delete", mock.Anything, gestureID).Return(nil)

	require.NoError(t, f.uc.Cancel(context.Background(), managerID, gestureID))
	f.store.AssertExpectations(t)
}
