package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/internal/scheduling"
	"github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

func TestStayError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKnown  bool
	}{
		{name: "booking not found", err: update_stay.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantKnown: true},
		{name: "property not found", err: update_stay.ErrPropertyNotFound, wantStatus: http.StatusNotFound, wantKnown: true},
		{name: "room not found", err: update_stay.ErrRoomNotFound, wantStatus: http.StatusNotFound, wantKnown: true},
		{name: "access denied", err: update_stay.ErrAccessDenied, wantStatus: http.StatusForbidden, wantKnown: true},
		{name: "not movable", err: fmt.Errorf("%w: status=cancelled", update_stay.ErrBookingNotMovable), wantStatus: http.StatusConflict, wantKnown: true},
		{name: "room inactive", err: update_stay.ErrRoomInactive, wantStatus: http.StatusUnprocessableEntity, wantKnown: true},
		{name: "stay rule", err: fmt.Errorf("%w: min-stay", update_stay.ErrStayRuleViolation), wantStatus: http.StatusUnprocessableEntity, wantKnown: true},
		{name: "invalid input", err: update_stay.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantKnown: true},
		{name: "internal", err: fmt.Errorf("%w: db down", update_stay.ErrInternal), wantStatus: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message, known := StayError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKnown, known)
			assert.NotEmpty(t, message)
		})
	}
}

func TestStayResultStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, StayResultStatus(&update_stay.Response{Accepted: true}))
	assert.Equal(t, http.StatusConflict, StayResultStatus(&update_stay.Response{Reason: scheduling.ReasonConflict}))
	assert.Equal(t, http.StatusConflict, StayResultStatus(&update_stay.Response{Reason: scheduling.ReasonStale}))
	assert.Equal(t, http.StatusBadRequest, StayResultStatus(&update_stay.Response{Reason: scheduling.ReasonInvalidRange}))
}

func TestFromStayResponse(t *testing.T) {
	t.Run("conflict carries the blocking booking", func(t *testing.T) {
		blocking := &domain.Booking{
			ID:       9,
			RoomID:   11,
			CheckIn:  types.MustParseDate("2026-03-04"),
			CheckOut: types.MustParseDate("2026-03-06"),
			Status:   domain.StatusConfirmed,
		}

		resp := FromStayResponse(&update_stay.Response{
			BookingID:          1,
			RoomID:             10,
			CheckIn:            types.MustParseDate("2026-03-01"),
			CheckOut:           types.MustParseDate("2026-03-03"),
			Reason:             scheduling.ReasonConflict,
			ConflictingBooking: blocking,
		})

		assert.False(t, resp.Accepted)
		assert.Equal(t, "conflict", resp.Reason)
		if assert.NotNil(t, resp.ConflictingBooking) {
			assert.Equal(t, int64(9), resp.ConflictingBooking.ID)
			assert.Equal(t, 2, resp.ConflictingBooking.Nights)
		}
		// Пустой список, а не null в JSON
		assert.NotNil(t, resp.Warnings)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("accepted with override keeps warnings", func(t *testing.T) {
		resp := FromStayResponse(&update_stay.Response{
			Accepted: true,
			Changed:  true,
			Warnings: []scheduling.StayWarning{{Kind: scheduling.WarningMinStay, RoomID: 10, Nights: 1, Limit: 2}},
		})

		assert.Nil(t, resp.ConflictingBooking)
		assert.Equal(t, []WarningResponse{{Kind: "min-stay", RoomID: 10, Nights: 1, Limit: 2}}, resp.Warnings)
	})
}
