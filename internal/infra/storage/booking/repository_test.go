package booking

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayCalendar/internal/domain"
	"github.com/m04kA/SMC-StayCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayCalendar/pkg/ptr"
	"github.com/m04kA/SMC-StayCalendar/pkg/types"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewRepository(dbmetrics.Wrap(db, nil))
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "property_id", "room_id", "check_in", "check_out", "status",
		"guest_name", "guest_email", "guest_phone", "total_amount", "currency", "notes",
		"cancellation_reason", "cancelled_at", "created_at", "updated_at",
	})
}

func TestCreate_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		PropertyID:  7,
		RoomID:      1,
		CheckIn:     types.MustParseDate("2024-03-01"),
		CheckOut:    types.MustParseDate("2024-03-05"),
		Status:      domain.StatusConfirmed,
		GuestName:   "Anna",
		TotalAmount: 300,
		Currency:    "EUR",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(int64(7), int64(1), "2024-03-01", "2024-03-05", "confirmed", "Anna", nil, nil, 300.0, "EUR", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		PropertyID: 7,
		RoomID:     1,
		CheckIn:    types.MustParseDate("2024-03-01"),
		CheckOut:   types.MustParseDate("2024-03-05"),
		Status:     domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrOverlap)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_OtherErrorIsWrapped(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	serialization := &pq.Error{Code: "40001"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(serialization)

	_, err := repo.Create(context.Background(), &domain.Booking{PropertyID: 7, RoomID: 1})

	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr), "driver error must stay reachable for retries")
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestGetByID_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1$`).
		WithArgs(int64(42)).
		WillReturnRows(bookingRows().AddRow(
			int64(42), int64(7), int64(1), "2024-03-01", "2024-03-05", "confirmed",
			"Anna", "anna@example.com", nil, "300.00", "EUR", nil,
			nil, nil, now, now,
		))

	b, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, types.MustParseDate("2024-03-01"), b.CheckIn)
	assert.Equal(t, types.MustParseDate("2024-03-05"), b.CheckOut)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, ptr.Ptr("anna@example.com"), b.GuestEmail)
	assert.Nil(t, b.GuestPhone)
	assert.Equal(t, 300.0, b.TotalAmount)
	assert.Nil(t, b.CancelledAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WithArgs(int64(42)).WillReturnRows(bookingRows())

	b, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, b)
}

func TestGetByID_LocksRowInTransaction(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(42)).
		WillReturnRows(bookingRows().AddRow(
			int64(42), int64(7), int64(1), "2024-03-01", "2024-03-05", "pending",
			"Anna", nil, nil, 0.0, "EUR", nil, nil, nil, now, now,
		))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 42)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByProperty_OverlapFilter(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	start := types.MustParseDate("2024-03-01")
	end := types.MustParseDate("2024-03-08")
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE property_id = $1 AND room_id IN ($2,$3) AND check_in < $4 AND check_out > $5 AND status <> $6 "+
			"ORDER BY room_id ASC, check_in ASC, id ASC",
	)).
		WithArgs(int64(7), int64(1), int64(2), "2024-03-08", "2024-03-01", "cancelled").
		WillReturnRows(bookingRows().
			AddRow(int64(1), int64(7), int64(1), "2024-02-28", "2024-03-02", "checked_in", "A", nil, nil, 0.0, "EUR", nil, nil, nil, now, now).
			AddRow(int64(2), int64(7), int64(2), "2024-03-07", "2024-03-09", "confirmed", "B", nil, nil, 0.0, "EUR", nil, nil, nil, now, now))

	bookings, err := repo.ListByProperty(context.Background(), domain.BookingsFilter{
		PropertyID: 7,
		RoomIDs:    []int64{1, 2},
		Start:      &start,
		End:        &end,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.StatusCheckedIn, bookings[0].Status)
	assert.Equal(t, int64(2), bookings[1].RoomID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByProperty_IncludeCancelled(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE property_id = $1 ORDER BY")).
		WithArgs(int64(7)).
		WillReturnRows(bookingRows())

	bookings, err := repo.ListByProperty(context.Background(), domain.BookingsFilter{PropertyID: 7, IncludeCancelled: true})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInterval(t *testing.T) {
	tests := []struct {
		name     string
		execErr  error
		affected int64
		wantErr  error
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, wantErr: ErrBookingNotFound},
		{name: "exclusion violation", execErr: &pq.Error{Code: "23P01"}, wantErr: ErrOverlap},
		{name: "db error", execErr: errors.New("connection reset"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, repo := setupMockDB(t)
			defer db.Close()

			exp := mock.ExpectExec(regexp.QuoteMeta(
				"UPDATE bookings SET room_id = $1, check_in = $2, check_out = $3, updated_at = NOW() WHERE id = $4",
			)).WithArgs(int64(2), "2024-03-03", "2024-03-07", int64(42))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.UpdateInterval(context.Background(), 42, 2,
				types.MustParseDate("2024-03-03"), types.MustParseDate("2024-03-07"))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WithArgs("checked_in", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusCheckedIn)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, cancellation_reason = $2, cancelled_at = NOW(), updated_at = NOW() WHERE id = $3",
	)).
		WithArgs("cancelled", "guest request", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 42, "guest request")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
