package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	intconfig "travelbackend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookingRouter(t *testing.T, sender *fakeSender) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	r := setupNotifyRouter(t, sender)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		intconfig.DB = nil
	})
	intconfig.DB = db

	r.POST("/api/bookings", CreateBooking)
	return r, mock
}

// validBookingJSON uses a pickup date a week out so the advance-window check
// passes regardless of when the test runs.
func validBookingJSON() string {
	return fmt.Sprintf(`{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"mobileNumber": "9876543210",
		"selectedCar": "Innova Crysta",
		"pickupDate": %q,
		"pickupTime": "09:30",
		"pickupLocation": "Jalgaon Bus Stand",
		"dropoffLocation": "Mumbai Airport"
	}`, time.Now().AddDate(0, 0, 7).Format("2006-01-02"))
}

func TestCreateBookingEndToEnd(t *testing.T) {
	sender := &fakeSender{}
	r, mock := setupBookingRouter(t, sender)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postJSON(r, "/api/bookings", validBookingJSON())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.NotContains(t, w.Body.String(), "email_warning")
	assert.Len(t, sender.sent, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingSenderFailureStillCreates(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	r, mock := setupBookingRouter(t, sender)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postJSON(r, "/api/bookings", validBookingJSON())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), "email_warning")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingValidationFailureWritesNothing(t *testing.T) {
	sender := &fakeSender{}
	r, mock := setupBookingRouter(t, sender)

	w := postJSON(r, "/api/bookings", `{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"mobileNumber": "9876543210",
		"selectedCar": "Innova Crysta",
		"pickupDate": "`+time.Now().AddDate(0, 0, 7).Format("2006-01-02")+`",
		"pickupTime": "09:30",
		"pickupLocation": "Jalgaon Bus Stand",
		"dropoffLocation": "jalgaon bus stand"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPastDateRejected(t *testing.T) {
	sender := &fakeSender{}
	r, mock := setupBookingRouter(t, sender)

	w := postJSON(r, "/api/bookings", `{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"mobileNumber": "9876543210",
		"selectedCar": "Innova Crysta",
		"pickupDate": "2020-01-15",
		"pickupTime": "09:30",
		"pickupLocation": "Jalgaon Bus Stand",
		"dropoffLocation": "Mumbai Airport"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "past date")
	require.NoError(t, mock.ExpectationsWereMet())
}
