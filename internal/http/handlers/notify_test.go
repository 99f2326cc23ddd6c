package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/mail"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func setupNotifyRouter(t *testing.T, sender *fakeSender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Configure(intconfig.Env{}, &mail.Notify{
		Sender:       sender,
		From:         "travels.bappa15@gmail.com",
		AdminEmail:   "yashnile.435@gmail.com",
		SupportEmail: "support@bappatravels.com",
	}, services.NewLoginLimiter())

	r := gin.New()
	r.POST("/api/notify/booking", NotifyBooking)
	r.POST("/api/notify/feedback", NotifyFeedback)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestNotifyBookingMissingFields(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/booking", `{"email":"a@b.co"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
	assert.Empty(t, sender.sent)
}

func TestNotifyBookingReceivedSendsTwoEmails(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/booking", `{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"mobileNumber": "9876543210",
		"selectedCar": "Innova Crysta",
		"pickupDate": "2026-03-15",
		"pickupTime": "13:05",
		"pickupLocation": "Jalgaon",
		"dropoffLocation": "Mumbai"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 2)

	admin, user := sender.sent[0], sender.sent[1]
	assert.Equal(t, "travels.bappa15@gmail.com", admin.From)
	assert.Equal(t, "yashnile.435@gmail.com", admin.To)
	assert.Equal(t, "New Booking Received - Bappa Travels", admin.Subject)
	assert.Equal(t, "asha@example.com", user.To)
	assert.Contains(t, user.HTML, "1:05 PM")
}

func TestNotifyBookingStatusSendsOneEmail(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/booking", `{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"status": "rejected",
		"reason": "No cars available"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "asha@example.com", sender.sent[0].To)
	assert.Equal(t, "Your Booking Has Been Rejected", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "No cars available")
}

func TestNotifyBookingNonTerminalStatusSendsOneEmail(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/booking", `{
		"fullName": "Asha Patil",
		"email": "asha@example.com",
		"status": "pending"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "asha@example.com", sender.sent[0].To)
	assert.Equal(t, "Booking Status: PENDING", sender.sent[0].Subject)
}

func TestNotifyBookingSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/booking", `{"fullName":"Asha","email":"a@b.co"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "smtp unreachable")
}

func TestNotifyFeedbackRequiresAllFields(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/feedback", `{"name":"Ravi","email":"r@b.co","rating":4}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.sent)
}

func TestNotifyFeedbackSendsToSupport(t *testing.T) {
	sender := &fakeSender{}
	r := setupNotifyRouter(t, sender)

	w := postJSON(r, "/api/notify/feedback", `{
		"name": "Ravi",
		"email": "ravi@example.com",
		"message": "Great ride",
		"rating": 5
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "support@bappatravels.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "Ravi")
}
