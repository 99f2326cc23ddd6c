package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"

	"github.com/google/uuid"
)

// Notifier is the side channel of the booking workflow. Every call is
// best-effort: a failure is downgraded to a warning and never blocks or
// rolls back a store write.
type Notifier interface {
	BookingReceived(ctx context.Context, b models.Booking) error
	BookingStatus(ctx context.Context, b models.Booking, status, reason string) error
	FeedbackReceived(ctx context.Context, f models.Feedback) error
}

type BookingService struct {
	Bookings  repositories.BookingRepo
	Notifier  Notifier
	RequestID string
	Now       func() time.Time // test hook, defaults to time.Now
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// maxAdvance bounds how far ahead a pickup date may lie.
const maxAdvanceMonths = 3

// minSameDayLead is the minimum gap between booking and pickup when the
// pickup is today.
const minSameDayLead = 2 * time.Hour

func validLocation(v string) bool {
	v = utils.NormalizeSpace(v)
	return len(v) >= 3 && utils.ContainsLetter(v)
}

// validateDraft checks the booking invariants. It returns a ValidationError
// with a human-readable reason; nothing is written when it fails.
func (s BookingService) validateDraft(d models.BookingDraft) error {
	if strings.TrimSpace(d.FullName) == "" {
		return domain.ValidationError{Field: "fullName", Msg: "name is required"}
	}
	if !emailRe.MatchString(strings.TrimSpace(d.Email)) || len(d.Email) > 100 {
		return domain.ValidationError{Field: "email", Msg: "enter a valid email address"}
	}
	if !mobileRe.MatchString(strings.TrimSpace(d.MobileNumber)) {
		return domain.ValidationError{Field: "mobileNumber", Msg: "mobile number must be 10 digits"}
	}
	if strings.TrimSpace(d.SelectedCar) == "" {
		return domain.ValidationError{Field: "selectedCar", Msg: "select a car"}
	}

	if !validLocation(d.PickupLocation) || !validLocation(d.DropoffLocation) {
		return domain.ValidationError{
			Field: "pickupLocation",
			Msg:   "enter proper pickup and drop-off locations (at least 3 characters and include letters)",
		}
	}
	pickup := strings.ToLower(utils.NormalizeSpace(d.PickupLocation))
	dropoff := strings.ToLower(utils.NormalizeSpace(d.DropoffLocation))
	if pickup == dropoff {
		return domain.ValidationError{
			Field: "dropoffLocation",
			Msg:   "pickup and drop-off locations cannot be the same",
		}
	}

	now := s.now()
	pickupDate, err := utils.ParseDate(d.PickupDate)
	if err != nil {
		return domain.ValidationError{Field: "pickupDate", Msg: "date must be YYYY-MM-DD", Err: err}
	}
	hour, minute, err := utils.ParseClock(d.PickupTime)
	if err != nil {
		return domain.ValidationError{Field: "pickupTime", Msg: "time must be 24-hour HH:MM", Err: err}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if pickupDate.Before(today) {
		return domain.ValidationError{Field: "pickupDate", Msg: "you cannot book for a past date"}
	}
	if pickupDate.After(today.AddDate(0, maxAdvanceMonths, 0)) {
		return domain.ValidationError{Field: "pickupDate", Msg: "you can only book up to 3 months from today"}
	}
	if pickupDate.Equal(today) {
		pickupAt := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if pickupAt.Before(now.Add(minSameDayLead)) {
			return domain.ValidationError{
				Field: "pickupTime",
				Msg:   "for same-day bookings, pickup time must be at least 2 hours from now",
			}
		}
	}
	return nil
}

// Create validates the draft and persists a pending booking. The
// confirmation email is attempted afterwards; its failure comes back as a
// non-fatal warning, never as an error.
func (s BookingService) Create(ctx context.Context, d models.BookingDraft, userID *int64) (models.Booking, error, error) {
	if err := s.validateDraft(d); err != nil {
		return models.Booking{}, nil, err
	}

	b := models.Booking{
		BookingCode:     uuid.NewString(),
		FullName:        strings.TrimSpace(d.FullName),
		Email:           strings.TrimSpace(d.Email),
		MobileNumber:    strings.TrimSpace(d.MobileNumber),
		SelectedCar:     strings.TrimSpace(d.SelectedCar),
		PickupDate:      strings.TrimSpace(d.PickupDate),
		PickupTime:      strings.TrimSpace(d.PickupTime),
		PickupLocation:  utils.NormalizeSpace(d.PickupLocation),
		DropoffLocation: utils.NormalizeSpace(d.DropoffLocation),
		Status:          domain.StatusPending,
		UserID:          userID,
		CreatedAt:       s.now(),
	}

	if err := s.Bookings.Insert(&b); err != nil {
		return models.Booking{}, nil, domain.InternalError{Msg: "failed to save booking", Err: err}
	}

	var warn error
	if s.Notifier != nil {
		if err := s.Notifier.BookingReceived(ctx, b); err != nil {
			warn = domain.NotificationError{Msg: "confirmation email could not be sent", Err: err}
			utils.LogWarn(s.RequestID, "booking", "notify_received", err)
		}
	}
	return b, warn, nil
}

// Transition moves a booking to accepted or rejected. The notification email
// is attempted before the store write, and its failure never blocks the
// write. Terminal states do not transition again.
func (s BookingService) Transition(ctx context.Context, id int64, newStatus, reason string) (models.Booking, error, error) {
	newStatus = strings.ToLower(strings.TrimSpace(newStatus))
	if !domain.IsTransitionTarget(newStatus) {
		return models.Booking{}, nil, domain.ValidationError{
			Field: "status",
			Msg:   fmt.Sprintf("status must be %q or %q", domain.StatusAccepted, domain.StatusRejected),
		}
	}
	if newStatus != domain.StatusRejected {
		reason = ""
	}

	b, err := s.Bookings.GetByID(id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return models.Booking{}, nil, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, nil, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !domain.CanTransition(b.Status, newStatus) {
		return models.Booking{}, nil, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("cannot move a %s booking to %s", b.Status, newStatus),
		}
	}

	var warn error
	if s.Notifier != nil {
		if err := s.Notifier.BookingStatus(ctx, b, newStatus, reason); err != nil {
			warn = domain.NotificationError{Msg: "status email could not be sent", Err: err}
			utils.LogWarn(s.RequestID, "booking", "notify_status", err)
		}
	}

	affected, err := s.Bookings.UpdateStatus(id, b.Status, newStatus, reason)
	if err != nil {
		return models.Booking{}, warn, domain.InternalError{Msg: "failed to update booking status", Err: err}
	}
	if affected == 0 {
		// Lost a race with another operator; the record moved under us.
		return models.Booking{}, warn, domain.ConflictError{Resource: "booking", Msg: "booking was updated concurrently"}
	}

	b.Status = newStatus
	b.RejectReason = reason
	utils.LogEvent(s.RequestID, "booking", "transition", fmt.Sprintf("id=%d status=%s", id, newStatus))
	return b, warn, nil
}

// Delete removes a booking. Owners may delete their own record,
// administrators any record.
func (s BookingService) Delete(id int64, actorID int64, admin bool) error {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return domain.NotFoundError{Resource: "booking"}
		}
		return domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !admin && (b.UserID == nil || *b.UserID != actorID) {
		return domain.ForbiddenError{Msg: "you can only delete your own bookings"}
	}

	existed, err := s.Bookings.Delete(id)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete booking", Err: err}
	}
	if !existed {
		// Already gone between read and write; deletion is idempotent.
		return nil
	}
	utils.LogEvent(s.RequestID, "booking", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
