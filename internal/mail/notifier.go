package mail

import (
	"context"

	"travelbackend/internal/domain/models"
)

// Notify implements the application-facing notification contract on top of a
// Sender. One instance serves both the booking workflow and the public
// notification endpoints, so the email contract exists exactly once.
type Notify struct {
	Sender       Sender
	From         string
	AdminEmail   string
	SupportEmail string
}

func detailsFromBooking(b models.Booking) BookingDetails {
	return BookingDetails{
		FullName:        b.FullName,
		Email:           b.Email,
		MobileNumber:    b.MobileNumber,
		SelectedCar:     b.SelectedCar,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
	}
}

// BookingReceived sends the operator notification plus the requester
// confirmation for a freshly created booking.
func (n *Notify) BookingReceived(ctx context.Context, b models.Booking) error {
	d := detailsFromBooking(b)

	if err := n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      n.AdminEmail,
		Subject: AdminBookingSubject(),
		HTML:    BuildAdminBookingHTML(d),
	}); err != nil {
		return err
	}

	return n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      b.Email,
		Subject: UserBookingSubject(KindReceived),
		HTML:    BuildUserBookingHTML(KindReceived, d, ""),
	})
}

// BookingStatus sends exactly one status-update email to the requester.
func (n *Notify) BookingStatus(ctx context.Context, b models.Booking, status, reason string) error {
	d := detailsFromBooking(b)
	return n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      b.Email,
		Subject: UserBookingSubject(status),
		HTML:    BuildUserBookingHTML(status, d, reason),
	})
}

// FeedbackReceived notifies the support mailbox about new site feedback.
func (n *Notify) FeedbackReceived(ctx context.Context, f models.Feedback) error {
	return n.Sender.Send(ctx, Message{
		From:    n.From,
		To:      n.SupportEmail,
		Subject: FeedbackSubject(f.Name),
		HTML:    BuildFeedbackHTML(f.Name, f.Email, f.Message, f.Rating),
	})
}
