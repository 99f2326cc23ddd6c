package mail

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Brand palette shared by all generated emails.
const (
	brandPrimary     = "#388e3c"
	brandPrimaryDark = "#2e7d32"
	brandAccent      = "#66bb6a"
	brandText        = "#222"
	brandMuted       = "#6b7280"
	brandBorder      = "#e5e7eb"
	brandBg          = "#f7fbf7"
)

const logoURL = "https://bappatravels.com/logo512.png"

// BookingDetails is the template input for every booking-related email.
type BookingDetails struct {
	FullName        string
	Email           string
	MobileNumber    string
	SelectedCar     string
	PickupDate      string
	PickupTime      string
	PickupLocation  string
	DropoffLocation string
}

var clockRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?`)

// FormatTime12Hour renders a pickup time as 12-hour "H:MM AM/PM". Values
// that already carry a meridiem marker come back uppercased unchanged; bare
// hours default the minute to 00; empty input renders the "-" placeholder.
func FormatTime12Hour(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return "-"
	}
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "am") || strings.Contains(lower, "pm") {
		return strings.ToUpper(raw)
	}
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	h, _ := strconv.Atoi(m[1])
	min := m[2]
	if min == "" {
		min = "00"
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, min, suffix)
}

// orDash substitutes the literal placeholder for missing fields so emails
// never show a blank value silently.
func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return html.EscapeString(v)
}

func detailItem(label, value string) string {
	return fmt.Sprintf(`
    <div style="margin:0 0 10px 0;">
      <div style="font-size:11px; letter-spacing:0.3px; color:%s; text-transform:uppercase;">%s</div>
      <div style="font-size:15px; color:%s; font-weight:600;">%s</div>
    </div>`, brandMuted, label, brandText, value)
}

func detailsRows(d BookingDetails) string {
	left := fmt.Sprintf(`
    <div style="border:1px solid %s; border-radius:12px; padding:12px; background:#fff;">%s%s%s%s
    </div>`, brandBorder,
		detailItem("Name", orDash(d.FullName)),
		detailItem("Email", orDash(d.Email)),
		detailItem("Mobile", orDash(d.MobileNumber)),
		detailItem("Car", orDash(d.SelectedCar)))

	right := fmt.Sprintf(`
    <div style="border:1px solid %s; border-radius:12px; padding:12px; background:#fff;">%s%s%s%s
    </div>`, brandBorder,
		detailItem("Date", orDash(d.PickupDate)),
		detailItem("Time", html.EscapeString(FormatTime12Hour(d.PickupTime))),
		detailItem("Pickup", orDash(d.PickupLocation)),
		detailItem("Drop-off", orDash(d.DropoffLocation)))

	return fmt.Sprintf(`
    <table role="presentation" cellpadding="0" cellspacing="0" width="100%%" style="border-collapse:collapse; margin: 6px 0 0 0;">
      <tr>
        <td width="50%%" valign="top" style="padding:8px 6px 8px 0;">%s</td>
        <td width="50%%" valign="top" style="padding:8px 0 8px 6px;">%s</td>
      </tr>
    </table>`, left, right)
}

func wrapper(title, intro, bodyHTML, footerNote string) string {
	if footerNote == "" {
		footerNote = "Bappa Travels &bull; Jalgaon &bull; +91 90113 33966"
	}
	introBlock := ""
	if intro != "" {
		introBlock = fmt.Sprintf(`<p style="margin:0 0 12px 0; color:%s; line-height:1.5;">%s</p>`, brandText, intro)
	}
	return fmt.Sprintf(`
  <div style="background:%s; padding:24px 12px;">
    <div style="max-width:560px; margin:0 auto; background:#ffffff; border:1px solid %s; border-radius:14px; overflow:hidden; box-shadow:0 6px 18px rgba(0,0,0,0.06); font-family: Arial, sans-serif;">
      <div style="display:flex; align-items:center; gap:12px; padding:16px 18px; background: linear-gradient(90deg, %s, %s); color:#fff;">
        <img src="%s" alt="Bappa Travels" width="40" height="40" style="border-radius:8px; display:block;" />
        <div style="font-size:18px; font-weight:700;">Bappa Travels</div>
      </div>
      <div style="padding:20px 18px 8px 18px;">
        <h2 style="margin:0 0 8px 0; color:%s; font-size:20px;">%s</h2>
        %s
        %s
      </div>
      <div style="padding:14px 18px 18px 18px;">
        <div style="margin-top:8px; font-size:12px; color:%s;">%s</div>
      </div>
    </div>
  </div>`, brandBg, brandBorder, brandPrimary, brandAccent, logoURL, brandPrimaryDark, title, introBlock, bodyHTML, brandMuted, footerNote)
}

func badge(text, bg, fg string) string {
	return fmt.Sprintf(`<span style="display:inline-block; padding:4px 10px; border-radius:999px; background:%s; color:%s; font-size:12px; font-weight:700; border:1px solid %s;">%s</span>`, bg, fg, brandBorder, text)
}

// BuildAdminBookingHTML renders the operator notification for a new booking.
func BuildAdminBookingHTML(d BookingDetails) string {
	intro := "A new booking has been made. " + badge("New Booking", brandBg, brandPrimaryDark)
	quick := fmt.Sprintf(`
    <div style="margin:12px 0 0 0;">
      <a href="mailto:%s" style="display:inline-block; padding:8px 12px; background:%s; color:#fff; text-decoration:none; border-radius:8px; font-weight:600; font-size:13px;">Reply to customer</a>`,
		html.EscapeString(d.Email), brandPrimary)
	if strings.TrimSpace(d.MobileNumber) != "" {
		quick += fmt.Sprintf(`
      <a href="tel:%s" style="display:inline-block; margin-left:8px; padding:8px 12px; background:#eef7ef; color:%s; text-decoration:none; border-radius:8px; font-weight:600; font-size:13px; border:1px solid %s;">Call %s</a>`,
			html.EscapeString(d.MobileNumber), brandPrimaryDark, brandBorder, html.EscapeString(d.MobileNumber))
	}
	quick += `
    </div>`
	return wrapper("New Booking Received", intro, detailsRows(d)+quick, "Admin notification &bull; Please respond promptly.")
}

// Booking email variants sent to the requester.
const (
	KindReceived = "received"
	KindAccepted = "accepted"
	KindRejected = "rejected"
)

// BuildUserBookingHTML renders the requester-facing email for the given
// variant. The reason argument is only used for rejections.
func BuildUserBookingHTML(kind string, d BookingDetails, reason string) string {
	title := "Booking Update"
	intro := fmt.Sprintf("Dear <strong>%s</strong>,", orDash(d.FullName))
	note := ""
	statusBadge := ""

	switch kind {
	case KindReceived:
		title = "We received your booking!"
		intro += " thank you for choosing Bappa Travels. Your booking request has been received."
		note = "Our team will review your request and get back to you soon."
		statusBadge = badge("Pending", "#f3f4f6", "#374151")
	case KindAccepted:
		title = "Your booking has been accepted"
		intro += " great news! Your booking has been accepted."
		note = "We look forward to serving you. For any changes, reply to this email."
		statusBadge = badge("Accepted", "#e8f5e9", brandPrimaryDark)
	case KindRejected:
		title = "Your booking could not be fulfilled"
		intro += " unfortunately, we cannot fulfill your booking at this time."
		if strings.TrimSpace(reason) == "" {
			reason = "Not specified"
		}
		note = fmt.Sprintf(`Reason: <span style="color:#c62828; font-weight:600;">%s</span>`, html.EscapeString(reason))
		statusBadge = badge("Rejected", "#fdecea", "#c62828")
	}

	body := ""
	if statusBadge != "" {
		body = fmt.Sprintf(`<div style="margin:0 0 10px 0;">%s</div>`, statusBadge)
	}
	body += detailsRows(d)
	body += fmt.Sprintf(`
    <div style="margin-top:14px; padding:12px 14px; border:1px solid %s; border-radius:10px; background:#f9fdf9; color:%s;">
      %s
    </div>`, brandBorder, brandText, note)

	return wrapper(title, intro, body, "")
}

// BuildFeedbackHTML renders the operator notification for new site feedback.
func BuildFeedbackHTML(name, email, message string, rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	stars := strings.Repeat("&#9733;", rating) + strings.Repeat("&#9734;", 5-rating)

	intro := fmt.Sprintf("You have received a new feedback from <strong>%s</strong>.", orDash(name))
	body := fmt.Sprintf(`
    <div style="background: #fff; border: 1px solid %s; border-radius: 12px; padding: 16px;">
      <div style="margin-bottom: 12px;">
        <div style="font-size: 11px; text-transform: uppercase; color: %s; margin-bottom: 4px;">Rating</div>
        <div style="font-size: 18px; color: #ffc107;">%s</div>
      </div>
      <div style="margin-bottom: 12px;">
        <div style="font-size: 11px; text-transform: uppercase; color: %s; margin-bottom: 4px;">From</div>
        <div style="font-size: 15px; color: %s;"><strong>%s</strong> (%s)</div>
      </div>
      <div>
        <div style="font-size: 11px; text-transform: uppercase; color: %s; margin-bottom: 4px;">Message</div>
        <div style="font-size: 15px; color: %s; line-height: 1.5;">%s</div>
      </div>
    </div>
    <div style="margin-top: 16px;">
      <a href="mailto:%s" style="display: inline-block; padding: 10px 20px; background: %s; color: #fff; text-decoration: none; border-radius: 8px; font-weight: 600;">Reply to User</a>
    </div>`,
		brandBorder, brandMuted, stars, brandMuted, brandText, orDash(name), orDash(email),
		brandMuted, brandText, orDash(message), html.EscapeString(email), brandPrimary)

	return wrapper("New Feedback Received", intro, body, "Feedback Notification")
}

// Subjects used with the templates above.
func AdminBookingSubject() string { return "New Booking Received - Bappa Travels" }

func UserBookingSubject(kind string) string {
	switch kind {
	case KindAccepted:
		return "Your Booking Has Been Accepted!"
	case KindRejected:
		return "Your Booking Has Been Rejected"
	case KindReceived:
		return "We received your booking - Bappa Travels"
	default:
		return "Booking Status: " + strings.ToUpper(kind)
	}
}

func FeedbackSubject(name string) string {
	return fmt.Sprintf("New Feedback from %s - Bappa Travels", strings.TrimSpace(name))
}
