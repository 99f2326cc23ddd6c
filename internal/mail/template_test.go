package mail

import (
	"strings"
	"testing"
)

func TestFormatTime12Hour(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"13:05", "1:05 PM"},
		{"9:00", "9:00 AM"},
		{"00:30", "12:30 AM"},
		{"12:00", "12:00 PM"},
		{"7", "7:00 AM"},
		{"10:30 pm", "10:30 PM"},
		{"8:15 AM", "8:15 AM"},
		{"", "-"},
	}
	for _, tc := range cases {
		if got := FormatTime12Hour(tc.in); got != tc.want {
			t.Fatalf("FormatTime12Hour(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUserBookingHTMLMissingFieldsRenderDash(t *testing.T) {
	html := BuildUserBookingHTML(KindReceived, BookingDetails{
		FullName: "Asha Patil",
		Email:    "asha@example.com",
	}, "")

	if !strings.Contains(html, "Asha Patil") {
		t.Fatalf("name missing from rendered mail")
	}
	if !strings.Contains(html, "-") {
		t.Fatalf("missing fields should render the dash placeholder")
	}
}

func TestRejectedMailCarriesReason(t *testing.T) {
	html := BuildUserBookingHTML(KindRejected, BookingDetails{FullName: "A", Email: "a@b.co"}, "No cars available")
	if !strings.Contains(html, "No cars available") {
		t.Fatalf("reject reason missing from mail body")
	}

	html = BuildUserBookingHTML(KindRejected, BookingDetails{FullName: "A", Email: "a@b.co"}, "")
	if !strings.Contains(html, "Not specified") {
		t.Fatalf("empty reason should render the default text")
	}
}

func TestSubjects(t *testing.T) {
	if got := UserBookingSubject(KindAccepted); got != "Your Booking Has Been Accepted!" {
		t.Fatalf("accepted subject: got %q", got)
	}
	if got := UserBookingSubject(KindRejected); got != "Your Booking Has Been Rejected" {
		t.Fatalf("rejected subject: got %q", got)
	}
	if !strings.Contains(FeedbackSubject("Ravi"), "Ravi") {
		t.Fatalf("feedback subject should carry the sender name")
	}
}

func TestFeedbackHTMLStars(t *testing.T) {
	html := BuildFeedbackHTML("Ravi", "ravi@example.com", "Great ride", 3)
	if strings.Count(html, "&#9733;") != 3 {
		t.Fatalf("expected 3 filled stars")
	}
	if strings.Count(html, "&#9734;") != 2 {
		t.Fatalf("expected 2 empty stars")
	}
}

func TestDetailValuesAreEscaped(t *testing.T) {
	html := BuildAdminBookingHTML(BookingDetails{
		FullName: "<script>alert(1)</script>",
		Email:    "x@y.co",
	})
	if strings.Contains(html, "<script>") {
		t.Fatalf("detail values must be html-escaped")
	}
}
