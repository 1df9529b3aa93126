// Package mail renders the outreach emails. The templates are fixed text;
// the only branching is the optional phone suffix in the catering contacts
// and one detail block per catering event. Callers deliver the rendered
// string themselves (clipboard or mail client), so it must leave this
// package byte-exact.
package mail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilcoutreach/outreach-api/internal/timeformat"
)

// Subject lines for the two email kinds.
const (
	PresentationSubject = "Illinois Leadership Center Outreach Presentation"
	CateringSubject     = "Illinois Leadership Center Outreach Events"
)

const cateringDateLayout = "January 2 2006"

var (
	// ErrMissingFields is returned when a required presentation field is blank.
	ErrMissingFields = errors.New("fill in all required fields")
	// ErrNoEvents is returned when the catering form has no sender or events.
	ErrNoEvents = errors.New("enter your name and add at least one event")
	// ErrEventFields is returned when any catering event is missing a field.
	ErrEventFields = errors.New("fill in all required fields for each event")
	// ErrNoRecipient is returned when a mailto link is requested without an address.
	ErrNoRecipient = errors.New("recipient email is required")
)

// PresentationFields is the input for the instructor outreach email.
type PresentationFields struct {
	InstructorName  string `json:"instructorName"`
	YourName        string `json:"yourName"`
	CourseNumber    string `json:"courseNumber"`
	CourseName      string `json:"courseName"`
	InstructorEmail string `json:"instructorEmail"`
}

// CateringEvent is one event detail block in the catering order.
type CateringEvent struct {
	ID            string     `json:"id"`
	Date          *time.Time `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	GuestCount    int        `json:"guestCount"`
	Location      string     `json:"location"`
	MenuSelection string     `json:"menuSelection"`
}

// CateringForm is the input for the catering order email.
type CateringForm struct {
	YourName       string          `json:"yourName"`
	ContactPhone   string          `json:"contactPhone"`
	RecipientEmail string          `json:"recipientEmail"`
	Events         []CateringEvent `json:"events"`
}

// OrgInfo carries the environment-provided constants interpolated into the
// catering email: the accounting code and the supervisor's contact details.
type OrgInfo struct {
	CFOAPAL         string
	SupervisorName  string
	SupervisorPhone string
	SupervisorEmail string
}

const presentationTemplate = `Hello %s,

My name is %s and I am a Brand Ambassador for the Illinois Leadership Center. We noticed that your course %s: %s covers topics that align closely with the work we do at the Leadership Center.

We believe your students could benefit from learning about the programs and resources we offer. We would greatly appreciate the opportunity to briefly present in your class. The presentation would take no more than 10 minutes.

If this is something you would be open to, I would be happy to coordinate around a time that works best for you. Please let me know if you have any questions or would like additional information.

Thank you!

Best,
%s
Illinois Leadership Center
Outreach Team`

// PresentationBody renders the instructor email body.
func PresentationBody(f PresentationFields) (string, error) {
	if strings.TrimSpace(f.InstructorName) == "" ||
		strings.TrimSpace(f.YourName) == "" ||
		strings.TrimSpace(f.CourseNumber) == "" ||
		strings.TrimSpace(f.CourseName) == "" {
		return "", ErrMissingFields
	}

	return fmt.Sprintf(presentationTemplate,
		f.InstructorName, f.YourName, f.CourseNumber, f.CourseName, f.YourName), nil
}

// PresentationEmail renders the display form of the instructor email, with
// the subject line on top.
func PresentationEmail(f PresentationFields) (string, error) {
	body, err := PresentationBody(f)
	if err != nil {
		return "", err
	}
	return "Subject: " + PresentationSubject + "\n\n" + body, nil
}

// PresentationMailto builds the mailto link for the instructor email.
func PresentationMailto(f PresentationFields) (string, error) {
	if strings.TrimSpace(f.InstructorEmail) == "" {
		return "", ErrNoRecipient
	}
	body, err := PresentationBody(f)
	if err != nil {
		return "", err
	}

	return "mailto:" + encodeURIComponent(f.InstructorEmail) +
		"?subject=" + encodeURIComponent(PresentationSubject) +
		"&body=" + encodeURIComponent(body), nil
}

// validateCatering checks the form before any rendering happens.
func validateCatering(form CateringForm) error {
	if strings.TrimSpace(form.YourName) == "" || len(form.Events) == 0 {
		return ErrNoEvents
	}
	for _, ev := range form.Events {
		if ev.Date == nil ||
			strings.TrimSpace(ev.StartTime) == "" ||
			strings.TrimSpace(ev.EndTime) == "" ||
			ev.GuestCount == 0 ||
			strings.TrimSpace(ev.Location) == "" ||
			strings.TrimSpace(ev.MenuSelection) == "" {
			return ErrEventFields
		}
	}
	return nil
}

// cateringDetails renders one block per event, each followed by a blank line.
// Arrival and conclusion use the canonical normalized time; the ready-by line
// is the food drop-off target derived from the raw start time.
func cateringDetails(form CateringForm, org OrgInfo) string {
	var b strings.Builder
	for i, ev := range form.Events {
		b.WriteString("Event " + strconv.Itoa(i+1) + ":\n")
		b.WriteString("Date: " + ev.Date.Format(cateringDateLayout) + "\n")
		b.WriteString("Food Ready by: " + timeformat.FoodReadyTime(ev.StartTime) + "\n")
		b.WriteString("Guests Arrive: " + timeformat.PadMinutes(timeformat.EnsureMeridiem(ev.StartTime)) + "\n")
		b.WriteString("Event Conclusion: " + timeformat.PadMinutes(timeformat.EnsureMeridiem(ev.EndTime)) + "\n")
		b.WriteString("Guest Count: " + strconv.Itoa(ev.GuestCount) + "\n")
		b.WriteString("Location: " + ev.Location + "\n")
		b.WriteString("Occasion: ILC Outreach\n")
		b.WriteString("Menu Selection: " + ev.MenuSelection + "\n")
		b.WriteString("Tables Available for Catering Set Up: Yes\n")
		b.WriteString("Types of Tables for Guests: 6' by 2.5' card tables\n")
		b.WriteString("CFOAPAL: " + org.CFOAPAL + "\n")
		b.WriteString("\n")
	}
	return b.String()
}

// cateringContacts renders the contacts section; the phone suffix is omitted
// when blank.
func cateringContacts(form CateringForm, org OrgInfo) string {
	contact := form.YourName
	if form.ContactPhone != "" {
		contact += ", " + form.ContactPhone
	}
	return "Contacts:\n" + contact + "\n" + org.SupervisorName + ", " + org.SupervisorPhone
}

// CateringBody renders the catering order email body.
func CateringBody(form CateringForm, org OrgInfo) (string, error) {
	if err := validateCatering(form); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Hello,\n\n")
	b.WriteString("We would like to place catering orders for some upcoming outreach events. I have cc'd my supervisor on this email for his reference as well.\n\n")
	b.WriteString("Here are the details for the events:\n\n")
	b.WriteString(cateringDetails(form, org))
	b.WriteString("\n")
	b.WriteString(cateringContacts(form, org))
	b.WriteString("\n\nThank you!\n\nBest,\n")
	b.WriteString(form.YourName)
	b.WriteString("\nIllinois Leadership Center\nOutreach Team")
	return b.String(), nil
}

// CateringEmail renders the display form of the catering email, with the
// subject line on top.
func CateringEmail(form CateringForm, org OrgInfo) (string, error) {
	body, err := CateringBody(form, org)
	if err != nil {
		return "", err
	}
	return "Subject: " + CateringSubject + "\n\n" + body, nil
}

// CateringMailto builds the mailto link for the catering email, cc'ing the
// supervisor.
func CateringMailto(form CateringForm, org OrgInfo) (string, error) {
	if strings.TrimSpace(form.RecipientEmail) == "" {
		return "", ErrNoRecipient
	}
	body, err := CateringBody(form, org)
	if err != nil {
		return "", err
	}

	cc := org.SupervisorName + " <" + org.SupervisorEmail + ">"
	return "mailto:" + encodeURIComponent(form.RecipientEmail) +
		"?cc=" + encodeURIComponent(cc) +
		"&subject=" + encodeURIComponent(CateringSubject) +
		"&body=" + encodeURIComponent(body), nil
}

// encodeURIComponent percent-encodes the way the browser function of the
// same name does: unreserved characters plus !'()*~- are left alone, space
// becomes %20. url.QueryEscape is close but encodes space as "+" and leaves
// a different punctuation set, which mail clients mishandle.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' ||
			c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}
