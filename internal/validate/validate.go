// Package validate holds the pure checks and clean-ups applied to
// user-supplied form fields before anything is written to the store.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTextLength = 500

	minNameLength    = 2
	minContactLength = 3
	minPhoneDigits   = 7
	maxPhoneDigits   = 15
	MinGuests        = 1
	MaxGuests        = 20

	DateLayout = "2006-01-02"
)

// TimeSlots are the bookable reservation times, hourly from opening to last seating.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// Sanitize trims whitespace, strips angle brackets and truncates to
// MaxTextLength characters.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = angleBrackets.ReplaceAllString(s, "")
	if utf8.RuneCountInString(s) > MaxTextLength {
		s = string([]rune(s)[:MaxTextLength])
	}
	return s
}

func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Phone reports whether s holds 7 to 15 digits once formatting is stripped.
// Country codes and grouping are not checked.
func Phone(s string) bool {
	n := len(Digits(s))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}

// Date reports whether s is a calendar date no earlier than midnight of now's
// day, in now's location. Today is valid.
func Date(s string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return !d.Before(midnight)
}

func Name(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= minNameLength
}

func Contact(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= minContactLength
}

func Guests(n int) bool {
	return n >= MinGuests && n <= MaxGuests
}

func TimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
