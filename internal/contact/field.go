package contact

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

// Phone length limits reported to the user: raw digit minimum, stored maximum.
const (
	PhoneMinLen = 9
	PhoneMaxLen = 13
)

// MinAddressLen is the shortest accepted address, in runes.
const MinAddressLen = 6

// DateLayout is how birthdays are rendered and stored.
const DateLayout = "02.01.2006"

// Parsing accepts one or two digit days and months.
var birthdayLayouts = []string{"2.1.2006", "2/1/2006"}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Name is a contact's unique key.
type Name struct{ value string }

func NewName(raw string) (Name, error) {
	if utf8.RuneCountInString(raw) < 2 || allDigits(raw) {
		return Name{}, apperr.Validation(i18n.NameInvalid)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }
func (n Name) Equal(o Name) bool { return n.value == o.value }
func (n Name) IsZero() bool { return n.value == "" }

// Phone is an international number: "+" followed by 12 digits.
type Phone struct{ value string }

// NewPhone strips every non-digit and normalizes by digit count:
// 9 digits get "+380", 10 get "+38", 12 get "+".
func NewPhone(raw string) (Phone, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch len(digits) {
	case 9:
		return Phone{value: "+380" + digits}, nil
	case 10:
		return Phone{value: "+38" + digits}, nil
	case 12:
		return Phone{value: "+" + digits}, nil
	default:
		return Phone{}, apperr.Validation(i18n.PhoneInvalid, PhoneMinLen, PhoneMaxLen)
	}
}

func (p Phone) String() string { return p.value }
func (p Phone) Equal(o Phone) bool { return p.value == o.value }

type Email struct{ value string }

func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, apperr.Validation(i18n.EmailInvalid)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }
func (e Email) Equal(o Email) bool { return e.value == o.value }

type Address struct{ value string }

func NewAddress(raw string) (Address, error) {
	if utf8.RuneCountInString(raw) < MinAddressLen {
		return Address{}, apperr.Validation(i18n.AddressInvalid, MinAddressLen)
	}
	return Address{value: raw}, nil
}

func (a Address) String() string { return a.value }
func (a Address) Equal(o Address) bool { return a.value == o.value }

// Birthday is a calendar date without a time of day.
type Birthday struct{ date time.Time }

// NewBirthday accepts DD.MM.YYYY or DD/MM/YYYY.
func NewBirthday(raw string) (Birthday, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Birthday{date: t}, nil
		}
	}
	return Birthday{}, apperr.Validation(i18n.BirthdayInvalid)
}

// BirthdayOn keeps the calendar date of t.
func BirthdayOn(t time.Time) Birthday {
	return Birthday{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (b Birthday) String() string { return b.date.Format(DateLayout) }
func (b Birthday) Equal(o Birthday) bool { return b.date.Equal(o.date) }
func (b Birthday) Time() time.Time { return b.date }

// DaysUntil counts whole days from now's calendar date to the next occurrence
// of the birthday. Today counts as 0. In non-leap years 29 February falls on
// 1 March.
func (b Birthday) DaysUntil(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := occurrence(b.date, today.Year())
	if next.Before(today) {
		next = occurrence(b.date, today.Year()+1)
	}
	return int(next.Sub(today).Hours() / 24)
}

// occurrence normalizes 29 February to 1 March through time.Date overflow.
func occurrence(d time.Time, year int) time.Time {
	return time.Date(year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
