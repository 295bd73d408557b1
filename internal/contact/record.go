package contact

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

// NoBirthday is what DaysToBirthday reports for a record without a birthday.
// It is larger than any day count a user can ask about.
const NoBirthday = 1_000_000

// Record is one contact. The name is fixed at creation; every other field is
// optional and set at most once unless explicitly changed or cleared.
type Record struct {
	name     Name
	phones   []Phone
	email    *Email
	address  *Address
	birthday *Birthday
}

func NewRecord(name Name) *Record {
	return &Record{name: name}
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the stored numbers in order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

func (r *Record) Email() (Email, bool) {
	if r.email == nil {
		return Email{}, false
	}
	return *r.email, true
}

func (r *Record) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) hasPhone(p Phone) bool {
	return slices.ContainsFunc(r.phones, p.Equal)
}

func (r *Record) AddPhone(p Phone) error {
	if r.hasPhone(p) {
		return apperr.Duplicate(i18n.PhoneExists)
	}
	r.phones = append(r.phones, p)
	return nil
}

func (r *Record) AddEmail(e Email) error {
	if r.email != nil {
		return apperr.Duplicate(i18n.EmailExists)
	}
	r.email = &e
	return nil
}

func (r *Record) AddAddress(a Address) error {
	if r.address != nil {
		return apperr.Duplicate(i18n.AddressExists)
	}
	r.address = &a
	return nil
}

func (r *Record) AddBirthday(b Birthday) error {
	if r.birthday != nil {
		return apperr.Duplicate(i18n.BirthdayExists)
	}
	r.birthday = &b
	return nil
}

func (r *Record) ChangeEmail(e Email) { r.email = &e }

// ChangeAddress stores a and returns the previous address. replaced is false
// when the record had no address before.
func (r *Record) ChangeAddress(a Address) (old Address, replaced bool) {
	if r.address != nil {
		old, replaced = *r.address, true
	}
	r.address = &a
	return old, replaced
}

// ChangeBirthday only replaces an existing birthday; use AddBirthday first.
func (r *Record) ChangeBirthday(b Birthday) error {
	if r.birthday == nil {
		return apperr.NotFound(i18n.BirthdayNotSet)
	}
	r.birthday = &b
	return nil
}

func (r *Record) checkIndex(index int) error {
	if len(r.phones) == 0 {
		return apperr.NotFound(i18n.PhonesEmpty)
	}
	if index < 1 || index > len(r.phones) {
		return apperr.NotFound(i18n.PhoneIndexMissing, index)
	}
	return nil
}

// DeletePhone removes the phone at the 1-based index and returns it.
func (r *Record) DeletePhone(index int) (Phone, error) {
	if err := r.checkIndex(index); err != nil {
		return Phone{}, err
	}
	removed := r.phones[index-1]
	r.phones = slices.Delete(r.phones, index-1, index)
	return removed, nil
}

// EditPhone replaces the phone at the 1-based index and returns the old one.
func (r *Record) EditPhone(p Phone, index int) (Phone, error) {
	if err := r.checkIndex(index); err != nil {
		return Phone{}, err
	}
	old := r.phones[index-1]
	if !old.Equal(p) && r.hasPhone(p) {
		return Phone{}, apperr.Duplicate(i18n.PhoneExists)
	}
	r.phones[index-1] = p
	return old, nil
}

func (r *Record) ClearEmail()    { r.email = nil }
func (r *Record) ClearAddress()  { r.address = nil }
func (r *Record) ClearBirthday() { r.birthday = nil }

// DaysToBirthday returns the days until the next birthday, or NoBirthday.
func (r *Record) DaysToBirthday(now time.Time) int {
	if r.birthday == nil {
		return NoBirthday
	}
	return r.birthday.DaysUntil(now)
}

// ShowPhones describes the phones, with 1-based indexes when there are several.
func (r *Record) ShowPhones(tr *i18n.Translator) string {
	switch len(r.phones) {
	case 0:
		return tr.T(i18n.PhonesNone)
	case 1:
		return tr.T(i18n.PhonesOne, r.phones[0])
	}
	var b strings.Builder
	b.WriteString(tr.T(i18n.PhonesMany))
	b.WriteString("\n")
	for i, p := range r.phones {
		fmt.Fprintf(&b, "%d: %s ", i+1, p)
	}
	return b.String()
}

// Render is the one-line form used by listings and search. It ends in a newline.
func (r *Record) Render(tr *i18n.Translator) string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	dash := tr.T(i18n.EmptyField)
	email, address, birthday := dash, dash, dash
	if r.email != nil {
		email = r.email.String()
	}
	if r.address != nil {
		address = r.address.String()
	}
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return tr.T(i18n.RecordLine, r.name, strings.Join(phones, ", "), email, birthday, address)
}
