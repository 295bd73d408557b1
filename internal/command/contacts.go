package command

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/ui"
)

// minSearchLen is the shortest accepted contact search string, in characters.
const minSearchLen = 3

// phoneLike tells phone arguments of add contact apart from name and
// address words.
var phoneLike = regexp.MustCompile(`^(\+?\d{1,3})? ?(\d{2,3}) ?(\d{2,3}) ?(\d{2}) ?(\d{2})$`)

func greet(env *Env, _ []string) (string, error) {
	return env.Tr.T(i18n.Greeting), nil
}

// addContact creates a record or extends an existing one. The first argument
// and up to two more plain words form the name; an argument with "@" is the
// e-mail, a phone-shaped one the phone, and later words the address.
func addContact(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("add contact")
	}
	nameWords := []string{args[0]}
	var phoneText, emailText string
	var addressWords []string
	for i, p := range args[1:] {
		switch {
		case strings.Contains(p, "@"):
			emailText = p
		case phoneLike.MatchString(p):
			phoneText = p
		case i > 1:
			addressWords = append(addressWords, p)
		default:
			nameWords = append(nameWords, p)
		}
	}

	name, err := contact.NewName(strings.Join(nameWords, " "))
	if err != nil {
		return "", err
	}
	var phone *contact.Phone
	if phoneText != "" {
		p, err := contact.NewPhone(phoneText)
		if err != nil {
			return "", err
		}
		phone = &p
	}
	var email *contact.Email
	if emailText != "" {
		e, err := contact.NewEmail(emailText)
		if err != nil {
			return "", err
		}
		email = &e
	}
	var address *contact.Address
	if len(addressWords) > 0 {
		a, err := contact.NewAddress(strings.Join(addressWords, " "))
		if err != nil {
			return "", err
		}
		address = &a
	}

	rec, err := env.Book.Get(name.String())
	existing := err == nil
	if !existing {
		rec = contact.NewRecord(name)
	}
	if phone != nil {
		if err := rec.AddPhone(*phone); err != nil {
			return "", err
		}
	}
	if email != nil {
		if err := rec.AddEmail(*email); err != nil {
			return "", err
		}
	}
	if address != nil {
		if err := rec.AddAddress(*address); err != nil {
			return "", err
		}
	}

	dash := env.Tr.T(i18n.EmptyField)
	phoneOut, emailOut, addressOut := dash, dash, dash
	if phone != nil {
		phoneOut = phone.String()
	}
	if email != nil {
		emailOut = email.String()
	}
	if address != nil {
		addressOut = address.String()
	}
	if existing {
		return env.Tr.T(i18n.ContactExtended, phoneOut, emailOut, addressOut, name.String()), nil
	}
	env.Book.Add(rec)
	return env.Tr.T(i18n.ContactAdded, name.String(), phoneOut, emailOut, addressOut), nil
}

func addEmail(env *Env, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("add email")
	}
	e, err := contact.NewEmail(args[1])
	if err != nil {
		return "", err
	}
	rec, err := env.Book.Get(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddEmail(e); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.EmailAdded, args[0], e.String()), nil
}

func addBirthday(env *Env, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("add bday")
	}
	b, err := contact.NewBirthday(args[1])
	if err != nil {
		return "", err
	}
	rec, err := env.Book.Get(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(b); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.BirthdayAdded, args[0], b.String()), nil
}

func addAddress(env *Env, args []string) (string, error) {
	if len(args) < 2 {
		return "", usage("add address")
	}
	a, err := contact.NewAddress(strings.Join(args[1:], " "))
	if err != nil {
		return "", err
	}
	rec, err := env.Book.Get(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddAddress(a); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.AddressAdded, a.String(), args[0]), nil
}

func congrat(env *Env, args []string) (string, error) {
	if len(args) != 1 {
		return "", apperr.Validation(i18n.DaysInvalid)
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return "", apperr.Validation(i18n.DaysInvalid)
	}
	var out strings.Builder
	for _, r := range env.Book.Upcoming(env.now(), days) {
		out.WriteString(r.Render(env.Tr))
	}
	text := env.Tr.T(i18n.CongratNone)
	if out.Len() > 0 {
		text = env.Tr.T(i18n.CongratSome, out.String())
	}
	return env.Tr.T(i18n.CongratNext, days, text), nil
}

// changePhone adds the first phone or replaces one. Missing details are asked
// for: the index when the contact has several phones, and the new number.
func changePhone(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("change phone")
	}
	name := args[0]
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	env.IO.Say(rec.ShowPhones(env.Tr))

	given := strings.Join(args[1:], " ")
	phones := rec.Phones()
	if len(phones) == 0 {
		p, err := phoneFrom(env, given, i18n.PromptPhoneAdd)
		if err != nil {
			return "", err
		}
		if err := rec.AddPhone(p); err != nil {
			return "", err
		}
		return env.Tr.T(i18n.PhoneSet, p.String(), name), nil
	}

	index := 1
	if len(phones) > 1 {
		answer, err := env.IO.Ask(env.Tr.T(i18n.PromptPhoneIndex))
		if err != nil {
			return "", err
		}
		if index, err = parseIndex(answer); err != nil {
			return "", err
		}
	}
	p, err := phoneFrom(env, given, i18n.PromptPhoneNew)
	if err != nil {
		return "", err
	}
	old, err := rec.EditPhone(p, index)
	if err != nil {
		return "", err
	}
	return env.Tr.T(i18n.PhoneChanged, old.String(), p.String(), name), nil
}

func phoneFrom(env *Env, given string, prompt i18n.Key) (contact.Phone, error) {
	if given == "" {
		answer, err := env.IO.Ask(env.Tr.T(prompt))
		if err != nil {
			return contact.Phone{}, err
		}
		given = answer
	}
	return contact.NewPhone(given)
}

func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, apperr.Validation(i18n.IndexInvalid, s)
	}
	return n, nil
}

func changeEmail(env *Env, args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", usage("change email")
	}
	name := args[0]
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	var given string
	if len(args) == 2 {
		given = args[1]
	} else if given, err = env.IO.Ask(env.Tr.T(i18n.PromptEmailNew)); err != nil {
		return "", err
	}
	e, err := contact.NewEmail(given)
	if err != nil {
		return "", err
	}
	rec.ChangeEmail(e)
	return env.Tr.T(i18n.EmailChanged, name, e.String()), nil
}

func changeBirthday(env *Env, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("change bday")
	}
	rec, err := env.Book.Get(args[0])
	if err != nil {
		return "", err
	}
	b, err := contact.NewBirthday(args[1])
	if err != nil {
		return "", err
	}
	if err := rec.ChangeBirthday(b); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.BirthdayChanged, b.String(), args[0]), nil
}

func changeAddress(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("change address")
	}
	name := args[0]
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	given := strings.Join(args[1:], " ")
	if given == "" {
		prompt := i18n.PromptAddressAdd
		if _, ok := rec.Address(); ok {
			prompt = i18n.PromptAddressNew
		}
		if given, err = env.IO.Ask(env.Tr.T(prompt)); err != nil {
			return "", err
		}
	}
	a, err := contact.NewAddress(given)
	if err != nil {
		return "", err
	}
	old, replaced := rec.ChangeAddress(a)
	if !replaced {
		return env.Tr.T(i18n.AddressSet, a.String(), name), nil
	}
	return env.Tr.T(i18n.AddressChanged, old.String(), a.String(), name), nil
}

func showPhones(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("phone")
	}
	name := nameArg(args)
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	return env.Tr.T(i18n.PhoneShow, name, rec.ShowPhones(env.Tr)), nil
}

// deletePhone removes the phone at a 1-based index, the first one by default.
// A trailing number is the index; the words before it name the contact.
func deletePhone(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("del phone")
	}
	index := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			if n < 1 {
				return "", apperr.Validation(i18n.IndexInvalid, args[len(args)-1])
			}
			index, args = n, args[:len(args)-1]
		}
	}
	name := nameArg(args)
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	p, err := rec.DeletePhone(index)
	if err != nil {
		return "", err
	}
	return env.Tr.T(i18n.PhoneDeleted, name, p.String()), nil
}

func deleteEmail(env *Env, args []string) (string, error) {
	return clearField(env, args, "del email", (*contact.Record).ClearEmail, i18n.EmailDeleted)
}

func deleteBirthday(env *Env, args []string) (string, error) {
	return clearField(env, args, "del bday", (*contact.Record).ClearBirthday, i18n.BirthdayDeleted)
}

func deleteAddress(env *Env, args []string) (string, error) {
	return clearField(env, args, "del address", (*contact.Record).ClearAddress, i18n.AddressDeleted)
}

func clearField(env *Env, args []string, cmd string, clear func(*contact.Record), done i18n.Key) (string, error) {
	if len(args) == 0 {
		return "", usage(cmd)
	}
	name := nameArg(args)
	rec, err := env.Book.Get(name)
	if err != nil {
		return "", err
	}
	clear(rec)
	return env.Tr.T(done, name), nil
}

func deleteContact(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("del contact")
	}
	name := nameArg(args)
	if !env.Book.Has(name) {
		return "", apperr.NotFound(i18n.ContactNotFound, name)
	}
	ok, err := env.IO.Confirm(env.Tr.T(i18n.ContactConfirmDelete, name))
	if err != nil {
		return "", err
	}
	if !ok {
		return ui.Yellow(env.Tr.T(i18n.ContactDeleteCanceled, name)), nil
	}
	if _, err := env.Book.Remove(name); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.ContactDeleted, name), nil
}

// searchContacts lists records containing the pattern with every match
// highlighted.
func searchContacts(env *Env, args []string) (string, error) {
	pattern := strings.Join(args, " ")
	if utf8.RuneCountInString(pattern) < minSearchLen {
		return ui.Yellow(env.Tr.T(i18n.SearchTooShort, minSearchLen)), nil
	}
	found := env.Book.Search(env.Tr, pattern)
	if len(found) == 0 {
		return env.Tr.T(i18n.SearchNone), nil
	}
	var matches strings.Builder
	for _, r := range found {
		matches.WriteString(r.Render(env.Tr))
	}
	return env.Tr.T(i18n.SearchFound, len(found), ui.Highlight(matches.String(), pattern)), nil
}

// showContacts prints the whole book, or page by page when it is larger
// than the configured page size.
func showContacts(env *Env, _ []string) (string, error) {
	size := env.page()
	if env.Book.Len() <= size {
		return env.Book.ShowAll(env.Tr), nil
	}
	for page := range env.Book.Pages(env.Tr, size) {
		env.IO.Say(page)
		env.IO.Say(strings.Repeat("*", 50))
		if _, err := env.IO.Ask(env.Tr.T(i18n.PagerContinue)); err != nil {
			break
		}
	}
	return env.Tr.T(i18n.BookTotal, env.Book.Len()), nil
}
