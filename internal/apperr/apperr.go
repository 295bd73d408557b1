// Package apperr defines the failure taxonomy shared by the contact and note
// collections and the command layer. Every error carries a catalog key so the
// dispatcher can show it in the configured language.
package apperr

import (
	"errors"

	"github.com/kokistudios/memomind/internal/i18n"
)

// Kind classifies a failure.
type Kind int

const (
	KindValidation Kind = iota + 1 // bad field format
	KindDuplicate                  // field already set or value already present
	KindNotFound                   // record, note, phone index absent
	KindMalformed                  // wrong argument count or shape
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed input"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrDuplicate  = &Error{Kind: KindDuplicate}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrMalformed  = &Error{Kind: KindMalformed}
)

var english = i18n.New(i18n.English)

// Error is a localized domain failure.
type Error struct {
	Kind Kind
	Key  i18n.Key
	Args []any
}

// Error renders the message in English. Use Localize for the configured locale.
func (e *Error) Error() string {
	if e.Key == "" {
		return e.Kind.String()
	}
	return english.T(e.Key, e.Args...)
}

// Localize renders the message with tr.
func (e *Error) Localize(tr *i18n.Translator) string {
	if e.Key == "" {
		return e.Kind.String()
	}
	return tr.T(e.Key, e.Args...)
}

// Is matches a kind sentinel (no key) or an error with the same kind and key.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}

func Validation(key i18n.Key, args ...any) error {
	return &Error{Kind: KindValidation, Key: key, Args: args}
}

func Duplicate(key i18n.Key, args ...any) error {
	return &Error{Kind: KindDuplicate, Key: key, Args: args}
}

func NotFound(key i18n.Key, args ...any) error {
	return &Error{Kind: KindNotFound, Key: key, Args: args}
}

func Malformed(key i18n.Key, args ...any) error {
	return &Error{Kind: KindMalformed, Key: key, Args: args}
}

// As unwraps err to an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return 0
}
