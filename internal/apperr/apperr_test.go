package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kokistudios/memomind/internal/i18n"
)

func TestError_IsMatchesKindSentinel(t *testing.T) {
	err := Duplicate(i18n.EmailExists)

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, &Error{Kind: KindDuplicate, Key: i18n.EmailExists})
	assert.NotErrorIs(t, err, &Error{Kind: KindDuplicate, Key: i18n.PhoneExists})
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("loading contact: %w", NotFound(i18n.ContactNotFound, "Ann"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, []any{"Ann"}, e.Args)
}

func TestError_MessageIsEnglishByDefault(t *testing.T) {
	err := NotFound(i18n.ContactNotFound, "Ann")
	assert.Equal(t, `The contact "Ann" is not in the address book`, err.Error())
}

func TestError_Localize(t *testing.T) {
	err := NotFound(i18n.ContactNotFound, "Ann")
	e, _ := As(err)

	assert.Equal(t, `Контакт "Ann" відсутній в адресній книзі`, e.Localize(i18n.New(i18n.Ukrainian)))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, "unknown", Kind(0).String())
}
