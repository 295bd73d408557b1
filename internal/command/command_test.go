package command

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/store"
	"github.com/kokistudios/memomind/internal/ui"
)

var testNow = time.Date(2026, 10, 15, 18, 45, 0, 0, time.Local)

func TestMain(m *testing.M) {
	ui.Init(true)
	os.Exit(m.Run())
}

// fakeIO answers prompts from a script and records everything shown.
type fakeIO struct {
	answers []string
	asked   []string
	said    []string
	confirm bool
}

func (f *fakeIO) Ask(prompt string) (string, error) {
	f.asked = append(f.asked, prompt)
	if len(f.answers) == 0 {
		return "", io.EOF
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

func (f *fakeIO) Confirm(prompt string) (bool, error) {
	f.asked = append(f.asked, prompt)
	return f.confirm, nil
}

func (f *fakeIO) Say(text string) { f.said = append(f.said, text) }

func newEnv(t *testing.T, answers ...string) (*Env, *fakeIO) {
	t.Helper()
	home := filepath.Join(t.TempDir(), ".memomind")
	require.NoError(t, store.Init(home, false))
	s, err := store.Load(home)
	require.NoError(t, err)

	fio := &fakeIO{answers: answers}
	return &Env{
		Book:  contact.NewBook(),
		Pad:   note.NewPad(),
		Tr:    i18n.New(i18n.English),
		Store: s,
		IO:    fio,
		Now:   func() time.Time { return testNow },
	}, fio
}

func run(env *Env, line string) string {
	out, _ := Dispatch(env, line)
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		name string
		args []string
	}{
		{"hello", "hello", nil},
		{"search note #shop", "search note", []string{"#shop"}},
		{"search Kyiv", "search", []string{"Kyiv"}},
		{"ADD   Contact Ann", "add contact", []string{"Ann"}},
		{`add email "Ann Lee" ann@example.com`, "add email", []string{"Ann Lee", "ann@example.com"}},
		{"good bye", "good bye", nil},
		{"add note don't forget milk", "add note", []string{"don't", "forget", "milk"}},
		{`add contact "Мар'яна Коваль" 0501234567`, "add contact", []string{"Мар'яна Коваль", "0501234567"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, args, ok, err := Parse(tt.line)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.name, cmd.Name)
			if len(tt.args) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, line := range []string{"", "addcontact Ann", "phones Ann", "goodbye"} {
		_, _, ok, err := Parse(line)
		assert.False(t, ok, line)
		assert.NoError(t, err, line)
	}
}

func TestParse_UnbalancedQuote(t *testing.T) {
	cmd, _, ok, err := Parse(`add email "Ann ann@example.com`)
	assert.True(t, ok)
	assert.Equal(t, "add email", cmd.Name)
	assert.ErrorIs(t, err, apperr.ErrMalformed)
}

func TestDispatch_Apostrophes(t *testing.T) {
	env, _ := newEnv(t)

	run(env, "add contact Мар'яна 0501234567")
	assert.True(t, env.Book.Has("Мар'яна"))

	run(env, "add contact Ann 0671112233")
	run(env, "add address Ann O'Connell street 5")
	r, err := env.Book.Get("Ann")
	require.NoError(t, err)
	addr, ok := r.Address()
	require.True(t, ok)
	assert.Equal(t, "O'Connell street 5", addr.String())

	run(env, "add note don't forget milk")
	require.Equal(t, 1, env.Pad.Len())
	assert.Equal(t, "don't forget milk", env.Pad.Notes()[0].Text())
}

func TestDispatch_MissingArgsShowsUsage(t *testing.T) {
	env, _ := newEnv(t)
	for _, name := range []string{"del contact", "add email", "change bday", "del note"} {
		c, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Contains(t, run(env, name), "usage: "+c.Usage, name)
	}
}

func TestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range Names() {
		assert.False(t, seen[n], "duplicate command %q", n)
		seen[n] = true
		c, ok := Lookup(n)
		require.True(t, ok)
		assert.NotEmpty(t, c.Usage)
		assert.NotNil(t, c.Run)
	}
}

func TestBanner(t *testing.T) {
	env, _ := newEnv(t)
	b := Banner(env.Tr)
	assert.True(t, strings.HasPrefix(b, "MemoMind \nAvailable commands: hello, add email, add bday"))

	env.Tr.SetLocale(i18n.Ukrainian)
	assert.Contains(t, Banner(env.Tr), "Доступні команди: hello")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	env, _ := newEnv(t)
	out, quit := Dispatch(env, "fly away")
	assert.Equal(t, "There is no such command", out)
	assert.False(t, quit)
}

func TestDispatch_ErrorHeadings(t *testing.T) {
	env, _ := newEnv(t)

	assert.Equal(t, `Not found: The contact "Nobody" is not in the address book`,
		run(env, "add email Nobody nobody@example.com"))
	assert.Equal(t, "Invalid input: Invalid e-mail format", run(env, "add email Nobody nobody"))
	assert.Equal(t, "Check the correctness of data inputs: usage: add email <name> <email>",
		run(env, "add email Nobody"))

	env.Tr.SetLocale(i18n.Ukrainian)
	assert.Equal(t, `Не знайдено: Контакт "Nobody" відсутній в адресній книзі`,
		run(env, "phone Nobody"))
}

func TestDescribe_Unexpected(t *testing.T) {
	tr := i18n.New(i18n.English)
	assert.Equal(t, "Unexpected error: disk full", Describe(tr, errors.New("disk full")))
	assert.Equal(t, "Unexpected error: unknown", Describe(tr, &apperr.Error{Kind: 42}))
}

func TestOutputIsStyledWithColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	tr := i18n.New(i18n.English)
	out := Describe(tr, apperr.NotFound(i18n.ContactNotFound, "Ann"))
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, `The contact "Ann" is not in the address book`)

	env, _ := newEnv(t)
	run(env, "add contact Ann")
	out = run(env, "del contact Ann")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Contact Ann kept")
}

func TestDispatch_PromptEOFIsUnexpected(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add contact Ann")

	assert.Equal(t, "Unexpected error: EOF", run(env, "change email Ann"))
}

func TestHello(t *testing.T) {
	env, _ := newEnv(t)
	assert.Equal(t, "Hello, I am your personal MemoMind bot assistant. How can I help?", run(env, "hello"))
}

func TestLang(t *testing.T) {
	env, fio := newEnv(t, "uk")

	assert.Equal(t, "Мову виводу на екран успішно вибрано", run(env, "lang"))
	assert.Len(t, fio.asked, 1)
	assert.Equal(t, i18n.Ukrainian, env.Tr.Locale())

	reloaded, err := store.Load(env.Store.Home)
	require.NoError(t, err)
	assert.Equal(t, "ukr", reloaded.Config.Language)

	assert.Equal(t, "The language was successfully selected", run(env, "lang eng"))
	assert.Equal(t, `Invalid input: Choose eng or ukr, got "klingon"`, run(env, "lang klingon"))
	assert.Equal(t, i18n.English, env.Tr.Locale())
}

func TestSaveAndExit(t *testing.T) {
	env, _ := newEnv(t)
	run(env, "add contact Ann 0501234567")
	run(env, "add note buy milk #shop")

	assert.Equal(t, "Contacts and notes saved", run(env, "save"))

	book, pad, err := env.Store.LoadData()
	require.NoError(t, err)
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, 1, pad.Len())

	run(env, "add contact Bob")
	out, quit := Dispatch(env, "exit")
	assert.Equal(t, "Good bye", out)
	assert.True(t, quit)

	book, _, err = env.Store.LoadData()
	require.NoError(t, err)
	assert.Equal(t, 2, book.Len())

	for _, line := range []string{"close", "Good Bye"} {
		_, quit := Dispatch(env, line)
		assert.True(t, quit, line)
	}
}

func TestHelp(t *testing.T) {
	env, _ := newEnv(t)
	assert.Contains(t, run(env, "help"), "add contact")

	assert.Contains(t, HelpText(i18n.English), "## Contacts")
	assert.Contains(t, HelpText(i18n.Ukrainian), "## Контакти")
}
