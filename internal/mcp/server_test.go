package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/store"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, store.Init(home, false))
	st, err := store.Load(home)
	require.NoError(t, err)

	book := contact.NewBook()
	ann := contact.NewRecord(mustName(t, "Ann"))
	phone, err := contact.NewPhone("0671112233")
	require.NoError(t, err)
	require.NoError(t, ann.AddPhone(phone))
	bday, err := contact.NewBirthday("18.10.1990")
	require.NoError(t, err)
	require.NoError(t, ann.AddBirthday(bday))
	book.Add(ann)
	book.Add(contact.NewRecord(mustName(t, "Bob")))

	work, err := note.NewHashTag("work")
	require.NoError(t, err)
	n1, err := note.New("ship the release", testNow, work)
	require.NoError(t, err)
	n2, err := note.New("buy milk", testNow)
	require.NoError(t, err)

	s := NewServer(st, book, note.NewPad(n1, n2), "test")
	s.now = func() time.Time { return testNow }
	return s
}

func mustName(t *testing.T, s string) contact.Name {
	t.Helper()
	n, err := contact.NewName(s)
	require.NoError(t, err)
	return n
}

func TestContactsSearch(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleContactsSearch(context.Background(), nil, ContactsSearchArgs{Query: "067"})
	require.NoError(t, err)
	res := out.(ContactsResult)
	require.Len(t, res.Contacts, 1)
	assert.Equal(t, "Ann", res.Contacts[0].Name)
	assert.Equal(t, []string{"+380671112233"}, res.Contacts[0].Phones)
	require.NotNil(t, res.Contacts[0].DaysToBirthday)
	assert.Equal(t, 3, *res.Contacts[0].DaysToBirthday)

	_, out, err = s.handleContactsSearch(context.Background(), nil, ContactsSearchArgs{Query: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, out.(ContactsResult).Contacts)
	assert.NotEmpty(t, out.(ContactsResult).Message)

	_, _, err = s.handleContactsSearch(context.Background(), nil, ContactsSearchArgs{Query: "An"})
	assert.EqualError(t, err, "search string length >= 3")
}

func TestBirthdays(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleBirthdays(context.Background(), nil, BirthdaysArgs{})
	require.NoError(t, err)
	require.Len(t, out.(ContactsResult).Contacts, 1)

	_, out, err = s.handleBirthdays(context.Background(), nil, BirthdaysArgs{Days: 2})
	require.NoError(t, err)
	assert.Empty(t, out.(ContactsResult).Contacts)
	assert.Equal(t, "No birthdays in the next 2 days", out.(ContactsResult).Message)

	s.tr.SetLocale(i18n.Ukrainian)
	_, out, err = s.handleBirthdays(context.Background(), nil, BirthdaysArgs{Days: 2})
	require.NoError(t, err)
	assert.Equal(t, "Немає днів народження протягом 2 днів", out.(ContactsResult).Message)

	_, _, err = s.handleBirthdays(context.Background(), nil, BirthdaysArgs{Days: -1})
	assert.Error(t, err)
}

func TestNotesSearch(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleNotesSearch(context.Background(), nil, NotesSearchArgs{})
	require.NoError(t, err)
	assert.Len(t, out.(NotesResult).Notes, 2)

	_, out, err = s.handleNotesSearch(context.Background(), nil, NotesSearchArgs{Query: "#wo"})
	require.NoError(t, err)
	notes := out.(NotesResult).Notes
	require.Len(t, notes, 1)
	assert.Equal(t, "ship the release", notes[0].Text)
	assert.Equal(t, []string{"#work"}, notes[0].Tags)
	assert.Equal(t, "open", notes[0].Status)

	_, out, err = s.handleNotesSearch(context.Background(), nil, NotesSearchArgs{Query: "milk"})
	require.NoError(t, err)
	assert.Len(t, out.(NotesResult).Notes, 1)
}

func TestNoteAddAndDone(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleNoteAdd(ctx, nil, NoteAddArgs{Text: "call mom", Tags: []string{"home", "#family"}})
	require.NoError(t, err)
	added := out.(NoteResult).Note
	assert.Equal(t, []string{"#family", "#home"}, added.Tags)
	assert.Equal(t, "15.10.2026", added.Created)

	_, pad, err := s.store.LoadData()
	require.NoError(t, err)
	assert.Equal(t, 3, pad.Len())

	_, out, err = s.handleNoteDone(ctx, nil, NoteDoneArgs{ID: added.ID})
	require.NoError(t, err)
	assert.Equal(t, "done", out.(NoteResult).Note.Status)
	assert.Equal(t, "15.10.2026", out.(NoteResult).Note.DoneDate)

	_, out, err = s.handleNotesSearch(ctx, nil, NotesSearchArgs{Query: "call"})
	require.NoError(t, err)
	assert.Empty(t, out.(NotesResult).Notes)
	_, out, err = s.handleNotesSearch(ctx, nil, NotesSearchArgs{Query: "call", IncludeDone: true})
	require.NoError(t, err)
	assert.Len(t, out.(NotesResult).Notes, 1)

	_, _, err = s.handleNoteDone(ctx, nil, NoteDoneArgs{ID: added.ID})
	assert.Error(t, err)
	_, _, err = s.handleNoteDone(ctx, nil, NoteDoneArgs{ID: "missing"})
	assert.Error(t, err)
}

func TestNoteAdd_Rejected(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleNoteAdd(context.Background(), nil, NoteAddArgs{Text: "   "})
	assert.Error(t, err)
	_, _, err = s.handleNoteAdd(context.Background(), nil, NoteAddArgs{Text: "x", Tags: []string{"two words"}})
	assert.Error(t, err)
	assert.Equal(t, 2, s.pad.Len())
}
