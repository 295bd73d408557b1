// Package note holds notes with hash tags and the pad that keeps them ordered
// by tag count.
package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

// DateLayout is the stored form of the creation and completion dates.
const DateLayout = "02.01.2006"

// listLayout is how show notes prints the creation date.
const listLayout = "02-01-2006"

type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// A note can only move forward; nothing undoes a completion.
var validTransitions = map[Status][]Status{
	StatusOpen: {StatusDone},
}

type Note struct {
	id       string
	text     string
	day      time.Time
	done     bool
	doneDate time.Time
	tags     []HashTag
}

// New creates an open note dated now.
func New(text string, now time.Time, tags ...HashTag) (*Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation(i18n.NoteEmpty)
	}
	n := &Note{id: uuid.NewString(), text: text, day: dateOf(now)}
	for _, t := range tags {
		n.AddTag(t)
	}
	return n, nil
}

func (n *Note) ID() string { return n.id }
func (n *Note) Text() string { return n.text }
func (n *Note) Day() time.Time { return n.day }
func (n *Note) Done() bool { return n.done }
func (n *Note) TagCount() int { return len(n.tags) }
func (n *Note) String() string { return n.text }
func (n *Note) Tags() []HashTag { return slices.Clone(n.tags) }

// DoneDate is the completion date; ok is false while the note is open.
func (n *Note) DoneDate() (date time.Time, ok bool) {
	return n.doneDate, n.done
}

func (n *Note) Status() Status {
	if n.done {
		return StatusDone
	}
	return StatusOpen
}

func (n *Note) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperr.Validation(i18n.NoteEmpty)
	}
	n.text = text
	return nil
}

// AddTag inserts t in sorted position. It returns false if t is already there.
func (n *Note) AddTag(t HashTag) bool {
	i, found := slices.BinarySearchFunc(n.tags, t, HashTag.Compare)
	if found {
		return false
	}
	n.tags = slices.Insert(n.tags, i, t)
	return true
}

// MarkDone completes the note. Completing it again is a duplicate and keeps
// the first completion date.
func (n *Note) MarkDone(now time.Time) error {
	if err := n.transition(StatusDone); err != nil {
		return err
	}
	n.done = true
	n.doneDate = dateOf(now)
	return nil
}

func (n *Note) transition(to Status) error {
	from := n.Status()
	if slices.Contains(validTransitions[from], to) {
		return nil
	}
	if from == to {
		return apperr.Duplicate(i18n.NoteAlreadyDone, n.text)
	}
	return fmt.Errorf("invalid note transition: %s -> %s", from, to)
}

// Render is the show notes line, without a trailing newline.
func (n *Note) Render(tr *i18n.Translator) string {
	tags := make([]string, len(n.tags))
	for i, t := range n.tags {
		tags[i] = t.String()
	}
	status := tr.T(i18n.NoteStatusOpen)
	if n.done {
		status = tr.T(i18n.NoteStatusDone, n.doneDate.Format(DateLayout))
	}
	return tr.T(i18n.NoteLine, strings.Join(tags, ", "), n.day.Format(listLayout), n.text, status)
}

type noteJSON struct {
	ID       string   `json:"id,omitempty"`
	Day      string   `json:"day"`
	Done     bool     `json:"done"`
	DoneDate *string  `json:"done_date"`
	Text     string   `json:"text"`
	TagList  []string `json:"tag_list"`
}

func (n *Note) MarshalJSON() ([]byte, error) {
	out := noteJSON{
		ID:      n.id,
		Day:     n.day.Format(DateLayout),
		Done:    n.done,
		Text:    n.text,
		TagList: make([]string, len(n.tags)),
	}
	if n.done {
		d := n.doneDate.Format(DateLayout)
		out.DoneDate = &d
	}
	for i, t := range n.tags {
		out.TagList[i] = t.String()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON accepts notes without an id and gives them a fresh one.
func (n *Note) UnmarshalJSON(data []byte) error {
	var in noteJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	day, err := time.Parse(DateLayout, in.Day)
	if err != nil {
		return fmt.Errorf("note %q: day: %w", in.Text, err)
	}
	decoded := Note{id: in.ID, text: in.Text, day: day, done: in.Done}
	if decoded.id == "" {
		decoded.id = uuid.NewString()
	}
	if in.DoneDate != nil {
		if decoded.doneDate, err = time.Parse(DateLayout, *in.DoneDate); err != nil {
			return fmt.Errorf("note %q: done_date: %w", in.Text, err)
		}
		decoded.done = true
	} else if in.Done {
		decoded.doneDate = day
	}
	for _, raw := range in.TagList {
		if t, ok := decodeHashTag(raw); ok {
			decoded.AddTag(t)
		}
	}
	*n = decoded
	return nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
