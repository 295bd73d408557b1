package note

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

// Pad is the ordered note list. After Sort the tag counts never increase
// from front to back.
type Pad struct {
	notes []*Note
}

// NewPad keeps notes in the given order.
func NewPad(notes ...*Note) *Pad {
	return &Pad{notes: slices.Clone(notes)}
}

func (p *Pad) Len() int { return len(p.notes) }

func (p *Pad) Notes() []*Note { return slices.Clone(p.notes) }

// Add places n after the last note carrying at least as many tags, or at the
// front when there is none.
func (p *Pad) Add(n *Note) {
	i := 0
	for j, rec := range p.notes {
		if n.TagCount() <= rec.TagCount() {
			i = j + 1
		}
	}
	p.notes = slices.Insert(p.notes, i, n)
}

// Get finds a note by id.
func (p *Pad) Get(id string) (*Note, error) {
	for _, n := range p.notes {
		if n.id == id {
			return n, nil
		}
	}
	return nil, apperr.NotFound(i18n.NoteNotFound, id)
}

func (p *Pad) matching(text string) []*Note {
	var out []*Note
	for _, n := range p.notes {
		if n.text == text {
			out = append(out, n)
		}
	}
	return out
}

// Change rewrites every note whose text equals text.
func (p *Pad) Change(text, newText string) error {
	if strings.TrimSpace(newText) == "" {
		return apperr.Validation(i18n.NoteEmpty)
	}
	found := p.matching(text)
	if len(found) == 0 {
		return apperr.NotFound(i18n.NoteNotFound, text)
	}
	for _, n := range found {
		_ = n.setText(newText)
	}
	return nil
}

// MarkDone completes every open note whose text equals text. It fails with a
// duplicate error when all of them are already done.
func (p *Pad) MarkDone(text string, now time.Time) error {
	found := p.matching(text)
	if len(found) == 0 {
		return apperr.NotFound(i18n.NoteNotFound, text)
	}
	var firstErr error
	changed := 0
	for _, n := range found {
		if err := n.MarkDone(now); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		changed++
	}
	if changed == 0 {
		return firstErr
	}
	return nil
}

// Delete removes the first note whose text equals text and returns it.
func (p *Pad) Delete(text string) (*Note, error) {
	i := slices.IndexFunc(p.notes, func(n *Note) bool { return n.text == text })
	if i < 0 {
		return nil, apperr.NotFound(i18n.NoteNotFound, text)
	}
	removed := p.notes[i]
	p.notes = slices.Delete(p.notes, i, i+1)
	return removed, nil
}

// Sort orders notes by tag count, most tags first. Equal counts keep their order.
func (p *Pad) Sort() {
	slices.SortStableFunc(p.notes, func(a, b *Note) int {
		return cmp.Compare(b.TagCount(), a.TagCount())
	})
}

// Find returns the notes whose text contains fragment.
func (p *Pad) Find(fragment string) []*Note {
	var out []*Note
	for _, n := range p.notes {
		if strings.Contains(n.text, fragment) {
			out = append(out, n)
		}
	}
	return out
}

// FindByTag returns the notes with a tag matching query. See MatchesTagQuery.
func (p *Pad) FindByTag(query string) []*Note {
	var out []*Note
	for _, n := range p.notes {
		if MatchesTagQuery(n.tags, query) {
			out = append(out, n)
		}
	}
	return out
}

// Render lists every note between a header and a footer line.
func (p *Pad) Render(tr *i18n.Translator) string {
	var b strings.Builder
	b.WriteString(tr.T(i18n.NotesHeader))
	b.WriteString("\n")
	for _, n := range p.notes {
		b.WriteString(n.Render(tr))
		b.WriteString("\n")
	}
	b.WriteString(tr.T(i18n.NotesFooter))
	return b.String()
}
