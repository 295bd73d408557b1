// Package contact holds the address book: validated fields, contact records,
// and the book itself.
package contact

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

// Book maps names to records and remembers insertion order, which is the
// order of listings, pages and the saved file.
type Book struct {
	records map[string]*Record
	order   []string
}

func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts r, or replaces the record with the same name in place.
func (b *Book) Add(r *Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

func (b *Book) Get(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, apperr.NotFound(i18n.ContactNotFound, name)
	}
	return r, nil
}

func (b *Book) Has(name string) bool {
	_, ok := b.records[name]
	return ok
}

func (b *Book) Len() int { return len(b.order) }

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

func (b *Book) Remove(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, apperr.NotFound(i18n.ContactNotFound, name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
	return r, nil
}

// Search returns the records whose rendered text contains s.
func (b *Book) Search(tr *i18n.Translator, s string) []*Record {
	var found []*Record
	for _, r := range b.Records() {
		if strings.Contains(r.Render(tr), s) {
			found = append(found, r)
		}
	}
	return found
}

// Pages yields the rendered records size at a time. Each call starts over from
// the first record; the sequence ends at the first empty page.
func (b *Book) Pages(tr *i18n.Translator, size int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if size < 1 {
			return
		}
		for start := 0; ; start += size {
			var page strings.Builder
			for _, key := range b.order[min(start, len(b.order)):min(start+size, len(b.order))] {
				page.WriteString(b.records[key].Render(tr))
			}
			if page.Len() == 0 || !yield(page.String()) {
				return
			}
		}
	}
}

// ShowAll renders every record followed by a total line.
func (b *Book) ShowAll(tr *i18n.Translator) string {
	var out strings.Builder
	for _, r := range b.Records() {
		out.WriteString(r.Render(tr))
	}
	out.WriteString(tr.T(i18n.BookTotal, b.Len()))
	return out.String()
}

// Upcoming returns the records whose next birthday is at most days away.
func (b *Book) Upcoming(now time.Time, days int) []*Record {
	var out []*Record
	for _, r := range b.Records() {
		if r.DaysToBirthday(now) <= days {
			out = append(out, r)
		}
	}
	return out
}
