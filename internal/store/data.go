package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/note"
)

// legacyBirthdayLayout is how older files stored birthdays.
const legacyBirthdayLayout = "2006-01-02 15:04:05"

type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
	Birthday *string  `json:"birthday"`
}

type padJSON struct {
	Notes []*note.Note `json:"notes"`
}

// EncodeBook writes the book as a JSON object keyed by name, in book order.
func EncodeBook(w io.Writer, b *contact.Book) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range b.Records() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Name().String())
		if err != nil {
			return err
		}
		val, err := json.Marshal(toRecordJSON(r))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func toRecordJSON(r *contact.Record) recordJSON {
	out := recordJSON{Name: r.Name().String(), Phones: []string{}}
	for _, p := range r.Phones() {
		out.Phones = append(out.Phones, p.String())
	}
	if e, ok := r.Email(); ok {
		s := e.String()
		out.Email = &s
	}
	if a, ok := r.Address(); ok {
		s := a.String()
		out.Address = &s
	}
	if b, ok := r.Birthday(); ok {
		s := b.String()
		out.Birthday = &s
	}
	return out
}

// DecodeBook reads a book written by EncodeBook. Every field is validated
// again; empty input yields an empty book.
func DecodeBook(r io.Reader) (*contact.Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	book := contact.NewBook()
	if len(bytes.TrimSpace(data)) == 0 {
		return book, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil {
		return nil, err
	} else if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object of contacts, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var raw recordJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("contact %q: %w", key, err)
		}
		rec, err := fromRecordJSON(key, raw)
		if err != nil {
			return nil, fmt.Errorf("contact %q: %w", key, err)
		}
		book.Add(rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return book, nil
}

func fromRecordJSON(key string, raw recordJSON) (*contact.Record, error) {
	nameText := raw.Name
	if nameText == "" {
		nameText = key
	}
	name, err := contact.NewName(nameText)
	if err != nil {
		return nil, err
	}
	rec := contact.NewRecord(name)

	for _, s := range raw.Phones {
		p, err := contact.NewPhone(s)
		if err != nil {
			return nil, fmt.Errorf("phone %q: %w", s, err)
		}
		// Older files could hold the same number in two spellings.
		_ = rec.AddPhone(p)
	}
	if raw.Email != nil && *raw.Email != "" {
		e, err := contact.NewEmail(*raw.Email)
		if err != nil {
			return nil, err
		}
		rec.ChangeEmail(e)
	}
	if raw.Address != nil && *raw.Address != "" {
		a, err := contact.NewAddress(*raw.Address)
		if err != nil {
			return nil, err
		}
		rec.ChangeAddress(a)
	}
	if raw.Birthday != nil && *raw.Birthday != "" {
		b, err := parseStoredBirthday(*raw.Birthday)
		if err != nil {
			return nil, err
		}
		if err := rec.AddBirthday(b); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func parseStoredBirthday(s string) (contact.Birthday, error) {
	b, err := contact.NewBirthday(s)
	if err == nil {
		return b, nil
	}
	if t, lerr := time.Parse(legacyBirthdayLayout, s); lerr == nil {
		return contact.BirthdayOn(t), nil
	}
	return contact.Birthday{}, err
}

// EncodePad writes {"notes": [...]} in pad order.
func EncodePad(w io.Writer, p *note.Pad) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	notes := p.Notes()
	if notes == nil {
		notes = []*note.Note{}
	}
	return enc.Encode(padJSON{Notes: notes})
}

// DecodePad reads a pad written by EncodePad, keeping the file order.
// Empty input yields an empty pad.
func DecodePad(r io.Reader) (*note.Pad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return note.NewPad(), nil
	}
	var raw padJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	notes := slices.DeleteFunc(raw.Notes, func(n *note.Note) bool { return n == nil })
	return note.NewPad(notes...), nil
}

// LoadBook reads the contacts file. A missing file is reported as
// fs.ErrNotExist so callers can tell it apart from a corrupt one.
func LoadBook(path string) (*contact.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load contacts from %s: %w", path, err)
	}
	return b, nil
}

// LoadPad reads the notes file. See LoadBook for missing files.
func LoadPad(path string) (*note.Pad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodePad(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load notes from %s: %w", path, err)
	}
	return p, nil
}

func SaveBook(path string, b *contact.Book) error {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write contacts: %w", err)
	}
	return nil
}

func SavePad(path string, p *note.Pad) error {
	var buf bytes.Buffer
	if err := EncodePad(&buf, p); err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}
	return nil
}

// LoadData reads both collections. Missing files start empty.
func (s *Store) LoadData() (*contact.Book, *note.Pad, error) {
	book, err := LoadBook(s.ContactsPath())
	if os.IsNotExist(err) {
		book, err = contact.NewBook(), nil
	}
	if err != nil {
		return nil, nil, err
	}
	pad, err := LoadPad(s.NotesPath())
	if os.IsNotExist(err) {
		pad, err = note.NewPad(), nil
	}
	if err != nil {
		return nil, nil, err
	}
	return book, pad, nil
}

// SaveData writes both collections.
func (s *Store) SaveData(b *contact.Book, p *note.Pad) error {
	if err := SaveBook(s.ContactsPath(), b); err != nil {
		return err
	}
	return SavePad(s.NotesPath(), p)
}

// writeAtomic replaces path through a temp file in the same directory, so a
// crash leaves either the old or the new content.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
