package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
)

func sampleBook(t *testing.T) *contact.Book {
	t.Helper()
	b := contact.NewBook()
	for _, name := range []string{"Zoe", "Ann Lee", "Bob"} {
		n, err := contact.NewName(name)
		if err != nil {
			t.Fatal(err)
		}
		b.Add(contact.NewRecord(n))
	}
	r, _ := b.Get("Ann Lee")
	p, _ := contact.NewPhone("0501234567")
	r.AddPhone(p)
	e, _ := contact.NewEmail("ann@example.com")
	r.AddEmail(e)
	bd, _ := contact.NewBirthday("29.02.1992")
	r.AddBirthday(bd)
	return b
}

func TestBookRoundTripKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, sampleBook(t)); err != nil {
		t.Fatalf("EncodeBook: %v", err)
	}

	got, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}
	var names []string
	for _, r := range got.Records() {
		names = append(names, r.Name().String())
	}
	if strings.Join(names, ",") != "Zoe,Ann Lee,Bob" {
		t.Errorf("order not kept: %v", names)
	}

	tr := i18n.New(i18n.English)
	ann, _ := got.Get("Ann Lee")
	want := "Ann Lee: Phones: +380501234567; E-mail: ann@example.com; Date of birth: 29.02.1992; Address: - \n"
	if ann.Render(tr) != want {
		t.Errorf("record = %q, want %q", ann.Render(tr), want)
	}
}

func TestEncodeBookShape(t *testing.T) {
	var buf bytes.Buffer
	EncodeBook(&buf, sampleBook(t))
	out := buf.String()

	for _, want := range []string{`"Zoe": {`, `"email": null`, `"phones": []`, `"birthday": "29.02.1992"`} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded book missing %s:\n%s", want, out)
		}
	}
}

func TestDecodeBookLegacy(t *testing.T) {
	legacy := `{"Ann": {"name": "Ann", "phones": ["0501234567", "+380501234567", "0671112233"],
		"email": "", "address": "Kyiv, Khreshchatyk 1", "birthday": "1990-05-12 00:00:00"}}`

	b, err := DecodeBook(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeBook: %v", err)
	}
	ann, err := b.Get("Ann")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(ann.Phones()); got != 2 {
		t.Errorf("expected duplicate spellings merged into 2 phones, got %d", got)
	}
	if _, ok := ann.Email(); ok {
		t.Error("empty email should load as unset")
	}
	if bd, ok := ann.Birthday(); !ok || bd.String() != "12.05.1990" {
		t.Errorf("legacy birthday not parsed: %v", bd)
	}
}

func TestDecodeBookEmptyAndCorrupt(t *testing.T) {
	for _, in := range []string{"", "  \n\t"} {
		b, err := DecodeBook(strings.NewReader(in))
		if err != nil || b.Len() != 0 {
			t.Errorf("DecodeBook(%q) = %v, %v; want empty book", in, b, err)
		}
	}

	for _, in := range []string{"[]", "{", `{"Ann": {"phones": ["123"]}}`, `{"1": {"name": "1"}}`} {
		if _, err := DecodeBook(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeBook(%q) expected error", in)
		}
	}
}

func TestPadRoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	a, _ := note.New("buy milk", now)
	tag, _ := note.NewHashTag("shop")
	a.AddTag(tag)
	b, _ := note.New("call <mom> & dad", now)
	b.MarkDone(now)

	var buf bytes.Buffer
	if err := EncodePad(&buf, note.NewPad(a, b)); err != nil {
		t.Fatalf("EncodePad: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"notes\": [") {
		t.Errorf("unexpected shape:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "call <mom> & dad") {
		t.Error("text should not be HTML-escaped")
	}

	got, err := DecodePad(&buf)
	if err != nil {
		t.Fatalf("DecodePad: %v", err)
	}
	notes := got.Notes()
	if len(notes) != 2 || notes[0].ID() != a.ID() || notes[1].Text() != b.Text() || !notes[1].Done() {
		t.Errorf("round trip mismatch: %v", notes)
	}
}

func TestDecodePadEmptyAndCorrupt(t *testing.T) {
	p, err := DecodePad(strings.NewReader(" "))
	if err != nil || p.Len() != 0 {
		t.Errorf("expected empty pad, got %v, %v", p, err)
	}
	p, err = DecodePad(strings.NewReader(`{"notes": []}`))
	if err != nil || p.Len() != 0 {
		t.Errorf("expected empty pad, got %v, %v", p, err)
	}
	if _, err := DecodePad(strings.NewReader(`{"notes": [{"day": "bad"}]}`)); err == nil {
		t.Error("expected error for bad day")
	}
}

func TestLoadDataMissingFiles(t *testing.T) {
	s := &Store{Home: t.TempDir(), Config: DefaultConfig()}

	book, pad, err := s.LoadData()
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if book.Len() != 0 || pad.Len() != 0 {
		t.Error("expected empty collections")
	}
}

func TestLoadDataCorruptFailsFast(t *testing.T) {
	s := &Store{Home: t.TempDir(), Config: DefaultConfig()}
	os.WriteFile(s.ContactsPath(), []byte("{oops"), 0644)

	_, _, err := s.LoadData()
	if err == nil || !strings.Contains(err.Error(), s.ContactsPath()) {
		t.Errorf("expected error naming the file, got %v", err)
	}
}

func TestSaveDataAtomic(t *testing.T) {
	s := &Store{Home: filepath.Join(t.TempDir(), "nested"), Config: DefaultConfig()}

	if err := s.SaveData(sampleBook(t), note.NewPad()); err != nil {
		t.Fatalf("SaveData: %v", err)
	}
	entries, _ := os.ReadDir(s.Home)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}

	book, _, err := s.LoadData()
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if book.Len() != 3 {
		t.Errorf("expected 3 contacts, got %d", book.Len())
	}
}
