package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/store"
)

const (
	defaultBirthdayWindow = 7
	minQueryLen           = 3
)

// Server wraps the MCP server with the loaded book and pad. Tool calls are
// serialized; mutating tools save both files before returning.
type Server struct {
	mu     sync.Mutex
	store  *store.Store
	book   *contact.Book
	pad    *note.Pad
	tr     *i18n.Translator
	now    func() time.Time
	server *mcp.Server
}

// NewServer creates a new MemoMind MCP server.
func NewServer(st *store.Store, book *contact.Book, pad *note.Pad, version string) *Server {
	s := &Server{
		store: st,
		book:  book,
		pad:   pad,
		tr:    i18n.New(st.Config.Locale()),
		now:   time.Now,
	}

	impl := &mcp.Implementation{
		Name:    "memomind",
		Version: version,
	}

	s.server = mcp.NewServer(impl, nil)
	s.registerTools()

	return s
}

// Run starts the MCP server on stdio.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "memomind_contacts_search",
		Description: "Search the address book. Matches the query against every field of a contact (name, phones, email, address, birthday). Returns structured contact records.",
	}, s.handleContactsSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "memomind_birthdays",
		Description: "List contacts whose next birthday is within the given number of days (default 7), with the days remaining.",
	}, s.handleBirthdays)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "memomind_notes_search",
		Description: "Search notes. A query starting with # matches tags (#work also matches #workshop); any other query matches note text. An empty query lists every note.",
	}, s.handleNotesSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "memomind_note_add",
		Description: "Add a note dated today with optional tags. The note pad is saved immediately.",
	}, s.handleNoteAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "memomind_note_done",
		Description: "Mark a note as done by id. Use memomind_notes_search to find the id. The note pad is saved immediately.",
	}, s.handleNoteDone)
}

// ContactSummary is a contact as returned by the tools.
type ContactSummary struct {
	Name           string   `json:"name"`
	Phones         []string `json:"phones,omitempty"`
	Email          string   `json:"email,omitempty"`
	Address        string   `json:"address,omitempty"`
	Birthday       string   `json:"birthday,omitempty"`
	DaysToBirthday *int     `json:"days_to_birthday,omitempty"`
}

func (s *Server) summarize(r *contact.Record) ContactSummary {
	out := ContactSummary{Name: r.Name().String()}
	for _, p := range r.Phones() {
		out.Phones = append(out.Phones, p.String())
	}
	if e, ok := r.Email(); ok {
		out.Email = e.String()
	}
	if a, ok := r.Address(); ok {
		out.Address = a.String()
	}
	if b, ok := r.Birthday(); ok {
		out.Birthday = b.String()
		days := b.DaysUntil(s.now())
		out.DaysToBirthday = &days
	}
	return out
}

// ContactsSearchArgs defines input for memomind_contacts_search.
type ContactsSearchArgs struct {
	Query string `json:"query" jsonschema:"Text to look for in any contact field (at least 3 characters, e.g. 'Kyiv' or '067')"`
}

// ContactsResult is the output of the contact tools.
type ContactsResult struct {
	Contacts []ContactSummary `json:"contacts"`
	Message  string           `json:"message,omitempty"`
}

func (s *Server) handleContactsSearch(ctx context.Context, req *mcp.CallToolRequest, args ContactsSearchArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.TrimSpace(args.Query)
	if len([]rune(query)) < minQueryLen {
		return nil, nil, fmt.Errorf("%s", s.tr.T(i18n.SearchTooShort, minQueryLen))
	}

	out := ContactsResult{Contacts: []ContactSummary{}}
	for _, r := range s.book.Search(s.tr, query) {
		out.Contacts = append(out.Contacts, s.summarize(r))
	}
	if len(out.Contacts) == 0 {
		out.Message = s.tr.T(i18n.SearchNone)
	}
	return nil, out, nil
}

// BirthdaysArgs defines input for memomind_birthdays.
type BirthdaysArgs struct {
	Days int `json:"days,omitempty" jsonschema:"How many days ahead to look (default 7)"`
}

func (s *Server) handleBirthdays(ctx context.Context, req *mcp.CallToolRequest, args BirthdaysArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := args.Days
	if days == 0 {
		days = defaultBirthdayWindow
	}
	if days < 0 {
		return nil, nil, s.localize(apperr.Validation(i18n.DaysInvalid))
	}

	out := ContactsResult{Contacts: []ContactSummary{}}
	for _, r := range s.book.Upcoming(s.now(), days) {
		out.Contacts = append(out.Contacts, s.summarize(r))
	}
	if len(out.Contacts) == 0 {
		out.Message = s.tr.T(i18n.BirthdaysNone, days)
	}
	return nil, out, nil
}

// NoteSummary is a note as returned by the tools.
type NoteSummary struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Tags     []string `json:"tags,omitempty"`
	Created  string   `json:"created"`
	Status   string   `json:"status"`
	DoneDate string   `json:"done_date,omitempty"`
}

func summarizeNote(n *note.Note) NoteSummary {
	out := NoteSummary{
		ID:      n.ID(),
		Text:    n.Text(),
		Created: n.Day().Format(note.DateLayout),
		Status:  string(n.Status()),
	}
	for _, t := range n.Tags() {
		out.Tags = append(out.Tags, t.String())
	}
	if d, ok := n.DoneDate(); ok {
		out.DoneDate = d.Format(note.DateLayout)
	}
	return out
}

// NotesSearchArgs defines input for memomind_notes_search.
type NotesSearchArgs struct {
	Query       string `json:"query,omitempty" jsonschema:"Text fragment or #tag to match (optional)"`
	IncludeDone bool   `json:"include_done,omitempty" jsonschema:"If true, completed notes are included (default: false)"`
}

// NotesResult is the output of memomind_notes_search.
type NotesResult struct {
	Notes   []NoteSummary `json:"notes"`
	Message string        `json:"message,omitempty"`
}

func (s *Server) handleNotesSearch(ctx context.Context, req *mcp.CallToolRequest, args NotesSearchArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.TrimSpace(args.Query)
	var found []*note.Note
	switch {
	case query == "":
		found = s.pad.Notes()
	case note.IsTag(query):
		found = s.pad.FindByTag(query)
	default:
		found = s.pad.Find(query)
	}

	out := NotesResult{Notes: []NoteSummary{}}
	for _, n := range found {
		if n.Done() && !args.IncludeDone {
			continue
		}
		out.Notes = append(out.Notes, summarizeNote(n))
	}
	if len(out.Notes) == 0 {
		out.Message = s.tr.T(i18n.NotesNone)
	}
	return nil, out, nil
}

// NoteAddArgs defines input for memomind_note_add.
type NoteAddArgs struct {
	Text string   `json:"text" jsonschema:"The note text"`
	Tags []string `json:"tags,omitempty" jsonschema:"Tags for the note, with or without the leading # (e.g. work, #home)"`
}

// NoteResult is the output of the note mutation tools.
type NoteResult struct {
	Note    NoteSummary `json:"note"`
	Message string      `json:"message"`
}

func (s *Server) handleNoteAdd(ctx context.Context, req *mcp.CallToolRequest, args NoteAddArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make([]note.HashTag, 0, len(args.Tags))
	for _, raw := range args.Tags {
		t, err := note.NewHashTag(raw)
		if err != nil {
			return nil, nil, s.localize(err)
		}
		tags = append(tags, t)
	}
	n, err := note.New(args.Text, s.now(), tags...)
	if err != nil {
		return nil, nil, s.localize(err)
	}
	s.pad.Add(n)
	if err := s.store.SaveData(s.book, s.pad); err != nil {
		return nil, nil, fmt.Errorf("failed to save notes: %w", err)
	}

	return nil, NoteResult{Note: summarizeNote(n), Message: s.tr.T(i18n.NoteAdded)}, nil
}

// NoteDoneArgs defines input for memomind_note_done.
type NoteDoneArgs struct {
	ID string `json:"id" jsonschema:"The note id from memomind_notes_search"`
}

func (s *Server) handleNoteDone(ctx context.Context, req *mcp.CallToolRequest, args NoteDoneArgs) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if args.ID == "" {
		return nil, nil, fmt.Errorf("note id is required")
	}
	n, err := s.pad.Get(args.ID)
	if err != nil {
		return nil, nil, s.localize(err)
	}
	if err := n.MarkDone(s.now()); err != nil {
		return nil, nil, s.localize(err)
	}
	if err := s.store.SaveData(s.book, s.pad); err != nil {
		return nil, nil, fmt.Errorf("failed to save notes: %w", err)
	}

	return nil, NoteResult{Note: summarizeNote(n), Message: s.tr.T(i18n.NoteDone, n.Text())}, nil
}

// localize turns domain errors into the configured language for the client.
func (s *Server) localize(err error) error {
	if e, ok := apperr.As(err); ok {
		return fmt.Errorf("%s: %w", e.Localize(s.tr), err)
	}
	return err
}
