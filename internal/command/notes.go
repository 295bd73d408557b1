package command

import (
	"fmt"
	"strings"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/ui"
)

// ellipsis separates the old note fragment from the new text in change note.
const ellipsis = "..."

func addNote(env *Env, args []string) (string, error) {
	tags, words, err := note.SplitTags(args)
	if err != nil {
		return "", err
	}
	n, err := note.New(strings.Join(words, " "), env.now(), tags...)
	if err != nil {
		return "", err
	}
	env.Pad.Add(n)
	return env.Tr.T(i18n.NoteAdded), nil
}

func addTag(env *Env, args []string) (string, error) {
	tags, words, err := note.SplitTags(args)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", apperr.Validation(i18n.TagInvalid)
	}
	n, err := choose(env, env.Pad.Find(fragment(strings.Join(words, " "))), strings.Join(words, " "))
	if err != nil {
		return "", err
	}
	added := make([]string, 0, len(tags))
	for _, t := range tags {
		if n.AddTag(t) {
			added = append(added, t.String())
		}
	}
	if len(added) == 0 {
		return "", apperr.Duplicate(i18n.TagExists)
	}
	env.Pad.Sort()
	return env.Tr.T(i18n.TagAdded, strings.Join(added, ", "), n.Text()), nil
}

// changeNote rewrites a note picked either by "fragment... new text" or by
// "#tag new text".
func changeNote(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("change note")
	}
	var candidates []*note.Note
	var query, newText string
	if note.IsTag(args[0]) {
		query = args[0]
		candidates = env.Pad.FindByTag(query)
		newText = strings.Join(args[1:], " ")
	} else {
		old, rest, ok := strings.Cut(strings.Join(args, " "), ellipsis+" ")
		if !ok {
			return "", usage("change note")
		}
		query, newText = old, rest
		candidates = env.Pad.Find(fragment(old))
	}
	if strings.TrimSpace(newText) == "" {
		return "", apperr.Validation(i18n.NoteEmpty)
	}
	n, err := choose(env, candidates, query)
	if err != nil {
		return "", err
	}
	if err := env.Pad.Change(n.Text(), newText); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.NoteChanged, newText), nil
}

func changeStatus(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("change status")
	}
	n, err := pick(env, strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	if err := env.Pad.MarkDone(n.Text(), env.now()); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.NoteDone, n.Text()), nil
}

func deleteNote(env *Env, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("del note")
	}
	n, err := pick(env, strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	if _, err := env.Pad.Delete(n.Text()); err != nil {
		return "", err
	}
	env.Pad.Sort()
	return env.Tr.T(i18n.NoteDeleted, n.Text()), nil
}

func searchNotes(env *Env, args []string) (string, error) {
	query := fragment(strings.Join(args, " "))
	if query == "" {
		return "", usage("search note")
	}
	found := search(env.Pad, query)
	if len(found) == 0 {
		return env.Tr.T(i18n.NotesNone), nil
	}
	texts := make([]string, len(found))
	for i, n := range found {
		texts[i] = n.Text()
	}
	return env.Tr.T(i18n.NotesFound, query, strings.Join(texts, ", ")), nil
}

func showNotes(env *Env, _ []string) (string, error) {
	return env.Pad.Render(env.Tr), nil
}

// fragment strips the ellipsis users type after a partial note text.
func fragment(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ellipsis, ""))
}

// search matches tags for a "#" query and note text otherwise.
func search(p *note.Pad, query string) []*note.Note {
	if note.IsTag(query) {
		return p.FindByTag(query)
	}
	return p.Find(query)
}

// pick selects one note by text fragment or tag.
func pick(env *Env, query string) (*note.Note, error) {
	query = fragment(query)
	return choose(env, search(env.Pad, query), query)
}

// choose resolves candidates to one note. A single candidate is taken as is;
// several are listed page by page and the user types a number, "next" for the
// following page, or 0 to cancel.
func choose(env *Env, candidates []*note.Note, query string) (*note.Note, error) {
	switch len(candidates) {
	case 0:
		return nil, apperr.NotFound(i18n.NoteNotFound, query)
	case 1:
		return candidates[0], nil
	}

	size := env.page()
	for start := 0; start < len(candidates); {
		end := min(start+size, len(candidates))
		page := candidates[start:end]

		env.IO.Say(ui.Bold(env.Tr.T(i18n.ChooserPage, start+1, end)))
		for i, n := range page {
			env.IO.Say(fmt.Sprintf("%d. %s", i+1, n.Text()))
		}
		more := end < len(candidates)
		if more {
			env.IO.Say(ui.Dim(env.Tr.T(i18n.ChooserNext)))
		}
		env.IO.Say(ui.Dim(env.Tr.T(i18n.ChooserExit)))

		answer, err := env.IO.Ask(env.Tr.T(i18n.ChooserPrompt))
		if err != nil {
			return nil, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "next" && more {
			start = end
			continue
		}
		if answer == "0" {
			return nil, apperr.NotFound(i18n.ChooserNone)
		}
		i, err := parseIndex(answer)
		if err != nil {
			return nil, err
		}
		if i > len(page) {
			return nil, apperr.Validation(i18n.IndexInvalid, answer)
		}
		return page[i-1], nil
	}
	return nil, apperr.NotFound(i18n.ChooserNone)
}
