// Package command turns console lines into operations on the address book and
// the note pad. Each command is one entry in a dispatch table; failures come
// back as localized "<heading>: <message>" lines and never end the session.
package command

import (
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/store"
	"github.com/kokistudios/memomind/internal/ui"
)

const defaultPage = 5

// Prompter is the interactive side of the console that handlers may use
// to ask follow-up questions.
type Prompter interface {
	// Ask shows prompt and returns the next input line.
	Ask(prompt string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
	// Say prints intermediate output before the command result.
	Say(text string)
}

// Env is everything a handler works on.
type Env struct {
	Book  *contact.Book
	Pad   *note.Pad
	Tr    *i18n.Translator
	Store *store.Store
	IO    Prompter
	Now   func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) page() int {
	if e.Store == nil || e.Store.Config.Page < 1 {
		return defaultPage
	}
	return e.Store.Config.Page
}

func (e *Env) save() error {
	return e.Store.SaveData(e.Book, e.Pad)
}

// Handler runs a command with its arguments and returns the text to show.
type Handler func(env *Env, args []string) (string, error)

// Command is one dispatch table entry.
type Command struct {
	Name  string
	Usage string
	Run   Handler
	// Quit ends the session after the command ran.
	Quit bool
}

// Commands in the order they are listed in the banner. The table is filled in
// init because handlers report usage through Lookup, which reads it.
var commands []Command

func init() {
	commands = []Command{
		{Name: "hello", Usage: "hello", Run: greet},
		{Name: "add email", Usage: "add email <name> <email>", Run: addEmail},
		{Name: "add bday", Usage: "add bday <name> <DD.MM.YYYY>", Run: addBirthday},
		{Name: "add address", Usage: "add address <name> <address...>", Run: addAddress},
		{Name: "add contact", Usage: "add contact <name...> [phone] [email] [address...]", Run: addContact},
		{Name: "add note", Usage: "add note <text...> [#tag...]", Run: addNote},
		{Name: "add tag", Usage: "add tag <note fragment...> #tag [#tag...]", Run: addTag},
		{Name: "congrat", Usage: "congrat <days>", Run: congrat},
		{Name: "change note", Usage: "change note <fragment>... <new text> | change note #tag <new text>", Run: changeNote},
		{Name: "change status", Usage: "change status <fragment | #tag>", Run: changeStatus},
		{Name: "change address", Usage: "change address <name> [address...]", Run: changeAddress},
		{Name: "change bday", Usage: "change bday <name> <DD.MM.YYYY>", Run: changeBirthday},
		{Name: "change email", Usage: "change email <name> [email]", Run: changeEmail},
		{Name: "change phone", Usage: "change phone <name> [phone]", Run: changePhone},
		{Name: "phone", Usage: "phone <name>", Run: showPhones},
		{Name: "show contacts", Usage: "show contacts", Run: showContacts},
		{Name: "show notes", Usage: "show notes", Run: showNotes},
		{Name: "search note", Usage: "search note <text | #tag>", Run: searchNotes},
		{Name: "search", Usage: "search <text>", Run: searchContacts},
		{Name: "del note", Usage: "del note <fragment | #tag>", Run: deleteNote},
		{Name: "del address", Usage: "del address <name>", Run: deleteAddress},
		{Name: "del phone", Usage: "del phone <name> [index]", Run: deletePhone},
		{Name: "del bday", Usage: "del bday <name>", Run: deleteBirthday},
		{Name: "del email", Usage: "del email <name>", Run: deleteEmail},
		{Name: "del contact", Usage: "del contact <name>", Run: deleteContact},
		{Name: "lang", Usage: "lang [eng|ukr]", Run: switchLanguage},
		{Name: "save", Usage: "save", Run: saveAll},
		{Name: "help", Usage: "help", Run: help},
		{Name: "close", Usage: "close", Run: exit, Quit: true},
		{Name: "good bye", Usage: "good bye", Run: exit, Quit: true},
		{Name: "exit", Usage: "exit", Run: exit, Quit: true},
	}
}

// Names lists every command name in banner order.
func Names() []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = c.Name
	}
	return out
}

// Lookup returns the command with the exact name.
func Lookup(name string) (Command, bool) {
	for _, c := range commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Banner is the greeting shown when the shell starts.
func Banner(tr *i18n.Translator) string {
	return ui.Brand("MemoMind") + " \n" + tr.T(i18n.Banner, strings.Join(Names(), ", "))
}

// apostrophe stands in for "'" while splitting, so names like Мар'яна and
// words like don't are not read as single-quoted strings. Only double quotes
// group words.
const apostrophe = "\uE000"

// Parse finds the command with the longest name that starts line, ignoring
// case and repeated spaces, and splits the rest into shell-quoted arguments.
// It returns ok=false when no command matches.
func Parse(line string) (cmd Command, args []string, ok bool, err error) {
	line = strings.Join(strings.Fields(line), " ")
	for _, c := range commands {
		n := len(c.Name)
		if len(line) < n || !strings.EqualFold(line[:n], c.Name) {
			continue
		}
		if len(line) > n && line[n] != ' ' {
			continue
		}
		if n > len(cmd.Name) {
			cmd, ok = c, true
		}
	}
	if !ok {
		return Command{}, nil, false, nil
	}
	rest := strings.ReplaceAll(line[len(cmd.Name):], "'", apostrophe)
	args, err = shellquote.Split(rest)
	if err != nil {
		return cmd, nil, true, apperr.Malformed(i18n.Usage, cmd.Usage)
	}
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, apostrophe, "'")
	}
	return cmd, args, true, nil
}

var headings = map[apperr.Kind]i18n.Key{
	apperr.KindValidation: i18n.ErrorValidation,
	apperr.KindDuplicate:  i18n.ErrorDuplicate,
	apperr.KindNotFound:   i18n.ErrorNotFound,
	apperr.KindMalformed:  i18n.ErrorMalformed,
}

// Dispatch runs one console line and returns what to show, and whether the
// session should end.
func Dispatch(env *Env, line string) (out string, quit bool) {
	cmd, args, ok, err := Parse(line)
	if !ok {
		return env.Tr.T(i18n.UnknownCommand), false
	}
	if err == nil {
		ui.Logger.Debug("dispatch", "command", cmd.Name, "args", len(args))
		out, err = cmd.Run(env, args)
	}
	if err != nil {
		ui.Logger.Debug("command failed", "command", cmd.Name, "err", err)
		return Describe(env.Tr, err), false
	}
	return out, cmd.Quit
}

// Describe renders err for the user: a heading for the error kind and the
// localized message. Errors outside the domain taxonomy are unexpected.
func Describe(tr *i18n.Translator, err error) string {
	e, ok := apperr.As(err)
	if !ok {
		return ui.Red(tr.T(i18n.ErrorUnexpected, err))
	}
	heading, ok := headings[e.Kind]
	if !ok {
		return ui.Red(tr.T(i18n.ErrorUnexpected, err))
	}
	return ui.Red(tr.T(heading)+":") + " " + e.Localize(tr)
}

func usage(name string) error {
	c, _ := Lookup(name)
	return apperr.Malformed(i18n.Usage, c.Usage)
}

// nameArg joins all arguments into a contact name.
func nameArg(args []string) string {
	return strings.Join(args, " ")
}
