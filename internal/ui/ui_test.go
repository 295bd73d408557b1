package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

func TestBold_ContainsText(t *testing.T) {
	Init(false)
	result := Bold("hello")
	if !strings.Contains(result, "hello") {
		t.Errorf("Bold output should contain 'hello', got %q", result)
	}
}

func TestColorDisabled_PlainText(t *testing.T) {
	Init(true) // no color
	defer Init(false)

	if Bold("hello") != "hello" {
		t.Errorf("expected plain text when color disabled, got %q", Bold("hello"))
	}
	if Red("error") != "error" {
		t.Errorf("expected plain text, got %q", Red("error"))
	}
	if Green("ok") != "ok" {
		t.Errorf("expected plain text, got %q", Green("ok"))
	}
	if Yellow("warn") != "warn" {
		t.Errorf("expected plain text, got %q", Yellow("warn"))
	}
	if Dim("dim") != "dim" {
		t.Errorf("expected plain text, got %q", Dim("dim"))
	}
}

func TestLoggerInitialized(t *testing.T) {
	Init(false)
	if Logger == nil {
		t.Error("Logger should be initialized after Init()")
	}
}

func TestSetVerbose(t *testing.T) {
	Init(true)
	SetVerbose(true)
	if Logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", Logger.GetLevel())
	}
	SetVerbose(false)
	if Logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", Logger.GetLevel())
	}
}

func TestHighlight(t *testing.T) {
	Init(false)
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer Init(true)

	text := "Ann: Phones: +380501234567; Anna"
	out := Highlight(text, "Ann")
	if out == text {
		t.Fatal("expected matches to be styled")
	}
	if strings.Count(out, "Ann") != 2 {
		t.Errorf("expected both matches kept, got %q", out)
	}
	if Highlight(text, "") != text {
		t.Error("empty pattern should leave text unchanged")
	}
}

func TestHighlight_NoColor(t *testing.T) {
	Init(true)
	if got := Highlight("Kyiv, Kyiv", "Kyiv"); got != "Kyiv, Kyiv" {
		t.Errorf("expected plain text without color, got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	Init(true)
	out := RenderMarkdown("# Commands\n\n`hello` greets you.")
	if !strings.Contains(out, "Commands") || !strings.Contains(out, "greets you") {
		t.Errorf("rendered markdown lost content: %q", out)
	}
}

func TestConfirmModel_Keys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{"quick yes", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'y'}}}, true},
		{"quick no", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'n'}}}, false},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"left then enter", []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, true},
		{"escape", []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
		{"cyrillic yes", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'т'}}}, true},
		{"cyrillic no", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'н'}}}, false},
	}
	Init(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = confirmModel{prompt: "Delete?", labels: DefaultConfirmLabels, cursor: 1}
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			got := m.(confirmModel)
			if !got.decided {
				t.Fatal("expected a decision")
			}
			if got.accepted != tt.want {
				t.Errorf("accepted = %v, want %v", got.accepted, tt.want)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	Init(true)
	view := confirmModel{prompt: "Delete Ann?", labels: DefaultConfirmLabels, cursor: 1}.View()
	if !strings.Contains(view, "Delete Ann?") || !strings.Contains(view, "▸ No") {
		t.Errorf("unexpected view: %q", view)
	}

	uk := ConfirmLabels{Yes: "Так", No: "Ні", Hint: "т/н"}
	view = confirmModel{prompt: "Видалити Ann?", labels: uk, cursor: 0}.View()
	for _, want := range []string{"▸ Так", "Ні", "т/н"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got %q", want, view)
		}
	}
	if strings.Contains(view, "Yes") {
		t.Errorf("English label in localized view: %q", view)
	}
}
