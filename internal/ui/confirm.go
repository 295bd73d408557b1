package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmLabels are the words Confirm shows next to the prompt.
type ConfirmLabels struct {
	Yes, No, Hint string
}

var DefaultConfirmLabels = ConfirmLabels{
	Yes:  "Yes",
	No:   "No",
	Hint: "←/→ to select • enter to confirm • y/n for quick select",
}

// confirmModel is a bubbletea model for y/n confirmation.
type confirmModel struct {
	prompt   string
	labels   ConfirmLabels
	cursor   int // 0 = yes, 1 = no
	decided  bool
	accepted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y", "т", "Т":
		m.accepted, m.decided = true, true
		return m, tea.Quit
	case "n", "N", "н", "Н", "ctrl+c", "esc":
		m.accepted, m.decided = false, true
		return m, tea.Quit
	case "left", "h":
		m.cursor = 0
	case "right", "l":
		m.cursor = 1
	case "enter", " ":
		m.accepted = m.cursor == 0
		m.decided = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var yes, no string
	if m.cursor == 0 {
		yes = successStyle.Render("▸ " + m.labels.Yes + " ")
		no = dimStyle.Render("  " + m.labels.No + "  ")
	} else {
		yes = dimStyle.Render("  " + m.labels.Yes + " ")
		no = errorStyle.Render("▸ " + m.labels.No + "  ")
	}

	return fmt.Sprintf("%s\n\n  %s  %s\n\n%s",
		promptStyle.Render(m.prompt),
		yes, no,
		dimStyle.Render("  "+m.labels.Hint))
}

// Confirm prompts the user with a yes/no question and returns the response.
// The cursor starts on "No".
func Confirm(prompt string, labels ConfirmLabels) (bool, error) {
	if labels == (ConfirmLabels{}) {
		labels = DefaultConfirmLabels
	}
	m := confirmModel{prompt: prompt, labels: labels, cursor: 1}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(os.Stderr)
	return result.(confirmModel).accepted, nil
}
