package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

// MultiChoice renders a four-option question. Highlighting an option
// and committing to it are separate steps: arrow keys move the
// highlight, enter locks the answer in, and the owning screen decides
// when to mark the component revealed.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int

	// Highlighted is the option under the cursor.
	Highlighted int

	// Chosen is the committed answer, -1 until enter is pressed.
	Chosen int

	// Revealed switches the view to showing the correct answer.
	Revealed bool
}

// ChoiceMadeMsg is emitted when the learner commits to an option.
type ChoiceMadeMsg struct {
	Index int
}

// NewMultiChoice creates a component for one question.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Highlighted:  0,
		Chosen:       -1,
	}
}

// Update handles keyboard navigation while the answer is open.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed || m.Chosen >= 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Highlighted > 0 {
			m.Highlighted--
		}
	case "down", "j":
		if m.Highlighted < len(m.Options)-1 {
			m.Highlighted++
		}
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(m.Options) {
			m.Highlighted = idx
		}
	case "enter":
		m.Chosen = m.Highlighted
		idx := m.Chosen
		return m, func() tea.Msg { return ChoiceMadeMsg{Index: idx} }
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range m.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == m.Highlighted && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Revealed && i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Highlighted:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true once revealed if the chosen answer matched.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Chosen == m.CorrectIndex
}
