package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/ui/components"
	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return s.renderLoading(width)
	case phaseError:
		return s.renderError(width)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Generating your questions...", s.spin.View()))
}

func (s *QuizScreen) renderError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to try again, Esc to go back.", s.errMsg))
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var b strings.Builder

	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	// Progress through the quiz.
	bar := components.ProgressBar{
		Label:   fmt.Sprintf("Question %d/%d", s.session.Index()+1, s.session.Total()),
		Percent: float64(s.session.Index()) / float64(s.session.Total()),
		Width:   contentWidth,
	}
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score: %d", s.session.Score())))
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())

	if s.phase == phaseRevealed {
		b.WriteString("\n")
		b.WriteString(s.renderExplanation(contentWidth))
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

func (s *QuizScreen) renderExplanation(width int) string {
	q := s.session.Current()

	_, correct := s.session.LastAnswer()
	verdict := theme.Incorrect.Render("✗ Not quite.")
	if correct {
		verdict = theme.Correct.Render("✓ Correct!")
	}

	body := verdict + "\n\n" + lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width-6).
		Render(q.Explanation)

	return theme.Card.Width(width).Render(body)
}
