package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/router"
	"github.com/sp80808/Highway-Code-Master/internal/screen"
	"github.com/sp80808/Highway-Code-Master/internal/ui/components"
	"github.com/sp80808/Highway-Code-Master/internal/ui/layout"
	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

// Summary carries everything the results screen displays. The quiz
// screen computes it at the terminal transition; this screen only
// renders.
type Summary struct {
	Category  content.Category
	Score     int
	Total     int
	History   []int
	Questions []quizcore.Question
	Passed    bool
	XPEarned  int
	Progress  progression.Progress
	RankUp    bool
}

// ResultScreen shows the quiz outcome and a review of mistakes.
type ResultScreen struct {
	summary Summary
	restart func() screen.Screen

	// review scroll position, one entry per incorrect answer
	missed   []int
	reviewAt int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the results screen. restart builds a fresh quiz with the
// same category and difficulty for the "try again" action.
func New(summary Summary, restart func() screen.Screen) *ResultScreen {
	var missed []int
	for i, answer := range summary.History {
		if i < len(summary.Questions) && answer != summary.Questions[i].CorrectIndex {
			missed = append(missed, i)
		}
	}
	return &ResultScreen{
		summary: summary,
		restart: restart,
		missed:  missed,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "Try again"},
		{Key: "Esc", Description: "Home"},
	}
	if len(s.missed) > 1 {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Review mistakes"}}, hints...)
	}
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	case "up", "k":
		if s.reviewAt > 0 {
			s.reviewAt--
		}
	case "down", "j":
		if s.reviewAt < len(s.missed)-1 {
			s.reviewAt++
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	percent := 0
	if s.summary.Total > 0 {
		percent = s.summary.Score * 100 / s.summary.Total
	}

	if s.summary.Passed {
		b.WriteString(theme.PassBanner.Width(contentWidth).Render("PASSED"))
	} else {
		b.WriteString(theme.FailBanner.Width(contentWidth).Render("NOT PASSED"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%s — %d/%d correct (%d%%)", s.summary.Category, s.summary.Score, s.summary.Total, percent)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("+%d XP earned", s.summary.XPEarned)))
	b.WriteString("\n\n")

	if s.summary.RankUp {
		b.WriteString(theme.RankUpBanner.Width(contentWidth).Render(
			fmt.Sprintf("%s  Rank up! You are now a %s", s.summary.Progress.Current.Icon, s.summary.Progress.Current.Name)))
		b.WriteString("\n\n")
	}

	// Progress toward the next rank.
	label := fmt.Sprintf("%s %s", s.summary.Progress.Current.Icon, s.summary.Progress.Current.Name)
	bar := components.ProgressBar{
		Label:       label,
		Percent:     s.summary.Progress.ProgressToNext / 100,
		ShowPercent: true,
		Width:       contentWidth,
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(s.renderReview(contentWidth))

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

func (s *ResultScreen) renderReview(width int) string {
	if len(s.missed) == 0 {
		return theme.Correct.Render("Perfect round — nothing to review.")
	}

	idx := s.missed[s.reviewAt]
	q := s.summary.Questions[idx]
	yourAnswer := "(none)"
	if chosen := s.summary.History[idx]; chosen >= 0 && chosen < len(q.Options) {
		yourAnswer = q.Options[chosen]
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Review %d/%d", s.reviewAt+1, len(s.missed))))
	b.WriteString("\n")

	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width-6).Render(q.Text) + "\n\n" +
		theme.Incorrect.Render("Your answer: "+yourAnswer) + "\n" +
		theme.Correct.Render("Correct answer: "+q.Options[q.CorrectIndex]) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(width-6).Render(q.Explanation)

	b.WriteString(theme.Card.Width(width).Render(body))
	return b.String()
}
