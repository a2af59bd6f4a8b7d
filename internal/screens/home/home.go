package home

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
	learnscreen "github.com/sp80808/Highway-Code-Master/internal/screens/learn"
	quizscreen "github.com/sp80808/Highway-Code-Master/internal/screens/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/store"
	"github.com/sp80808/Highway-Code-Master/internal/ui/components"
	"github.com/sp80808/Highway-Code-Master/internal/ui/layout"
	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

// stage is the home screen's internal navigation step.
type stage int

const (
	stageMenu stage = iota
	stageCategory
	stageDifficulty
)

// HomeScreen is the entry screen: rank card, main menu, and the
// category/difficulty pickers that lead into a quiz.
type HomeScreen struct {
	fetcher   content.Fetcher
	xp        *progression.XPStore
	snapshots *quizcore.SnapshotStore
	results   store.ResultRepo
	player    sound.Player

	stage      stage
	menu       components.Menu
	categories components.Menu
	levels     components.Menu
	category   content.Category

	// studied outlives individual learn screens so a topic's study XP
	// is awarded at most once per run.
	studied map[content.Category]bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscHandler = (*HomeScreen)(nil)

// New creates the home screen.
func New(
	fetcher content.Fetcher,
	xp *progression.XPStore,
	snapshots *quizcore.SnapshotStore,
	results store.ResultRepo,
	player sound.Player,
) *HomeScreen {
	s := &HomeScreen{
		fetcher:   fetcher,
		xp:        xp,
		snapshots: snapshots,
		results:   results,
		player:    player,
		studied:   make(map[content.Category]bool),
	}
	s.rebuildMenu()
	s.buildPickers()
	return s
}

// rebuildMenu recomputes the main menu, including the resume entry
// when a saved quiz exists.
func (s *HomeScreen) rebuildMenu() {
	var items []components.MenuItem

	if snap := s.snapshots.Load(); snap != nil {
		hint := fmt.Sprintf("%s · question %d of %d", snap.Category, snap.CurrentIndex+1, len(snap.Questions))
		items = append(items, components.MenuItem{
			Label: "RESUME QUIZ",
			Hint:  hint,
			Action: func() tea.Cmd {
				return s.resumeQuiz()
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "START QUIZ", Action: func() tea.Cmd {
			s.stage = stageCategory
			return nil
		}},
		components.MenuItem{Label: "LEARN", Action: func() tea.Cmd {
			next := learnscreen.New(s.fetcher, s.xp, s.player, s.studied)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	s.menu = components.NewMenu(items)
}

// buildPickers creates the category and difficulty menus.
func (s *HomeScreen) buildPickers() {
	catItems := make([]components.MenuItem, 0, len(content.Categories))
	for _, cat := range content.Categories {
		cat := cat
		hint := fmt.Sprintf("%d questions", content.QuestionCount(cat))
		catItems = append(catItems, components.MenuItem{
			Label: string(cat),
			Hint:  hint,
			Action: func() tea.Cmd {
				s.category = cat
				s.stage = stageDifficulty
				return nil
			},
		})
	}
	s.categories = components.NewMenu(catItems)

	lvlItems := make([]components.MenuItem, 0, len(content.Difficulties))
	for _, lvl := range content.Difficulties {
		lvl := lvl
		lvlItems = append(lvlItems, components.MenuItem{
			Label: string(lvl),
			Action: func() tea.Cmd {
				return s.startQuiz(s.category, lvl)
			},
		})
	}
	s.levels = components.NewMenu(lvlItems)
}

func (s *HomeScreen) startQuiz(cat content.Category, lvl content.Difficulty) tea.Cmd {
	s.stage = stageMenu
	next := quizscreen.New(s.fetcher, s.snapshots, s.xp, s.results, s.player, cat, lvl)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) resumeQuiz() tea.Cmd {
	snap := s.snapshots.Load()
	if snap == nil {
		s.rebuildMenu()
		return nil
	}
	session, err := quizcore.Restore(snap, s.snapshots)
	if err != nil {
		s.snapshots.Clear()
		s.rebuildMenu()
		return nil
	}
	next := quizscreen.Resume(session, s.fetcher, s.snapshots, s.xp, s.results, s.player)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// Init refreshes the main menu. The router re-runs it whenever the
// home screen is revealed by a pop, so the resume entry tracks the
// snapshot a quiz may have written or cleared in the meantime.
func (s *HomeScreen) Init() tea.Cmd {
	s.rebuildMenu()
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if s.stage != stageMenu {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// ConsumesEsc keeps Esc inside the screen while a picker stage is open.
func (s *HomeScreen) ConsumesEsc() bool {
	return s.stage != stageMenu
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "esc" {
		switch s.stage {
		case stageDifficulty:
			s.stage = stageCategory
		case stageCategory:
			s.stage = stageMenu
			// A quiz may have completed since the menu was built.
			s.rebuildMenu()
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.stage {
	case stageMenu:
		s.menu, cmd = s.menu.Update(msg)
	case stageCategory:
		s.categories, cmd = s.categories.Update(msg)
	case stageDifficulty:
		s.levels, cmd = s.levels.Update(msg)
	}
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	b.WriteString(s.renderRankCard(contentWidth))
	b.WriteString("\n\n")

	switch s.stage {
	case stageCategory:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Choose a category"))
		b.WriteString("\n\n")
		b.WriteString(s.categories.View())
	case stageDifficulty:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
			fmt.Sprintf("%s — choose a difficulty", s.category)))
		b.WriteString("\n\n")
		b.WriteString(s.levels.View())
	default:
		b.WriteString(s.menu.View())
	}

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

// renderRankCard shows the current rank and progress toward the next.
func (s *HomeScreen) renderRankCard(width int) string {
	prog := progression.Calculate(s.xp.XP())

	title := fmt.Sprintf("%s  %s", prog.Current.Icon, prog.Current.Name)
	sub := fmt.Sprintf("Level %d · %d XP", prog.Level, prog.XP)
	if prog.Next != nil {
		sub += fmt.Sprintf(" · next: %s at %d XP", prog.Next.Name, prog.Next.MinXP)
	}

	bar := components.ProgressBar{
		Percent:     prog.ProgressToNext / 100,
		ShowPercent: true,
		Width:       width - 6,
		FillColor:   lipgloss.Color(prog.Current.Color),
	}

	body := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(sub) + "\n\n" +
		bar.View()

	return theme.Card.Width(width).Render(body)
}
