package learn

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	"github.com/sp80808/Highway-Code-Master/internal/screen"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/ui/components"
	"github.com/sp80808/Highway-Code-Master/internal/ui/layout"
	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

const fetchTimeout = 90 * time.Second

type phase int

const (
	phaseTopics phase = iota
	phaseLoading
	phaseError
	phaseGuide
)

// guideReadyMsg is sent when a study guide has been generated.
type guideReadyMsg struct {
	Seq      int
	Category content.Category
	Guide    *content.StudyGuide
}

// guideFailedMsg is sent when study guide generation fails.
type guideFailedMsg struct {
	Seq int
	Err error
}

// LearnScreen lets the learner browse generated study guides.
type LearnScreen struct {
	fetcher content.Fetcher
	xp      *progression.XPStore
	player  sound.Player

	menu     components.Menu
	phase    phase
	errMsg   string
	topic    content.Category
	guide    *content.StudyGuide
	vp       viewport.Model
	spin     spinner.Model
	fetchSeq int

	// opened tracks which topics already earned their study XP this
	// run. The caller owns the map so the award survives leaving and
	// re-entering the screen.
	opened map[content.Category]bool

	width  int
	height int
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates the learn screen with the topic list. opened carries the
// topics that already earned study XP this run; pass the same map
// across instances to keep the award once-per-run. A nil map starts a
// fresh tally.
func New(fetcher content.Fetcher, xp *progression.XPStore, player sound.Player, opened map[content.Category]bool) *LearnScreen {
	if opened == nil {
		opened = make(map[content.Category]bool)
	}
	s := &LearnScreen{
		fetcher: fetcher,
		xp:      xp,
		player:  player,
		opened:  opened,
		vp:      viewport.New(),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	s.spin = sp

	items := make([]components.MenuItem, 0, len(content.StudyCategories))
	for _, cat := range content.StudyCategories {
		cat := cat
		items = append(items, components.MenuItem{
			Label:  string(cat),
			Action: func() tea.Cmd { return s.openTopic(cat) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseGuide:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Topics"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open topic"},
		{Key: "Esc", Description: "Back"},
	}
}

// openTopic starts a guide fetch for the chosen topic.
func (s *LearnScreen) openTopic(cat content.Category) tea.Cmd {
	s.topic = cat
	s.phase = phaseLoading
	s.fetchSeq++
	seq := s.fetchSeq
	fetcher := s.fetcher

	fetchCmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		guide, err := fetcher.StudyGuide(ctx, cat)
		if err != nil {
			return guideFailedMsg{Seq: seq, Err: err}
		}
		return guideReadyMsg{Seq: seq, Category: cat, Guide: guide}
	}
	return tea.Batch(fetchCmd, s.spin.Tick)
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case guideReadyMsg:
		if msg.Seq != s.fetchSeq {
			return s, nil
		}
		s.guide = msg.Guide
		s.phase = phaseGuide
		s.vp.SetContent(s.renderGuideBody())
		s.vp.GotoTop()
		s.awardFirstOpen(msg.Category)
		return s, nil

	case guideFailedMsg:
		if msg.Seq != s.fetchSeq {
			return s, nil
		}
		s.phase = phaseError
		s.errMsg = "Could not generate the study guide. Check your connection and try again."
		return s, nil

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// awardFirstOpen grants the flat study XP the first time a topic opens
// in this run. A rank change here gets the same fanfare as a quiz.
func (s *LearnScreen) awardFirstOpen(cat content.Category) {
	if s.opened[cat] {
		return
	}
	s.opened[cat] = true

	before := progression.Calculate(s.xp.XP())
	after := s.xp.AddXP(progression.StudyTopicXP)
	if after.Current.Name != before.Current.Name {
		s.player.Play(sound.CueLevelUp)
	}
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseTopics:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseError:
		switch msg.String() {
		case "r":
			return s, s.openTopic(s.topic)
		case "esc":
			s.phase = phaseTopics
			return s, nil
		}

	case phaseGuide:
		if msg.String() == "esc" {
			s.phase = phaseTopics
			return s, nil
		}
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return s, cmd
	}
	return s, nil
}

// ConsumesEsc reports whether the screen wants Esc for itself instead
// of popping back to the previous screen.
func (s *LearnScreen) ConsumesEsc() bool {
	return s.phase == phaseGuide || s.phase == phaseError
}

func (s *LearnScreen) View(width, height int) string {
	s.width = width
	s.height = height

	switch s.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  %s Writing your study guide...", s.spin.View()))

	case phaseError:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to try again, Esc to go back.", s.errMsg))

	case phaseGuide:
		s.vp.SetWidth(width - 8)
		s.vp.SetHeight(height - 2)
		return lipgloss.NewStyle().
			PaddingLeft(4).
			PaddingTop(1).
			Render(s.vp.View())
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Pick a topic to study"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

func (s *LearnScreen) renderGuideBody() string {
	g := s.guide
	width := 72

	var b strings.Builder
	b.WriteString(theme.Title.Render(g.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(g.Introduction))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Key Rules"))
	b.WriteString("\n\n")
	for i, rule := range g.KeyRules {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(
			fmt.Sprintf("%d. %s", i+1, rule.Title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(rule.Content))
		b.WriteString("\n\n")
	}

	if len(g.CommonSigns) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Common Signs & Markings"))
		b.WriteString("\n\n")
		for _, sign := range g.CommonSigns {
			heading := fmt.Sprintf("%s  %s", sign.Icon, sign.Name)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(heading))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + sign.Shape + ")"))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).Render(sign.Description))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
