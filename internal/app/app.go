package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/router"
	"github.com/sp80808/Highway-Code-Master/internal/screen"
	"github.com/sp80808/Highway-Code-Master/internal/screens/home"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/store"
	"github.com/sp80808/Highway-Code-Master/internal/ui/layout"
)

// Options carries the services the UI runs on.
type Options struct {
	Fetcher   content.Fetcher
	XP        *progression.XPStore
	Snapshots *quizcore.SnapshotStore
	Results   store.ResultRepo
	Sound     sound.Player
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	xp     *progression.XPStore
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Fetcher, opts.XP, opts.Snapshots, opts.Results, opts.Sound)
	return AppModel{
		router: router.New(homeScreen),
		xp:     opts.XP,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with internal stages take Esc themselves.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.ConsumesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	prog := progression.Calculate(m.xp.XP())
	header := layout.RenderHeader(title, layout.HeaderInfo{
		RankIcon: prog.Current.Icon,
		RankName: prog.Current.Name,
		XP:       prog.XP,
	}, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
