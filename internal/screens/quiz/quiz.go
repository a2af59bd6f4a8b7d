package quiz

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sp80808/Highway-Code-Master/internal/content"
	"github.com/sp80808/Highway-Code-Master/internal/progression"
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
	"github.com/sp80808/Highway-Code-Master/internal/router"
	"github.com/sp80808/Highway-Code-Master/internal/screen"
	"github.com/sp80808/Highway-Code-Master/internal/screens/result"
	"github.com/sp80808/Highway-Code-Master/internal/sound"
	"github.com/sp80808/Highway-Code-Master/internal/store"
	"github.com/sp80808/Highway-Code-Master/internal/ui/components"
	"github.com/sp80808/Highway-Code-Master/internal/ui/layout"
	"github.com/sp80808/Highway-Code-Master/internal/ui/theme"
)

const fetchTimeout = 90 * time.Second

// phase is the screen's display state, distinct from the session's own
// lifecycle.
type phase int

const (
	phaseLoading phase = iota
	phaseError
	phaseQuestion
	phaseRevealed
)

// QuizScreen runs one quiz from fetch to completion.
type QuizScreen struct {
	fetcher    content.Fetcher
	snapshots  *quizcore.SnapshotStore
	xp         *progression.XPStore
	results    store.ResultRepo
	player     sound.Player
	category   content.Category
	difficulty content.Difficulty

	session *quizcore.Session
	mc      components.MultiChoice
	spin    spinner.Model
	phase   phase
	errMsg  string

	// fetchSeq increments per fetch so completions from an abandoned
	// attempt are dropped.
	fetchSeq int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return sp
}

// New creates a quiz screen that fetches fresh questions on Init.
func New(
	fetcher content.Fetcher,
	snapshots *quizcore.SnapshotStore,
	xp *progression.XPStore,
	results store.ResultRepo,
	player sound.Player,
	category content.Category,
	difficulty content.Difficulty,
) *QuizScreen {
	return &QuizScreen{
		fetcher:    fetcher,
		snapshots:  snapshots,
		xp:         xp,
		results:    results,
		player:     player,
		category:   category,
		difficulty: difficulty,
		spin:       newSpinner(),
		phase:      phaseLoading,
	}
}

// Resume creates a quiz screen over a session restored from a saved
// snapshot. No fetch happens; the snapshot already carries the
// questions.
func Resume(
	session *quizcore.Session,
	fetcher content.Fetcher,
	snapshots *quizcore.SnapshotStore,
	xp *progression.XPStore,
	results store.ResultRepo,
	player sound.Player,
) *QuizScreen {
	s := &QuizScreen{
		fetcher:   fetcher,
		snapshots: snapshots,
		xp:        xp,
		results:   results,
		player:    player,
		category:  content.Category(session.Category()),
		spin:      newSpinner(),
	}
	s.attachSession(session)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.session != nil {
		return nil
	}
	return tea.Batch(s.fetch(), s.spin.Tick)
}

func (s *QuizScreen) Title() string {
	return string(s.category)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseRevealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Save & exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Save & exit"},
	}
}

// fetch launches question generation for the current sequence number.
func (s *QuizScreen) fetch() tea.Cmd {
	s.fetchSeq++
	seq := s.fetchSeq
	fetcher := s.fetcher
	category := s.category
	difficulty := s.difficulty
	count := content.QuestionCount(category)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		questions, err := fetcher.Questions(ctx, category, difficulty, count)
		if err != nil {
			return fetchFailedMsg{Seq: seq, Err: err}
		}
		return questionsReadyMsg{Seq: seq, Questions: questions}
	}
}

// attachSession binds a session and prepares the multi-choice view for
// its current question.
func (s *QuizScreen) attachSession(session *quizcore.Session) {
	s.session = session
	s.phase = phaseQuestion
	q := session.Current()
	s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		if msg.Seq != s.fetchSeq {
			return s, nil
		}
		session, err := quizcore.NewSession(string(s.category), msg.Questions, s.snapshots)
		if err != nil {
			s.phase = phaseError
			s.errMsg = err.Error()
			return s, nil
		}
		s.attachSession(session)
		return s, nil

	case fetchFailedMsg:
		if msg.Seq != s.fetchSeq {
			return s, nil
		}
		s.phase = phaseError
		s.errMsg = "Could not generate questions. Check your connection and try again."
		return s, nil

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case components.ChoiceMadeMsg:
		return s.handleAnswer(msg.Index)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseError:
		if msg.String() == "r" {
			s.phase = phaseLoading
			return s, tea.Batch(s.fetch(), s.spin.Tick)
		}
	case phaseQuestion:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	case phaseRevealed:
		if msg.String() == "enter" {
			return s.advance()
		}
	}
	return s, nil
}

// handleAnswer commits the chosen option to the session and reveals
// the answer.
func (s *QuizScreen) handleAnswer(index int) (screen.Screen, tea.Cmd) {
	if err := s.session.Select(index); err != nil {
		return s, nil
	}
	correct, err := s.session.Submit()
	if err != nil {
		return s, nil
	}

	s.mc.Revealed = true
	s.phase = phaseRevealed

	if correct {
		s.player.Play(sound.CueCorrect)
	} else {
		s.player.Play(sound.CueIncorrect)
	}
	return s, nil
}

// advance steps past the revealed answer; the terminal step awards XP,
// records the outcome, and swaps in the results screen.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	res, done, err := s.session.Advance()
	if err != nil {
		return s, nil
	}
	if !done {
		s.attachSession(s.session)
		return s, nil
	}

	passed := float64(res.Score)/float64(res.Total) >= progression.PassMark
	xpEarned := progression.QuizXP(res.Score, res.Total)

	before := progression.Calculate(s.xp.XP())
	after := s.xp.AddXP(xpEarned)
	rankUp := after.Current.Name != before.Current.Name

	if s.results != nil {
		err := s.results.Append(context.Background(), store.QuizResult{
			Timestamp:  time.Now(),
			Category:   string(s.category),
			Difficulty: string(s.difficulty),
			Score:      res.Score,
			Total:      res.Total,
			XPEarned:   xpEarned,
			Passed:     passed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record quiz result: %v\n", err)
		}
	}

	if passed {
		s.player.Play(sound.CuePass)
	} else {
		s.player.Play(sound.CueFail)
	}
	if rankUp {
		s.player.Play(sound.CueLevelUp)
	}

	questions := s.session.Questions()
	restart := func() screen.Screen {
		return New(s.fetcher, s.snapshots, s.xp, s.results, s.player, s.category, s.difficulty)
	}

	resultScreen := result.New(result.Summary{
		Category:  s.category,
		Score:     res.Score,
		Total:     res.Total,
		History:   res.History,
		Questions: questions,
		Passed:    passed,
		XPEarned:  xpEarned,
		Progress:  after,
		RankUp:    rankUp,
	}, restart)

	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: resultScreen} }
}
