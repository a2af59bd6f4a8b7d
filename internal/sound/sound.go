// Package sound provides audio cues for quiz feedback. A terminal has
// one note to play with, so cues map to bell patterns rather than
// distinct tones.
package sound

import (
	"os"
	"strings"
	"time"
)

// Cue identifies a feedback sound.
type Cue int

const (
	// CueClick accompanies option selection.
	CueClick Cue = iota
	// CueCorrect plays on a correct answer.
	CueCorrect
	// CueIncorrect plays on a wrong answer.
	CueIncorrect
	// CuePass plays when a quiz score meets the pass mark.
	CuePass
	// CueFail plays when it does not.
	CueFail
	// CueLevelUp celebrates a rank promotion.
	CueLevelUp
)

// Player plays feedback cues. Implementations must be safe to call
// from the UI event loop without blocking it.
type Player interface {
	Play(cue Cue)
}

// NewPlayer returns the default player: silent when HIGHWAY_NO_SOUND
// is set, the terminal bell otherwise.
func NewPlayer() Player {
	if v := os.Getenv("HIGHWAY_NO_SOUND"); v != "" && !strings.EqualFold(v, "false") && v != "0" {
		return Silent{}
	}
	return &Terminal{}
}

// Silent is a Player that plays nothing.
type Silent struct{}

func (Silent) Play(Cue) {}

// Terminal plays cues as terminal bell patterns written to stderr,
// which stays attached to the tty while the alt screen is active.
type Terminal struct{}

// bellCounts maps each cue to a number of bells. Most terminals
// throttle rapid bells, so the counts stay small.
var bellCounts = map[Cue]int{
	CueClick:     0,
	CueCorrect:   1,
	CueIncorrect: 1,
	CuePass:      2,
	CueFail:      1,
	CueLevelUp:   3,
}

func (t *Terminal) Play(cue Cue) {
	n := bellCounts[cue]
	if n == 0 {
		return
	}
	go func() {
		for i := 0; i < n; i++ {
			os.Stderr.WriteString("\a")
			if i < n-1 {
				time.Sleep(120 * time.Millisecond)
			}
		}
	}()
}
