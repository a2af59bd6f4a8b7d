package quiz

import (
	quizcore "github.com/sp80808/Highway-Code-Master/internal/quiz"
)

// questionsReadyMsg is sent when a question batch has been generated.
// Seq ties the message to the fetch that produced it so a stale
// completion from an abandoned fetch cannot clobber a newer one.
type questionsReadyMsg struct {
	Seq       int
	Questions []quizcore.Question
}

// fetchFailedMsg is sent when question generation fails.
type fetchFailedMsg struct {
	Seq int
	Err error
}
