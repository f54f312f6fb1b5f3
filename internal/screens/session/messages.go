package session

import (
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/quizclient"
)

// detailLoadedMsg carries the outcome of a quiz detail request.
type detailLoadedMsg struct {
	Ticket quizclient.Ticket
	Detail *quiz.Detail
	Err    error
}

// resultDeliveredMsg is sent once the host channel send has finished,
// whatever its outcome.
type resultDeliveredMsg struct{}
