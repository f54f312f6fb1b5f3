// Package quizclient holds the quiz client's state machine: list loading,
// quiz detail loading, answer selection, submission and navigation.
package quizclient

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/quizmate/internal/locale"
	"github.com/abhisek/quizmate/internal/quiz"
)

var (
	// ErrNoAnswers is returned by Submit when no question has been answered.
	ErrNoAnswers = errors.New("no answers selected")

	// ErrAlreadySubmitted is returned by Submit after a successful submission.
	ErrAlreadySubmitted = errors.New("answers already submitted")

	errNoDetail = errors.New("no quiz loaded")
)

// Phase is the derived state of the client.
type Phase int

const (
	PhaseList          Phase = iota // Quiz list view
	PhaseDetailLoading              // Quiz selected, detail in flight
	PhaseDetailFailed               // Detail request failed, banner shown
	PhaseDetailReady                // Detail loaded, nothing answered yet
	PhaseAnswering                  // At least one answer selected
	PhaseSubmitted                  // Answers frozen, result shown
)

func (p Phase) String() string {
	switch p {
	case PhaseList:
		return "list"
	case PhaseDetailLoading:
		return "detail-loading"
	case PhaseDetailFailed:
		return "detail-failed"
	case PhaseDetailReady:
		return "detail-ready"
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Ticket identifies one detail request. Only the ticket issued by the
// latest OpenQuiz is accepted by FinishDetailLoad.
type Ticket struct {
	seq    uint64
	QuizID quiz.ID
}

// State is the single record behind every view of the client.
type State struct {
	// Quizzes is the loaded quiz collection.
	Quizzes []quiz.Quiz

	// LoadingQuizzes is true while the list request is pending.
	LoadingQuizzes bool

	// SelectedQuizID is set while the quiz view is active.
	SelectedQuizID quiz.ID

	// Detail is the loaded quiz, nil until the detail request succeeds.
	Detail *quiz.Detail

	// LoadingDetail is true while the detail request is pending.
	LoadingDetail bool

	// Answers holds the selections for the open quiz.
	Answers quiz.AnswerMap

	// Submitted freezes Answers once true.
	Submitted bool

	// Result is set on submission.
	Result *quiz.Result

	// Error is the banner message key, empty when no banner is shown.
	Error locale.Key

	// SessionID correlates log records of one opened quiz.
	SessionID string

	logger *slog.Logger
	seq    uint64
}

// New creates a State in the list phase. A nil logger uses slog.Default().
func New(logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		Answers: quiz.AnswerMap{},
		logger:  logger,
	}
}

// Phase derives the current phase from the state fields.
func (s *State) Phase() Phase {
	switch {
	case s.SelectedQuizID.IsZero():
		return PhaseList
	case s.Submitted:
		return PhaseSubmitted
	case s.Detail == nil && s.LoadingDetail:
		return PhaseDetailLoading
	case s.Detail == nil:
		return PhaseDetailFailed
	case s.Answers.Any(s.Detail.Questions):
		return PhaseAnswering
	default:
		return PhaseDetailReady
	}
}

// InQuiz reports whether the quiz view is active.
func (s *State) InQuiz() bool {
	return !s.SelectedQuizID.IsZero()
}

// BeginListLoad marks the quiz list as loading.
func (s *State) BeginListLoad() {
	s.LoadingQuizzes = true
	s.Error = ""
}

// FinishListLoad applies the result of a list request.
func (s *State) FinishListLoad(quizzes []quiz.Quiz, err error) {
	s.LoadingQuizzes = false
	if err != nil {
		s.logger.Error("load quiz list", "err", err)
		s.Quizzes = nil
		s.Error = locale.ErrListLoad
		return
	}
	if quizzes == nil {
		quizzes = []quiz.Quiz{}
	}
	s.Quizzes = quizzes
	s.logger.Info("quiz list loaded", "count", len(quizzes))
}

// OpenQuiz resets all per-quiz state, marks the detail as loading and
// returns the ticket the matching response must carry.
func (s *State) OpenQuiz(id quiz.ID) Ticket {
	s.resetQuiz()
	s.seq++
	s.SelectedQuizID = id
	s.LoadingDetail = true
	s.SessionID = uuid.NewString()
	s.logger.Info("open quiz", "quiz_id", id.String(), "session", s.SessionID)
	return Ticket{seq: s.seq, QuizID: id}
}

// FinishDetailLoad applies a detail response. It returns false and leaves
// the state untouched when t is stale, i.e. another quiz was opened or the
// user went back since the request was issued.
func (s *State) FinishDetailLoad(t Ticket, detail *quiz.Detail, err error) bool {
	if t.seq != s.seq || !s.InQuiz() {
		s.logger.Debug("drop stale quiz response", "quiz_id", t.QuizID.String())
		return false
	}
	s.LoadingDetail = false
	if err != nil {
		s.logger.Error("load quiz", "quiz_id", t.QuizID.String(), "session", s.SessionID, "err", err)
		s.Error = locale.ErrDetailLoad
		return true
	}
	s.Detail = detail
	return true
}

// Select records option for questionID. It is a no-op once submitted or
// when no quiz is loaded.
func (s *State) Select(questionID quiz.ID, option int) {
	if s.Submitted || s.Detail == nil {
		return
	}
	s.Answers.Select(questionID, option)
}

// Score computes the result of the current answers.
func (s *State) Score() quiz.Result {
	if s.Detail == nil {
		return quiz.Result{}
	}
	return quiz.Score(s.Detail.Questions, s.Answers)
}

// Submit freezes the answers and stores the result. Without any answered
// question it sets the validation banner and returns ErrNoAnswers without
// touching the submission state. The returned payload is what the host
// channel should receive.
func (s *State) Submit() (quiz.Payload, error) {
	if s.Detail == nil {
		return quiz.Payload{}, errNoDetail
	}
	if s.Submitted {
		return quiz.Payload{}, ErrAlreadySubmitted
	}
	if !s.Answers.Any(s.Detail.Questions) {
		s.Error = locale.ErrNoAnswers
		return quiz.Payload{}, ErrNoAnswers
	}

	res := s.Score()
	s.Submitted = true
	s.Result = &res
	s.Error = ""

	s.logger.Info("quiz submitted",
		"quiz_id", s.Detail.Quiz.ID.String(),
		"session", s.SessionID,
		"correct", res.Correct,
		"total", res.Total,
	)
	return quiz.BuildPayload(s.Detail, s.Answers), nil
}

// Back returns to the list view, dropping everything scoped to the open
// quiz. Pending detail responses become stale.
func (s *State) Back() {
	s.resetQuiz()
	s.seq++
}

func (s *State) resetQuiz() {
	s.SelectedQuizID = quiz.ID{}
	s.Detail = nil
	s.LoadingDetail = false
	s.Answers = quiz.AnswerMap{}
	s.Submitted = false
	s.Result = nil
	s.Error = ""
	s.SessionID = ""
}
