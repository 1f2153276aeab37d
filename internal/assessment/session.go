package assessment

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/navstyle/internal/questionbank"
)

var (
	// ErrNoSelection is returned by Advance when the current question has no
	// pending selection. The caller should re-prompt.
	ErrNoSelection = errors.New("no selection for current question")

	// ErrCompleted is returned by navigation calls once the session is complete.
	ErrCompleted = errors.New("assessment already completed")
)

// Phase is the state of the session state machine.
type Phase int

const (
	PhaseInProgress Phase = iota // Walking the bank
	PhaseCompleted               // Last question answered; responses final
)

func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "in-progress"
}

// Session walks a question bank and records one Response per question.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	id        string
	bank      *questionbank.Bank
	logger    *slog.Logger
	phase     Phase
	index     int
	responses map[string]Response
	pending   Value
}

// New starts a session at the first question of bank. A nil logger discards output.
func New(bank *questionbank.Bank, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		id:        uuid.New().String(),
		bank:      bank,
		responses: make(map[string]Response),
	}
	s.logger = logger.With("session_id", s.id)
	s.logger.Info("assessment started", "questions", bank.Len())
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Completed reports whether the last question has been answered.
func (s *Session) Completed() bool { return s.phase == PhaseCompleted }

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return s.bank.Len() }

// Current returns the question to render.
func (s *Session) Current() questionbank.Question {
	return s.bank.Get(s.index)
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.index == s.bank.Len()-1
}

// Pending returns the in-progress selection for the current question.
func (s *Session) Pending() (Value, bool) {
	return s.pending, !s.pending.IsZero()
}

// CanAdvance reports whether Advance would succeed.
func (s *Session) CanAdvance() bool {
	return s.phase == PhaseInProgress && !s.pending.IsZero()
}

// ProgressFraction returns (index+1)/total, which is 1 at the last question.
func (s *Session) ProgressFraction() float64 {
	return float64(s.index+1) / float64(s.bank.Len())
}

// Responses returns a copy of the recorded responses keyed by question id.
func (s *Session) Responses() map[string]Response {
	out := make(map[string]Response, len(s.responses))
	for k, v := range s.responses {
		out[k] = v
	}
	return out
}

// Response returns the recorded response for a question id.
func (s *Session) Response(questionID string) (Response, bool) {
	r, ok := s.responses[questionID]
	return r, ok
}

// SelectOption records v as the pending selection. Values outside the
// question's options are accepted and resolve to the default score.
func (s *Session) SelectOption(v Value) error {
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	s.pending = v
	return nil
}

// Advance records the pending selection and moves to the next question, or
// completes the session when the current question is the last one.
func (s *Session) Advance() error {
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	if s.pending.IsZero() {
		return ErrNoSelection
	}

	q := s.Current()
	resp := NewResponse(q, s.pending)
	s.responses[q.ID] = resp
	s.logger.Debug("answer recorded",
		"question_id", q.ID,
		"value", resp.RawValue.String(),
		"derived_score", resp.DerivedScore,
	)

	if s.IsLast() {
		s.phase = PhaseCompleted
		s.logger.Info("assessment completed", "responses", len(s.responses))
		return nil
	}
	s.index++
	s.pending = Value{}
	return nil
}

// Retreat moves back one question and restores its recorded selection.
// It is a no-op on the first question.
func (s *Session) Retreat() error {
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	if s.index == 0 {
		return nil
	}
	s.index--
	s.pending = Value{}
	if prev, ok := s.responses[s.Current().ID]; ok {
		s.pending = prev.RawValue
	}
	s.logger.Debug("moved back", "index", s.index)
	return nil
}

// Restart discards all responses and returns to the first question.
func (s *Session) Restart() {
	s.phase = PhaseInProgress
	s.index = 0
	s.pending = Value{}
	s.responses = make(map[string]Response)
	s.logger.Info("assessment restarted")
}
