// Package quiz derives a short multiple-choice quiz from a disease's food
// list and tracks one run through it.
package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foodverse/foodverse/internal/dataset"
)

const (
	// MaxQuestions caps the number of questions drawn from a food list.
	MaxQuestions = 5

	// BonusThreshold is the score ratio at or above which a finished quiz
	// earns the celebration.
	BonusThreshold = 0.8

	// DefaultAdvanceDelay is how long an answer stays revealed before the
	// quiz moves on.
	DefaultAdvanceDelay = 2 * time.Second
)

var (
	// ErrInvalidQuizState is returned by Submit when no question is waiting
	// for an answer.
	ErrInvalidQuizState = errors.New("invalid quiz state")

	// ErrInvalidOption is returned by Submit for labels other than Safe,
	// Moderate or Avoid.
	ErrInvalidOption = errors.New("invalid quiz option")

	// ErrStaleAdvance is returned by Advance when the token does not match
	// the pending advance, or the session is closed.
	ErrStaleAdvance = errors.New("stale quiz advance")
)

// Options returns the answer labels in display order.
func Options() []string {
	out := make([]string, 0, 3)
	for _, v := range dataset.AllVerdicts() {
		out = append(out, v.Label())
	}
	return out
}

// Question is one quiz item.
type Question struct {
	Food    dataset.Food
	Prompt  string
	Correct dataset.Verdict
}

// IsCorrect compares option to the correct verdict case-insensitively.
func (q Question) IsCorrect(option string) bool {
	return strings.ToLower(option) == string(q.Correct)
}

// Answer records the learner's choice for one question.
type Answer struct {
	FoodID  string
	Option  string
	Correct bool
}

// Advance is a scheduled move to the next question (or to completion).
// The shell waits Delay and then hands Token back to Session.Advance.
type Advance struct {
	SessionID string
	Token     string
	Delay     time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithAdvanceDelay overrides DefaultAdvanceDelay.
func WithAdvanceDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is one run through the quiz. It is not safe for concurrent use;
// the shell drives it from a single event loop.
type Session struct {
	id        string
	disease   string
	questions []Question
	answers   []Answer
	current   int
	score     int
	selected  string
	revealed  bool
	complete  bool
	bonus     bool
	closed    bool
	pending   string
	delay     time.Duration
	log       *zap.Logger
}

// New builds a session from the first min(MaxQuestions, len(foods)) foods,
// in their original order. An empty list yields an already complete session.
func New(diseaseName string, foods []dataset.Food, opts ...Option) *Session {
	k := min(MaxQuestions, len(foods))
	questions := make([]Question, k)
	for i, f := range foods[:k] {
		questions[i] = Question{
			Food:    f,
			Prompt:  fmt.Sprintf("Is %s safe for %s?", f.Name, diseaseName),
			Correct: f.Verdict,
		}
	}

	s := &Session{
		id:        uuid.New().String(),
		disease:   diseaseName,
		questions: questions,
		answers:   make([]Answer, 0, k),
		complete:  k == 0,
		delay:     DefaultAdvanceDelay,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("quiz_session", s.id))
	s.log.Debug("quiz started", zap.String("disease", diseaseName), zap.Int("questions", k))
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Len returns the number of questions K.
func (s *Session) Len() int { return len(s.questions) }

// Questions returns a copy of the question set.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Current returns the question at the current index, or false when the
// session has no questions.
func (s *Session) Current() (Question, bool) {
	if s.current >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Submit records option as the answer to the current question and reveals
// it. The returned Advance must be scheduled by the caller.
func (s *Session) Submit(option string) (Advance, error) {
	if s.closed || s.complete || s.revealed {
		return Advance{}, fmt.Errorf("%w: closed=%t complete=%t revealed=%t",
			ErrInvalidQuizState, s.closed, s.complete, s.revealed)
	}
	verdict, ok := dataset.ParseVerdict(option)
	if !ok {
		return Advance{}, fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}

	q := s.questions[s.current]
	correct := q.IsCorrect(string(verdict))

	s.selected = verdict.Label()
	s.revealed = true
	if correct {
		s.score++
	}
	s.answers = append(s.answers, Answer{FoodID: q.Food.ID, Option: s.selected, Correct: correct})

	s.pending = uuid.New().String()
	s.log.Debug("quiz answer",
		zap.Int("index", s.current),
		zap.String("food", q.Food.ID),
		zap.String("option", s.selected),
		zap.Bool("correct", correct),
		zap.Int("score", s.score),
	)

	return Advance{SessionID: s.id, Token: s.pending, Delay: s.delay}, nil
}

// Advance applies a previously scheduled advance. Tokens that are not the
// current pending one, or that arrive after Close, are rejected with
// ErrStaleAdvance and change nothing.
func (s *Session) Advance(token string) error {
	if s.closed || s.pending == "" || token != s.pending {
		return ErrStaleAdvance
	}
	s.pending = ""

	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = ""
		s.revealed = false
		return nil
	}

	s.complete = true
	s.bonus = s.Len() > 0 && float64(s.score)/float64(s.Len()) >= BonusThreshold
	s.log.Info("quiz complete",
		zap.String("disease", s.disease),
		zap.Int("score", s.score),
		zap.Int("questions", s.Len()),
		zap.Bool("bonus", s.bonus),
	)
	return nil
}

// Close discards the session. Any pending advance is cancelled.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.pending = ""
	s.log.Debug("quiz closed", zap.Bool("complete", s.complete), zap.Int("score", s.score))
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool { return s.closed }

// Pending reports whether an advance is scheduled and not yet applied.
func (s *Session) Pending() bool { return s.pending != "" }

// BonusEligible reports whether the finished quiz earned the celebration.
// It is false until the session is complete.
func (s *Session) BonusEligible() bool { return s.bonus }
