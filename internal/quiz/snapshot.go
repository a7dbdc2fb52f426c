package quiz

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	ID             string
	Disease        string
	Questions      []Question
	Answers        []Answer
	CurrentIndex   int
	Score          int
	SelectedAnswer string // empty when nothing is selected
	Revealed       bool
	Complete       bool
	BonusEligible  bool
}

// Snapshot returns the session state.
func (s *Session) Snapshot() Snapshot {
	answers := make([]Answer, len(s.answers))
	copy(answers, s.answers)
	return Snapshot{
		ID:             s.id,
		Disease:        s.disease,
		Questions:      s.Questions(),
		Answers:        answers,
		CurrentIndex:   s.current,
		Score:          s.score,
		SelectedAnswer: s.selected,
		Revealed:       s.revealed,
		Complete:       s.complete,
		BonusEligible:  s.bonus,
	}
}

// Total returns K.
func (s Snapshot) Total() int { return len(s.Questions) }

// Percent returns the score as a percentage of K.
func (s Snapshot) Percent() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Score) / float64(len(s.Questions)) * 100
}

// Rating returns the completion message for the score.
func (s Snapshot) Rating() string {
	switch p := s.Percent(); {
	case p >= 80:
		return "Outstanding!"
	case p >= 60:
		return "Great Job!"
	default:
		return "Keep Learning!"
	}
}

// LastAnswerCorrect reports whether the revealed answer was right.
func (s Snapshot) LastAnswerCorrect() bool {
	if !s.Revealed || len(s.Answers) == 0 {
		return false
	}
	return s.Answers[len(s.Answers)-1].Correct
}
