package orchestrator

import (
	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/generation"
	"github.com/valpere/hireassist/internal/sentiment"
	"github.com/valpere/hireassist/internal/translator"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateGenerating
	StateTranslating
	StateScoring
	StateRendered
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateGenerating:
		return "generating"
	case StateTranslating:
		return "translating"
	case StateScoring:
		return "scoring"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Submission is everything produced for one form submission.
type Submission struct {
	ID            string
	State         State
	Trail         []State
	Profile       internal.CandidateProfile
	Prompt        string
	ValidationErr error
	Generation    generation.Result
	Translation   translator.Outcome
	Sentiment     sentiment.Label
}

func newSubmission(id string, p internal.CandidateProfile) *Submission {
	return &Submission{ID: id, State: StateIdle, Trail: []State{StateIdle}, Profile: p}
}

func (s *Submission) transition(next State) {
	s.State = next
	s.Trail = append(s.Trail, next)
}

// DisplayText is what the page shows in place of the questions.
func (s *Submission) DisplayText() string {
	switch {
	case s.ValidationErr != nil:
		return s.ValidationErr.Error()
	case s.State == StateError:
		return s.Generation.Message()
	default:
		return s.Translation.Text
	}
}

// Reset returns the submission to Idle and drops all candidate data. It is for
// callers that hold on to a Submission; the web form is stateless and resets by
// redirecting to an empty form instead.
func (s *Submission) Reset() {
	*s = Submission{ID: s.ID, State: StateIdle, Trail: []State{StateIdle}}
}
