// Package session holds the interaction state of a single estimator
// surface: what was submitted, whether a lookup is pending and what came
// back. It is not safe for concurrent use; the owning event loop drives it.
package session

import (
	"strings"

	"ytworth/internal/models"
)

type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Session is the interaction state machine.
//
//	Idle/Success/Failed --Submit--> Loading
//	Loading --Submit--> Loading (earlier request becomes stale)
//	Loading --Succeed(latest)--> Success
//	Loading --Fail(latest)--> Failed
//	any --Reset--> Idle
type Session struct {
	state    State
	seq      uint64
	input    string
	estimate models.EstimateResponse
	message  string
}

func New() *Session {
	return &Session{}
}

// Submit starts a new lookup for input and returns its sequence number.
// Blank input leaves the state untouched and reports ok=false.
func (s *Session) Submit(input string) (seq uint64, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}

	s.seq++
	s.state = Loading
	s.input = input
	s.estimate = models.EstimateResponse{}
	s.message = ""

	return s.seq, true
}

// Succeed records the result of request seq. It reports false and changes
// nothing when seq is not the latest pending request.
func (s *Session) Succeed(seq uint64, estimate models.EstimateResponse) bool {
	if !s.current(seq) {
		return false
	}
	s.state = Success
	s.estimate = estimate
	return true
}

// Fail records a user-facing failure message for request seq, with the same
// staleness rule as Succeed.
func (s *Session) Fail(seq uint64, message string) bool {
	if !s.current(seq) {
		return false
	}
	s.state = Failed
	s.message = message
	return true
}

// Reset returns to Idle. Any lookup still in flight becomes stale.
func (s *Session) Reset() {
	s.seq++
	s.state = Idle
	s.input = ""
	s.estimate = models.EstimateResponse{}
	s.message = ""
}

func (s *Session) current(seq uint64) bool {
	return s.state == Loading && seq == s.seq
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Input() string {
	return s.input
}

// Estimate is meaningful only in Success.
func (s *Session) Estimate() (models.EstimateResponse, bool) {
	return s.estimate, s.state == Success
}

// Message is meaningful only in Failed.
func (s *Session) Message() string {
	return s.message
}

// Pending returns the sequence number of the in-flight lookup, if any.
func (s *Session) Pending() (uint64, bool) {
	return s.seq, s.state == Loading
}
