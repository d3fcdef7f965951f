package lookup

import (
	"time"

	"github.com/cor0nius/weatherwidget/internal/forecast"
	"github.com/google/uuid"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the controller's view state. Which fields are set depends on
// State: Current and Days only on success, Message and Err only on failure.
type Result struct {
	ID         uuid.UUID
	State      State
	City       string
	Current    *forecast.CurrentConditions
	Days       []forecast.ForecastDay
	Message    string
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration reports how long a finished lookup took.
func (r Result) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r Result) clone() Result {
	out := r
	if r.Current != nil {
		current := *r.Current
		out.Current = &current
	}
	if r.Days != nil {
		out.Days = make([]forecast.ForecastDay, len(r.Days))
		copy(out.Days, r.Days)
	}
	return out
}
