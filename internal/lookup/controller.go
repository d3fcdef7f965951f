// Package lookup owns the widget's view state. A Controller serialises
// lookups: while one is in flight, further lookups are rejected rather than
// queued or raced, so at most one fetch is outstanding at any time.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cor0nius/weatherwidget/internal/forecast"
	"github.com/cor0nius/weatherwidget/internal/weatherapi"
	"github.com/google/uuid"
)

// DefaultErrorMessage is the user-facing text for every failed lookup.
const DefaultErrorMessage = "Error fetching weather data. Please try again."

// DefaultDays is the forecast horizon requested per lookup.
const DefaultDays = 3

var (
	ErrEmptyCity        = errors.New("city must not be blank")
	ErrLookupInProgress = errors.New("a lookup is already in progress")
)

// Fetcher is satisfied by *weatherapi.Client.
type Fetcher interface {
	FetchForecast(ctx context.Context, city string, days int) (*weatherapi.ForecastResponse, error)
}

type Controller struct {
	fetcher Fetcher
	days    int
	logger  *slog.Logger
	now     func() time.Time

	// notifyMu orders state changes with their delivery to subscribers.
	notifyMu    sync.Mutex
	mu          sync.Mutex
	result      Result
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Result)
}

type Option func(*Controller)

func WithDays(days int) Option {
	return func(c *Controller) {
		if days > 0 {
			c.days = days
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		days:    DefaultDays,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
		result:  Result{State: StateIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup runs one lookup for city and returns the state it ended in.
//
// A blank city returns ErrEmptyCity and a lookup started while another is
// loading returns ErrLookupInProgress; in both cases no fetch is issued and
// the state is left untouched. Fetch failures are not returned as errors:
// they become the Failure state. If the fetch panics the state is moved to
// Failure before the panic continues.
func (c *Controller) Lookup(ctx context.Context, city string) (Result, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return c.Snapshot(), ErrEmptyCity
	}

	c.notifyMu.Lock()
	c.mu.Lock()
	if c.result.State == StateLoading {
		current := c.result.clone()
		c.mu.Unlock()
		c.notifyMu.Unlock()
		return current, ErrLookupInProgress
	}
	loading := Result{
		ID:        uuid.New(),
		State:     StateLoading,
		City:      city,
		StartedAt: c.now(),
	}
	c.result = loading
	subs := c.subscribersLocked()
	c.mu.Unlock()
	c.notify(subs, loading)
	c.notifyMu.Unlock()

	logger := c.logger.With("lookup_id", loading.ID.String(), "city", city)
	logger.Debug("lookup started", "days", c.days)

	next := Result{
		ID:        loading.ID,
		City:      city,
		StartedAt: loading.StartedAt,
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		p := recover()
		logger.Error("lookup aborted", "panic", p)
		next.State = StateFailure
		next.Message = DefaultErrorMessage
		next.Err = fmt.Errorf("lookup aborted: %v", p)
		next.FinishedAt = c.now()
		c.store(next)
		if p != nil {
			panic(p)
		}
	}()

	raw, err := c.fetcher.FetchForecast(ctx, city, c.days)
	if err != nil {
		logger.Error("error fetching weather data", "error", err, "detail", weatherapi.Detail(err))
		next.State = StateFailure
		next.Message = DefaultErrorMessage
		next.Err = err
	} else {
		current, days := forecast.Normalize(raw)
		next.State = StateSuccess
		next.Current = &current
		next.Days = days
	}
	next.FinishedAt = c.now()
	finished = true

	final := c.store(next)
	logger.Info("lookup finished", "state", final.State.String(), "duration", final.Duration().String())
	return final, nil
}

// store replaces the state with r and notifies subscribers before any other
// state change can be made.
func (c *Controller) store(r Result) Result {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.result = r
	final := r.clone()
	subs := c.subscribersLocked()
	c.mu.Unlock()

	c.notify(subs, final)
	return final
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.clone()
}

// Subscribe registers fn to be called after every state change, in
// subscription order and in the order the changes were made. Observers run
// outside the state lock, so they may call Snapshot but not Lookup. A nil fn
// is ignored. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Result)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subscribers {
				if s.id == id {
					c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *Controller) subscribersLocked() []subscriber {
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	return subs
}

// notify hands every subscriber its own copy so one observer cannot mutate
// what the next one sees. A panicking observer is logged and skipped.
func (c *Controller) notify(subs []subscriber, r Result) {
	for _, s := range subs {
		func() {
			defer func() {
				if p := recover(); p != nil {
					c.logger.Error("subscriber panicked", "state", r.State.String(), "panic", p)
				}
			}()
			s.fn(r.clone())
		}()
	}
}
