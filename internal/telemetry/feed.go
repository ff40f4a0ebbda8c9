package telemetry

import (
	"context"
	"math/rand/v2"
	"time"

	"temanikan/internal/models"
)

// DefaultPeriod is the tick interval of the monitoring view.
const DefaultPeriod = 3 * time.Second

// Snapshot is what a feed emits on every tick.
type Snapshot struct {
	Current models.Reading       `json:"current"`
	Status  models.ReadingStatus `json:"status"`
	History []models.Sample      `json:"history"`
	Tick    int                  `json:"tick"`
}

// Feed is one mounted monitoring view's telemetry. It is owned by a single
// goroutine and is not safe for concurrent use.
type Feed struct {
	rng     *rand.Rand
	now     func() time.Time
	current models.Reading
	history *History
	ticks   int
}

// Option customises a Feed.
type Option func(*Feed)

// WithRand fixes the random source, mostly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(f *Feed) { f.rng = rng }
}

// WithClock overrides the wall clock used for display timestamps.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) { f.now = now }
}

// NewFeed starts from the seed reading and seed history.
func NewFeed(opts ...Option) *Feed {
	f := &Feed{
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
		history: NewHistory(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.current = Seed(f.now())
	return f
}

// Tick advances the feed once and returns the new snapshot.
func (f *Feed) Tick() Snapshot {
	f.current = Step(f.current, f.rng, f.now())
	f.history.Push(f.current)
	f.ticks++
	return f.Snapshot()
}

// Snapshot returns the current state without advancing.
func (f *Feed) Snapshot() Snapshot {
	return Snapshot{
		Current: f.current,
		Status:  StatusOf(f.current),
		History: f.history.Samples(),
		Tick:    f.ticks,
	}
}

// Run emits the current snapshot, then a new one every period until ctx is
// cancelled or emit fails. The error from emit is returned.
func (f *Feed) Run(ctx context.Context, period time.Duration, emit func(Snapshot) error) error {
	if period <= 0 {
		period = DefaultPeriod
	}
	if err := emit(f.Snapshot()); err != nil {
		return err
	}
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := emit(f.Tick()); err != nil {
				return err
			}
		}
	}
}
