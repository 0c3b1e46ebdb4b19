package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"wellquest/internal/clock"
	"wellquest/internal/storage"
)

// Store is the persistence boundary. Load falls back to defaults on any
// failure and Save is best-effort; neither reports errors to the engine.
type Store interface {
	Load(ctx context.Context) *storage.ProgressionRecord
	Save(ctx context.Context, rec *storage.ProgressionRecord)
}

// Engine owns the progression record and the single timed-task slot. All
// mutation goes through its methods from one thread of control; it is not safe
// for concurrent use.
type Engine struct {
	store  Store
	clock  clock.Clock
	logger hclog.Logger
	rng    *rand.Rand
	newID  func() string

	rec    *storage.ProgressionRecord
	active *session
}

type Option func(*Engine)

func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand sets the randomness source used for encouragement lines.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSessionIDs overrides how timed-task session ids are generated.
func WithSessionIDs(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New loads the record from store and returns a ready engine.
func New(ctx context.Context, store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		clock:  clock.SystemClock{},
		logger: hclog.NewNullLogger(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.Named("engine")
	e.rec = store.Load(ctx)
	e.rec.Normalize()
	return e
}

// Record returns a copy of the current record.
func (e *Engine) Record() *storage.ProgressionRecord {
	return e.rec.Clone()
}

func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

func (e *Engine) today() string {
	return clock.Date(e.clock.Now())
}

func (e *Engine) persist(ctx context.Context) {
	e.store.Save(ctx, e.rec)
}
