// Package regen regenerates planet meshes in the background while a config is
// being tuned. Requests are debounced and results are picked up by polling
// from the render loop, which owns the GL context.
package regen

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeplanet/internal/logger"
	"github.com/Faultbox/cubeplanet/pkg/planet"
)

// GenerateFunc builds a mesh from a config.
type GenerateFunc func(planet.Config) (*planet.MeshBuffer, error)

// Result is one finished generation.
type Result struct {
	Config   planet.Config
	Mesh     *planet.MeshBuffer // nil when Err is set
	Duration time.Duration
	Err      error
	Seq      uint64
}

// Option configures a Regenerator.
type Option func(*Regenerator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Regenerator) { r.now = now }
}

// WithGenerator replaces planet.Generate.
func WithGenerator(fn GenerateFunc) Option {
	return func(r *Regenerator) { r.generate = fn }
}

// Regenerator tracks the latest requested config and the last good mesh.
// All methods are safe to call from one goroutine; generation itself runs on
// a worker goroutine.
type Regenerator struct {
	debounce time.Duration
	now      func() time.Time
	generate GenerateFunc
	log      *zap.Logger

	mu          sync.Mutex
	pending     *planet.Config
	requestedAt time.Time
	forced      bool
	attempted   *planet.Config
	busy        bool
	seq         uint64
	good        Result
	lastErr     error

	results chan Result
	wg      sync.WaitGroup
}

// New creates a Regenerator that waits debounce after the last request
// before generating.
func New(debounce time.Duration, opts ...Option) *Regenerator {
	r := &Regenerator{
		debounce: debounce,
		now:      time.Now,
		generate: planet.Generate,
		log:      logger.Named("regen"),
		results:  make(chan Result, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Request records cfg as the newest wanted planet. It is generated once no
// newer request arrives for the debounce delay, unless it equals the config
// last attempted.
func (r *Regenerator) Request(cfg planet.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cfg.Clone()
	r.pending = &c
	r.requestedAt = r.now()
}

// Force requests cfg and skips both the debounce and the equality check.
func (r *Regenerator) Force(cfg planet.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := cfg.Clone()
	r.pending = &c
	r.requestedAt = time.Time{}
	r.forced = true
}

// GenerateNow builds cfg synchronously and records the outcome as if it had
// come from the worker. Hosts use it for the first mesh.
func (r *Regenerator) GenerateNow(cfg planet.Config) Result {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	res := r.run(cfg.Clone(), seq)
	r.record(res)
	return res
}

// Poll collects a finished generation, if any, and starts the next one when
// a pending request has settled. It never blocks.
func (r *Regenerator) Poll() (Result, bool) {
	var (
		res Result
		got bool
	)
	select {
	case res = <-r.results:
		got = true
		r.record(res)
	default:
	}

	r.maybeStart()
	return res, got
}

func (r *Regenerator) maybeStart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busy || r.pending == nil {
		return
	}
	if !r.forced && r.now().Sub(r.requestedAt) < r.debounce {
		return
	}

	cfg := *r.pending
	r.pending = nil
	if !r.forced && r.attempted != nil && r.attempted.Equal(cfg) {
		return
	}
	r.forced = false

	r.busy = true
	r.seq++
	seq := r.seq
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.results <- r.run(cfg, seq)
	}()
}

func (r *Regenerator) run(cfg planet.Config, seq uint64) Result {
	start := r.now()
	m, err := r.generate(cfg)
	res := Result{Config: cfg, Mesh: m, Err: err, Seq: seq, Duration: r.now().Sub(start)}
	if err != nil {
		res.Mesh = nil
	}
	return res
}

func (r *Regenerator) record(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.busy = false
	c := res.Config
	r.attempted = &c

	if res.Err != nil {
		r.lastErr = res.Err
		r.log.Warn("planet generation failed, keeping previous mesh",
			zap.Uint64("seq", res.Seq), zap.Error(res.Err))
		return
	}

	r.lastErr = nil
	r.good = res
	r.log.Info("planet generated",
		zap.Uint64("seq", res.Seq),
		zap.Int("resolution", res.Config.Resolution),
		zap.Int("vertices", len(res.Mesh.Vertices)),
		zap.Int("triangles", res.Mesh.TriangleCount()),
		zap.Duration("took", res.Duration),
	)
}

// Current returns the last successful result. Its Mesh is nil before the
// first success.
func (r *Regenerator) Current() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.good
}

// Err returns the error of the latest generation, or nil if it succeeded.
func (r *Regenerator) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Busy reports whether a worker is generating.
func (r *Regenerator) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Pending reports whether a request is waiting to be generated.
func (r *Regenerator) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending != nil
}

// Close waits for an in-flight generation and drops its result.
func (r *Regenerator) Close() {
	r.wg.Wait()
	select {
	case <-r.results:
	default:
	}
}
