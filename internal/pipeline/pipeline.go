package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
	logger "github.com/PolarWolf314/pounamu/internal/logging"
)

// State identifies where the pipeline is in its request lifecycle.
type State int32

const (
	StateIdle State = iota
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// UserMessageCryptoFailure is the only text a crypto failure may show to
// the user. Provider detail stays in the debug log.
const UserMessageCryptoFailure = "Encryption failed. Please try again."

// SlowRequestThreshold is the advisory per-request wall-clock budget.
// Exceeding it raises the OnSlow hook; the outcome is still delivered
// normally and the request is never cancelled.
const SlowRequestThreshold = 2000 * time.Millisecond

// ValidationError carries the failed validation checks. The first reason is
// pre-sanitized and safe to show the user verbatim.
type ValidationError struct {
	Reason  string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "input failed validation: " + e.Reason
}

// Is makes errors.Is(err, kerrors.ErrInvalidInput) hold for any
// ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == kerrors.ErrInvalidInput
}

// Sink receives the outcome of a seal request. The pipeline never writes to
// a display surface directly.
type Sink interface {
	// Sealed delivers the encoded blob on success.
	Sealed(encoded string)

	// Failed delivers a user-safe message on failure.
	Failed(userMessage string)
}

// Options configure a Pipeline.
type Options struct {
	// Source returns the raw text to seal. Called exactly once per request,
	// at processing entry. Required.
	Source func() string

	// Sink receives the request outcome. Optional; Run's return values
	// carry the same information.
	Sink Sink

	// OnSlow is invoked when a request exceeds SlowThreshold. Advisory
	// only. Optional.
	OnSlow func(elapsed time.Duration)

	// SlowThreshold overrides SlowRequestThreshold when positive.
	SlowThreshold time.Duration

	Logger logger.Logger
}

// Result is the outcome of a successful seal request.
type Result struct {
	// Encoded is the transportable base64 blob, the only artifact exposed
	// outward. Immutable once produced.
	Encoded string

	// Cipher is the suite that sealed the text.
	Cipher string

	// Elapsed is the processing wall-clock time.
	Elapsed time.Duration
}

// Pipeline sequences one seal request at a time: validation, encryption,
// encoding, and sensitive-state erasure. The zero value is not usable; use
// New.
type Pipeline struct {
	engine *Engine
	opts   Options
	busy   atomic.Bool
	state  atomic.Int32
}

// New returns an idle pipeline over the given engine.
func New(engine *Engine, opts Options) *Pipeline {
	return &Pipeline{engine: engine, opts: opts}
}

// State returns the pipeline's current lifecycle state.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

func (p *Pipeline) setState(s State) {
	p.state.Store(int32(s))
}

func (p *Pipeline) slowThreshold() time.Duration {
	if p.opts.SlowThreshold > 0 {
		return p.opts.SlowThreshold
	}
	return SlowRequestThreshold
}

// Run executes one seal request end to end.
//
// If another request is processing, Run returns ErrPipelineBusy immediately
// with no side effects on the in-flight request; callers treat that as a
// no-op. Otherwise the single-flight guard spans the entire processing
// phase, the sensitive-state guard is released on every exit path, and the
// outcome is delivered to the sink (when configured) as well as returned.
//
// The context is checked at entry only. No hard deadline is wired to the
// provider; the slow-request budget is advisory.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, kerrors.ErrPipelineBusy
	}
	defer p.busy.Store(false)
	defer p.setState(StateIdle)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.setState(StateProcessing)
	p.opts.Logger.Debugf("pipeline: processing started (cipher=%s)", p.engine.Cipher())

	start := time.Now()
	guard := NewGuard()

	result, err := p.process(guard)
	guard.Release()
	elapsed := time.Since(start)

	if elapsed > p.slowThreshold() {
		p.opts.Logger.Debugf("pipeline: slow request: %s", elapsed)
		if p.opts.OnSlow != nil {
			p.opts.OnSlow(elapsed)
		}
	}

	if err != nil {
		p.setState(StateFailed)
		p.opts.Logger.Errorf("pipeline: request failed: %v", err)
		if p.opts.Sink != nil {
			p.opts.Sink.Failed(UserMessage(err))
		}
		return nil, err
	}

	result.Elapsed = elapsed
	p.setState(StateSucceeded)
	p.opts.Logger.Infof("pipeline: sealed %d blob chars in %s", len(result.Encoded), elapsed)
	if p.opts.Sink != nil {
		p.opts.Sink.Sealed(result.Encoded)
	}
	return result, nil
}

// process runs validate → encrypt → encode. Validation failures
// short-circuit before any cryptographic material is created; crypto
// failures short-circuit before encoding.
func (p *Pipeline) process(guard *Guard) (*Result, error) {
	text := p.opts.Source()

	vr := Validate(text)
	if !vr.Valid {
		p.opts.Logger.Debugf("pipeline: validation failed: %s", strings.Join(vr.Reasons, "; "))
		return nil, &ValidationError{Reason: vr.FirstReason(), Reasons: vr.Reasons}
	}

	envelope, err := p.engine.Encrypt(vr.Normalized, guard)
	if err != nil {
		return nil, err
	}

	return &Result{Encoded: envelope.Encode(), Cipher: p.engine.Cipher()}, nil
}

// UserMessage maps a pipeline error to the text shown to the user.
// Validation reasons pass through verbatim; everything else collapses to
// the fixed crypto failure message.
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return UserMessageCryptoFailure
}
