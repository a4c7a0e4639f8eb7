package playground

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

// ErrStopped is returned when talking to a runtime that is not running.
var ErrStopped = errors.New("playground: runtime stopped")

// API is the subset of the rendering API the runtime needs.
type API interface {
	ProcessCustom(ctx context.Context, req payload.RenderRequest) (client.Image, error)
	Fonts(ctx context.Context) (font.List, error)
}

var _ API = (*client.Client)(nil)

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeLogger sets the runtime logger.
func WithRuntimeLogger(logger *zap.Logger) RuntimeOption {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type envelope struct {
	msg     Msg
	fromCmd bool
	reply   chan error
	inspect func(*Model)
	settle  chan struct{}
}

// Runtime owns a Model on a single goroutine. Commands run on their own
// goroutines and their results are delivered back as messages, so results
// resolve in completion order and the last one to arrive wins.
type Runtime struct {
	model   *Model
	api     API
	logger  *zap.Logger
	inbox   chan envelope
	started chan struct{}
	stopped chan struct{}
}

// NewRuntime wires model to api. Call Run to start processing.
func NewRuntime(model *Model, api API, options ...RuntimeOption) *Runtime {
	r := &Runtime{
		model:   model,
		api:     api,
		logger:  zap.NewNop(),
		inbox:   make(chan envelope),
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run processes messages until ctx is cancelled. It must be called once.
func (r *Runtime) Run(ctx context.Context) error {
	close(r.started)
	defer close(r.stopped)

	pending := 0
	var waiters []chan struct{}

	for {
		select {
		case <-ctx.Done():
			for _, w := range waiters {
				close(w)
			}
			return ctx.Err()
		case env := <-r.inbox:
			switch {
			case env.inspect != nil:
				env.inspect(r.model)
				close(env.reply)
			case env.settle != nil:
				waiters = append(waiters, env.settle)
			default:
				if env.fromCmd {
					pending--
				}
				cmds, err := r.model.Update(env.msg)
				for _, cmd := range cmds {
					pending++
					go r.exec(ctx, cmd)
				}
				if env.reply != nil {
					env.reply <- err
				} else if err != nil {
					r.logger.Error("update failed", zap.String("msg", fmt.Sprintf("%T", env.msg)), zap.Error(err))
				}
			}
			if pending == 0 && len(waiters) > 0 {
				for _, w := range waiters {
					close(w)
				}
				waiters = nil
			}
		}
	}
}

// Send delivers msg and returns the result of Update. Commands it produces
// keep running after Send returns.
func (r *Runtime) Send(ctx context.Context, msg Msg) error {
	reply := make(chan error, 1)
	if err := r.post(ctx, envelope{msg: msg, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inspect runs fn against the model on the runtime goroutine.
func (r *Runtime) Inspect(ctx context.Context, fn func(*Model)) error {
	reply := make(chan error)
	if err := r.post(ctx, envelope{inspect: fn, reply: reply}); err != nil {
		return err
	}
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settle blocks until no commands are in flight.
func (r *Runtime) Settle(ctx context.Context) error {
	done := make(chan struct{})
	if err := r.post(ctx, envelope{settle: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runtime) post(ctx context.Context, env envelope) error {
	select {
	case <-r.started:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case r.inbox <- env:
		return nil
	case <-r.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runtime) exec(ctx context.Context, cmd Cmd) {
	var result Msg
	switch cmd := cmd.(type) {
	case RenderCmd:
		img, err := r.api.ProcessCustom(ctx, cmd.Request)
		if err != nil {
			result = RenderFailed{Err: err}
		} else {
			result = RenderSucceeded{Image: img}
		}
	case FetchFontsCmd:
		list, err := r.api.Fonts(ctx)
		if err != nil {
			result = FontsFailed{Err: err}
		} else {
			result = FontsLoaded{List: list}
		}
	default:
		r.logger.Error("unknown command", zap.String("cmd", fmt.Sprintf("%T", cmd)))
	}

	select {
	case r.inbox <- envelope{msg: result, fromCmd: true}:
	case <-r.stopped:
	}
}
