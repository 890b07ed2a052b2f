package alerts

import (
	"context"
	"sync"
)

// Pending is the deferred result of a dialog. It settles exactly once and is
// safe to wait on from any goroutine.
type Pending[T any] struct {
	id   DialogID
	once sync.Once
	done chan struct{}

	mu        sync.Mutex
	settled   bool
	value     T
	callbacks []func(T)
}

func newPending[T any](id DialogID) *Pending[T] {
	return &Pending[T]{id: id, done: make(chan struct{})}
}

// ID returns the dialog this result belongs to.
func (p *Pending[T]) ID() DialogID {
	return p.id
}

// Done is closed once the result has settled.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Result returns the settled value without blocking.
func (p *Pending[T]) Result() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.settled
}

// Wait blocks until the result settles or ctx is done.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		v, _ := p.Result()
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then registers fn to run with the settled value. If the result has already
// settled, fn runs immediately on the caller's goroutine.
func (p *Pending[T]) Then(fn func(T)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	if p.settled {
		v := p.value
		p.mu.Unlock()
		fn(v)
		return
	}
	p.callbacks = append(p.callbacks, fn)
	p.mu.Unlock()
}

// resolve settles the result. Only the first call has any effect; it reports
// whether this call was the one that settled it.
func (p *Pending[T]) resolve(v T) bool {
	first := false
	p.once.Do(func() {
		p.mu.Lock()
		p.value = v
		p.settled = true
		cbs := p.callbacks
		p.callbacks = nil
		p.mu.Unlock()
		close(p.done)
		for _, cb := range cbs {
			cb(v)
		}
		first = true
	})
	return first
}
