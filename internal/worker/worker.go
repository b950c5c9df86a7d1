package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Do once Stop has been called.
var ErrStopped = errors.New("worker: pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool bounds how many CPU-heavy tasks (bcrypt) run at once.
type Pool interface {
	Submit(Task)
	// Do runs t on a worker and waits for it to finish. It returns ctx.Err()
	// if the context ends before a worker picks the task up or before it
	// completes; a started task still runs to completion in the background.
	Do(ctx context.Context, t Task) error
	// Stop waits for running tasks; Submit and Do after Stop never block or panic.
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), quit: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.jobs:
					if job != nil {
						job()
					}
				case <-p.quit:
					return
				}
			}
		}()
	}
	return p
}

// jobs 不關閉；停止由 quit 通知，關機時仍在 handler 內的 Do 才不會送到已關閉的 channel
type pool struct {
	jobs     chan Task
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Submit drops t if the pool is stopped.
func (p *pool) Submit(t Task) {
	select {
	case p.jobs <- t:
	case <-p.quit:
	}
}

func (p *pool) Do(ctx context.Context, t Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-p.quit:
		return ErrStopped
	default:
	}
	done := make(chan struct{})
	job := func() {
		defer close(done)
		t()
	}
	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
