package views

import (
	"sync"
	"time"
)

const (
	progressStep     = 10
	progressCeiling  = 90
	progressComplete = 100
	progressInterval = 100 * time.Millisecond
)

// ProgressTracker drives the synthetic loading bar of the transaction view.
// It steps toward 90% while a request is outstanding and jumps to 100% on
// completion. It is a cosmetic affordance, not a measure of real progress.
type ProgressTracker struct {
	mu    sync.Mutex
	value int
	stop  chan struct{}
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

// Start resets the tracker to zero and begins stepping. A previous run, if
// still ticking, is stopped first.
func (p *ProgressTracker) Start() {
	p.mu.Lock()
	if p.stop != nil {
		close(p.stop)
	}
	p.value = 0
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.mu.Lock()
				if p.value < progressCeiling {
					p.value += progressStep
					if p.value > progressCeiling {
						p.value = progressCeiling
					}
				}
				p.mu.Unlock()
			}
		}
	}()
}

// Finish stops stepping and pins the tracker at 100%.
func (p *ProgressTracker) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	p.value = progressComplete
}

func (p *ProgressTracker) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}
