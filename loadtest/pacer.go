package loadtest

import (
	"context"
	"math/rand"
	"sync"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// userPacer is a vegeta.Pacer that behaves like a fixed number of users who each send a
// request, wait a random interval in [waitMin, waitMax], and repeat. All users start at once.
type userPacer struct {
	waitMin, waitMax time.Duration
	maxHits          uint64

	lock     sync.Mutex
	rng      *rand.Rand
	due      []time.Duration
	assigned uint64
	lastDue  time.Duration
}

var _ vegeta.Pacer = (*userPacer)(nil)

func newUserPacer(users int, waitMin, waitMax time.Duration, maxHits uint64, seed int64) *userPacer {
	return &userPacer{
		waitMin: waitMin,
		waitMax: waitMax,
		maxHits: maxHits,
		rng:     rand.New(rand.NewSource(seed)),
		due:     make([]time.Duration, users),
	}
}

// Pace returns how long to wait before hit number hits. The attacker may ask about the same
// hit more than once; the answer does not change.
func (p *userPacer) Pace(elapsed time.Duration, hits uint64) (time.Duration, bool) {
	if p.maxHits > 0 && hits >= p.maxHits {
		return 0, true
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	for p.assigned <= hits {
		next := 0
		for i, d := range p.due {
			if d < p.due[next] {
				next = i
			}
		}
		p.lastDue = p.due[next]
		p.due[next] += p.randomWait()
		p.assigned++
	}

	if p.lastDue <= elapsed {
		return 0, false
	}
	return p.lastDue - elapsed, false
}

// Rate returns the average number of hits per second the users produce.
func (p *userPacer) Rate(time.Duration) float64 {
	mean := (p.waitMin + p.waitMax) / 2
	if mean <= 0 {
		return 0
	}
	return float64(len(p.due)) / mean.Seconds()
}

func (p *userPacer) randomWait() time.Duration {
	spread := int64(p.waitMax - p.waitMin)
	if spread <= 0 {
		return p.waitMin
	}
	return p.waitMin + time.Duration(p.rng.Int63n(spread+1))
}

// contextPacer does the waiting that its Pacer asks for itself, so that cancelling ctx ends
// the attack without sleeping out the rest of a long user wait.
type contextPacer struct {
	vegeta.Pacer
	ctx context.Context
}

func (p contextPacer) Pace(elapsed time.Duration, hits uint64) (time.Duration, bool) {
	wait, stop := p.Pacer.Pace(elapsed, hits)
	if stop || p.ctx.Err() != nil {
		return 0, true
	}
	if wait <= 0 {
		return 0, false
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-p.ctx.Done():
		return 0, true
	case <-timer.C:
		return 0, false
	}
}
