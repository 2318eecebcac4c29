package loadtest

import (
	"math/rand"
	"net/http"
	"sync"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type weightedTask struct {
	body      []byte
	cumWeight int
}

// newWeightedTargeter returns a vegeta.Targeter that picks one of the tasks for each hit, in
// proportion to its weight. The tasks must already have been validated.
func newWeightedTargeter(url string, tasks []Task, seed int64) vegeta.Targeter {
	weighted := make([]weightedTask, 0, len(tasks))
	total := 0
	for _, t := range tasks {
		total += t.Weight
		weighted = append(weighted, weightedTask{body: t.Body().JSON(), cumWeight: total})
	}

	var lock sync.Mutex
	rng := rand.New(rand.NewSource(seed))

	return func(tgt *vegeta.Target) error {
		if tgt == nil {
			return vegeta.ErrNilTarget
		}

		lock.Lock()
		n := rng.Intn(total)
		lock.Unlock()

		for _, w := range weighted {
			if n < w.cumWeight {
				tgt.Method = http.MethodPost
				tgt.URL = url
				tgt.Body = w.body
				tgt.Header = http.Header{"Content-Type": []string{"application/json"}}
				return nil
			}
		}
		return vegeta.ErrNoTargets
	}
}
