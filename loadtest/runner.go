package loadtest

import (
	"context"
	"io"

	"github.com/launchdarkly/config-service-contract-tests/framework"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const attackName = "config-service"

// Run executes the profile against its URL. It stops when the profile's duration has elapsed,
// when MaxRequests requests have been sent, or when ctx is cancelled, whichever comes first;
// with neither a duration nor a request limit, only ctx stops it.
func Run(ctx context.Context, p Profile, logger framework.Logger) (*vegeta.Metrics, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	logger = framework.LoggerWithPrefix(logger, "[loadtest] ")

	pacer := contextPacer{
		Pacer: newUserPacer(p.Users, p.WaitMin, p.WaitMax, p.MaxRequests, p.Seed),
		ctx:   ctx,
	}
	targeter := newWeightedTargeter(p.URL, p.Tasks, p.Seed+1)
	attacker := vegeta.NewAttacker(
		vegeta.Workers(uint64(p.Users)),
		vegeta.MaxWorkers(uint64(p.Users)),
		vegeta.KeepAlive(true),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			attacker.Stop()
		case <-done:
		}
	}()

	logger.Printf("Starting %d users against %s", p.Users, p.URL)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, pacer, p.Duration, attackName) {
		metrics.Add(res)
		if res.Error != "" {
			logger.Printf("request %d failed: %s", res.Seq, res.Error)
		}
	}
	metrics.Close()
	return &metrics, nil
}

// WriteReport writes vegeta's text summary of the metrics.
func WriteReport(w io.Writer, metrics *vegeta.Metrics) error {
	return vegeta.NewTextReporter(metrics).Report(w)
}
