package configtests

import (
	"github.com/launchdarkly/config-service-contract-tests/fixtures"
)

func DoRainyDayTests(t *T) {
	src := fixtures.NewTokenSource(t.opts.Seed, t.Fixtures().KnownTokens())
	t.Debug("random token seed: %d", t.opts.Seed)

	for _, v := range fixtures.RainyDayVectors(src, t.opts.RainyDayRounds, t.Fixtures().Labels()) {
		v := v
		t.Run(v.Name, func(t *T) {
			t.RequireVector(v)
		})
	}
}
