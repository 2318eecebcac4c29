package configtests

import (
	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/framework"
)

// RunTestSuite runs every contract test against the service that harness talks to.
func RunTestSuite(
	harness *framework.TestHarness,
	fixtureSet *fixtures.Set,
	opts SuiteOptions,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, harness, fixtureSet, opts)

		t.Run("technical task", DoTechnicalTaskTests)
		t.Run("sunny days", DoSunnyDayTests)
		t.Run("rainy days", DoRainyDayTests)
		t.Run("unexpected behaviour", DoUnexpectedBehaviourTests)
	})
}
