package configtests

import (
	"fmt"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/framework"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DefaultRainyDayRounds is how many random tokens are tried for each category.
const DefaultRainyDayRounds = 3

// SuiteOptions are parameters of a test run that are not fixture data.
type SuiteOptions struct {
	// RainyDayRounds is the number of random tokens to try per category.
	RainyDayRounds int

	// Seed initializes the random token generator.
	Seed int64
}

// T represents a test or subtest in our configuration service test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, with debug output captured by the framework package. To make
// assertions, pass the *T to the assert and require packages as if it were a *testing.T.
//
// It also knows how to send requests to the service under test and compare the responses
// with test vectors. Requests are sent one at a time; nothing is retried.
type T struct {
	context  *framework.Context
	harness  *framework.TestHarness
	fixtures *fixtures.Set
	opts     SuiteOptions
}

func newTestScope(
	context *framework.Context,
	harness *framework.TestHarness,
	fixtureSet *fixtures.Set,
	opts SuiteOptions,
) *T {
	return &T{
		context:  context,
		harness:  harness,
		fixtures: fixtureSet,
		opts:     opts,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.harness, t.fixtures, t.opts))
	})
}

// SkipWithReason marks the test as skipped and immediately exits.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Fixtures returns the fixture data for this test run.
func (t *T) Fixtures() *fixtures.Set {
	return t.fixtures
}

// SendRequest sends a request to the service and returns its response. The test fails and
// immediately exits if no response was received.
func (t *T) SendRequest(body servicedef.RequestBody) framework.ServiceResponse {
	resp, err := t.harness.SendRequest(body, t.context.DebugLogger())
	require.NoError(t, err, "no response for request %s\nreproduce with: %s",
		body, t.harness.CurlCommand(body))
	return resp
}

// RequireVector sends the request of a test vector and checks that the response body, and
// the status if the vector specifies one, are as expected.
func (t *T) RequireVector(v fixtures.TestVector) framework.ServiceResponse {
	resp := t.SendRequest(v.Request)
	diagnostics := t.describe(v.Request, resp)

	if v.Status != 0 {
		assert.Equal(t, v.Status, resp.StatusCode, "unexpected HTTP status\n%s", diagnostics)
	}
	assert.JSONEq(t, v.Response.JSONString(), string(resp.Body), "unexpected response body\n%s", diagnostics)
	return resp
}

// RequireStatus sends a request and checks only the HTTP status of the response.
func (t *T) RequireStatus(body servicedef.RequestBody, status int) framework.ServiceResponse {
	resp := t.SendRequest(body)
	assert.Equal(t, status, resp.StatusCode, "unexpected HTTP status\n%s", t.describe(body, resp))
	return resp
}

func (t *T) describe(body servicedef.RequestBody, resp framework.ServiceResponse) string {
	return fmt.Sprintf("request:        %s\nrequest ID:     %s\nresponse:       HTTP %d %s\nreproduce with: %s",
		body, resp.RequestID, resp.StatusCode, string(resp.Body), t.harness.CurlCommand(body))
}
