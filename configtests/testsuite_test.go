package configtests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/framework"
	"github.com/launchdarkly/config-service-contract-tests/mockservice"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixtures(t *testing.T) *fixtures.Set {
	set, err := fixtures.Load("../data")
	require.NoError(t, err)
	return set
}

func runAgainst(t *testing.T, handler http.Handler, set *fixtures.Set, filter framework.Filter) framework.Results {
	var results framework.Results
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		harness, err := framework.NewTestHarness(server.URL, 0, nil, nil)
		require.NoError(t, err)
		results = RunTestSuite(harness, set, SuiteOptions{RainyDayRounds: DefaultRainyDayRounds, Seed: 1}, filter, nil)
	})
	return results
}

func failedIDs(results framework.Results) []string {
	var ret []string
	for _, f := range results.Failures {
		ret = append(ret, f.TestID.String())
	}
	return ret
}

func TestSuitePassesAgainstConformingService(t *testing.T) {
	set := loadFixtures(t)
	results := runAgainst(t, mockservice.New(set.Records()...), set, nil)

	assert.True(t, results.OK(), "failures: %v", failedIDs(results))
	ran, failed, skipped := results.Counts()
	assert.NotZero(t, ran)
	assert.Zero(t, failed)
	assert.Zero(t, skipped)
}

func TestSuiteReportsMissingRecords(t *testing.T) {
	set := loadFixtures(t)
	results := runAgainst(t, mockservice.New(), set, nil)

	require.False(t, results.OK())
	ids := failedIDs(results)
	assert.Contains(t, ids, "technical task/response status code")
	assert.Contains(t, ids, "technical task/response data/Develop.mr_robot")
	assert.NotContains(t, ids, "unexpected behaviour/<no body>")
	assert.NotContains(t, ids, `unexpected behaviour/""`)
}

func TestFailureMessagesIncludeReproduction(t *testing.T) {
	set := loadFixtures(t)
	handler := httphelpers.HandlerWithResponse(200, nil, []byte(`{}`))
	results := runAgainst(t, handler, set, nil)

	require.NotEmpty(t, results.Failures)
	messages := ""
	for _, err := range results.Failures[0].Errors {
		messages += err.Error()
	}
	assert.Contains(t, messages, "curl -i -X POST")
	assert.Contains(t, messages, "request ID:")
}

func TestSuiteHonorsFilter(t *testing.T) {
	set := loadFixtures(t)
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("rainy days"))

	results := runAgainst(t, mockservice.New(set.Records()...), set, filters.AsFilter)
	assert.True(t, results.OK())
	for _, test := range results.Tests {
		assert.True(t, strings.HasPrefix(test.TestID.String(), "rainy days"), test.TestID.String())
	}
	ran, _, _ := results.Counts()
	assert.Equal(t, 1+DefaultRainyDayRounds*len(set.Labels()), ran)
}

func TestRainyDaysAreReproducibleForSeed(t *testing.T) {
	set := loadFixtures(t)
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("rainy days"))

	first := runAgainst(t, mockservice.New(set.Records()...), set, filters.AsFilter)
	second := runAgainst(t, mockservice.New(set.Records()...), set, filters.AsFilter)
	assert.Equal(t, failedIDs(first), failedIDs(second))
	require.Equal(t, len(first.Tests), len(second.Tests))
	for i := range first.Tests {
		assert.Equal(t, first.Tests[i].TestID.String(), second.Tests[i].TestID.String())
	}
}
