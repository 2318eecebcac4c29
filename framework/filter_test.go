package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(TestID{Path: []string{"anything"}}))

	require.NoError(t, filters.MustMatch.Set("sunny"))
	require.NoError(t, filters.MustNotMatch.Set("Test\\.vpn"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"sunny days", "Develop.mr_robot"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"sunny days", "Test.vpn"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"rainy days"}}))
}

func TestRegexListRejectsBadPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var out bytes.Buffer
	PrintFilterDescription(&out, RegexFilters{})
	assert.Equal(t, "", out.String())

	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("a"))
	require.NoError(t, filters.MustMatch.Set("b"))
	PrintFilterDescription(&out, filters)
	assert.Contains(t, out.String(), `skip any not matching "a" or "b"`)
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	PrintResults(&out, Results{Tests: []TestResult{{TestID: TestID{Path: []string{"a"}}}}})
	assert.Equal(t, "All tests passed (1 run, 0 skipped)\n", out.String())

	out.Reset()
	failure := TestResult{TestID: TestID{Path: []string{"a", "b"}}}
	PrintResults(&out, Results{Tests: []TestResult{failure}, Failures: []TestResult{failure}})
	assert.Equal(t, "FAILED TESTS (1 of 1):\n  * a/b\n", out.String())
}

func TestLoggerWithPrefix(t *testing.T) {
	var target CapturingLogger
	LoggerWithPrefix(&target, "[x] ").Printf("hello %s", "world")
	require.Len(t, target.Output(), 1)
	assert.Equal(t, "[x] hello world", target.Output()[0].Message)
}
