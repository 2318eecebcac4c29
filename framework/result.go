package framework

import (
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that ran, failed, and were skipped by the test itself.
// Tests excluded by a filter are not counted at all.
func (r Results) Counts() (ran, failed, skipped int) {
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		} else {
			ran++
		}
	}
	return ran, len(r.Failures), skipped
}

// PrintResults writes a summary of the test run, listing every failed test.
func PrintResults(out io.Writer, results Results) {
	ran, failed, skipped := results.Counts()
	if results.OK() {
		fmt.Fprintf(out, "All tests passed (%d run, %d skipped)\n", ran, skipped)
		return
	}
	fmt.Fprintf(out, "FAILED TESTS (%d of %d):\n", failed, ran)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  * %s\n", f.TestID)
	}
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
