// Package framework contains the low-level test harness infrastructure: sending requests to
// the service under test, and running tests outside of the Go test runner.
//
// The general model is:
//
// 1. The service under test exposes a single endpoint that accepts a JSON body in a POST
// request and answers with a JSON body. TestHarness sends such requests and captures the
// responses; it never validates or retries anything.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for choosing the
// requests, deciding what responses are correct, and providing a domain-specific test API on
// top of the test context.
package framework
