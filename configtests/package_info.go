// Package configtests contains the configuration service contract tests and their
// supporting API.
//
// Infrastructure that is not specific to the configuration service, such as sending
// requests and running tests outside of the Go test runner, is in the lower-level
// framework package. Fixture data comes from the fixtures package.
package configtests
