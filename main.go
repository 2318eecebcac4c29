package main

import (
	"fmt"
	"log"
	"os"

	"github.com/launchdarkly/config-service-contract-tests/configtests"
	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/framework"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.LookupEnv) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	fixtureSet, err := fixtures.Load(params.fixturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fixture error: %s\n", err)
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	harness, err := framework.NewTestHarness(
		params.serviceURL,
		params.startupTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running test suite against %s (random seed %d)\n", harness.ServiceURL(), params.seed)

	testLogger := &ConsoleTestLogger{
		Out:                  color.Output,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	opts := configtests.SuiteOptions{
		RainyDayRounds: params.rainyDayRounds,
		Seed:           params.seed,
	}

	results := configtests.RunTestSuite(harness, fixtureSet, opts, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
