package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/config-service-contract-tests/configtests"
	"github.com/launchdarkly/config-service-contract-tests/framework"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"github.com/joho/godotenv"
)

const serviceURLEnvVar = "CONFIG_SERVICE_URL"
const defaultFixturesDir = "data"
const defaultStartupTimeout = time.Second * 10

type commandParams struct {
	serviceURL     string
	envFile        string
	fixturesDir    string
	rainyDayRounds int
	seed           int64
	startupTimeout time.Duration
	filters        framework.RegexFilters
	debug          bool
	debugAll       bool
	noColor        bool
}

// Read parses the command line. The service URL comes from -url if given, otherwise from
// CONFIG_SERVICE_URL in the environment, otherwise from CONFIG_SERVICE_URL in the -env-file,
// otherwise the default.
func (c *commandParams) Read(args []string, lookupEnv func(string) (string, bool)) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.serviceURL, "url", "", "configuration service URL (default $"+serviceURLEnvVar+" or "+
		servicedef.DefaultServiceURL+")")
	fs.StringVar(&c.envFile, "env-file", "", "file of environment variable settings, such as "+serviceURLEnvVar)
	fs.StringVar(&c.fixturesDir, "fixtures", defaultFixturesDir, "directory containing the sunny-day fixture files")
	fs.IntVar(&c.rainyDayRounds, "rainy-count", configtests.DefaultRainyDayRounds, "random tokens to try per category")
	fs.Int64Var(&c.seed, "seed", 0, "random seed for rainy-day tokens (default: time-based)")
	fs.DurationVar(&c.startupTimeout, "wait", defaultStartupTimeout, "how long to wait for the service to start (0 to not wait)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable coloured output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.rainyDayRounds < 0 {
		fmt.Fprintln(os.Stderr, "-rainy-count must not be negative")
		fs.Usage()
		return false
	}

	seedGiven := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedGiven = true
		}
	})
	if !seedGiven {
		c.seed = time.Now().UnixNano()
	}

	if c.serviceURL == "" {
		url, err := c.resolveServiceURL(lookupEnv)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		c.serviceURL = url
	}
	return true
}

func (c *commandParams) resolveServiceURL(lookupEnv func(string) (string, bool)) (string, error) {
	if url, ok := lookupEnv(serviceURLEnvVar); ok && url != "" {
		return url, nil
	}
	if c.envFile != "" {
		vars, err := godotenv.Read(c.envFile)
		if err != nil {
			return "", fmt.Errorf("could not read env file %s: %w", c.envFile, err)
		}
		if url := vars[serviceURLEnvVar]; url != "" {
			return url, nil
		}
	}
	return servicedef.DefaultServiceURL, nil
}
