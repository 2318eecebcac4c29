package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/launchdarkly/config-service-contract-tests/loadtest"
)

func main() {
	var profilePath, url string
	var users int
	var duration time.Duration
	var maxRequests uint64
	var verbose bool

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&profilePath, "profile", "", "YAML load profile (default: built-in profile)")
	fs.StringVar(&url, "url", "", "service URL, overriding the profile")
	fs.IntVar(&users, "users", 0, "number of simulated users, overriding the profile")
	fs.DurationVar(&duration, "duration", 0, "how long to run, overriding the profile")
	fs.Uint64Var(&maxRequests, "max-requests", 0, "stop after this many requests, overriding the profile")
	fs.BoolVar(&verbose, "v", false, "log failed requests")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		os.Exit(1)
	}

	profile := loadtest.DefaultProfile()
	if profilePath != "" {
		var err error
		if profile, err = loadtest.LoadProfile(profilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid load profile: %s\n", err)
			os.Exit(1)
		}
	}
	if url != "" {
		profile.URL = url
	}
	if users > 0 {
		profile.Users = users
	}
	if duration > 0 {
		profile.Duration = duration
	}
	if maxRequests > 0 {
		profile.MaxRequests = maxRequests
	}
	if profile.Seed == 0 {
		profile.Seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if !verbose {
		logger.SetOutput(io.Discard)
	}

	metrics, err := loadtest.Run(ctx, profile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load test error: %s\n", err)
		os.Exit(1)
	}
	if err := loadtest.WriteReport(os.Stdout, metrics); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write report: %s\n", err)
		os.Exit(1)
	}
}
