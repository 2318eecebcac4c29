package loadtest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"gopkg.in/yaml.v3"
)

// DefaultURL is the service endpoint used when neither the profile nor the command line names one.
const DefaultURL = servicedef.DefaultServiceURL

// Task is one kind of request that simulated users send. Tasks are chosen in proportion to
// their weights.
type Task struct {
	servicedef.ConfigQuery `yaml:",inline"`

	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// Profile describes a load test run.
type Profile struct {
	URL         string        `yaml:"url"`
	Users       int           `yaml:"users"`
	WaitMin     time.Duration `yaml:"wait_min"`
	WaitMax     time.Duration `yaml:"wait_max"`
	Duration    time.Duration `yaml:"duration"`
	MaxRequests uint64        `yaml:"max_requests"`
	Seed        int64         `yaml:"seed"`
	Tasks       []Task        `yaml:"tasks"`
}

// DefaultProfile requests the two technical-task records with equal weight, with each user
// waiting between 5 and 9 seconds between requests.
func DefaultProfile() Profile {
	return Profile{
		URL:     DefaultURL,
		Users:   1,
		WaitMin: 5 * time.Second,
		WaitMax: 9 * time.Second,
		Tasks: []Task{
			{
				Name:   "develop_mr_robot",
				Weight: 1,
				ConfigQuery: servicedef.ConfigQuery{
					Type: servicedef.TypeDevelopMrRobot,
					Data: fixtures.DevelopExampleData,
				},
			},
			{
				Name:   "test_vpn",
				Weight: 1,
				ConfigQuery: servicedef.ConfigQuery{
					Type: servicedef.TypeTestVPN,
					Data: fixtures.VPNExampleData,
				},
			},
		},
	}
}

// LoadProfile reads a YAML profile. Fields it does not set keep their DefaultProfile values,
// except tasks, which replace the default list if present. Unknown fields are an error.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, &fixtures.IOError{Path: path, Err: err}
	}
	return ParseProfile(data)
}

// ParseProfile is LoadProfile for profile data that is already in memory.
func ParseProfile(data []byte) (Profile, error) {
	p := DefaultProfile()
	p.Tasks = nil

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("invalid load profile: %w", err)
	}
	if p.Tasks == nil {
		p.Tasks = DefaultProfile().Tasks
	}
	return p, p.Validate()
}

// Validate checks that the profile can be run.
func (p Profile) Validate() error {
	if p.URL == "" {
		return errors.New("load profile has no url")
	}
	if p.Users <= 0 {
		return fmt.Errorf("users must be positive, not %d", p.Users)
	}
	if p.WaitMin < 0 || p.WaitMin > p.WaitMax {
		return fmt.Errorf("wait_min (%s) must be between zero and wait_max (%s)", p.WaitMin, p.WaitMax)
	}
	if p.Duration < 0 {
		return fmt.Errorf("duration must not be negative, not %s", p.Duration)
	}
	if len(p.Tasks) == 0 {
		return errors.New("load profile has no tasks")
	}
	for i, t := range p.Tasks {
		if t.Weight <= 0 {
			return fmt.Errorf("task %d (%s) must have a positive weight, not %d", i, t.Name, t.Weight)
		}
	}
	return nil
}
