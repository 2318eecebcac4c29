package fixtures

import (
	"path/filepath"

	"github.com/launchdarkly/config-service-contract-tests/servicedef"
)

// Fixture file names, relative to the fixtures directory.
const (
	DevelopFixtureFile = "sunny_days_develop_mr_robot_configs.csv"
	VPNFixtureFile     = "sunny_days_test_vpn_configs.csv"
)

// Category associates a category label with the fixture file listing its records.
type Category struct {
	Label string
	File  string
}

// Categories lists every category we have fixtures for.
var Categories = []Category{
	{Label: servicedef.TypeDevelopMrRobot, File: DevelopFixtureFile},
	{Label: servicedef.TypeTestVPN, File: VPNFixtureFile},
}

// CategoryVectors is the list of sunny-day vectors for one category.
type CategoryVectors struct {
	Label   string
	Vectors []TestVector
}

// Set is all of the fixture data for a test run. It is loaded once and never modified;
// accessors return copies.
type Set struct {
	technical  []TestVector
	sunnyDays  []CategoryVectors
	unexpected []TestVector
}

// Load reads the fixture files for every category from dir.
func Load(dir string) (*Set, error) {
	s := &Set{
		technical:  technicalExamples(),
		unexpected: unexpectedBehaviourTable(),
	}
	for _, c := range Categories {
		vectors, err := LoadVectors(filepath.Join(dir, c.File), c.Label)
		if err != nil {
			return nil, err
		}
		s.sunnyDays = append(s.sunnyDays, CategoryVectors{Label: c.Label, Vectors: vectors})
	}
	return s, nil
}

// NewSet creates a Set from already-built sunny-day vectors, plus the built-in tables.
func NewSet(sunnyDays ...CategoryVectors) *Set {
	s := &Set{
		technical:  technicalExamples(),
		unexpected: unexpectedBehaviourTable(),
	}
	for _, c := range sunnyDays {
		s.sunnyDays = append(s.sunnyDays, CategoryVectors{Label: c.Label, Vectors: copyVectors(c.Vectors)})
	}
	return s
}

// TechnicalExamples returns the canonical request/response pairs.
func (s *Set) TechnicalExamples() []TestVector { return copyVectors(s.technical) }

// UnexpectedBehaviour returns the malformed-input table.
func (s *Set) UnexpectedBehaviour() []TestVector { return copyVectors(s.unexpected) }

// SunnyDays returns the vectors loaded from fixture files, grouped by category.
func (s *Set) SunnyDays() []CategoryVectors {
	ret := make([]CategoryVectors, 0, len(s.sunnyDays))
	for _, c := range s.sunnyDays {
		ret = append(ret, CategoryVectors{Label: c.Label, Vectors: copyVectors(c.Vectors)})
	}
	return ret
}

// Labels returns the category labels in the order they were loaded.
func (s *Set) Labels() []string {
	ret := make([]string, 0, len(s.sunnyDays))
	for _, c := range s.sunnyDays {
		ret = append(ret, c.Label)
	}
	return ret
}

// Records returns every vector that describes an existing record: the technical examples
// followed by the sunny-day vectors.
func (s *Set) Records() []TestVector {
	ret := copyVectors(s.technical)
	for _, c := range s.sunnyDays {
		ret = append(ret, c.Vectors...)
	}
	return ret
}

// KnownTokens returns the Data value of every request in the set.
func (s *Set) KnownTokens() map[string]struct{} {
	ret := make(map[string]struct{})
	add := func(vectors []TestVector) {
		for _, v := range vectors {
			if q, ok := v.Request.Query(); ok {
				ret[q.Data] = struct{}{}
			}
		}
	}
	add(s.technical)
	add(s.unexpected)
	for _, c := range s.sunnyDays {
		add(c.Vectors)
	}
	return ret
}

func copyVectors(vectors []TestVector) []TestVector {
	return append([]TestVector(nil), vectors...)
}
