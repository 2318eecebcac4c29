package fixtures

import (
	"math/rand"

	"github.com/launchdarkly/config-service-contract-tests/servicedef"
)

// TokenLength is the length of a generated rainy-day token.
const TokenLength = 10

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenSource generates random lookup tokens that should not exist in the service's
// data store. Tokens that match a known fixture token are never returned.
type TokenSource struct {
	rng     *rand.Rand
	exclude map[string]struct{}
}

// NewTokenSource creates a TokenSource. The same seed always produces the same tokens.
func NewTokenSource(seed int64, exclude map[string]struct{}) *TokenSource {
	return &TokenSource{rng: rand.New(rand.NewSource(seed)), exclude: exclude}
}

// Next returns a random token of TokenLength uppercase letters and digits.
func (s *TokenSource) Next() string {
	for {
		b := make([]byte, TokenLength)
		for i := range b {
			b[i] = tokenAlphabet[s.rng.Intn(len(tokenAlphabet))]
		}
		token := string(b)
		if _, known := s.exclude[token]; !known {
			return token
		}
	}
}

// RainyDayVectors generates rounds*len(labels) vectors with random tokens, each expecting
// a 400 "record not found" response.
func RainyDayVectors(src *TokenSource, rounds int, labels []string) []TestVector {
	var vectors []TestVector
	for i := 0; i < rounds; i++ {
		for _, label := range labels {
			token := src.Next()
			vectors = append(vectors, TestVector{
				Name:     label + " " + token,
				Request:  servicedef.QueryBody(label, token),
				Status:   servicedef.StatusBadRequest,
				Response: servicedef.ErrorResponse(servicedef.ErrorRecordMissing),
			})
		}
	}
	return vectors
}
