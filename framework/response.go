package framework

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ServiceResponse is the HTTP response to one request sent by TestHarness.
type ServiceResponse struct {
	// RequestID is the value of the X-Request-Id header we sent.
	RequestID  string
	StatusCode int
	Body       []byte
}

// JSON parses the response body.
func (r ServiceResponse) JSON() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), fmt.Errorf("response body is not valid JSON: %q", string(r.Body))
	}
	return v, nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
