package framework

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"
const probeInterval = time.Millisecond * 100

// TestHarness sends requests to the service under test. Each call to SendRequest makes
// exactly one HTTP request.
type TestHarness struct {
	serviceURL string
	client     *http.Client
	logger     Logger
}

// NewTestHarness creates a TestHarness for the service endpoint at serviceURL.
//
// If startupTimeout is nonzero, it first waits until the service answers an HTTP request with
// any status at all, so that a service that is still starting up does not fail every test.
func NewTestHarness(
	serviceURL string,
	startupTimeout time.Duration,
	debugLogger Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	h := &TestHarness{
		serviceURL: serviceURL,
		client:     http.DefaultClient,
		logger:     debugLogger,
	}
	if startupTimeout > 0 {
		if err := h.awaitService(startupTimeout, startupOutput); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *TestHarness) ServiceURL() string {
	return h.serviceURL
}

func (h *TestHarness) awaitService(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to service at %s", h.serviceURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := h.client.Get(h.serviceURL)
		if err == nil {
			_ = resp.Body.Close()
			fmt.Fprintln(output)
			h.logger.Printf("Service answered status probe with HTTP %d", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("service did not respond within %s, result of last query was: %w", timeout, err)
		}
		time.Sleep(probeInterval)
	}
}

// SendRequest POSTs the body to the service and returns whatever it answered. The body is
// sent exactly as given, even if it is not a valid query; an error is returned only if no
// HTTP response was received.
func (h *TestHarness) SendRequest(body servicedef.RequestBody, logger Logger) (ServiceResponse, error) {
	if logger == nil {
		logger = h.logger
	}
	requestID := uuid.NewString()

	req, err := http.NewRequest("POST", h.serviceURL, bytes.NewReader(body.JSON()))
	if err != nil {
		return ServiceResponse{}, err
	}
	if body.IsPresent() {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, requestID)

	logger.Printf("request:  %s (%s)", body, requestID)
	resp, err := h.client.Do(req)
	if err != nil {
		logger.Printf("request failed: %s", err)
		return ServiceResponse{}, fmt.Errorf("request %s to %s failed: %w", requestID, h.serviceURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ServiceResponse{}, fmt.Errorf("error reading response to request %s: %w", requestID, err)
	}
	logger.Printf("response: HTTP %d %s", resp.StatusCode, string(data))

	return ServiceResponse{
		RequestID:  requestID,
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

// CurlCommand returns a shell command that sends the same request as SendRequest would.
func (h *TestHarness) CurlCommand(body servicedef.RequestBody) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", "POST")
	if body.IsPresent() {
		b.add("-H", "Content-Type: application/json", "-d", string(body.JSON()))
	}
	b.add(h.serviceURL)
	return b.String()
}
