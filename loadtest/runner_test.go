package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/mockservice"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func mustParse(t *testing.T, data []byte) ldvalue.Value {
	var v ldvalue.Value
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestRunStopsAtMaxRequests(t *testing.T) {
	service := mockservice.New(fixtures.NewSet().TechnicalExamples()...)
	httphelpers.WithServer(service, func(server *httptest.Server) {
		p := DefaultProfile()
		p.URL = server.URL
		p.Users = 2
		p.WaitMin, p.WaitMax = 0, time.Millisecond
		p.MaxRequests = 6

		metrics, err := Run(context.Background(), p, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), metrics.Requests)
		assert.Equal(t, 1.0, metrics.Success)
		assert.Equal(t, 6, metrics.StatusCodes["200"])
		assert.Equal(t, 6, service.RequestCount())

		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, metrics))
		assert.Contains(t, buf.String(), "Requests")
	})
}

func TestRunCountsServiceErrors(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(400))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		p := DefaultProfile()
		p.URL = server.URL
		p.WaitMin, p.WaitMax = 0, 0
		p.MaxRequests = 3

		metrics, err := Run(context.Background(), p, nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, metrics.Success)
		assert.Equal(t, 3, metrics.StatusCodes["400"])
		assert.Len(t, requests, 3)
	})
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		p := DefaultProfile()
		p.URL = server.URL
		p.WaitMin, p.WaitMax = time.Hour, time.Hour

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		metrics, err := Run(ctx, p, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), metrics.Requests)
	})
}

func TestRunRejectsInvalidProfile(t *testing.T) {
	p := DefaultProfile()
	p.Users = 0
	_, err := Run(context.Background(), p, nil)
	assert.Error(t, err)
}
