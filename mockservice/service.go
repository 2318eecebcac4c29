// Package mockservice is an in-process implementation of the configuration service's wire
// contract, serving records taken from fixture vectors. It lets the contract tests and the
// load driver be exercised without a real deployment.
package mockservice

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Service is an http.Handler answering configuration queries from a fixed record table.
type Service struct {
	records  map[string]map[string]ldvalue.Value
	requests int64
}

// New creates a Service. Every vector whose request is a well-formed query and whose expected
// status is 200 becomes a record.
func New(vectors ...fixtures.TestVector) *Service {
	s := &Service{records: make(map[string]map[string]ldvalue.Value)}
	for _, v := range vectors {
		q, ok := v.Request.Query()
		if !ok || v.Status != servicedef.StatusSuccess || q.Type == "" {
			continue
		}
		if s.records[q.Type] == nil {
			s.records[q.Type] = make(map[string]ldvalue.Value)
		}
		s.records[q.Type][q.Data] = v.Response
	}
	return s
}

// RequestCount returns the number of requests served so far.
func (s *Service) RequestCount() int {
	return int(atomic.LoadInt64(&s.requests))
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt64(&s.requests, 1)
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var query servicedef.ConfigQuery
	data, err := io.ReadAll(r.Body)
	if err == nil {
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&query)
	}
	if err != nil {
		writeError(w, servicedef.ErrorBadInput)
		return
	}

	table, ok := s.records[query.Type]
	if !ok {
		writeError(w, servicedef.ErrorNoModel)
		return
	}
	record, ok := table[query.Data]
	if !ok {
		writeError(w, servicedef.ErrorRecordMissing)
		return
	}
	writeJSON(w, servicedef.StatusSuccess, record)
}

func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, servicedef.StatusBadRequest, servicedef.ErrorResponse(message))
}

func writeJSON(w http.ResponseWriter, status int, value ldvalue.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(value.JSONString()))
}
