package mockservice

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, s *Service, body servicedef.RequestBody) *httptest.ResponseRecorder {
	req, err := http.NewRequest("POST", "/get_config", bytes.NewReader(body.JSON()))
	require.NoError(t, err)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestServiceAnswersUnexpectedBehaviourTable(t *testing.T) {
	set := fixtures.NewSet()
	s := New(set.Records()...)

	for _, v := range set.UnexpectedBehaviour() {
		w := post(t, s, v.Request)
		assert.Equal(t, v.Status, w.Code, v.Name)
		assert.JSONEq(t, v.Response.JSONString(), w.Body.String(), v.Name)
	}
	assert.Equal(t, 12, s.RequestCount())
}

func TestServiceReturnsRecord(t *testing.T) {
	s := New(fixtures.NewSet().Records()...)

	w := post(t, s, servicedef.QueryBody(servicedef.TypeTestVPN, fixtures.VPNExampleData))
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, fixtures.VPNExampleResponse().JSONString(), w.Body.String())
}

func TestServiceRejectsOtherMethods(t *testing.T) {
	s := New()
	req, _ := http.NewRequest("GET", "/get_config", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
