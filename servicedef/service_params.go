package servicedef

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultServiceURL is where a locally running configuration service listens.
const DefaultServiceURL = "http://localhost:8078/get_config"

// Category labels understood by the configuration service.
const (
	TypeDevelopMrRobot = "Develop.mr_robot"
	TypeTestVPN        = "Test.vpn"
)

// Error messages returned by the configuration service in {"error": message} bodies.
const (
	ErrorBadInput      = "Bad input"
	ErrorNoModel       = "config model not present"
	ErrorRecordMissing = "record not found"
)

const (
	StatusSuccess    = 200
	StatusBadRequest = 400
)

// ConfigQuery is the well-formed request shape: {"Type": "...", "Data": "..."}.
type ConfigQuery struct {
	Type string `json:"Type" yaml:"type"`
	Data string `json:"Data" yaml:"data"`
}

// Body returns the query as a request body.
func (q ConfigQuery) Body() RequestBody {
	return QueryBody(q.Type, q.Data)
}

// RequestBody is whatever we send to the service. It is not necessarily a well-formed
// ConfigQuery: it can be any JSON value, or no body at all.
type RequestBody struct {
	value   ldvalue.Value
	present bool
}

// NoBody returns a RequestBody for a POST with an empty body.
func NoBody() RequestBody {
	return RequestBody{}
}

// RawBody returns a RequestBody that sends the JSON encoding of the given value.
func RawBody(value ldvalue.Value) RequestBody {
	return RequestBody{value: value, present: true}
}

// QueryBody returns a RequestBody for {"Type": configType, "Data": data}.
func QueryBody(configType, data string) RequestBody {
	return RawBody(ldvalue.ObjectBuild().
		Set("Type", ldvalue.String(configType)).
		Set("Data", ldvalue.String(data)).
		Build())
}

// ErrorResponse returns the expected body for an error response.
func ErrorResponse(message string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("error", ldvalue.String(message)).Build()
}

func (b RequestBody) IsPresent() bool { return b.present }

func (b RequestBody) Value() ldvalue.Value { return b.value }

// JSON returns the encoded body, or nil if there is no body.
func (b RequestBody) JSON() []byte {
	if !b.present {
		return nil
	}
	return []byte(b.value.JSONString())
}

func (b RequestBody) String() string {
	if !b.present {
		return "<no body>"
	}
	return b.value.JSONString()
}

// Query returns the Type and Data properties if both are present and are strings.
func (b RequestBody) Query() (ConfigQuery, bool) {
	if b.value.Type() != ldvalue.ObjectType {
		return ConfigQuery{}, false
	}
	t, d := b.value.GetByKey("Type"), b.value.GetByKey("Data")
	if t.Type() != ldvalue.StringType || d.Type() != ldvalue.StringType {
		return ConfigQuery{}, false
	}
	return ConfigQuery{Type: t.StringValue(), Data: d.StringValue()}, true
}
