package fixtures

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// PortField is the response property that the service returns as a number.
const PortField = "Port"

// TestVector is one request to send to the service and the response we expect for it.
type TestVector struct {
	// Name identifies the vector in test output.
	Name string

	Request servicedef.RequestBody

	// Status is the expected HTTP status, or 0 if the status should not be checked.
	Status int

	Response ldvalue.Value
}

// CapitalizeFirst upper-cases the first letter of a column name: "host" becomes "Host".
func CapitalizeFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// ExpectedResponseFor builds the record that the service should return for a fixture row:
// every column becomes a property named by CapitalizeFirst, and Port is a number.
func ExpectedResponseFor(row Row) (ldvalue.Value, error) {
	seen := make(map[string]string, len(row.Fields))
	builder := ldvalue.ObjectBuild()
	for _, f := range row.Fields {
		name := CapitalizeFirst(f.Name)
		if prev, ok := seen[name]; ok {
			return ldvalue.Null(), FixtureFormatError{
				Source: row.Source,
				Line:   row.Line,
				Reason: fmt.Sprintf("columns %q and %q both map to property %q", prev, f.Name, name),
			}
		}
		seen[name] = f.Name

		value := ldvalue.String(f.Value)
		if name == PortField {
			port, err := strconv.Atoi(f.Value)
			if err != nil {
				return ldvalue.Null(), FixtureFormatError{
					Source: row.Source,
					Line:   row.Line,
					Reason: fmt.Sprintf("%s value %q is not an integer", PortField, f.Value),
					Err:    err,
				}
			}
			value = ldvalue.Int(port)
		}
		builder.Set(name, value)
	}
	return builder.Build(), nil
}

// BuildVectors converts fixture rows into test vectors for the given category label, in the
// same order as the rows. Every vector expects a 200 status.
func BuildVectors(rows []Row, label string) ([]TestVector, error) {
	vectors := make([]TestVector, 0, len(rows))
	for _, row := range rows {
		data, ok := row.Get(DataColumn)
		if !ok {
			return nil, MissingFieldError{Source: row.Source, Field: DataColumn}
		}
		response, err := ExpectedResponseFor(row)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, TestVector{
			Name:     vectorName(data),
			Request:  servicedef.QueryBody(label, data),
			Status:   servicedef.StatusSuccess,
			Response: response,
		})
	}
	return vectors, nil
}

// LoadVectors reads a fixture file and converts it with BuildVectors.
func LoadVectors(path, label string) ([]TestVector, error) {
	rows, err := LoadRows(path)
	if err != nil {
		return nil, err
	}
	return BuildVectors(rows, label)
}

func vectorName(data string) string {
	if data == "" {
		return "(empty)"
	}
	return data
}
