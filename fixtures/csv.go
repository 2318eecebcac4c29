package fixtures

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// Delimiter separates the columns of a fixture file.
const Delimiter = '|'

// DataColumn is the column whose value is sent as the request's Data property.
const DataColumn = "data"

// Field is one cell of a fixture row, keyed by its column name.
type Field struct {
	Name  string
	Value string
}

// Row is one line of a fixture file, with column names and values already trimmed.
// Fields are kept in column order.
type Row struct {
	Source string
	Line   int
	Fields []Field
}

// Get returns the value of the named column.
func (r Row) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// LoadRows reads all rows from a fixture file.
func LoadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return ReadRows(f, path)
}

// ReadRows parses pipe-delimited fixture data that starts with a header row. The source
// name is only used in error messages.
func ReadRows(r io.Reader, source string) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter

	header, err := reader.Read()
	if err == io.EOF {
		return nil, MissingFieldError{Source: source, Field: DataColumn}
	}
	if err != nil {
		return nil, readError(source, err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
		if names[i] == "" {
			return nil, FixtureFormatError{Source: source, Line: 1, Reason: "empty column name"}
		}
	}
	if !containsName(names, DataColumn) {
		return nil, MissingFieldError{Source: source, Field: DataColumn}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, readError(source, err)
		}
		line, _ := reader.FieldPos(0)
		row := Row{Source: source, Line: line, Fields: make([]Field, len(record))}
		for i, value := range record {
			row.Fields[i] = Field{Name: names[i], Value: strings.TrimSpace(value)}
		}
		rows = append(rows, row)
	}
}

func readError(source string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return FixtureFormatError{Source: source, Line: parseErr.Line, Reason: "malformed row", Err: parseErr.Err}
	}
	return IOError{Path: source, Err: err}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
