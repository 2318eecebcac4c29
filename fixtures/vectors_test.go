package fixtures

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestCapitalizeFirst(t *testing.T) {
	for input, expected := range map[string]string{
		"host":        "Host",
		"Host":        "Host",
		"virtualhost": "Virtualhost",
		"data":        "Data",
		"x":           "X",
		"":            "",
		"éclair":      "Éclair",
		"1st":         "1st",
	} {
		assert.Equal(t, expected, CapitalizeFirst(input), "input %q", input)
	}
}

func TestBuildVectorsFromFile(t *testing.T) {
	vectors, err := LoadVectors("testdata/develop.csv", servicedef.TypeDevelopMrRobot)
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	v := vectors[0]
	assert.Equal(t, "YHySKtEhYm", v.Name)
	assert.Equal(t, servicedef.StatusSuccess, v.Status)
	assert.JSONEq(t, `{"Type":"Develop.mr_robot","Data":"YHySKtEhYm"}`, string(v.Request.JSON()))
	assert.JSONEq(t, DevelopExampleResponse().JSONString(), v.Response.JSONString())

	assert.Equal(t, ldvalue.Int(1), vectors[1].Response.GetByKey("Port"))
	assert.Equal(t, "aBcDeFgHiJ", vectors[1].Response.GetByKey("Data").StringValue())
}

func TestBuildVectorsKeepsFileOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("data|port\n")
	for i := 0; i < 20; i++ {
		b.WriteString("token" + strconv.Itoa(i) + "|" + strconv.Itoa(i) + "\n")
	}
	rows, err := ReadRows(strings.NewReader(b.String()), "inline")
	require.NoError(t, err)
	vectors, err := BuildVectors(rows, servicedef.TypeTestVPN)
	require.NoError(t, err)
	for i, v := range vectors {
		assert.Equal(t, "token"+strconv.Itoa(i), v.Name)
	}
}

func TestBuildVectorsIsIdempotent(t *testing.T) {
	first, err := LoadVectors("testdata/develop.csv", servicedef.TypeDevelopMrRobot)
	require.NoError(t, err)
	second, err := LoadVectors("testdata/develop.csv", servicedef.TypeDevelopMrRobot)
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, string(first[i].Request.JSON()), string(second[i].Request.JSON()))
		assert.True(t, first[i].Response.Equal(second[i].Response))
	}
}

func TestBuildVectorsBadPort(t *testing.T) {
	_, err := LoadVectors("testdata/bad_port.csv", servicedef.TypeDevelopMrRobot)
	var e FixtureFormatError
	require.True(t, errors.As(err, &e), "error was %v", err)
	assert.Equal(t, 2, e.Line)
	assert.Contains(t, e.Error(), `"eighty"`)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestBuildVectorsWithoutPort(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("data|host\nabc|h\n"), "inline")
	require.NoError(t, err)
	vectors, err := BuildVectors(rows, servicedef.TypeTestVPN)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Data":"abc","Host":"h"}`, vectors[0].Response.JSONString())
}

func TestBuildVectorsRejectsCollidingColumns(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("data|host|Host\nabc|a|b\n"), "inline")
	require.NoError(t, err)
	_, err = BuildVectors(rows, servicedef.TypeTestVPN)
	assert.IsType(t, FixtureFormatError{}, err)
}

func TestBuildVectorsRequiresDataInEveryRow(t *testing.T) {
	rows := []Row{{Source: "inline", Line: 2, Fields: []Field{{"host", "h"}}}}
	_, err := BuildVectors(rows, servicedef.TypeTestVPN)
	assert.Equal(t, MissingFieldError{Source: "inline", Field: DataColumn}, err)
}

func TestEmptyDataGetsReadableName(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("data|host\n|h\n"), "inline")
	require.NoError(t, err)
	vectors, err := BuildVectors(rows, servicedef.TypeTestVPN)
	require.NoError(t, err)
	assert.Equal(t, "(empty)", vectors[0].Name)
}
