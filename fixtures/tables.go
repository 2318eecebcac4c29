package fixtures

import (
	"github.com/launchdarkly/config-service-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DevelopExampleData and VPNExampleData are the lookup tokens used in the technical task.
const (
	DevelopExampleData = "YHySKtEhYm"
	VPNExampleData     = "cHAIJmCYyn"
)

// DevelopExampleResponse is the record for Develop.mr_robot/YHySKtEhYm.
func DevelopExampleResponse() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("Data", ldvalue.String(DevelopExampleData)).
		Set("Host", ldvalue.String("WKyh")).
		Set("Port", ldvalue.Int(46836)).
		Set("Database", ldvalue.String("vkNMTN")).
		Set("User", ldvalue.String("zmPBh")).
		Set("Password", ldvalue.String("teBuZLhZ")).
		Set("Schema", ldvalue.String("YUEZgVvd")).
		Build()
}

// VPNExampleResponse is the record for Test.vpn/cHAIJmCYyn.
func VPNExampleResponse() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("Data", ldvalue.String(VPNExampleData)).
		Set("Host", ldvalue.String("fhhp")).
		Set("Port", ldvalue.Int(12210)).
		Set("Virtualhost", ldvalue.String("HkJaQ")).
		Set("User", ldvalue.String("fPMUz")).
		Set("Password", ldvalue.String("RYEeVKFn")).
		Build()
}

func technicalExamples() []TestVector {
	return []TestVector{
		{
			Name:     servicedef.TypeDevelopMrRobot,
			Request:  servicedef.QueryBody(servicedef.TypeDevelopMrRobot, DevelopExampleData),
			Status:   servicedef.StatusSuccess,
			Response: DevelopExampleResponse(),
		},
		{
			Name:     servicedef.TypeTestVPN,
			Request:  servicedef.QueryBody(servicedef.TypeTestVPN, VPNExampleData),
			Status:   servicedef.StatusSuccess,
			Response: VPNExampleResponse(),
		},
	}
}

func object(props ...string) ldvalue.Value {
	b := ldvalue.ObjectBuild()
	for i := 0; i+1 < len(props); i += 2 {
		b.Set(props[i], ldvalue.String(props[i+1]))
	}
	return b.Build()
}

func unexpectedBehaviourTable() []TestVector {
	badInput := servicedef.ErrorResponse(servicedef.ErrorBadInput)
	noModel := servicedef.ErrorResponse(servicedef.ErrorNoModel)
	notFound := servicedef.ErrorResponse(servicedef.ErrorRecordMissing)

	entries := []struct {
		request  servicedef.RequestBody
		status   int
		response ldvalue.Value
	}{
		{servicedef.QueryBody(servicedef.TypeDevelopMrRobot, DevelopExampleData), servicedef.StatusSuccess, DevelopExampleResponse()},
		{servicedef.NoBody(), servicedef.StatusBadRequest, badInput},
		{servicedef.RawBody(ldvalue.String("")), servicedef.StatusBadRequest, badInput},
		{servicedef.RawBody(object("Type1", "", "Data", "")), servicedef.StatusBadRequest, noModel},
		{servicedef.RawBody(object("Type", "", "Data1", "")), servicedef.StatusBadRequest, noModel},
		{servicedef.QueryBody("", ""), servicedef.StatusBadRequest, noModel},
		{servicedef.QueryBody("", DevelopExampleData), servicedef.StatusBadRequest, noModel},
		{servicedef.QueryBody(servicedef.TypeDevelopMrRobot, ""), servicedef.StatusBadRequest, notFound},
		{servicedef.QueryBody(servicedef.TypeDevelopMrRobot+"a", DevelopExampleData), servicedef.StatusBadRequest, noModel},
		{servicedef.QueryBody(servicedef.TypeDevelopMrRobot, DevelopExampleData+"a"), servicedef.StatusBadRequest, notFound},
		{
			servicedef.RawBody(ldvalue.ObjectBuild().
				Set("Type", ldvalue.Int(123)).
				Set("Data", ldvalue.String(DevelopExampleData)).
				Build()),
			servicedef.StatusBadRequest, badInput,
		},
		{
			servicedef.RawBody(ldvalue.ObjectBuild().
				Set("Type", ldvalue.String(servicedef.TypeDevelopMrRobot)).
				Set("Data", ldvalue.Int(123)).
				Build()),
			servicedef.StatusBadRequest, badInput,
		},
	}

	vectors := make([]TestVector, 0, len(entries))
	for _, e := range entries {
		vectors = append(vectors, TestVector{
			Name:     e.request.String(),
			Request:  e.request,
			Status:   e.status,
			Response: e.response,
		})
	}
	return vectors
}
