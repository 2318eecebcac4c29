package configtests

import (
	"github.com/launchdarkly/config-service-contract-tests/fixtures"
	"github.com/launchdarkly/config-service-contract-tests/servicedef"
)

func DoTechnicalTaskTests(t *T) {
	t.Run("response status code", func(t *T) {
		t.RequireStatus(servicedef.QueryBody(servicedef.TypeDevelopMrRobot, fixtures.DevelopExampleData),
			servicedef.StatusSuccess)
	})

	t.Run("response data", func(t *T) {
		for _, v := range t.Fixtures().TechnicalExamples() {
			v := v
			t.Run(v.Name, func(t *T) {
				t.RequireVector(v)
			})
		}
	})
}
