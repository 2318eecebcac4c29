package configtests

func DoUnexpectedBehaviourTests(t *T) {
	for _, v := range t.Fixtures().UnexpectedBehaviour() {
		v := v
		t.Run(v.Name, func(t *T) {
			resp := t.RequireVector(v)
			t.Debug("%57s => %-11d| %s", v.Request, resp.StatusCode, string(resp.Body))
		})
	}
}
