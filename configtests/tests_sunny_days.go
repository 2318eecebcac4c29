package configtests

func DoSunnyDayTests(t *T) {
	for _, category := range t.Fixtures().SunnyDays() {
		category := category
		t.Run(category.Label, func(t *T) {
			if len(category.Vectors) == 0 {
				t.SkipWithReason("fixture file has no rows")
			}
			for _, v := range category.Vectors {
				v := v
				t.Run(v.Name, func(t *T) {
					t.RequireVector(v)
				})
			}
		})
	}
}
