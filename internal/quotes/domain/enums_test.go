package domain

import "testing"

func TestEnumMembership(t *testing.T) {
	cases := []struct {
		name  string
		check func(string) bool
		yes   []string
		no    []string
	}{
		{
			name:  "project type",
			check: IsKnownProjectType,
			yes:   []string{"E-commerce", "Sistema web", "Outro"},
			no:    []string{"e-commerce", "Blockchain", ""},
		},
		{
			name:  "project category",
			check: IsKnownProjectCategory,
			yes:   []string{"Novo desenvolvimento", "Consultoria"},
			no:    []string{"novo desenvolvimento", ""},
		},
		{
			name:  "timeline",
			check: IsKnownTimeline,
			yes:   []string{"1-2 meses", "Flexível"},
			no:    []string{"2 semanas", ""},
		},
		{
			name:  "budget",
			check: IsKnownBudget,
			yes:   []string{"R$ 15.000 - R$ 30.000", "A definir"},
			no:    []string{"R$ 100", ""},
		},
		{
			name:  "source",
			check: IsKnownSource,
			yes:   []string{"website", "referral", "social_media", "direct"},
			no:    []string{"Website", "email", ""},
		},
		{
			name:  "urgency",
			check: IsKnownUrgency,
			yes:   []string{"low", "medium", "high"},
			no:    []string{"urgent", ""},
		},
	}

	for _, tc := range cases {
		for _, v := range tc.yes {
			if !tc.check(v) {
				t.Errorf("%s: %q should be known", tc.name, v)
			}
		}
		for _, v := range tc.no {
			if tc.check(v) {
				t.Errorf("%s: %q should not be known", tc.name, v)
			}
		}
	}
}
