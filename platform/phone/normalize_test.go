package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"(11) 99999-0000", "+5511999990000"},
		{"+55 11 99999-0000", "+5511999990000"},
		{"  11 3333-4444  ", "+551133334444"},
		{"", ""},
		{"not a phone", "not a phone"},
	}

	for _, tc := range cases {
		if got := NormalizeE164(tc.input); got != tc.want {
			t.Errorf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
