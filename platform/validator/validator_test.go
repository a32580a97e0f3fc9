package validator

import "testing"

type sampleRequest struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"omitempty,phone"`
	Consent bool   `validate:"eq=true"`
}

func TestStructCollectsAllViolations(t *testing.T) {
	val := New()

	err := val.Struct(sampleRequest{
		Name:    "a",
		Email:   "not-an-email",
		Phone:   "call me",
		Consent: false,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := Fields(err)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(fields), fields)
	}

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}

	for _, want := range []string{"name", "email", "phone", "consent"} {
		if _, ok := byField[want]; !ok {
			t.Errorf("missing field error for %q, got %v", want, byField)
		}
	}
}

func TestStructAcceptsValidInput(t *testing.T) {
	val := New()

	err := val.Struct(sampleRequest{
		Name:    "Ana Silva",
		Email:   "ana@example.com",
		Phone:   "+55 (11) 99999-0000",
		Consent: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPhoneTag(t *testing.T) {
	val := New()

	cases := []struct {
		input string
		ok    bool
	}{
		{"+55 11 99999-0000", true},
		{"(11) 3333.4444", true},
		{"11999990000", true},
		{"onze nove nove", false},
		{"123;DROP TABLE", false},
	}

	for _, tc := range cases {
		err := val.Var(tc.input, "phone")
		if (err == nil) != tc.ok {
			t.Errorf("phone %q: got err=%v, want ok=%v", tc.input, err, tc.ok)
		}
	}
}

func TestFieldsNilError(t *testing.T) {
	if got := Fields(nil); got != nil {
		t.Errorf("Fields(nil) = %v, want nil", got)
	}
}
