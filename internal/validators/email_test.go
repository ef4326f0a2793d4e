package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"user.name+tag@example.co.uk", true},
		{"", false},
		{"no-at-sign", false},
		{"@missing-local.com", false},
		{"trailing@", false},
		{"no-dot-domain@localhost", false},
		{"spaces in@local.com", false},
	}

	for _, tc := range cases {
		if got := IsEmailValid(tc.email); got != tc.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
