package postgres

import "testing"

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "Austin", want: "%Austin%"},
		{name: "empty term", term: "", want: "%%"},
		{name: "percent is escaped", term: "100%", want: `%100\%%`},
		{name: "underscore is escaped", term: "a_b", want: `%a\_b%`},
		{name: "backslash is escaped", term: `a\b`, want: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likePattern(tt.term); got != tt.want {
				t.Errorf("likePattern(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}
