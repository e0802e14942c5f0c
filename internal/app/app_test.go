package app

import "testing"

func TestExtractOriginHost(t *testing.T) {
	cases := []struct {
		origin string
		want   string
	}{
		{"https://signage.example.edu", "signage.example.edu"},
		{"http://localhost:3000", "localhost:3000"},
		{"not-a-url", "not-a-url"},
	}
	for _, c := range cases {
		if got := extractOriginHost(c.origin); got != c.want {
			t.Errorf("extractOriginHost(%q) = %q, want %q", c.origin, got, c.want)
		}
	}
}

func TestMatchOriginPattern(t *testing.T) {
	cases := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"signage.example.edu", "signage.example.edu", true},
		{"signage.example.edu", "evil.example.edu", false},
		{"*.example.edu", "wall.example.edu", true},
		{"*.example.edu", "example.org", false},
		{"localhost:*", "localhost:3000", true},
		{"localhost:*", "remotehost:3000", false},
	}
	for _, c := range cases {
		if got := matchOriginPattern(c.pattern, c.host); got != c.want {
			t.Errorf("matchOriginPattern(%q, %q) = %v, want %v", c.pattern, c.host, got, c.want)
		}
	}
}
