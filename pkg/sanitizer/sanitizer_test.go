package sanitizer

import "testing"

func TestSanitizeHotelName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"River View Retreat", "River View Retreat"},
		{"  River   View\tRetreat  ", "River View Retreat"},
		{"River\u200bView", "RiverView"},
		{"\n\n", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeHotelName(tt.input); got != tt.expected {
			t.Errorf("SanitizeHotelName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeSearchQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"River", "river"},
		{"  RIVER  view ", "river view"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := SanitizeSearchQuery(tt.input); got != tt.expected {
			t.Errorf("SanitizeSearchQuery(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeReference(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0123456789abcdef0123456789abcdef", "0123456789abcdef0123456789abcdef"},
		{"0123456789ABCDEF0123456789ABCDEF", "0123456789abcdef0123456789abcdef"},
		{"01234567-89ab-cdef-0123-456789abcdef", "0123456789abcdef0123456789abcdef"},
		{"{01234567-89ab-cdef-0123-456789abcdef}", "0123456789abcdef0123456789abcdef"},
		{"  abc  ", "abc"},
	}

	for _, tt := range tests {
		if got := SanitizeReference(tt.input); got != tt.expected {
			t.Errorf("SanitizeReference(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPipeline_Apply(t *testing.T) {
	p := Pipeline{trim, lower}
	if got := p.Apply("  MiXeD "); got != "mixed" {
		t.Errorf("Apply() = %q, want %q", got, "mixed")
	}
	if got := (Pipeline{}).Apply("same"); got != "same" {
		t.Errorf("empty pipeline must be identity, got %q", got)
	}
}
