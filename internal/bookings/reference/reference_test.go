package reference

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewReference_Format(t *testing.T) {
	g := NewGenerator()

	ref, err := g.NewReference()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ref) != Length || !Valid(ref) {
		t.Errorf("unexpected reference %q", ref)
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		t.Fatalf("reference should parse as a UUID: %v", err)
	}
	if id.Version() != 4 {
		t.Errorf("expected a version 4 UUID, got %d", id.Version())
	}
}

func TestNewReference_Unique(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		ref, err := g.NewReference()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %s", ref)
		}
		seen[ref] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"0123456789ABCDEF0123456789ABCDEF", false},
		{"01234567-89ab-cdef-0123-456789abcdef", false},
		{"0123456789abcdef", false},
		{"", false},
		{"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.ref); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}
