package textutil

import "testing"

func TestHash(t *testing.T) {
	if Hash("a") == Hash("b") {
		t.Error("distinct inputs must hash differently")
	}
	if Hash("stable") != Hash("stable") {
		t.Error("Hash must be deterministic")
	}
	if len(Hash("")) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(Hash("")))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 7, "this is..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
