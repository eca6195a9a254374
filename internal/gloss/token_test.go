package gloss

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t  ", nil},
		{"dog", []string{"dog"}},
		{"DET dog.NOM see.3SG", []string{"DET", "dog.NOM", "see.3SG"}},
		{"  leading   and   interior   ", []string{"leading", "and", "interior"}},
		{"{a b} c", []string{"a b", "c"}},
		{"{the big dog} sees {the cat}", []string{"the big dog", "sees", "the cat"}},
		{"{} x", []string{"x"}},
		{"{one, two; three} rest", []string{"one, two; three", "rest"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in, nil)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeUnbalancedBraces(t *testing.T) {
	// Malformed groups degrade to whatever the pattern matches, never fail.
	got := Tokenize("{a b c", nil)
	want := []string{"{a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize unbalanced = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Tokenize unbalanced[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
