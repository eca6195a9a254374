package gloss

import "testing"

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want [][]string
	}{
		{
			name: "no rows",
			rows: nil,
			want: nil,
		},
		{
			name: "all rows empty",
			rows: [][]string{{}, {}},
			want: nil,
		},
		{
			name: "square",
			rows: [][]string{{"a", "b"}, {"c", "d"}},
			want: [][]string{{"a", "c"}, {"b", "d"}},
		},
		{
			name: "ragged zero-fill",
			rows: [][]string{{"a", "b", "c"}, {"x"}},
			want: [][]string{{"a", "x"}, {"b", ""}, {"c", ""}},
		},
		{
			name: "short row first",
			rows: [][]string{{"x"}, {"a", "b"}},
			want: [][]string{{"x", "a"}, {"", "b"}},
		},
	}

	for _, tt := range tests {
		got := Align(tt.rows)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d columns, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if len(got[i]) != len(tt.want[i]) {
				t.Errorf("%s: column %d has %d cells, want %d", tt.name, i, len(got[i]), len(tt.want[i]))
				continue
			}
			for j := range got[i] {
				if got[i][j] != tt.want[i][j] {
					t.Errorf("%s: col %d row %d = %q, want %q", tt.name, i, j, got[i][j], tt.want[i][j])
				}
			}
		}
	}
}

func TestAlignColumnCount(t *testing.T) {
	// Column count is always the longest row's length.
	rows := [][]string{
		make([]string, 2),
		make([]string, 7),
		make([]string, 0),
		make([]string, 5),
	}
	if got := Align(rows); len(got) != 7 {
		t.Errorf("Align: %d columns, want 7", len(got))
	}
}
