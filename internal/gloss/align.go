package gloss

// Align transposes the per-line token sequences into columns. The result
// has max(len(rows[i])) columns; column i holds row j's token at index i,
// or an empty string where row j is shorter. Row order within a column
// matches the original line order; no row is dropped for being short.
func Align(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cols := make([][]string, width)
	for i := range cols {
		col := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				col[j] = row[i]
			}
		}
		cols[i] = col
	}
	return cols
}
