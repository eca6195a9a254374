package gloss

// Segment is one piece of a cell's text after abbreviation scanning:
// either a literal run or a recognized abbreviation with its expansion
// (empty Description when the table has no entry for it).
type Segment struct {
	Text        string
	Abbrev      bool
	Description string
}

// TagAbbreviations scans text left to right, non-overlapping, for gloss
// abbreviations. Two forms match:
//
//   - a single digit 0-4 that starts at a word boundary and is followed by
//     an uppercase letter or a trailing word boundary (person markers: in
//     "3SG" the "3" and "SG" match adjacently);
//   - an uppercase ASCII run ending at a word boundary, where a leading "N"
//     is read as the "non-" negation prefix when the bare run is not itself
//     a known code.
//
// Everything between matches is returned as literal segments.
func TagAbbreviations(text string, table map[string]string) []Segment {
	var segs []Segment
	lit := 0
	i := 0

	flush := func(end int) {
		if end > lit {
			segs = append(segs, Segment{Text: text[lit:end]})
		}
	}

	for i < len(text) {
		c := text[i]

		if c >= '0' && c <= '4' && (i == 0 || !isWordByte(text[i-1])) {
			if i+1 >= len(text) || isUpperByte(text[i+1]) || !isWordByte(text[i+1]) {
				flush(i)
				key := text[i : i+1]
				segs = append(segs, Segment{Text: key, Abbrev: true, Description: table[key]})
				i++
				lit = i
				continue
			}
		}

		if isUpperByte(c) {
			j := i + 1
			for j < len(text) && isUpperByte(text[j]) {
				j++
			}
			if j >= len(text) || !isWordByte(text[j]) {
				flush(i)
				key := text[i:j]
				segs = append(segs, Segment{Text: key, Abbrev: true, Description: describe(key, table)})
				i = j
				lit = i
				continue
			}
			// Run ends mid-word ("PLx"): no boundary, leave it literal.
			i = j
			continue
		}

		i++
	}

	flush(len(text))
	return segs
}

// describe resolves an uppercase-run key against the table. Order matters:
// a verbatim entry always wins (so codes that legitimately start with N,
// like NEG or NOM, are never misread as negations); only then is a leading
// N stripped and "non-" prefixed to the base code's description.
func describe(key string, table map[string]string) string {
	if desc, ok := table[key]; ok {
		return desc
	}
	if len(key) > 1 && key[0] == 'N' {
		if desc, ok := table[key[1:]]; ok {
			return "non-" + desc
		}
	}
	return ""
}

func isUpperByte(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
