package gloss

import "regexp"

// Tokenize splits one analysis line into ordered tokens using the given
// grammar. A token is either the interior of a brace group (kept as one
// unit, embedded spaces and all) or a maximal non-whitespace run, whichever
// the pattern matches first at each position. Empty matches are discarded,
// so a blank or whitespace-only line yields no tokens.
func Tokenize(line string, pattern *regexp.Regexp) []string {
	if pattern == nil {
		pattern = DefaultTokenPattern
	}

	var tokens []string
	for _, loc := range pattern.FindAllStringSubmatchIndex(line, -1) {
		tok := line[loc[0]:loc[1]]
		// A matched capture group carries the token text (the brace-group
		// interior); the full match includes the delimiters.
		if len(loc) >= 4 && loc[2] >= 0 {
			tok = line[loc[2]:loc[3]]
		}
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
