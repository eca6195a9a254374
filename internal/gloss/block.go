// Package gloss renders interlinear gloss blocks: an optional
// original-language line, one or more morpheme analysis lines aligned
// word-by-word into columns, and an optional free-translation line. The
// output is a renderer-agnostic node tree; see HTML for serialization.
//
// Rendering is a pure function of the input text and an Options value, so
// concurrent calls need no synchronization.
package gloss

import (
	"strconv"
	"strings"
)

// Render transforms one gloss block into its ordered output nodes.
// Line roles are assigned purely by position: the first line is the
// original when FirstLineOrig is set, the last is the free translation
// when LastLineFree is set and the block has at least two lines, and every
// other line is an analysis line. Analysis lines are tokenized, aligned
// into columns and tagged; the aligned block is placed before the first
// analysis line's own (hidden) verbatim paragraph. When no analysis line
// produces any token, every line is emitted as a plain verbatim paragraph
// instead. Empty input yields no nodes. A nil opts uses DefaultOptions.
func Render(source string, opts *Options) []*Node {
	if opts == nil {
		opts = DefaultOptions()
	}

	lines := splitLines(source)
	if len(lines) == 0 {
		return nil
	}

	origIdx := -1
	if opts.FirstLineOrig {
		origIdx = 0
	}
	freeIdx := -1
	if opts.LastLineFree && len(lines) >= 2 {
		freeIdx = len(lines) - 1
	}

	analysisStart := 0
	if origIdx == 0 {
		analysisStart = 1
	}
	analysisEnd := len(lines)
	if freeIdx >= 0 {
		analysisEnd = freeIdx
	}

	var rows [][]string
	hasTokens := false
	for i := analysisStart; i < analysisEnd; i++ {
		toks := Tokenize(lines[i], opts.TokenPattern)
		if len(toks) > 0 {
			hasTokens = true
		}
		rows = append(rows, toks)
	}

	para := func(i int, role Role, text string) *Node {
		p := Element("p",
			opts.Classes[RoleLine],
			opts.Classes[RoleLinePrefix]+strconv.Itoa(i))
		if cls := opts.Classes[role]; cls != "" {
			p.AddClass(cls)
		}
		p.Text = text
		return p
	}

	out := make([]*Node, 0, len(lines)+1)

	// No analysis content at all: one verbatim paragraph per line.
	if !hasTokens {
		for i, line := range lines {
			role := RoleNoAlign
			switch i {
			case origIdx:
				role = RoleOriginal
			case freeIdx:
				role = RoleFreeTranslation
			}
			out = append(out, para(i, role, line))
		}
		return out
	}

	block := RenderColumns(Align(rows), analysisStart, "div", opts)

	for i, line := range lines {
		switch i {
		case origIdx:
			out = append(out, para(i, RoleOriginal, line))
		case freeIdx:
			out = append(out, para(i, RoleFreeTranslation, line))
		default:
			if i == analysisStart {
				out = append(out, block)
			}
			// Raw analysis text stays in the document, hidden, so it
			// remains searchable and copyable.
			out = append(out, para(i, RoleHidden, line))
		}
	}
	return out
}

// RenderHTML renders a block and wraps it in the outer glossed container.
// Empty input yields an empty string.
func RenderHTML(source string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	nodes := Render(source, opts)
	if len(nodes) == 0 {
		return ""
	}

	wrapper := Element("div", opts.Classes[RoleGlossed])
	if !opts.Spacing {
		wrapper.AddClass(opts.Classes[RoleNoSpace])
	}
	wrapper.Append(nodes...)

	var sb strings.Builder
	wrapper.WriteHTML(&sb)
	return sb.String()
}

// splitLines splits the raw block into lines, trimming line terminators
// only: interior whitespace and interior blank lines are preserved, while
// trailing terminators never create a phantom last line (which would
// otherwise soak up the free-translation role).
func splitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.TrimRight(source, "\n")
	if source == "" {
		return nil
	}
	return strings.Split(source, "\n")
}
