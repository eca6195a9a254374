package gloss

import (
	"strconv"
	"strings"
)

// RenderColumns turns aligned columns into the aligned-block node: one
// sub-container per column, one paragraph per analysis line inside it.
// offset is the absolute index of the first analysis line in the full input,
// so the paragraphs' positional line classes match the source lines. tag is
// the element name used for the container and its per-column children.
// Every column is emitted, even when entirely blank.
func RenderColumns(cols [][]string, offset int, tag string, opts *Options) *Node {
	container := Element(tag, opts.Classes[RoleWords])

	for _, col := range cols {
		word := Element(tag, opts.Classes[RoleWord])
		if !opts.Spacing && allBlank(col) {
			word.AddClass(opts.Classes[RoleSpacer])
		}

		for row, cell := range col {
			p := Element("p",
				opts.Classes[RoleLine],
				opts.Classes[RoleLinePrefix]+strconv.Itoa(offset+row))

			if opts.AutoTag && strings.TrimSpace(cell) != "" {
				for _, seg := range TagAbbreviations(cell, opts.Abbreviations) {
					if !seg.Abbrev {
						p.Append(Text(seg.Text))
						continue
					}
					abbr := Element("abbr", opts.Classes[RoleAbbreviation])
					abbr.Text = seg.Text
					if seg.Description != "" {
						abbr.SetAttr("title", seg.Description)
					}
					p.Append(abbr)
				}
			} else {
				p.Text = cell
			}
			word.Append(p)
		}
		container.Append(word)
	}
	return container
}

func allBlank(col []string) bool {
	for _, cell := range col {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
