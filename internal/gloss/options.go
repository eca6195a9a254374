package gloss

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Role identifies a semantic slot in the class map. Callers style the
// output by mapping roles to their own CSS class names.
type Role string

const (
	RoleGlossed         Role = "glossed"
	RoleNoSpace         Role = "no_space"
	RoleWords           Role = "words"
	RoleWord            Role = "word"
	RoleSpacer          Role = "spacer"
	RoleAbbreviation    Role = "abbreviation"
	RoleLine            Role = "line"
	RoleLinePrefix      Role = "line_number_prefix"
	RoleOriginal        Role = "original"
	RoleFreeTranslation Role = "free_translation"
	RoleNoAlign         Role = "no_align"
	RoleHidden          Role = "hidden"
)

// ClassMap maps semantic roles to CSS class names. The RoleLinePrefix entry
// is a prefix: the line's absolute index is appended to it.
type ClassMap map[Role]string

// DefaultTokenPattern matches either the contents of a brace group (one
// aligned cell even when it contains spaces) or a maximal run of
// non-whitespace characters. The first alternative wins at each position.
var DefaultTokenPattern = regexp.MustCompile(`\{(.*?)\}|\S+`)

// Options configures one gloss rendering. It is built once per invocation
// and never mutated afterward; Apply returns a fresh merged copy.
type Options struct {
	// Selector is the caller's element selector. The core does not use it;
	// it is carried for the embedding layer.
	Selector string

	// FirstLineOrig marks the first input line as the original-language line.
	FirstLineOrig bool
	// LastLineFree marks the last input line as the free translation
	// (only when the block has at least two lines).
	LastLineFree bool
	// Spacing keeps all-blank columns visible. When false, all-blank columns
	// are tagged with the spacer class so stylesheets can collapse them.
	Spacing bool
	// AutoTag enables abbreviation tagging inside aligned cells.
	AutoTag bool

	// TokenPattern is the tokenizer grammar for analysis lines.
	TokenPattern *regexp.Regexp

	Classes       ClassMap
	Abbreviations map[string]string
}

// DefaultOptions returns the built-in configuration. The returned maps are
// fresh copies, safe for the caller to extend.
func DefaultOptions() *Options {
	return &Options{
		Selector:      ".gloss",
		FirstLineOrig: false,
		LastLineFree:  true,
		Spacing:       true,
		AutoTag:       true,
		TokenPattern:  DefaultTokenPattern,
		Classes: ClassMap{
			RoleGlossed:         "gloss",
			RoleNoSpace:         "gloss--no-space",
			RoleWords:           "gloss__words",
			RoleWord:            "gloss__word",
			RoleSpacer:          "gloss__word--spacer",
			RoleAbbreviation:    "gloss__abbr",
			RoleLine:            "gloss__line",
			RoleLinePrefix:      "gloss__line--",
			RoleOriginal:        "gloss__line--original",
			RoleFreeTranslation: "gloss__line--free",
			RoleNoAlign:         "gloss__line--no-align",
			RoleHidden:          "gloss__line--hidden",
		},
		Abbreviations: defaultAbbreviations(),
	}
}

// Overrides holds a caller's partial configuration. Nil fields keep the
// base value; map entries are merged per key, override winning.
type Overrides struct {
	Selector      *string
	FirstLineOrig *bool
	LastLineFree  *bool
	Spacing       *bool
	AutoTag       *bool
	TokenPattern  *regexp.Regexp
	Classes       ClassMap
	Abbreviations map[string]string
}

// Apply merges ov over o and returns the merged copy. o is not modified.
func (o *Options) Apply(ov Overrides) *Options {
	merged := *o
	merged.Classes = make(ClassMap, len(o.Classes)+len(ov.Classes))
	for k, v := range o.Classes {
		merged.Classes[k] = v
	}
	merged.Abbreviations = make(map[string]string, len(o.Abbreviations)+len(ov.Abbreviations))
	for k, v := range o.Abbreviations {
		merged.Abbreviations[k] = v
	}

	if ov.Selector != nil {
		merged.Selector = *ov.Selector
	}
	if ov.FirstLineOrig != nil {
		merged.FirstLineOrig = *ov.FirstLineOrig
	}
	if ov.LastLineFree != nil {
		merged.LastLineFree = *ov.LastLineFree
	}
	if ov.Spacing != nil {
		merged.Spacing = *ov.Spacing
	}
	if ov.AutoTag != nil {
		merged.AutoTag = *ov.AutoTag
	}
	if ov.TokenPattern != nil {
		merged.TokenPattern = ov.TokenPattern
	}
	for k, v := range ov.Classes {
		merged.Classes[k] = v
	}
	for k, v := range ov.Abbreviations {
		merged.Abbreviations[k] = v
	}
	return &merged
}

// Fingerprint returns a stable textual digest of every option that affects
// rendering, suitable for cache keying. Two Options values with the same
// fingerprint produce identical output for the same input.
func (o *Options) Fingerprint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "orig=%t;free=%t;spacing=%t;autotag=%t;", o.FirstLineOrig, o.LastLineFree, o.Spacing, o.AutoTag)
	if o.TokenPattern != nil {
		fmt.Fprintf(&sb, "pattern=%s;", o.TokenPattern.String())
	}

	roles := make([]string, 0, len(o.Classes))
	for r := range o.Classes {
		roles = append(roles, string(r))
	}
	sort.Strings(roles)
	for _, r := range roles {
		fmt.Fprintf(&sb, "c:%s=%s;", r, o.Classes[Role(r)])
	}

	codes := make([]string, 0, len(o.Abbreviations))
	for c := range o.Abbreviations {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	for _, c := range codes {
		fmt.Fprintf(&sb, "a:%s=%s;", c, o.Abbreviations[c])
	}
	return sb.String()
}
