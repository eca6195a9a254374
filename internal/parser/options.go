package parser

import (
	"regexp"
	"strings"

	"interlinear/internal/gloss"

	"github.com/rs/zerolog/log"
)

// BuildOverrides converts a block's raw key/value options into a
// gloss.Overrides. Recognized keys: first_line_orig, last_line_free,
// spacing, auto_tag (booleans coerced from the literals "true"/"false"),
// selector, token_pattern, plus namespaced entries: "abbrev.<CODE>" extends
// the abbreviation table and "class.<role>" overrides a class name. Unknown
// keys and malformed values are logged and skipped, never fatal.
func BuildOverrides(raw map[string]string) gloss.Overrides {
	var ov gloss.Overrides

	for key, value := range raw {
		switch {
		case key == "selector":
			v := value
			ov.Selector = &v

		case key == "first_line_orig":
			ov.FirstLineOrig = parseBool(key, value)
		case key == "last_line_free":
			ov.LastLineFree = parseBool(key, value)
		case key == "spacing":
			ov.Spacing = parseBool(key, value)
		case key == "auto_tag":
			ov.AutoTag = parseBool(key, value)

		case key == "token_pattern":
			re, err := regexp.Compile(value)
			if err != nil {
				log.Warn().Err(err).Str("pattern", value).Msg("Invalid token pattern, keeping default")
				continue
			}
			ov.TokenPattern = re

		case strings.HasPrefix(key, "abbrev."):
			if ov.Abbreviations == nil {
				ov.Abbreviations = make(map[string]string)
			}
			ov.Abbreviations[strings.TrimPrefix(key, "abbrev.")] = value

		case strings.HasPrefix(key, "class."):
			if ov.Classes == nil {
				ov.Classes = make(gloss.ClassMap)
			}
			ov.Classes[gloss.Role(strings.TrimPrefix(key, "class."))] = value

		default:
			log.Warn().Str("key", key).Msg("Unknown gloss option, ignoring")
		}
	}
	return ov
}

func parseBool(key, value string) *bool {
	switch value {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		log.Warn().Str("key", key).Str("value", value).Msg("Option is not a boolean literal, ignoring")
		return nil
	}
}

// parseOptionList splits a comma-separated "key: value" option string, the
// form used on fence info lines and %-directives.
func parseOptionList(s string, into map[string]string) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.Index(part, ":")
		if idx < 0 {
			log.Warn().Str("option", part).Msg("Malformed gloss option, expected key: value")
			continue
		}
		key := strings.TrimSpace(part[:idx])
		value := strings.TrimSpace(part[idx+1:])
		if key == "" {
			continue
		}
		into[key] = value
	}
}
