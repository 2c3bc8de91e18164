// Package specfilter selects components by name when reporting run
// results.
package specfilter

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern represents a compiled filter condition supporting substring and
// regex matching. A raw pattern wrapped in slashes compiles as a regular
// expression; anything else matches as a case-insensitive substring.
type Pattern struct {
	raw   string
	regex *regexp.Regexp
	lower string
}

// Compile transforms raw pattern strings into Pattern values.
func Compile(patterns []string) ([]Pattern, error) {
	result := make([]Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) >= 2 {
			expr := raw[1 : len(raw)-1]
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compile regexp %q: %w", raw, err)
			}
			result = append(result, Pattern{raw: raw, regex: re})
			continue
		}
		result = append(result, Pattern{raw: raw, lower: strings.ToLower(raw)})
	}
	return result, nil
}

// Match reports whether the pattern matches the supplied component name.
func (p Pattern) Match(name string) bool {
	if name == "" {
		return false
	}
	if p.regex != nil {
		return p.regex.MatchString(name)
	}
	return strings.Contains(strings.ToLower(name), p.lower)
}

// Selected reports whether a component passes the only/skip pattern sets:
// it must match at least one only pattern when any are given, and no skip
// pattern.
func Selected(name string, only, skip []Pattern) bool {
	if len(only) > 0 && !matchesAny(name, only) {
		return false
	}
	return !matchesAny(name, skip)
}

func matchesAny(name string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}
