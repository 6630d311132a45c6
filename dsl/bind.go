package dsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolate replaces ${path.to.value} placeholders in text content with
// values from data (decoded JSON). Missing paths leave the placeholder
// untouched so the gap is visible on the rendered card.
func interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		path := strings.TrimSpace(groups[1])
		if path == "" {
			return match
		}
		if val, ok := resolvePath(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	var indexes []string
	if i := strings.Index(segment, "["); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for len(rest) > 0 && rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}
