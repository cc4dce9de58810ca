// Package toml parses the small TOML subset used by holoterm settings
// files: key/value pairs at the top level and inside one level of
// [section] tables, with string, integer, float and boolean values.
// Comments start with '#'. Arrays and nested tables are not accepted.
package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse returns the document as a map. Section names map to a nested
// map[string]any; scalar values are string, int64, float64 or bool.
func Parse(data []byte) (map[string]any, error) {
	root := map[string]any{}
	current := root

	for n, line := range strings.Split(string(data), "\n") {
		lineNo := n + 1
		line = stripComment(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated table header", lineNo)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" || strings.ContainsAny(name, "[].") {
				return nil, fmt.Errorf("line %d: invalid table name %q", lineNo, name)
			}
			table := map[string]any{}
			root[name] = table
			current = table
			continue
		}

		key, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		value, err := parseValue(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current[key] = value
	}
	return root, nil
}

// stripComment removes a trailing comment, respecting quoted strings
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			if i == 0 || line[i-1] != '\\' {
				inString = !inString
			}
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

func parseValue(raw string) (any, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing value")
	}
	switch {
	case raw[0] == '"':
		return parseString(raw)
	case raw == "true":
		return true, nil
	case raw == "false":
		return false, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("cannot parse value %q", raw)
}

func parseString(raw string) (string, error) {
	if len(raw) < 2 || raw[len(raw)-1] != '"' {
		return "", fmt.Errorf("unterminated string %q", raw)
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, "\\") {
		return body, nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape in %q", raw)
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", fmt.Errorf("unsupported escape \\%c", body[i])
		}
	}
	return b.String(), nil
}

// Str reads a string field from a parsed table
func Str(m map[string]any, key string, out *string) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%s: expected string, got %T", key, v)
	}
	*out = s
	return nil
}

// Float reads a float field, accepting integer literals
func Float(m map[string]any, key string, out *float64) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch x := v.(type) {
	case float64:
		*out = x
	case int64:
		*out = float64(x)
	default:
		return fmt.Errorf("%s: expected number, got %T", key, v)
	}
	return nil
}

// Int reads an integer field
func Int(m map[string]any, key string, out *int) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	i, ok := v.(int64)
	if !ok {
		return fmt.Errorf("%s: expected integer, got %T", key, v)
	}
	*out = int(i)
	return nil
}

// Bool reads a boolean field
func Bool(m map[string]any, key string, out *bool) error {
	v, ok := m[key]
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%s: expected boolean, got %T", key, v)
	}
	*out = b
	return nil
}

// Table returns a named sub-table, or an empty map when absent
func Table(m map[string]any, key string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return map[string]any{}, nil
	}
	t, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected table, got %T", key, v)
	}
	return t, nil
}
