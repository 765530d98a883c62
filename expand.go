package dotenv

import (
	"fmt"
	"strings"
)

// expandString replaces $VAR and ${VAR} references in value, resolving names
// through lookup. Expansion is a single pass: substituted text is never
// re-scanned, so self-referential definitions cannot loop. A name that lookup
// does not resolve substitutes the empty string.
//
// It returns the expanded value together with the variables that were
// substituted, as they were at substitution time.
func expandString(value string, lookup LookupFn) (string, map[string]Variable, error) {
	var result strings.Builder
	result.Grow(len(value))

	expanded := map[string]Variable{}

	resolve := func(name string) (string, bool) {
		v, ok := lookup(name)
		if !ok {
			return "", false
		}
		expanded[name] = v
		return v.Value, true
	}

	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) && value[i+1] == '$' {
			// \$ is a literal dollar sign, never a substitution
			result.WriteByte('$')
			i++
			continue
		}
		if value[i] != '$' || i+1 >= len(value) {
			result.WriteByte(value[i])
			continue
		}

		if value[i+1] == '{' {
			endIdx := strings.Index(value[i+2:], "}")
			if endIdx == -1 {
				// No closing brace, write literal
				result.WriteByte(value[i])
				continue
			}
			content := value[i+2 : i+2+endIdx]
			replacement, err := expandBraced(content, resolve)
			if err != nil {
				return "", nil, err
			}
			result.WriteString(replacement)
			i = i + 2 + endIdx // skip past the }
		} else if isNameStart(value[i+1]) {
			// $VARIABLE syntax
			j := i + 1
			for j < len(value) && isNameChar(value[j]) {
				j++
			}
			val, _ := resolve(value[i+1 : j])
			result.WriteString(val)
			i = j - 1 // will be incremented by loop
		} else {
			// $ followed by non-variable char, write literal
			result.WriteByte(value[i])
		}
	}

	return result.String(), expanded, nil
}

// expandBraced resolves the content of a ${...} reference, including the
// shell-style default, replacement, and required-variable operators.
func expandBraced(content string, resolve func(string) (string, bool)) (string, error) {
	// Check for ${VAR:?error} (error if unset or empty)
	if name, errorMsg, ok := strings.Cut(content, ":?"); ok {
		val, set := resolve(name)
		if !set || val == "" {
			return "", requiredError(name, errorMsg)
		}
		return val, nil
	}

	// Check for ${VAR:-default} (use default if unset or empty)
	if name, defaultValue, ok := strings.Cut(content, ":-"); ok {
		if val, set := resolve(name); set && val != "" {
			return val, nil
		}
		return defaultValue, nil
	}

	// Check for ${VAR:+replacement} (use replacement if set and non-empty)
	if name, replacement, ok := strings.Cut(content, ":+"); ok {
		if val, set := resolve(name); set && val != "" {
			return replacement, nil
		}
		return "", nil
	}

	// Check for ${VAR?error} (error if unset, but can be empty)
	if name, errorMsg, ok := strings.Cut(content, "?"); ok {
		val, set := resolve(name)
		if !set {
			return "", requiredError(name, errorMsg)
		}
		return val, nil
	}

	// Check for ${VAR-default} (use default if unset)
	if name, defaultValue, ok := strings.Cut(content, "-"); ok {
		if val, set := resolve(name); set {
			return val, nil
		}
		return defaultValue, nil
	}

	// Check for ${VAR+replacement} (use replacement if set)
	if name, replacement, ok := strings.Cut(content, "+"); ok {
		if _, set := resolve(name); set {
			return replacement, nil
		}
		return "", nil
	}

	// Simple ${VAR} syntax; unresolved names expand to the empty string
	val, _ := resolve(content)
	return val, nil
}

func requiredError(name, errorMsg string) error {
	if errorMsg == "" {
		return fmt.Errorf("%s: required variable is not set", name)
	}
	return fmt.Errorf("%s", errorMsg)
}
