package dotenv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// lineKind tags the classification of one logical line of an env file.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineAssignment
)

// lineToken is the parse result for one line, before any expansion.
type lineToken struct {
	kind   lineKind
	name   string
	value  string
	quoted QuoteStyle
}

// unescapeDoubleQuoted processes escape sequences in a double-quoted string
func unescapeDoubleQuoted(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			// Handle escape sequences
			switch s[i+1] {
			case 'n':
				result.WriteByte('\n')
				i++
			case 't':
				result.WriteByte('\t')
				i++
			case 'r':
				result.WriteByte('\r')
				i++
			case '\\':
				result.WriteByte('\\')
				i++
			case '"':
				result.WriteByte('"')
				i++
			default:
				// Unknown escape sequence, keep the backslash
				result.WriteByte(s[i])
			}
		} else {
			result.WriteByte(s[i])
		}
	}

	return result.String()
}

// Parse reads an .env file from the provided reader and returns a parsed EnvFile.
// Values are returned raw: expansion of $VAR references is a separate pass
// performed during a merge, where the surrounding scope is known.
func Parse(ctx context.Context, reader io.Reader) (*EnvFile, error) {
	envFile := &EnvFile{
		variables: []Variable{},
	}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		token, err := parseLine(scanner.Text(), lineNumber)
		if err != nil {
			return nil, err
		}
		if token.kind != lineAssignment {
			continue
		}

		envFile.variables = append(envFile.variables, Variable{
			Name:     token.name,
			Value:    token.value,
			RawValue: token.value,
			Quoted:   token.quoted,
			Location: Location(fmt.Sprintf(":%d", lineNumber)),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return envFile, nil
}

// parseLine classifies a single line and extracts the assignment, if any.
func parseLine(line string, lineNumber int) (lineToken, error) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return lineToken{kind: lineBlank}, nil
	}
	if trimmed[0] == '#' {
		return lineToken{kind: lineComment}, nil
	}

	// Optional 'export' keyword before the variable name. 'exportFOO=1'
	// declares a variable named exportFOO, so the keyword must be followed
	// by whitespace.
	if rest, ok := strings.CutPrefix(trimmed, "export"); ok && rest != "" && isSpace(rest[0]) {
		trimmed = strings.TrimLeft(rest, " \t")
	}

	name, rest, err := parseName(trimmed, lineNumber)
	if err != nil {
		return lineToken{}, err
	}

	value, quoted, err := parseValue(rest, lineNumber)
	if err != nil {
		return lineToken{}, err
	}

	return lineToken{
		kind:   lineAssignment,
		name:   name,
		value:  value,
		quoted: quoted,
	}, nil
}

// parseName consumes the variable name and the '=' delimiter, returning the
// name and the remainder of the line.
func parseName(s string, lineNumber int) (name, rest string, err error) {
	i := 0
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	if i == 0 || !isNameStart(s[0]) {
		return "", "", malformedError(lineNumber, "invalid character in variable name")
	}
	if i == len(s) {
		return "", "", malformedError(lineNumber, "missing = in the environment variable declaration")
	}
	if isSpace(s[i]) {
		return "", "", malformedError(lineNumber, "whitespace is not supported after the variable name")
	}
	if s[i] != '=' {
		return "", "", malformedError(lineNumber, "missing = in the environment variable declaration")
	}
	return s[:i], s[i+1:], nil
}

// parseValue consumes the text after the '=' delimiter. The input has already
// been trimmed of trailing whitespace at the line level.
func parseValue(s string, lineNumber int) (value string, quoted QuoteStyle, err error) {
	if s == "" {
		return "", Unquoted, nil
	}

	switch s[0] {
	case '\'':
		return parseSingleQuoted(s, lineNumber)
	case '"':
		return parseDoubleQuoted(s, lineNumber)
	}

	if isSpace(s[0]) {
		return "", Unquoted, malformedError(lineNumber, "whitespace is not supported before the value")
	}

	return parseUnquoted(s), Unquoted, nil
}

func parseSingleQuoted(s string, lineNumber int) (string, QuoteStyle, error) {
	end := strings.IndexByte(s[1:], '\'')
	if end == -1 {
		return "", SingleQuoted, unterminatedError(lineNumber)
	}
	if err := checkTrailer(s[end+2:], lineNumber); err != nil {
		return "", SingleQuoted, err
	}
	return s[1 : end+1], SingleQuoted, nil
}

func parseDoubleQuoted(s string, lineNumber int) (string, QuoteStyle, error) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			// Skip the escaped character so \" does not close the value
			i++
		case '"':
			if err := checkTrailer(s[i+1:], lineNumber); err != nil {
				return "", DoubleQuoted, err
			}
			return unescapeDoubleQuoted(s[1:i]), DoubleQuoted, nil
		}
	}
	return "", DoubleQuoted, unterminatedError(lineNumber)
}

// parseUnquoted scans up to the end of line or an unescaped '#', which starts
// an inline comment. \# produces a literal '#'.
func parseUnquoted(s string) string {
	var result strings.Builder
	result.Grow(len(s))

scan:
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '#' {
				result.WriteByte('#')
				i++
				continue
			}
			result.WriteByte(s[i])
		case '#':
			break scan
		default:
			result.WriteByte(s[i])
		}
	}

	return strings.TrimRight(result.String(), " \t")
}

// checkTrailer validates the text after a closing quote: only whitespace and
// an inline comment may follow.
func checkTrailer(s string, lineNumber int) error {
	s = strings.TrimLeft(s, " \t")
	if s != "" && s[0] != '#' {
		return malformedError(lineNumber, "unexpected text after the quoted value")
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// isNameChar returns true if the character is valid in a variable name
func isNameChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}

// isNameStart returns true if the character can begin a variable name.
// Names never start with a digit.
func isNameStart(c byte) bool {
	return isNameChar(c) && !(c >= '0' && c <= '9')
}
