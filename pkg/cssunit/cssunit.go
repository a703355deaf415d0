package cssunit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// keyword matches CSS length keywords that carry no unit.
var keyword = regexp.MustCompile(`^(auto|inherit|initial|fit-content)$`)

// measure matches a number followed by a CSS length unit.
var measure = regexp.MustCompile(`^(-?\d*\.?\d+)(%|in|cm|mm|ch|em|ex|rem|pt|pc|px|vh|vw|vmin|vmax)$`)

// number matches a bare number with no unit.
var number = regexp.MustCompile(`^-?\d*\.?\d+$`)

// Validate checks that v is a valid CSS length and returns its normalized
// form. Numeric values and bare numeric strings are interpreted as pixels.
// calc() expressions are passed through untouched. Anything else is an error.
func Validate(v any) (string, error) {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val) + "px", nil
	case int64:
		return strconv.FormatInt(val, 10) + "px", nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64) + "px", nil
	case string:
		return validateString(val)
	default:
		return "", fmt.Errorf("cssunit: unsupported value type %T", v)
	}
}

// ValidateString is Validate restricted to string input.
func ValidateString(s string) (string, error) {
	return validateString(s)
}

func validateString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("cssunit: empty value")
	}

	switch {
	case keyword.MatchString(s):
		return s, nil
	case strings.HasPrefix(s, "calc(") && strings.HasSuffix(s, ")"):
		return s, nil
	case measure.MatchString(s):
		return s, nil
	case number.MatchString(s):
		return s + "px", nil
	default:
		return "", fmt.Errorf("cssunit: %q is not a valid CSS length", s)
	}
}
