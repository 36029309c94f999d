package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported transform format")

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnsupportedFormat}, args...)...)
}

// IsNone reports whether value denotes the absence of a transform.
func IsNone(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || value == "none"
}

// Parse reads a transform list in CSS function syntax, e.g.
// "translate3d(10px, 20px, 0.0001px)" or "matrix(1, 0, 0, 1, 10, 20)".
func Parse(value string) (Matrix, error) {
	result := Identity()
	rest := strings.TrimSpace(value)
	if IsNone(rest) {
		return result, nil
	}
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open <= 0 || end < open {
			return Identity(), unsupported("%q", value)
		}
		name := strings.ToLower(strings.TrimSpace(rest[:open]))
		args, err := parseArgs(rest[open+1 : end])
		if err != nil {
			return Identity(), unsupported("%q: %v", value, err)
		}
		m, err := function(name, args)
		if err != nil {
			return Identity(), err
		}
		result = result.Multiply(m)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return result, nil
}

func function(name string, args []float64) (Matrix, error) {
	switch {
	case name == "matrix" && len(args) == 6, name == "matrix3d" && len(args) == 16:
		return FromValues(args)
	case name == "translate" && len(args) == 1:
		return Translate3d(args[0], 0, 0), nil
	case name == "translate" && len(args) == 2:
		return Translate3d(args[0], args[1], 0), nil
	case name == "translate3d" && len(args) == 3:
		return Translate3d(args[0], args[1], args[2]), nil
	case name == "translatex" && len(args) == 1:
		return Translate3d(args[0], 0, 0), nil
	case name == "translatey" && len(args) == 1:
		return Translate3d(0, args[0], 0), nil
	case name == "translatez" && len(args) == 1:
		return Translate3d(0, 0, args[0]), nil
	}
	return Identity(), unsupported("%s with %d arguments", name, len(args))
}

func parseArgs(body string) ([]float64, error) {
	fields := strings.Split(body, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := parseNumber(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseNumber(field string) (float64, error) {
	field = strings.TrimSpace(field)
	field = strings.TrimSuffix(field, "px")
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
