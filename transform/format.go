package transform

import (
	"fmt"
	"strings"
)

// Properties are the style properties a transform is written to.
var Properties = []string{"-webkit-transform", "-moz-transform", "-ms-transform", "transform"}

func IsProperty(property string) bool {
	for _, p := range Properties {
		if p == property {
			return true
		}
	}
	return false
}

// Format is how a rendering engine reports computed transforms:
// which style property holds the value and how it is parsed.
type Format interface {
	Name() string
	Property() string
	Parse(value string) (Matrix, error)
}

var (
	WebKit Format = webkit{}
	Gecko  Format = gecko{}
)

// Detect picks the format for the engine named by a user agent string.
func Detect(userAgent string) Format {
	if strings.Contains(userAgent, "Firefox") {
		return Gecko
	}
	return WebKit
}

func ByName(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "webkit":
		return WebKit, nil
	case "gecko", "firefox":
		return Gecko, nil
	}
	return nil, fmt.Errorf("unknown transform format %q", name)
}

type webkit struct{}

func (webkit) Name() string     { return "webkit" }
func (webkit) Property() string { return "-webkit-transform" }

func (webkit) Parse(value string) (Matrix, error) {
	return Parse(value)
}

// gecko only ever reports matrix() or matrix3d(): the argument list is
// read as raw numbers and applied by count.
type gecko struct{}

func (gecko) Name() string     { return "gecko" }
func (gecko) Property() string { return "transform" }

func (gecko) Parse(value string) (Matrix, error) {
	if IsNone(value) {
		return Identity(), nil
	}
	open := strings.IndexByte(value, '(')
	end := strings.LastIndexByte(value, ')')
	if open < 0 || end < open {
		return Identity(), unsupported("%q", value)
	}
	values, err := parseArgs(value[open+1 : end])
	if err != nil {
		return Identity(), unsupported("%q: %v", value, err)
	}
	return FromValues(values)
}
