package drawingml

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSyntaxError reports a fill/stroke value outside the hex subset this
// package parses; anything richer (named colors, rgb(), url() references)
// is delegated to an external collaborator per spec.md §6.
type ColorSyntaxError struct {
	Value string
}

func (e *ColorSyntaxError) Error() string {
	return fmt.Sprintf("drawingml: unsupported color syntax %q (expected a #RGB or #RRGGBB hex value)", e.Value)
}

// ParseStyleColor parses the spec.md §6 color subset: a "#RGB" or
// "#RRGGBB" hex value. The "none" keyword is handled by the caller before
// ParseStyleColor is reached, matching generate_shape_xml's structure in
// the reference generator. alpha is always 1.0: this hex subset carries no
// alpha channel of its own, distinct from the fill-opacity/stroke-opacity
// style attributes applied separately by the caller.
func ParseStyleColor(s string) (hex string, alpha float32, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return "", 0, &ColorSyntaxError{Value: s}
	}

	digits := s[1:]
	switch len(digits) {
	case 3:
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	case 6:
	default:
		return "", 0, &ColorSyntaxError{Value: s}
	}

	// go-colorful's Hex parser is the validator here: it rejects anything
	// that isn't six valid hex digits and hands back a normalized Color,
	// sparing this package its own digit-by-digit hex scanner.
	if _, err := colorful.Hex("#" + digits); err != nil {
		return "", 0, &ColorSyntaxError{Value: s}
	}

	return strings.ToUpper(digits), 1.0, nil
}
