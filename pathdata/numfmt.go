package pathdata

import "strconv"

// parseFloat wraps strconv.ParseFloat for the substrings readNumber has
// already validated as syntactically numeric (sign + digits [+ '.' digits]
// [+ exponent]); it exists only to give that call site a single name.
func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
