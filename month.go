package resort

import (
	"errors"
	"strings"
)

var errInvalidMonth = errors.New("invalid month strings")

// monthNames lists the accepted spellings per month, in calendar order.
var monthNames = [12][3]string{
	{"jan", "jan", "january"},
	{"feb", "feb", "february"},
	{"mar", "mar", "march"},
	{"apr", "apr", "april"},
	{"may", "may", "may"},
	{"jun", "june", "june"},
	{"jul", "july", "july"},
	{"aug", "aug", "august"},
	{"sep", "sept", "september"},
	{"oct", "oct", "october"},
	{"nov", "nov", "november"},
	{"dec", "dec", "december"},
}

// parseMonth returns the 0-based calendar index of a month name.
func parseMonth(s string) (int64, error) {
	key := strings.ToLower(s)
	for i, names := range monthNames {
		if key == names[0] || key == names[1] || key == names[2] {
			return int64(i), nil
		}
	}

	return 0, errInvalidMonth
}
