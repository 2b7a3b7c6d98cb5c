package resort

import (
	"errors"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"1:21.45", time.Minute + 21*time.Second + 45*time.Millisecond},
		{"2:01:53", 2*time.Hour + time.Minute + 53*time.Second},
		{"12:09.98", 12*time.Minute + 9*time.Second + 98*time.Millisecond},
		{"0:5", 5 * time.Second},
		{":5", 5 * time.Second},
		// digits after '.' count milliseconds literally
		{"0:1.5", time.Second + 5*time.Millisecond},
		{"0:1.500", time.Second + 500*time.Millisecond},
		{".5", 5 * time.Millisecond},
		// a lone field is minutes
		{"45", 45 * time.Minute},
		{"45.1", 45*time.Minute + time.Millisecond},
	}

	for _, tc := range cases {
		got, err := parseTime(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("parseTime(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestParseTime_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Apple", "unexpected character 'A' while parsing time"},
		{"1:2a", "unexpected character 'a' while parsing time"},
		{"1-2", "unexpected character '-' while parsing time"},
		{"1.", "can not parse millis: '.': cannot parse integer from empty string"},
		{"5:", "can not parse seconds: ':', already: 0ms: cannot parse integer from empty string"},
		{"1.2.3", "can not parse minutes: '1.2', already: 0.3: invalid digit found in string"},
		{"1::3", "can not parse minutes: '', already: 3.0: cannot parse integer from empty string"},
		{"1:2:3:4", "can not parse hours: '1:2', already: 3:4.0: invalid digit found in string"},
	}

	for _, tc := range cases {
		_, err := parseTime(tc.in)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("parseTime(%q) err = %v; want %q", tc.in, err, tc.want)
		}
	}
}

func TestParseTime_Overflow(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"99999999999:0:0", "0:0.18446744073709551615"} {
		if _, err := parseTime(in); !errors.Is(err, errTimeRange) {
			t.Fatalf("parseTime(%q) err = %v; want %v", in, err, errTimeRange)
		}
	}
}
