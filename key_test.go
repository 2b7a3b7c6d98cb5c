package resort

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	const line = "Apple:33:3.3:good:Mar"

	cases := []struct {
		name string
		re   *regexp.Regexp
		want KeyRange
	}{
		{"nil expression", nil, KeyRange{0, 21}},
		{"whole match", regexp.MustCompile(`[0-9]+`), KeyRange{6, 8}},
		{"first capture", regexp.MustCompile(`:([^:]+)$`), KeyRange{18, 21}},
		{"capture inside match", regexp.MustCompile(`[^:]+:[^:]+:([0-9.]+):`), KeyRange{9, 12}},
		{"no match", regexp.MustCompile(`d:.`), KeyRange{0, 21}},
		{"unused capture", regexp.MustCompile(`(x)?Apple`), KeyRange{0, 5}},
		{"empty match", regexp.MustCompile(`z*`), KeyRange{0, 0}},
	}

	for _, tc := range cases {
		if got := Locate(line, tc.re); got != tc.want {
			t.Fatalf("%s: Locate = %+v; want %+v", tc.name, got, tc.want)
		}
	}
}

func TestLocate_Multibyte(t *testing.T) {
	t.Parallel()

	line := "日本:12:語"
	k := Locate(line, regexp.MustCompile(`[0-9]+`))
	if got := k.Of(line); got != "12" {
		t.Fatalf("key = %q; want %q", got, "12")
	}

	k = Locate(line, regexp.MustCompile(`:(語)$`))
	if got := k.Of(line); got != "語" {
		t.Fatalf("key = %q; want %q", got, "語")
	}
}

// Every located range must lie within the line, whatever the expression.
func TestLocate_Bounds(t *testing.T) {
	t.Parallel()

	exprs := []*regexp.Regexp{
		nil,
		regexp.MustCompile(`[0-9]+`),
		regexp.MustCompile(`(a)?b`),
		regexp.MustCompile(`^`),
		regexp.MustCompile(`$`),
		regexp.MustCompile(`:([^:]*)`),
		regexp.MustCompile(`(é+)|(z)`),
		regexp.MustCompile(`never-matches-\d{9}`),
	}

	r := rand.New(rand.NewSource(1)) // deterministic
	alphabet := []rune("ab:09 éz日")

	for i := 0; i < 2000; i++ {
		var sb strings.Builder
		for n := r.Intn(24); n > 0; n-- {
			sb.WriteRune(alphabet[r.Intn(len(alphabet))])
		}
		line := sb.String()

		for _, re := range exprs {
			k := Locate(line, re)
			if k.Start < 0 || k.Start > k.End || k.End > len(line) {
				t.Fatalf("Locate(%q, %v) = %+v out of bounds", line, re, k)
			}
		}
	}
}
