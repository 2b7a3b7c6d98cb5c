package resort

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"
)

// Global sink to avoid compiler eliminating results.
var benchResult []Line

// benchExpressions locate the field of a makeLines record for each Mode.
var benchExpressions = map[Mode]*regexp.Regexp{
	ModeNumeric: regexp.MustCompile(`^[^:]+:(-?[0-9]+):`),
	ModeVersion: regexp.MustCompile(`^(?:[^:]+:){2}([^:]+):`),
	ModeMonth:   regexp.MustCompile(`^(?:[^:]+:){3}([^:]+):`),
	ModeTime:    regexp.MustCompile(`^(?:[^:]+:){4}(.+)$`),
}

var benchMonths = []string{"Jan", "feb", "March", "apr", "May", "june", "Jul", "aug", "Sept", "oct", "November", "dec"}

// makeLines generates records "name:num:version:month:mm:ss.ms" with
// plenty of duplicated keys so ties are exercised.
func makeLines(n int) []string {
	r := rand.New(rand.NewSource(1)) // deterministic
	out := make([]string, n)

	for i := 0; i < n; i++ {
		s := "item" + strconv.Itoa(r.Intn(n/2+1)) + ":"
		s += strconv.Itoa(r.Intn(2000)-1000) + ":"

		s += strconv.Itoa(r.Intn(5)) + "." + strconv.Itoa(r.Intn(12))
		if r.Intn(3) > 0 {
			s += "." + strconv.Itoa(r.Intn(30))
			if r.Intn(4) == 0 {
				s += "-" + []string{"alpha", "beta", "rc"}[r.Intn(3)] + "." + strconv.Itoa(r.Intn(3))
			}
		}
		s += ":"

		s += benchMonths[r.Intn(len(benchMonths))] + ":"
		s += strconv.Itoa(r.Intn(90)) + ":" + strconv.Itoa(r.Intn(60)) + "." + strconv.Itoa(r.Intn(1000))

		out[i] = s
	}

	return out
}

func benchSort(b *testing.B, mode Mode, threshold int) {
	b.Helper()

	in := makeLines(50_000)
	opt := Options{Mode: mode, Expression: benchExpressions[mode], ParallelThreshold: threshold}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Sort(in, opt)
		if err != nil {
			b.Fatal(err)
		}
		benchResult = out
	}
}

func BenchmarkSort_String(b *testing.B)  { benchSort(b, ModeString, 0) }
func BenchmarkSort_Numeric(b *testing.B) { benchSort(b, ModeNumeric, 0) }
func BenchmarkSort_Version(b *testing.B) { benchSort(b, ModeVersion, 0) }
func BenchmarkSort_Month(b *testing.B)   { benchSort(b, ModeMonth, 0) }
func BenchmarkSort_Time(b *testing.B)    { benchSort(b, ModeTime, 0) }

func BenchmarkSort_NumericSequential(b *testing.B) { benchSort(b, ModeNumeric, -1) }

func BenchmarkRender(b *testing.B) {
	lines, err := Sort(makeLines(50_000), Options{Mode: ModeNumeric, Expression: benchExpressions[ModeNumeric]})
	if err != nil {
		b.Fatal(err)
	}
	opt := Options{Color: ColorAlways, Colors: Colors{Start: "\x1b[1;31m", End: "\x1b[0m"}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(lines, opt)
	}
}
