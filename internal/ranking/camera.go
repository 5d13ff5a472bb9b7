package ranking

import "strings"

// Megapixels extracts the leading integer before the first "MP" in a camera
// description, e.g. "200MP f/1.7 OIS" yields 200. Descriptions that do not
// follow the "<N>MP ..." convention yield 0; callers that care about data
// quality should check ParsesMegapixels and flag those records instead of
// trusting the zero.
func Megapixels(camera string) int {
	mp, _ := parseMegapixels(camera)
	return mp
}

// ParsesMegapixels reports whether the description carries a parseable
// leading megapixel count.
func ParsesMegapixels(camera string) bool {
	_, ok := parseMegapixels(camera)
	return ok
}

func parseMegapixels(camera string) (int, bool) {
	s := camera
	if i := strings.Index(s, "MP"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimLeft(s, " \t")

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return n, true
}
