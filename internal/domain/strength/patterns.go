package strength

import "regexp"

var (
	sequentialRun = regexp.MustCompile(`(?i)(012|123|234|345|456|567|678|789|890|abc|bcd|cde|def|efg|fgh|ghi)`)
	keyboardWalk  = regexp.MustCompile(`(?i)(qwerty|asdfgh|zxcvbn|password|letmein)`)
)

const repeatRunLength = 3

// HasCommonPatterns reports whether s contains a sequential run, a repeated
// character run or a keyboard walk.
func HasCommonPatterns(s string) bool {
	return HasSequentialRun(s) || HasRepeatedRun(s) || HasKeyboardWalk(s)
}

func HasSequentialRun(s string) bool {
	return sequentialRun.MatchString(s)
}

func HasKeyboardWalk(s string) bool {
	return keyboardWalk.MatchString(s)
}

// HasRepeatedRun reports three or more identical consecutive characters.
// Case-sensitive: "aaA" is not a run.
func HasRepeatedRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= repeatRunLength {
			return true
		}
	}
	return false
}
