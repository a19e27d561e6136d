package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	MinLength     = 8
	baselineScore = 2
	highEntropy   = 90
	fairEntropy   = 70
	specialChars  = "@$!%*?&"
)

// Evaluate rates password for a user with the given first and last name.
// Names are compared case-insensitively and skipped when empty. The
// password is used as given; callers trim surrounding whitespace.
func Evaluate(password, firstName, lastName string) Result {
	if utf8.RuneCountInString(password) < MinLength {
		return Result{Score: 0, Label: LabelTooShort, Color: ColorRed}
	}

	lower := strings.ToLower(password)
	if IsCommonPassword(lower) {
		return Result{Score: 1, Label: LabelCommonPassword, Color: ColorRed}
	}
	if ContainsCommonSubstring(lower) {
		return Result{Score: 1, Label: LabelContainsCommonWord, Color: ColorRed}
	}
	if containsName(lower, firstName) || containsName(lower, lastName) {
		return Result{Score: 1, Label: LabelContainsName, Color: ColorRed}
	}

	score := baselineScore

	entropy := EstimateEntropy(password)
	if entropy > highEntropy {
		score += 2
	} else if entropy > fairEntropy {
		score++
	}

	if HasCommonPatterns(password) {
		score--
	}

	score += characterClasses(password)

	return tierFor(score)
}

func containsName(lowerPassword, name string) bool {
	name = strings.ToLower(name)
	if name == "" {
		return false
	}
	return strings.Contains(lowerPassword, name)
}

func characterClasses(password string) int {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if present {
			classes++
		}
	}
	return classes
}
