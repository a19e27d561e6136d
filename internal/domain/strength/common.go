package strength

import "strings"

var commonPasswords map[string]struct{}

func init() {
	list := []string{
		"123456", "password", "12345678", "qwerty", "123456789", "12345",
		"abc123", "football", "monkey", "letmein", "sunshine", "iloveyou",
		"welcome", "admin", "passw0rd", "shadow", "baseball", "696969",
		"trustno1", "michael", "ninja", "mustang", "bailey",
	}
	commonPasswords = make(map[string]struct{}, len(list))
	for _, pw := range list {
		commonPasswords[pw] = struct{}{}
	}
}

// IsCommonPassword checks whether s is one of the known weak passwords (case-insensitive).
func IsCommonPassword(s string) bool {
	_, ok := commonPasswords[strings.ToLower(s)]
	return ok
}

// ContainsCommonSubstring reports whether any known weak password occurs inside s (case-insensitive).
func ContainsCommonSubstring(s string) bool {
	lower := strings.ToLower(s)
	for word := range commonPasswords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// CommonPasswords returns a copy of the known weak passwords.
func CommonPasswords() []string {
	out := make([]string, 0, len(commonPasswords))
	for word := range commonPasswords {
		out = append(out, word)
	}
	return out
}
