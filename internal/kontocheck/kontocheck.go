package kontocheck

import "strings"

// Normalize left-pads an account number with zeros to the canonical
// 10-digit form used by all check methods. It reports false for inputs
// longer than 10 digits or containing non-digit characters.
func Normalize(account string) (string, bool) {
	if len(account) > 10 {
		return "", false
	}
	for i := 0; i < len(account); i++ {
		if account[i] < '0' || account[i] > '9' {
			return "", false
		}
	}
	if len(account) == 10 {
		return account, true
	}
	return strings.Repeat("0", 10-len(account)) + account, true
}

// ValidateAccount normalizes account and applies the check-digit method
// registered under id. Unregistered identifiers yield NotImplemented; an
// account that cannot be normalized yields InvalidFormat regardless of the
// method.
func ValidateAccount(account string, id byte, blz string) Result {
	acct, ok := Normalize(account)
	if !ok {
		return InvalidFormat
	}
	fn, ok := methods[id]
	if !ok {
		return NotImplemented
	}
	return fn(acct, blz)
}
