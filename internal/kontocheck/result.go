// Package kontocheck validates German bank account numbers against the
// officially specified check-digit methods (Prüfzifferberechnungsmethoden).
// Every method is a pure function of the normalized 10-digit account number
// and, for a few methods, the bank routing number (BLZ).
package kontocheck

// Result is the outcome of a check-digit validation.
type Result int

const (
	// Valid means the check equation holds.
	Valid Result = iota
	// Invalid means the digits are well-formed but the check equation fails.
	Invalid
	// InvalidFormat means the account number could not be normalized to
	// 10 digits, or a method-specific structural precondition failed.
	InvalidFormat
	// NotImplemented means the method identifier is recognized but no
	// validation routine is registered for it.
	NotImplemented
)

// String returns the wire representation used by the HTTP API and tools.
func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case InvalidFormat:
		return "invalid_format"
	case NotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

// check converts a boolean check-equation outcome to a Result.
func check(ok bool) Result {
	if ok {
		return Valid
	}
	return Invalid
}
