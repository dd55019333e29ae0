package kontocheck

// methodFunc validates a normalized 10-digit account number. blz is passed
// through for the handful of methods whose rules depend on the issuing
// bank.
type methodFunc func(account, blz string) Result

// methods maps a check-method identifier to its routine. The numeric
// methods 00-99 are keyed by their decimal value (method "10" is 0x0A),
// the letter methods A0-C6 by the literal byte from the bank file.
var methods = map[byte]methodFunc{
	0x00: method00, 0x01: method01, 0x02: method02, 0x03: method03,
	0x04: method04, 0x05: method05, 0x06: method06, 0x07: method07,
	0x08: method08, 0x09: method09, 0x0A: method10, 0x0B: method11,
	0x0C: method12, 0x0D: method13, 0x0E: method14, 0x0F: method15,
	0x10: method16, 0x11: method17, 0x12: method18, 0x13: method19,
	0x14: method20, 0x15: method21, 0x16: method22, 0x17: method23,
	0x18: method24, 0x19: method25, 0x1A: method26, 0x1B: method27,
	0x1C: method28, 0x1D: method29, 0x1E: method30, 0x1F: method31,
	0x20: method32, 0x21: method33, 0x22: method34, 0x23: method35,
	0x24: method36, 0x25: method37, 0x26: method38, 0x27: method39,
	0x28: method40, 0x29: method41, 0x2A: method42, 0x2B: method43,
	0x2C: method44, 0x2D: method45, 0x2E: method46, 0x2F: method47,
	0x30: method48, 0x31: method49, 0x32: method50, 0x33: method51,
	0x34: method52, 0x35: method53, 0x36: method54, 0x37: method55,
	0x38: method56, 0x39: method57, 0x3A: method58, 0x3B: method59,
	0x3C: method60, 0x3D: method61, 0x3E: method62, 0x3F: method63,
	0x40: method64, 0x41: method65, 0x42: method66, 0x43: method67,
	0x44: method68, 0x45: method69, 0x46: method70, 0x47: method71,
	0x48: method72, 0x49: method73, 0x4A: method74, 0x4B: method75,
	0x4C: method76, 0x4D: method77, 0x4E: method78, 0x4F: method79,
	0x50: method80, 0x51: method81, 0x52: method82, 0x53: method83,
	0x54: method84, 0x55: method85, 0x56: method86, 0x57: method87,
	0x58: method88, 0x59: method89, 0x5A: method90, 0x5B: method91,
	0x5C: method92, 0x5D: method93, 0x5E: method94, 0x5F: method95,
	0x60: method96, 0x61: method97, 0x62: method98, 0x63: method99,

	0xA0: methodA0, 0xA1: methodA1, 0xA2: methodA2, 0xA3: methodA3,
	0xA4: methodA4, 0xA5: methodA5, 0xA6: methodA6, 0xA7: methodA7,
	0xA8: methodA8, 0xA9: methodA9,

	0xB0: methodB0, 0xB1: methodB1, 0xB2: methodB2, 0xB3: methodB3,
	0xB4: methodB4, 0xB5: methodB5, 0xB6: methodB6, 0xB7: methodB7,
	0xB8: methodB8, 0xB9: methodB9,

	0xC0: methodC0, 0xC1: methodC1, 0xC2: methodC2, 0xC3: methodC3,
	0xC4: methodC4, 0xC5: methodC5, 0xC6: methodC6,
}

// Implemented reports whether a validation routine is registered for id.
func Implemented(id byte) bool {
	_, ok := methods[id]
	return ok
}

// MethodIDs returns all registered method identifiers, unordered.
func MethodIDs() []byte {
	ids := make([]byte, 0, len(methods))
	for id := range methods {
		ids = append(ids, id)
	}
	return ids
}
