// Package pin implements the wallet PIN format predicate.
//
// The predicate is pure and performs no I/O; it only checks the shape of a
// PIN before the gateway forwards credentials to the authentication
// collaborator. The actual PIN verification and hashing happen there.
package pin

// ValidFormat reports whether pin is a well-formed wallet PIN: exactly four
// ASCII digits.
//
// With allowMissing, an absent (empty) PIN also passes. Login validates with
// allowMissing=true so PIN-less wallets can still authenticate; registration
// validates with allowMissing=false and always requires a PIN.
func ValidFormat(pin string, allowMissing bool) bool {
	if pin == "" {
		return allowMissing
	}

	if len(pin) != 4 {
		return false
	}

	for _, c := range []byte(pin) {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
