package domain

import (
	"regexp"
	"strings"
)

// AccountType is the closed set of supported account kinds.
type AccountType string

const (
	AccountTypeCurrent AccountType = "current"
	AccountTypeSavings AccountType = "savings"
)

// Valid reports whether the type names a supported account kind.
func (t AccountType) Valid() bool {
	return t == AccountTypeCurrent || t == AccountTypeSavings
}

// Account name and IBAN length bounds.
const (
	AccountNameMinLen = 2
	AccountNameMaxLen = 100
	IBANMinLen        = 15
	IBANMaxLen        = 34
)

// Simplified IBAN shape: country code, check digits, alphanumeric BBAN.
// No mod-97 checksum.
var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)

// NormalizeIBAN strips all whitespace and uppercases, the canonical storage
// form.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// ValidateAccount collects violations of the account rules. The IBAN is
// optional and must already be normalized.
func ValidateAccount(name string, accountType AccountType, iban *string) error {
	ve := &ValidationError{}
	if l := len(name); l < AccountNameMinLen || l > AccountNameMaxLen {
		ve.Add("name", "name must be between 2 and 100 characters")
	}
	if !accountType.Valid() {
		ve.Add("type", "type must be one of: current, savings")
	}
	if iban != nil {
		if l := len(*iban); l < IBANMinLen || l > IBANMaxLen {
			ve.Add("iban", "IBAN must be between 15 and 34 characters")
		} else if !ibanPattern.MatchString(*iban) {
			ve.Add("iban", "invalid IBAN format")
		}
	}
	return ve.AsErr()
}
