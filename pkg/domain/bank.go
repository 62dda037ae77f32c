package domain

// Bank name and code length bounds.
const (
	BankNameMinLen = 2
	BankNameMaxLen = 100
	BankCodeMinLen = 2
	BankCodeMaxLen = 20
)

// ValidateBank collects violations of the bank naming rules. Code is
// optional; when present it must fit its length bounds.
func ValidateBank(name string, code *string) error {
	ve := &ValidationError{}
	if l := len(name); l < BankNameMinLen || l > BankNameMaxLen {
		ve.Add("name", "name must be between 2 and 100 characters")
	}
	if code != nil {
		if l := len(*code); l < BankCodeMinLen || l > BankCodeMaxLen {
			ve.Add("code", "code must be between 2 and 20 characters")
		}
	}
	return ve.AsErr()
}
