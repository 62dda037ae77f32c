package account

// AccountInput represents the request body for creating or updating an
// account. InitialBalance is honored on create only.
type AccountInput struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Type           string  `json:"type" validate:"required,oneof=current savings"`
	IBAN           *string `json:"iban" validate:"omitempty,min=15"`
	BankID         string  `json:"bankId" validate:"required,uuid"`
	InitialBalance *string `json:"initialBalance"`
}
