package bank

// BankInput represents the request body for creating or updating a bank.
type BankInput struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Code *string `json:"code" validate:"omitempty,min=2,max=20"`
}
