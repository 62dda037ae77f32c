package balance

// BalanceCreateInput is the payload for a new snapshot. Amount is a decimal
// string and Date is a calendar day in YYYY-MM-DD form.
type BalanceCreateInput struct {
	Amount    string `json:"amount" validate:"required"`
	Date      string `json:"date" validate:"required"`
	AccountID string `json:"accountId" validate:"required,uuid"`
}

// BalanceUpdateInput replaces a snapshot's amount and date. The owning
// account never changes.
type BalanceUpdateInput struct {
	Amount string `json:"amount" validate:"required"`
	Date   string `json:"date" validate:"required"`
}
