package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartPoint is one dated amount in a chart series.
type ChartPoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// ChartSeries is the ordered balance history of one account, named
// "{accountName} ({bankName})". Accounts without matching snapshots emit no
// series.
type ChartSeries struct {
	AccountName string       `json:"accountName"`
	Data        []ChartPoint `json:"data"`
}
