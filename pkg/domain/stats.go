package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStats summarizes the balance history of one account.
type AccountStats struct {
	InitialBalance      decimal.Decimal `json:"initialBalance"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	EvolutionPercentage decimal.Decimal `json:"evolutionPercentage"`
	BalanceCount        int             `json:"balanceCount"`
}

// ComputeStats derives account statistics from snapshot amounts ordered by
// ascending date. Both balances are zero when no snapshot exists.
func ComputeStats(amounts []decimal.Decimal) AccountStats {
	s := AccountStats{
		InitialBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		BalanceCount:   len(amounts),
	}
	if len(amounts) > 0 {
		s.InitialBalance = amounts[0]
		s.CurrentBalance = amounts[len(amounts)-1]
	}
	s.EvolutionPercentage = EvolutionPercentage(s.InitialBalance, s.CurrentBalance, s.BalanceCount)
	return s
}

// EvolutionPercentage is the relative change from initial to current,
// rounded to 2 decimal places. Zero when fewer than 2 snapshots exist or the
// initial balance is zero (division guard).
func EvolutionPercentage(initial, current decimal.Decimal, count int) decimal.Decimal {
	if count < 2 || initial.IsZero() {
		return decimal.Zero
	}
	return current.Sub(initial).
		Div(initial.Abs()).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// GlobalStats aggregates statistics across all accounts of one user. The
// evolution is computed over the summed totals, matching the per-account
// formula, which can behave counterintuitively when accounts carry
// offsetting signs.
type GlobalStats struct {
	InitialBalance      decimal.Decimal `json:"initialBalance"`
	CurrentBalance      decimal.Decimal `json:"currentBalance"`
	EvolutionPercentage decimal.Decimal `json:"evolutionPercentage"`
	AccountCount        int             `json:"accountCount"`
	BalanceCount        int             `json:"balanceCount"`
}

// ComputeGlobalStats sums per-account statistics into the global block.
func ComputeGlobalStats(perAccount []AccountStats) GlobalStats {
	g := GlobalStats{
		InitialBalance: decimal.Zero,
		CurrentBalance: decimal.Zero,
		AccountCount:   len(perAccount),
	}
	for _, s := range perAccount {
		g.InitialBalance = g.InitialBalance.Add(s.InitialBalance)
		g.CurrentBalance = g.CurrentBalance.Add(s.CurrentBalance)
		g.BalanceCount += s.BalanceCount
	}
	g.EvolutionPercentage = EvolutionPercentage(g.InitialBalance, g.CurrentBalance, g.BalanceCount)
	return g
}
