package dto

import (
	"github.com/sebsst/Banking-app/pkg/domain"
)

// StatsOverview is the derived statistics view: one entry per account plus
// the global block summed over all of them.
type StatsOverview struct {
	Accounts []*AccountWithStats `json:"accounts"`
	Global   domain.GlobalStats  `json:"global"`
}
