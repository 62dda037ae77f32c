package dto

// ImportRowError reports why one CSV row was rejected. Row numbers are
// 1-based and count the header.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a CSV import: rows referencing unknown banks or
// accounts are rejected individually, the rest are imported.
type ImportResult struct {
	Imported int              `json:"imported"`
	Rejected []ImportRowError `json:"rejected"`
}
