// Package filter selects transactions matching search criteria.
package filter

import (
	"strings"

	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/types"
)

// Criteria are combined with AND. Empty fields match every transaction.
type Criteria struct {
	Search   string                 `form:"search" json:"search" example:"nasi"`           // Case-insensitive search in description, category and amount
	Category string                 `form:"category" json:"category" example:"Makanan"`    // Exact category
	Type     models.TransactionType `form:"type" json:"type" example:"expense"`            // Exact transaction type
	DateFrom types.Date             `form:"dateFrom" json:"dateFrom" example:"2024-03-01"` // Earliest date, inclusive
	DateTo   types.Date             `form:"dateTo" json:"dateTo" example:"2024-03-31"`     // Latest date, inclusive
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Search == "" && c.Category == "" && c.Type == "" && c.DateFrom.IsZero() && c.DateTo.IsZero()
}

// Match reports whether the transaction satisfies all criteria.
func (c Criteria) Match(t models.Transaction) bool {
	// The search text is used as typed, surrounding spaces included
	if search := strings.ToLower(c.Search); search != "" {
		inDescription := strings.Contains(strings.ToLower(t.Description), search)
		inCategory := strings.Contains(strings.ToLower(t.Category), search)
		inAmount := strings.Contains(t.Amount.String(), search)

		if !inDescription && !inCategory && !inAmount {
			return false
		}
	}

	if c.Category != "" && t.Category != c.Category {
		return false
	}

	if c.Type != "" && t.Type != c.Type {
		return false
	}

	// ISO dates sort lexicographically in chronological order
	if !c.DateFrom.IsZero() && t.Date.String() < c.DateFrom.String() {
		return false
	}

	if !c.DateTo.IsZero() && t.Date.String() > c.DateTo.String() {
		return false
	}

	return true
}

// Apply returns the matching transactions in their original order.
func Apply(transactions []models.Transaction, c Criteria) []models.Transaction {
	if c.IsEmpty() {
		return append(make([]models.Transaction, 0, len(transactions)), transactions...)
	}

	matching := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if c.Match(t) {
			matching = append(matching, t)
		}
	}
	return matching
}
