// Package summary aggregates transactions over calendar windows.
//
// All functions are pure: they read the transactions they are given and
// the reference date, and never modify either.
package summary

import (
	"errors"
	"fmt"
	"time"

	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/shopspring/decimal"
)

// Kind is the length of a window.
type Kind string

const (
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindYearly  Kind = "yearly"
)

var ErrUnknownKind = errors.New("summary kind must be one of daily, weekly, monthly, yearly")

// Bucket is one sub-interval of a window.
type Bucket struct {
	Start types.Date      `json:"start" example:"2024-03-04"` // First day of the bucket
	Net   decimal.Decimal `json:"net" example:"-40000"`       // Income minus expense
}

// Summary holds the totals of a window and its net series.
type Summary struct {
	Kind    Kind            `json:"kind" example:"weekly"`
	Start   types.Date      `json:"start" example:"2024-03-04"`
	End     types.Date      `json:"end" example:"2024-03-10"`
	Income  decimal.Decimal `json:"income" example:"100000"`
	Expense decimal.Decimal `json:"expense" example:"40000"`
	Net     decimal.Decimal `json:"net" example:"60000"`
	Buckets []Bucket        `json:"buckets"`

	// The transactions of the day, in their original order. Only set for
	// daily summaries.
	Transactions []models.Transaction `json:"transactions,omitempty"`
}

// window describes the boundaries and buckets of a summary.
type window struct {
	kind    Kind
	start   types.Date
	end     types.Date
	buckets []types.Date

	// bucket returns the bucket index of a date inside the window
	bucket func(types.Date) int
}

// Window computes the summary of the given kind for the window containing ref.
func Window(kind Kind, transactions []models.Transaction, ref types.Date) (Summary, error) {
	switch kind {
	case KindDaily:
		return Daily(transactions, ref), nil
	case KindWeekly:
		return Weekly(transactions, ref), nil
	case KindMonthly:
		return Monthly(transactions, ref), nil
	case KindYearly:
		return Yearly(transactions, ref), nil
	default:
		return Summary{}, fmt.Errorf("%w, not '%s'", ErrUnknownKind, kind)
	}
}

// Daily summarizes the transactions of a single day.
func Daily(transactions []models.Transaction, date types.Date) Summary {
	s := aggregate(transactions, window{
		kind:    KindDaily,
		start:   date,
		end:     date,
		buckets: []types.Date{date},
		bucket:  func(types.Date) int { return 0 },
	})

	s.Transactions = []models.Transaction{}
	for _, t := range transactions {
		if t.Date.Equal(date) {
			s.Transactions = append(s.Transactions, t)
		}
	}

	return s
}

// Weekly summarizes the Monday to Sunday week containing ref, with one
// bucket per day, Monday first.
func Weekly(transactions []models.Transaction, ref types.Date) Summary {
	start := ref.StartOfWeek()

	buckets := make([]types.Date, 7)
	for i := range buckets {
		buckets[i] = start.AddDays(i)
	}

	return aggregate(transactions, window{
		kind:    KindWeekly,
		start:   start,
		end:     start.AddDays(6),
		buckets: buckets,
		bucket:  func(d types.Date) int { return d.DaysSince(start) },
	})
}

// Monthly summarizes the calendar month containing ref, with one bucket per
// day of the month.
func Monthly(transactions []models.Transaction, ref types.Date) Summary {
	month := ref.Month()

	buckets := make([]types.Date, month.Days())
	for i := range buckets {
		buckets[i] = month.First().AddDays(i)
	}

	return aggregate(transactions, window{
		kind:    KindMonthly,
		start:   month.First(),
		end:     month.Last(),
		buckets: buckets,
		bucket:  func(d types.Date) int { return d.Day() - 1 },
	})
}

// Yearly summarizes January 1st to December 31st of the year containing
// ref, with one bucket per month.
func Yearly(transactions []models.Transaction, ref types.Date) Summary {
	january := types.NewMonth(ref.Year(), time.January)

	buckets := make([]types.Date, 12)
	for i := range buckets {
		buckets[i] = january.AddDate(0, i).First()
	}

	return aggregate(transactions, window{
		kind:    KindYearly,
		start:   january.First(),
		end:     january.AddDate(0, 11).Last(),
		buckets: buckets,
		bucket:  func(d types.Date) int { return d.Month().Index() },
	})
}

// aggregate sums up income and expense inside the window. Transfers only
// move money between accounts and are left out.
func aggregate(transactions []models.Transaction, w window) Summary {
	s := Summary{
		Kind:    w.kind,
		Start:   w.start,
		End:     w.end,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Buckets: make([]Bucket, len(w.buckets)),
	}

	for i, start := range w.buckets {
		s.Buckets[i] = Bucket{Start: start, Net: decimal.Zero}
	}

	for _, t := range transactions {
		if t.Date.IsZero() || !t.Date.Between(w.start, w.end) {
			continue
		}

		var signed decimal.Decimal
		switch t.Type {
		case models.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
			signed = t.Amount
		case models.TypeExpense:
			s.Expense = s.Expense.Add(t.Amount)
			signed = t.Amount.Neg()
		default:
			continue
		}

		idx := w.bucket(t.Date)
		if idx >= 0 && idx < len(s.Buckets) {
			s.Buckets[idx].Net = s.Buckets[idx].Net.Add(signed)
		}
	}

	s.Net = s.Income.Sub(s.Expense)
	return s
}
