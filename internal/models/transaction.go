package models

import (
	"fmt"
	"strings"

	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// Account is one of the two balances money is held in.
type Account string

const (
	AccountCash    Account = "cash"
	AccountDigital Account = "digital"
)

// Valid reports whether the account is a known account.
func (a Account) Valid() bool {
	return a == AccountCash || a == AccountDigital
}

// Transaction is an income, expense or transfer event.
//
// Category and Payment are only set for income and expense, From and To
// only for transfers.
type Transaction struct {
	ID          int64           `json:"id" example:"1710000000000"`
	Type        TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" example:"25000"`
	Description string          `json:"description" example:"Nasi goreng"`
	Category    string          `json:"category" example:"Makanan"`
	Payment     Account         `json:"payment" example:"cash"`
	Date        types.Date      `json:"date" example:"2024-03-05"`
	From        Account         `json:"from,omitempty" example:"cash"`
	To          Account         `json:"to,omitempty" example:"digital"`
}

// GetID returns the ID of the transaction.
func (t Transaction) GetID() int64 {
	return t.ID
}

// WithID returns a copy of the transaction with the given ID.
func (t Transaction) WithID(id int64) Transaction {
	t.ID = id
	return t
}

// IsTransfer reports whether the transaction moves money between accounts.
func (t Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}

// Validate checks a stored transaction, e.g. one that is imported.
//
// The payment of income and expense is not checked. Records written by
// earlier versions may carry other values, they count towards the digital
// balance.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch t.Type {
	case TypeIncome, TypeExpense:
		return nil
	case TypeTransfer:
		return TransferInput{From: t.From, To: t.To, Amount: t.Amount}.Validate()
	default:
		return fmt.Errorf("%w: transaction type must be one of income, expense, transfer", ErrValidation)
	}
}

// TransactionInput holds the data for a new income or expense.
type TransactionInput struct {
	Type        TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" example:"25000"`
	Description string          `json:"description" example:"Nasi goreng"`
	Category    string          `json:"category" example:"Makanan"`
	Payment     Account         `json:"payment" example:"cash"`
	Date        types.Date      `json:"date" example:"2024-03-05"` // Defaults to today
}

// Validate checks the input.
func (in TransactionInput) Validate() error {
	if in.Type != TypeIncome && in.Type != TypeExpense {
		return ErrInvalidTransactionType
	}

	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !in.Payment.Valid() {
		return fmt.Errorf("payment: %w", ErrInvalidAccount)
	}

	return nil
}

// Model validates the input and returns the transaction it describes.
// The ID is left for the ledger to assign.
func (in TransactionInput) Model(today types.Date) (Transaction, error) {
	if err := in.Validate(); err != nil {
		return Transaction{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = today
	}

	return Transaction{
		Type:        in.Type,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Payment:     in.Payment,
		Date:        date,
	}, nil
}

// TransferInput holds the data for a transfer between the cash and the
// digital account.
type TransferInput struct {
	From   Account         `json:"from" example:"cash"`
	To     Account         `json:"to" example:"digital"`
	Amount decimal.Decimal `json:"amount" example:"100000"`
	Date   types.Date      `json:"date" example:"2024-03-05"` // Defaults to today
}

// Validate checks the input.
func (in TransferInput) Validate() error {
	if !in.From.Valid() {
		return fmt.Errorf("from: %w", ErrInvalidAccount)
	}

	if !in.To.Valid() {
		return fmt.Errorf("to: %w", ErrInvalidAccount)
	}

	if in.From == in.To {
		return ErrTransferSameAccount
	}

	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Model validates the input and returns the transfer transaction.
func (in TransferInput) Model(today types.Date) (Transaction, error) {
	if err := in.Validate(); err != nil {
		return Transaction{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = today
	}

	return Transaction{
		Type:        TypeTransfer,
		Amount:      in.Amount,
		Description: fmt.Sprintf("Transfer %s → %s", in.From, in.To),
		Date:        date,
		From:        in.From,
		To:          in.To,
	}, nil
}
