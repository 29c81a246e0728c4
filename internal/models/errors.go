package models

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
)

var (
	ErrAmountNotPositive       = fmt.Errorf("%w: amounts must be larger than zero", ErrValidation)
	ErrInvalidTransactionType  = fmt.Errorf("%w: transaction type must be one of income, expense", ErrValidation)
	ErrInvalidAccount          = fmt.Errorf("%w: account must be one of cash, digital", ErrValidation)
	ErrTransferSameAccount     = fmt.Errorf("%w: source and destination of a transfer must be different", ErrValidation)
	ErrInvalidPeriod           = fmt.Errorf("%w: budget period must be one of weekly, monthly", ErrValidation)
	ErrBudgetCategoryEmpty     = fmt.Errorf("%w: budget targets need a category", ErrValidation)
	ErrInvalidTheme            = fmt.Errorf("%w: theme must be one of light, dark", ErrValidation)
	ErrTransactionNotTransfer  = fmt.Errorf("%w: the transaction is not a transfer", ErrValidation)
	ErrTransferNotEditableHere = fmt.Errorf("%w: transfers must be edited as transfers", ErrValidation)
	ErrDuplicateID             = fmt.Errorf("%w: ids must be unique", ErrValidation)
)

// NotFound returns an ErrResourceNotFound for a resource name and ID.
func NotFound(resource string, id int64) error {
	return fmt.Errorf("%w %s with id %d", ErrResourceNotFound, resource, id)
}
