package ledger

import "errors"

var (
	// ErrPersistence is returned when the store could not be written. The
	// in-memory state is unchanged when it is returned.
	ErrPersistence = errors.New("saving to the store failed")
	ErrCorruptData = errors.New("the stored data could not be decoded")
)
