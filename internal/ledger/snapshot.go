package ledger

import (
	"fmt"

	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/rs/zerolog/log"
)

// Snapshot is the complete state of a ledger.
type Snapshot struct {
	Transactions  []models.Transaction  `json:"transactions"`
	Debts         []models.Debt         `json:"debts"`
	BudgetTargets []models.BudgetTarget `json:"budgetTargets"`
	Theme         models.Theme          `json:"theme,omitempty" example:"light"` // Left unchanged on import when empty
}

// uniqueIDs checks that no two records share an ID. Records without an
// ID are assigned one on import and are not checked.
func uniqueIDs[T record[T]](items []T) error {
	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		id := item.GetID()
		if id == 0 {
			continue
		}
		if seen[id] {
			return fmt.Errorf("%w: %d", models.ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

// Validate checks all records of the snapshot.
func (s Snapshot) Validate() error {
	if err := uniqueIDs(s.Transactions); err != nil {
		return fmt.Errorf("transactions: %w", err)
	}

	if err := uniqueIDs(s.Debts); err != nil {
		return fmt.Errorf("debts: %w", err)
	}

	if err := uniqueIDs(s.BudgetTargets); err != nil {
		return fmt.Errorf("budget targets: %w", err)
	}

	for i, t := range s.Transactions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	for i, d := range s.Debts {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("debt %d: %w", i, err)
		}
	}

	for i, b := range s.BudgetTargets {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("budget target %d: %w", i, err)
		}
	}

	if s.Theme != "" {
		return s.Theme.Validate()
	}

	return nil
}

// Export returns the complete state.
func (l *Ledger) Export() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.snapshot()
}

func (l *Ledger) snapshot() Snapshot {
	return Snapshot{
		Transactions:  l.transactions.All(),
		Debts:         l.debts.All(),
		BudgetTargets: l.budgetTargets.All(),
		Theme:         l.theme,
	}
}

// Import replaces all transactions, debts and budget targets with the ones
// in the snapshot. Records without an ID are assigned one.
func (l *Ledger) Import(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.restore(s); err != nil {
		return err
	}

	log.Info().
		Int("transactions", len(s.Transactions)).
		Int("debts", len(s.Debts)).
		Int("budgetTargets", len(s.BudgetTargets)).
		Msg("Ledger imported")

	return nil
}

// Reset deletes all transactions, debts and budget targets. The theme is kept.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.restore(Snapshot{}); err != nil {
		return err
	}

	log.Info().Msg("Ledger reset")
	return nil
}

// restore writes all collections of the snapshot. If one of the writes
// fails, the previous state is written back.
func (l *Ledger) restore(s Snapshot) error {
	previous := l.snapshot()

	err := l.apply(s)
	if err == nil {
		return nil
	}

	if rollbackErr := l.apply(previous); rollbackErr != nil {
		log.Error().Err(rollbackErr).Msg("Restoring the previous ledger state failed")
	}

	return l.persistenceFailed("restore", err)
}

func (l *Ledger) apply(s Snapshot) error {
	if err := l.transactions.ReplaceAll(s.Transactions); err != nil {
		return err
	}

	if err := l.debts.ReplaceAll(s.Debts); err != nil {
		return err
	}

	if err := l.budgetTargets.ReplaceAll(s.BudgetTargets); err != nil {
		return err
	}

	if s.Theme != "" && s.Theme != l.theme {
		if err := l.store.Set(KeyTheme, []byte(s.Theme)); err != nil {
			return err
		}
		l.theme = s.Theme
	}

	return nil
}
