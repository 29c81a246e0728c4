// Package ledger owns the transactions, debts and budget targets and exposes
// the operations a user interface performs on them.
//
// Every command validates its input, changes the in-memory state and writes
// the affected collection to the kv.Store before it returns. Reads are
// computed from the full collections on every call.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Syabadriel/financeTrack/internal/balance"
	"github.com/Syabadriel/financeTrack/internal/budget"
	"github.com/Syabadriel/financeTrack/internal/filter"
	"github.com/Syabadriel/financeTrack/internal/kv"
	"github.com/Syabadriel/financeTrack/internal/models"
	"github.com/Syabadriel/financeTrack/internal/summary"
	"github.com/Syabadriel/financeTrack/internal/types"
	"github.com/rs/zerolog/log"
)

// Ledger is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	store kv.Store
	now   func() time.Time
	ids   *idSource
	theme models.Theme

	transactions  *Collection[models.Transaction]
	debts         *Collection[models.Debt]
	budgetTargets *Collection[models.BudgetTarget]
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the function used to determine the current time. It
// defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns a Ledger with the state loaded from the store.
func New(store kv.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store: store,
		now:   time.Now,
		theme: models.ThemeLight,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.ids = &idSource{now: l.now}
	l.transactions = newCollection[models.Transaction](store, KeyTransactions, l.ids)
	l.debts = newCollection[models.Debt](store, KeyDebts, l.ids)
	l.budgetTargets = newCollection[models.BudgetTarget](store, KeyBudgetTargets, l.ids)

	for _, load := range []func() error{l.transactions.load, l.debts.load, l.budgetTargets.load, l.loadTheme} {
		if err := load(); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Int("transactions", l.transactions.Len()).
		Int("debts", l.debts.Len()).
		Int("budgetTargets", l.budgetTargets.Len()).
		Str("theme", string(l.theme)).
		Msg("Ledger loaded")

	return l, nil
}

// Ping verifies that the store is reachable.
func (l *Ledger) Ping() error {
	return l.store.Ping()
}

// Today returns the current date.
func (l *Ledger) Today() types.Date {
	return types.DateOf(l.now())
}

// orToday returns d, or today if d is the zero date.
func (l *Ledger) orToday(d types.Date) types.Date {
	if d.IsZero() {
		return l.Today()
	}
	return d
}

// Balances derives the account balances from all transactions and debts.
func (l *Ledger) Balances() balance.Balances {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return balance.Calculate(l.transactions.All(), l.debts.All())
}

// Transactions returns all transactions in the order they were recorded.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.transactions.All()
}

// FilteredTransactions returns the transactions matching the criteria in
// the order they were recorded.
func (l *Ledger) FilteredTransactions(criteria filter.Criteria) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return filter.Apply(l.transactions.All(), criteria)
}

// FindTransaction returns the transaction with the given ID.
func (l *Ledger) FindTransaction(id int64) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.transactions.Find(id)
	if !ok {
		return models.Transaction{}, models.NotFound("transaction", id)
	}

	return t, nil
}

// Debts returns all outstanding debts.
func (l *Ledger) Debts() []models.Debt {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.debts.All()
}

// FindDebt returns the debt with the given ID.
func (l *Ledger) FindDebt(id int64) (models.Debt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	d, ok := l.debts.Find(id)
	if !ok {
		return models.Debt{}, models.NotFound("debt", id)
	}

	return d, nil
}

// BudgetTargets returns all budget targets.
func (l *Ledger) BudgetTargets() []models.BudgetTarget {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.budgetTargets.All()
}

// FindBudgetTarget returns the budget target with the given ID.
func (l *Ledger) FindBudgetTarget(id int64) (models.BudgetTarget, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.budgetTargets.Find(id)
	if !ok {
		return models.BudgetTarget{}, models.NotFound("budget target", id)
	}

	return b, nil
}

// WindowSummary summarizes the window of the given kind that contains ref.
// A zero ref means today.
func (l *Ledger) WindowSummary(kind summary.Kind, ref types.Date) (summary.Summary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return summary.Window(kind, l.transactions.All(), l.orToday(ref))
}

// Daily summarizes a single day. A zero date means today.
func (l *Ledger) Daily(date types.Date) summary.Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return summary.Daily(l.transactions.All(), l.orToday(date))
}

// CategoryRollup returns the income and expense totals per category.
func (l *Ledger) CategoryRollup() []summary.CategoryTotal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return summary.Categories(l.transactions.All())
}

// BudgetStatus evaluates all budget targets for the periods containing ref.
// A zero ref means today.
func (l *Ledger) BudgetStatus(ref types.Date) []budget.Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return budget.EvaluateAll(l.budgetTargets.All(), l.transactions.All(), l.orToday(ref))
}

// AddTransaction records a new income or expense.
func (l *Ledger) AddTransaction(in models.TransactionInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := in.Model(l.Today())
	if err != nil {
		return models.Transaction{}, err
	}

	t, err = l.transactions.Add(t)
	if err != nil {
		return models.Transaction{}, l.persistenceFailed("add transaction", err)
	}

	log.Debug().Int64("id", t.ID).Str("type", string(t.Type)).Str("amount", t.Amount.String()).Msg("Transaction added")
	return t, nil
}

// AddTransfer records a transfer between the two accounts.
func (l *Ledger) AddTransfer(in models.TransferInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := in.Model(l.Today())
	if err != nil {
		return models.Transaction{}, err
	}

	t, err = l.transactions.Add(t)
	if err != nil {
		return models.Transaction{}, l.persistenceFailed("add transfer", err)
	}

	log.Debug().Int64("id", t.ID).Str("from", string(t.From)).Str("to", string(t.To)).Str("amount", t.Amount.String()).Msg("Transfer added")
	return t, nil
}

// AddDebt records a new debt.
func (l *Ledger) AddDebt(in models.DebtInput) (models.Debt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, err := in.Model(l.Today())
	if err != nil {
		return models.Debt{}, err
	}

	d, err = l.debts.Add(d)
	if err != nil {
		return models.Debt{}, l.persistenceFailed("add debt", err)
	}

	log.Debug().Int64("id", d.ID).Str("amount", d.Amount.String()).Msg("Debt added")
	return d, nil
}

// AddBudgetTarget records a new budget target.
func (l *Ledger) AddBudgetTarget(in models.BudgetTargetInput) (models.BudgetTarget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, err := in.Model()
	if err != nil {
		return models.BudgetTarget{}, err
	}

	b, err = l.budgetTargets.Add(b)
	if err != nil {
		return models.BudgetTarget{}, l.persistenceFailed("add budget target", err)
	}

	log.Debug().Int64("id", b.ID).Str("category", b.Category).Str("period", string(b.Period)).Msg("Budget target added")
	return b, nil
}

// DeleteTransaction deletes a transaction.
func (l *Ledger) DeleteTransaction(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return remove(l, l.transactions, "transaction", id)
}

// DeleteDebt deletes a debt.
func (l *Ledger) DeleteDebt(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return remove(l, l.debts, "debt", id)
}

// PayDebt marks a debt as paid. Paid debts are not kept.
func (l *Ledger) PayDebt(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return remove(l, l.debts, "debt", id)
}

// DeleteBudgetTarget deletes a budget target.
func (l *Ledger) DeleteBudgetTarget(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return remove(l, l.budgetTargets, "budget target", id)
}

// remove deletes a record after checking that it exists.
func remove[T record[T]](l *Ledger, c *Collection[T], resource string, id int64) error {
	if _, ok := c.Find(id); !ok {
		return models.NotFound(resource, id)
	}

	if err := c.Remove(id); err != nil {
		return l.persistenceFailed("delete "+resource, err)
	}

	log.Debug().Int64("id", id).Str("resource", resource).Msg("Deleted")
	return nil
}

// replace swaps a record for its edited version, which gets a new ID.
func replace[T record[T]](l *Ledger, c *Collection[T], resource string, id int64, item T) (T, error) {
	item, ok, err := c.Replace(id, item)
	if !ok {
		return item, models.NotFound(resource, id)
	}

	if err != nil {
		return item, l.persistenceFailed("edit "+resource, err)
	}

	log.Debug().Int64("id", id).Int64("newID", item.GetID()).Str("resource", resource).Msg("Edited")
	return item, nil
}

// EditTransaction replaces an income or expense. The edited transaction
// gets a new ID.
func (l *Ledger) EditTransaction(id int64, in models.TransactionInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.transactions.Find(id)
	if !ok {
		return models.Transaction{}, models.NotFound("transaction", id)
	}

	if existing.IsTransfer() {
		return models.Transaction{}, models.ErrTransferNotEditableHere
	}

	t, err := in.Model(l.Today())
	if err != nil {
		return models.Transaction{}, err
	}

	return replace(l, l.transactions, "transaction", id, t)
}

// EditTransfer replaces a transfer. The edited transfer gets a new ID.
func (l *Ledger) EditTransfer(id int64, in models.TransferInput) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, ok := l.transactions.Find(id)
	if !ok {
		return models.Transaction{}, models.NotFound("transaction", id)
	}

	if !existing.IsTransfer() {
		return models.Transaction{}, models.ErrTransactionNotTransfer
	}

	t, err := in.Model(l.Today())
	if err != nil {
		return models.Transaction{}, err
	}

	return replace(l, l.transactions, "transaction", id, t)
}

// EditDebt replaces a debt. The edited debt gets a new ID.
func (l *Ledger) EditDebt(id int64, in models.DebtInput) (models.Debt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.debts.Find(id); !ok {
		return models.Debt{}, models.NotFound("debt", id)
	}

	d, err := in.Model(l.Today())
	if err != nil {
		return models.Debt{}, err
	}

	return replace(l, l.debts, "debt", id, d)
}

// EditBudgetTarget replaces a budget target. The edited target gets a new ID.
func (l *Ledger) EditBudgetTarget(id int64, in models.BudgetTargetInput) (models.BudgetTarget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.budgetTargets.Find(id); !ok {
		return models.BudgetTarget{}, models.NotFound("budget target", id)
	}

	b, err := in.Model()
	if err != nil {
		return models.BudgetTarget{}, err
	}

	return replace(l, l.budgetTargets, "budget target", id, b)
}

// persistenceFailed logs a failed write and returns the error.
func (l *Ledger) persistenceFailed(operation string, err error) error {
	log.Error().Err(err).Str("operation", operation).Msg("Ledger")

	if !errors.Is(err, ErrPersistence) {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return err
}
