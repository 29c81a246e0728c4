package ledger

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Syabadriel/financeTrack/internal/kv"
)

// Keys the collections are persisted under.
const (
	KeyTransactions  = "transactions"
	KeyDebts         = "debts"
	KeyBudgetTargets = "budgetTargets"
	KeyTheme         = "theme"
)

// record is an entity with an ID that a Collection can hold.
type record[T any] interface {
	GetID() int64
	WithID(id int64) T
}

// Collection is an ordered list of records that is written through to a
// kv.Store on every change.
//
// Collection is not safe for concurrent use, the Ledger serializes access.
type Collection[T record[T]] struct {
	key   string
	store kv.Store
	ids   *idSource
	items []T
}

func newCollection[T record[T]](store kv.Store, key string, ids *idSource) *Collection[T] {
	return &Collection[T]{
		key:   key,
		store: store,
		ids:   ids,
		items: []T{},
	}
}

// load reads the collection from the store. A key that has never been
// written is an empty collection.
func (c *Collection[T]) load() error {
	data, ok, err := c.store.Get(c.key)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.key, err)
	}

	items := []T{}
	if ok && len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorruptData, c.key, err)
		}

		// "null" decodes to a nil slice
		if items == nil {
			items = []T{}
		}
	}

	for _, item := range items {
		c.ids.observe(item.GetID())
	}

	c.items = items
	return nil
}

// All returns a copy of all records in insertion order.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.items)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Find returns the record with the given ID.
func (c *Collection[T]) Find(id int64) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}

	return c.items[i], true
}

// Add assigns a new ID to the record, appends it and persists the collection.
func (c *Collection[T]) Add(item T) (T, error) {
	item = item.WithID(c.ids.next())

	err := c.commit(append(slices.Clone(c.items), item))
	if err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

// Remove deletes the record with the given ID. Unknown IDs are ignored and
// do not touch the store.
func (c *Collection[T]) Remove(id int64) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}

	return c.commit(slices.Delete(slices.Clone(c.items), i, i+1))
}

// Replace removes the record with the given ID and appends item with a new
// ID in a single write. It reports false if there is no record with the ID.
func (c *Collection[T]) Replace(id int64, item T) (T, bool, error) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false, nil
	}

	item = item.WithID(c.ids.next())
	items := slices.Delete(slices.Clone(c.items), i, i+1)

	err := c.commit(append(items, item))
	if err != nil {
		var zero T
		return zero, true, err
	}

	return item, true, nil
}

// ReplaceAll replaces the whole collection. Records without an ID get one.
func (c *Collection[T]) ReplaceAll(items []T) error {
	items = slices.Clone(items)
	if items == nil {
		items = []T{}
	}

	for _, item := range items {
		c.ids.observe(item.GetID())
	}

	for i, item := range items {
		if item.GetID() == 0 {
			items[i] = item.WithID(c.ids.next())
		}
	}

	return c.commit(items)
}

func (c *Collection[T]) index(id int64) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.GetID() == id
	})
}

// commit persists items and makes them the current state. The current
// state is only replaced once the store accepted the write.
func (c *Collection[T]) commit(items []T) error {
	if err := save(c.store, c.key, items); err != nil {
		return err
	}

	c.items = items
	return nil
}

// save writes a JSON encoded value to the store.
func save(store kv.Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrPersistence, key, err)
	}

	if err := store.Set(key, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersistence, key, err)
	}

	return nil
}
