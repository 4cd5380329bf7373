// Package ledger owns the transaction collection and its derived
// aggregates.
package ledger

import (
	"fmt"
	"time"

	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// Ledger holds the in-memory transaction collection. Every mutation
// persists the whole collection before returning, so a single key write
// is the durability boundary.
type Ledger struct {
	store        storage.Store
	log          *activity.Logger
	notifier     notify.Notifier
	now          func() time.Time
	actor        func() string
	transactions []model.Transaction
	lastID       int64
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithActor sets the provider for the acting user's name used in log
// entries.
func WithActor(actor func() string) Option {
	return func(l *Ledger) { l.actor = actor }
}

// New loads any persisted transactions and returns a ready ledger.
func New(store storage.Store, log *activity.Logger, notifier notify.Notifier, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		log:      log,
		notifier: notifier,
		now:      time.Now,
		actor:    func() string { return "Unknown" },
	}
	for _, opt := range opts {
		opt(l)
	}

	store.Get(storage.KeyTransactions, &l.transactions)
	for _, t := range l.transactions {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
	return l
}

// Add validates, assigns a unique id, appends, persists and logs a new
// transaction. A validation failure surfaces as a warning notice and
// leaves the ledger untouched.
func (l *Ledger) Add(txType model.TransactionType, description string, amount float64, category string, date model.Date) (model.Transaction, error) {
	txn := model.Transaction{
		Type:        txType,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}
	if err := txn.Validate(); err != nil {
		l.notifier.Notify(err.Error(), notify.Warning)
		return model.Transaction{}, common.NewUserError("invalid transaction", err)
	}

	// Creation timestamp as id, bumped past the last issued id so rapid
	// successive adds stay unique and sortable.
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	txn.ID = id

	l.transactions = append(l.transactions, txn)
	l.persist()

	l.log.Record("Add Transaction",
		fmt.Sprintf("added %s: %s ($%v)", txn.Type, txn.Description, txn.Amount),
		l.actor())
	l.notifier.Notify("Transaction added successfully!", notify.Success)

	return txn, nil
}

// Delete removes the transaction with the given id. An unknown id is a
// silent no-op: no log entry, no notice.
func (l *Ledger) Delete(id int64) {
	idx := -1
	for i, t := range l.transactions {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	removed := l.transactions[idx]
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	l.persist()

	l.log.Record("Delete Transaction",
		fmt.Sprintf("removed: %s ($%v)", removed.Description, removed.Amount),
		l.actor())
	l.notifier.Notify("Transaction deleted successfully.", notify.Success)
}

// Clear removes every transaction whose date falls inside the named
// period ending now. Transactions dated strictly before the window start
// survive. The action is always logged, even when nothing matched.
func (l *Ledger) Clear(period Period) error {
	l.log.Record("Clear Financial Records",
		fmt.Sprintf("cleared records for period: %s", period),
		l.actor())

	if period == PeriodAll {
		l.transactions = nil
		l.persist()
		l.notifier.Notify("All transaction records have been cleared.", notify.Success)
		return nil
	}

	start, err := period.Start(l.now())
	if err != nil {
		return err
	}

	kept := l.transactions[:0:0]
	for _, t := range l.transactions {
		if t.Date.Before(start) {
			kept = append(kept, t)
		}
	}
	l.transactions = kept
	l.persist()

	l.notifier.Notify("Records for the selected period have been cleared.", notify.Success)
	return nil
}

// Aggregates are the derived totals over the whole ledger.
type Aggregates struct {
	Income   float64
	Expenses float64
	Balance  float64
}

// Aggregates recomputes income, expenses and balance from scratch on
// every call.
func (l *Ledger) Aggregates() Aggregates {
	var agg Aggregates
	for _, t := range l.transactions {
		switch t.Type {
		case model.TypeIncome:
			agg.Income += t.Amount
		case model.TypeExpense:
			agg.Expenses += t.Amount
		}
	}
	agg.Balance = agg.Income - agg.Expenses
	return agg
}

// Transactions returns a snapshot of the collection in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len reports the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Reload drops in-memory state and re-reads the persisted collection.
// Used after a full data wipe.
func (l *Ledger) Reload() {
	l.transactions = nil
	l.lastID = 0
	l.store.Get(storage.KeyTransactions, &l.transactions)
	for _, t := range l.transactions {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
}

func (l *Ledger) persist() {
	if l.transactions == nil {
		l.store.Set(storage.KeyTransactions, []model.Transaction{})
		return
	}
	l.store.Set(storage.KeyTransactions, l.transactions)
}
