package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

type ledgerFixture struct {
	ledger   *Ledger
	store    *storage.MemoryStore
	log      *activity.Logger
	notifier *notify.Recorder
}

func createTestLedger(t *testing.T, now time.Time) *ledgerFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))
	notifier := &notify.Recorder{}
	l := New(store, log, notifier, WithNow(func() time.Time { return now }))
	return &ledgerFixture{ledger: l, store: store, log: log, notifier: notifier}
}

func TestLedger_AddAndAggregates(t *testing.T) {
	fix := createTestLedger(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	_, err := fix.ledger.Add(model.TypeIncome, "Paycheck", 3000, "Salary", model.NewDate(2024, 3, 1))
	require.NoError(t, err)
	_, err = fix.ledger.Add(model.TypeExpense, "Groceries", 120.50, "Food", model.NewDate(2024, 3, 2))
	require.NoError(t, err)
	_, err = fix.ledger.Add(model.TypeExpense, "Bus pass", 60, "Transport", model.NewDate(2024, 3, 3))
	require.NoError(t, err)

	agg := fix.ledger.Aggregates()
	assert.InDelta(t, 3000, agg.Income, 0.001)
	assert.InDelta(t, 180.50, agg.Expenses, 0.001)
	assert.InDelta(t, agg.Income-agg.Expenses, agg.Balance, 0.001)

	// One log entry per add.
	assert.Equal(t, 3, fix.log.Len())
	assert.Equal(t, "Transaction added successfully!", fix.notifier.Last().Message)

	// Collection persisted as a whole.
	var persisted []model.Transaction
	require.True(t, fix.store.Get(storage.KeyTransactions, &persisted))
	assert.Len(t, persisted, 3)
}

func TestLedger_BalanceInvariant(t *testing.T) {
	fix := createTestLedger(t, time.Now())

	date := model.NewDate(2024, 1, 1)
	txns := make([]model.Transaction, 0, 6)
	amounts := []float64{10, 22.5, 7, 300, 0.01, 55}
	for i, amount := range amounts {
		txType := model.TypeIncome
		if i%2 == 0 {
			txType = model.TypeExpense
		}
		txn, err := fix.ledger.Add(txType, "txn", amount, "Other", date)
		require.NoError(t, err)
		txns = append(txns, txn)

		agg := fix.ledger.Aggregates()
		assert.InDelta(t, agg.Income-agg.Expenses, agg.Balance, 0.0001)
	}

	for _, txn := range txns[:3] {
		fix.ledger.Delete(txn.ID)
		agg := fix.ledger.Aggregates()
		assert.InDelta(t, agg.Income-agg.Expenses, agg.Balance, 0.0001)
	}
}

func TestLedger_AddAssignsUniqueIDsUnderRapidCalls(t *testing.T) {
	// Fixed clock: every add sees the same UnixMilli.
	fix := createTestLedger(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 10; i++ {
		txn, err := fix.ledger.Add(model.TypeExpense, "rapid", 1, "Food", model.NewDate(2024, 3, 15))
		require.NoError(t, err)
		assert.False(t, seen[txn.ID], "duplicate id %d", txn.ID)
		assert.Greater(t, txn.ID, prev, "ids must stay monotonic")
		seen[txn.ID] = true
		prev = txn.ID
	}
}

func TestLedger_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    string
		txType      model.TransactionType
		amount      float64
	}{
		{name: "zero amount", txType: model.TypeExpense, description: "x", amount: 0, category: "Food"},
		{name: "negative amount", txType: model.TypeExpense, description: "x", amount: -5, category: "Food"},
		{name: "empty description", txType: model.TypeExpense, description: "  ", amount: 5, category: "Food"},
		{name: "empty category", txType: model.TypeExpense, description: "x", amount: 5, category: ""},
		{name: "bad type", txType: "transfer", description: "x", amount: 5, category: "Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix := createTestLedger(t, time.Now())

			_, err := fix.ledger.Add(tt.txType, tt.description, tt.amount, tt.category, model.NewDate(2024, 1, 1))
			require.Error(t, err)

			assert.Equal(t, 0, fix.ledger.Len(), "rejected input must not mutate")
			assert.Equal(t, 0, fix.log.Len(), "rejected input must not log")
			assert.Equal(t, notify.Warning, fix.notifier.Last().Severity)
		})
	}
}

func TestLedger_DeleteUnknownIDIsSilentNoOp(t *testing.T) {
	fix := createTestLedger(t, time.Now())

	_, err := fix.ledger.Add(model.TypeExpense, "Coffee", 4.50, "Food", model.NewDate(2024, 1, 1))
	require.NoError(t, err)
	logsBefore := fix.log.Len()
	noticesBefore := fix.notifier.Count()

	fix.ledger.Delete(999999)

	assert.Equal(t, 1, fix.ledger.Len())
	assert.Equal(t, logsBefore, fix.log.Len())
	assert.Equal(t, noticesBefore, fix.notifier.Count())
}

func TestLedger_Delete(t *testing.T) {
	fix := createTestLedger(t, time.Now())

	txn, err := fix.ledger.Add(model.TypeExpense, "Coffee", 4.50, "Food", model.NewDate(2024, 1, 1))
	require.NoError(t, err)

	fix.ledger.Delete(txn.ID)

	assert.Equal(t, 0, fix.ledger.Len())
	entries := fix.log.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Delete Transaction", entries[0].Type)
}

func TestLedger_ClearPeriods(t *testing.T) {
	// Friday 2024-03-15.
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)

	seed := []struct {
		date model.Date
		desc string
	}{
		{model.NewDate(2023, 12, 31), "last year"},
		{model.NewDate(2024, 2, 29), "leap day"},
		{model.NewDate(2024, 3, 1), "month start"},
		{model.NewDate(2024, 3, 9), "before sunday"},
		{model.NewDate(2024, 3, 10), "sunday"},
		{model.NewDate(2024, 3, 14), "yesterday"},
		{model.NewDate(2024, 3, 15), "today"},
	}

	tests := []struct {
		name     string
		period   Period
		survived []string
	}{
		{
			name:     "day keeps everything before today",
			period:   PeriodDay,
			survived: []string{"last year", "leap day", "month start", "before sunday", "sunday", "yesterday"},
		},
		{
			name:     "week clears back to most recent sunday",
			period:   PeriodWeek,
			survived: []string{"last year", "leap day", "month start", "before sunday"},
		},
		{
			name:     "month clears back to the 1st, keeps leap day",
			period:   PeriodMonth,
			survived: []string{"last year", "leap day"},
		},
		{
			name:     "year clears back to january 1st",
			period:   PeriodYear,
			survived: []string{"last year"},
		},
		{
			name:     "all clears everything",
			period:   PeriodAll,
			survived: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix := createTestLedger(t, now)
			for _, s := range seed {
				_, err := fix.ledger.Add(model.TypeExpense, s.desc, 10, "Food", s.date)
				require.NoError(t, err)
			}
			logsBefore := fix.log.Len()

			require.NoError(t, fix.ledger.Clear(tt.period))

			var got []string
			for _, txn := range fix.ledger.Transactions() {
				got = append(got, txn.Description)
			}
			assert.Equal(t, tt.survived, got)

			// A clear always logs, even when nothing matched.
			assert.Equal(t, logsBefore+1, fix.log.Len())
		})
	}
}

func TestLedger_ClearAlwaysLogsEvenWhenEmpty(t *testing.T) {
	fix := createTestLedger(t, time.Now())

	require.NoError(t, fix.ledger.Clear(PeriodMonth))

	entries := fix.log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Clear Financial Records", entries[0].Type)
	assert.Contains(t, entries[0].Details, "cleared records for period: month")
}

func TestLedger_LoadsPersistedState(t *testing.T) {
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))
	notifier := &notify.Recorder{}

	first := New(store, log, notifier)
	txn, err := first.Add(model.TypeIncome, "Paycheck", 1000, "Salary", model.NewDate(2024, 1, 1))
	require.NoError(t, err)

	second := New(store, log, notifier)
	require.Equal(t, 1, second.Len())

	// New ids must not collide with persisted history.
	again, err := second.Add(model.TypeIncome, "Bonus", 50, "Bonus", model.NewDate(2024, 1, 2))
	require.NoError(t, err)
	assert.Greater(t, again.ID, txn.ID)
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "MONTH", " year ", "all"} {
		_, err := ParsePeriod(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParsePeriod("fortnight")
	assert.Error(t, err)
}
