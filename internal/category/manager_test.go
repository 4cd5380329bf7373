package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

type managerFixture struct {
	manager  *Manager
	store    *storage.MemoryStore
	log      *activity.Logger
	notifier *notify.Recorder
}

func createTestManager(t *testing.T) *managerFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))
	notifier := &notify.Recorder{}
	m := NewManager(store, log, notifier)
	return &managerFixture{manager: m, store: store, log: log, notifier: notifier}
}

func TestNewManager_Defaults(t *testing.T) {
	fix := createTestManager(t)

	assert.Equal(t, model.DefaultExpenseCategories(), fix.manager.ExpenseCategories())
	assert.Equal(t, model.DefaultIncomeCategories(), fix.manager.IncomeCategories())

	budgets := fix.manager.Budgets()
	for _, cat := range model.DefaultExpenseCategories() {
		assert.InDelta(t, model.DefaultBudgetAmount, budgets[cat], 0.001, cat)
	}
}

func TestNewManager_BackfillsMissingBudgetEntries(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set(storage.KeyExpenseCategories, append(model.DefaultExpenseCategories(), "Pets"))
	store.Set(storage.KeyBudgets, model.Budgets{"Food": 300})

	m := NewManager(store, activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{})), notify.Discard)

	budgets := m.Budgets()
	assert.InDelta(t, 300, budgets["Food"], 0.001)
	assert.InDelta(t, 0, budgets["Pets"], 0.001, "missing entries backfill as no-budget")
}

func TestManager_AddExpense(t *testing.T) {
	fix := createTestManager(t)

	require.NoError(t, fix.manager.AddExpense("Pets", 150))

	assert.Contains(t, fix.manager.ExpenseCategories(), "Pets")
	assert.InDelta(t, 150, fix.manager.Budgets()["Pets"], 0.001)
	assert.Equal(t, "Custom expense category added!", fix.notifier.Last().Message)

	entries := fix.log.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Add Custom Expense Category", entries[0].Type)
}

func TestManager_AddExpenseDuplicateRejectsOnce(t *testing.T) {
	fix := createTestManager(t)

	require.NoError(t, fix.manager.AddExpense("Pets", 0))
	noticesBefore := fix.notifier.Count()

	err := fix.manager.AddExpense("Pets", 0)
	require.Error(t, err)

	occurrences := 0
	for _, cat := range fix.manager.ExpenseCategories() {
		if cat == "Pets" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "set must hold exactly one occurrence")
	assert.Equal(t, noticesBefore+1, fix.notifier.Count(), "exactly one rejection notice")
	assert.Equal(t, notify.Warning, fix.notifier.Last().Severity)
	assert.Equal(t, "This category already exists.", fix.notifier.Last().Message)
}

func TestManager_AddExpenseCaseSensitive(t *testing.T) {
	fix := createTestManager(t)

	// "food" is not "Food": exact-match duplicates only.
	require.NoError(t, fix.manager.AddExpense("food", 0))
	assert.Contains(t, fix.manager.ExpenseCategories(), "food")
}

func TestManager_AddExpenseEmptyName(t *testing.T) {
	fix := createTestManager(t)

	err := fix.manager.AddExpense("   ", 50)
	require.Error(t, err)
	assert.Equal(t, len(model.DefaultExpenseCategories()), len(fix.manager.ExpenseCategories()))
	assert.Equal(t, notify.Warning, fix.notifier.Last().Severity)
}

func TestManager_DeleteExpenseDefaultAlwaysRejects(t *testing.T) {
	fix := createTestManager(t)

	for _, name := range model.DefaultExpenseCategories() {
		err := fix.manager.DeleteExpense(name)
		require.Error(t, err, name)
		assert.Contains(t, fix.manager.ExpenseCategories(), name)
	}
	assert.Equal(t, notify.Error, fix.notifier.Last().Severity)
	assert.Equal(t, "Default categories cannot be deleted.", fix.notifier.Last().Message)
}

func TestManager_DeleteExpenseRemovesBudgetEntry(t *testing.T) {
	fix := createTestManager(t)

	require.NoError(t, fix.manager.AddExpense("Pets", 150))
	require.NoError(t, fix.manager.DeleteExpense("Pets"))

	assert.NotContains(t, fix.manager.ExpenseCategories(), "Pets")
	_, ok := fix.manager.Budgets()["Pets"]
	assert.False(t, ok, "budget entry must go with the category")
}

func TestManager_IncomeSet(t *testing.T) {
	fix := createTestManager(t)

	require.NoError(t, fix.manager.AddIncome("Royalties"))
	assert.Contains(t, fix.manager.IncomeCategories(), "Royalties")

	err := fix.manager.AddIncome("Royalties")
	require.Error(t, err)
	assert.Equal(t, "This income category already exists.", fix.notifier.Last().Message)

	err = fix.manager.DeleteIncome("Salary")
	require.Error(t, err, "default income categories are protected")

	require.NoError(t, fix.manager.DeleteIncome("Royalties"))
	assert.NotContains(t, fix.manager.IncomeCategories(), "Royalties")
}

func TestManager_SetBudgets(t *testing.T) {
	fix := createTestManager(t)

	next := model.Budgets{"Food": 250, "Rent": 1200}
	fix.manager.SetBudgets(next)

	assert.Equal(t, next, fix.manager.Budgets())

	var persisted model.Budgets
	require.True(t, fix.store.Get(storage.KeyBudgets, &persisted))
	assert.Equal(t, next, persisted)

	entries := fix.log.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "Set Category Budget Limit", entries[0].Type)
	assert.Equal(t, "Budgets saved successfully!", fix.notifier.Last().Message)
}

func TestManager_PersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemoryStore()
	log := activity.NewLogger(store, activity.WithDevice(activity.DeviceInfo{}))

	first := NewManager(store, log, notify.Discard)
	require.NoError(t, first.AddExpense("Pets", 150))

	second := NewManager(store, log, notify.Discard)
	assert.Contains(t, second.ExpenseCategories(), "Pets")
	assert.InDelta(t, 150, second.Budgets()["Pets"], 0.001)
}
