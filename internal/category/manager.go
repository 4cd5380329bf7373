// Package category manages the expense and income category sets and the
// per-category budget limits.
package category

import (
	"fmt"
	"strings"

	"github.com/wolferonic/swiftbudget/internal/activity"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// Manager owns both category sets and the budget map. Each set is an
// ordered list whose leading entries are the fixed defaults; user-added
// names follow and are the only ones that can be deleted.
type Manager struct {
	store    storage.Store
	log      *activity.Logger
	notifier notify.Notifier
	actor    func() string
	expense  []string
	income   []string
	budgets  model.Budgets
}

// Option customizes a Manager.
type Option func(*Manager)

// WithActor sets the provider for the acting user's name used in log
// entries.
func WithActor(actor func() string) Option {
	return func(m *Manager) { m.actor = actor }
}

// NewManager loads persisted sets and budgets, falling back to the
// defaults on a fresh install. Expense categories missing a budget entry
// are backfilled with 0.
func NewManager(store storage.Store, log *activity.Logger, notifier notify.Notifier, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		log:      log,
		notifier: notifier,
		actor:    func() string { return "Unknown" },
	}
	for _, opt := range opts {
		opt(m)
	}

	if !store.Get(storage.KeyExpenseCategories, &m.expense) || m.expense == nil {
		m.expense = model.DefaultExpenseCategories()
	}
	if !store.Get(storage.KeyIncomeCategories, &m.income) || m.income == nil {
		m.income = model.DefaultIncomeCategories()
	}

	if store.Get(storage.KeyBudgets, &m.budgets) && m.budgets != nil {
		for _, cat := range m.expense {
			if _, ok := m.budgets[cat]; !ok {
				m.budgets[cat] = 0
			}
		}
	} else {
		m.budgets = model.DefaultBudgets()
	}

	return m
}

// ExpenseCategories returns the ordered expense set.
func (m *Manager) ExpenseCategories() []string {
	out := make([]string, len(m.expense))
	copy(out, m.expense)
	return out
}

// IncomeCategories returns the ordered income set.
func (m *Manager) IncomeCategories() []string {
	out := make([]string, len(m.income))
	copy(out, m.income)
	return out
}

// Budgets returns a copy of the budget map.
func (m *Manager) Budgets() model.Budgets {
	return m.budgets.Clone()
}

// AddExpense appends a custom expense category and seeds its budget
// entry. Duplicate or empty names are rejected with a warning notice and
// no mutation.
func (m *Manager) AddExpense(name string, budget float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		m.notifier.Notify("Category name cannot be empty.", notify.Warning)
		return common.ErrEmptyName
	}
	if contains(m.expense, name) {
		m.notifier.Notify("This category already exists.", notify.Warning)
		return common.ErrDuplicateEntry
	}

	m.expense = append(m.expense, name)
	m.budgets[name] = budget
	m.persistExpense()
	m.persistBudgets()

	m.log.Record("Add Custom Expense Category",
		fmt.Sprintf("added category: %s with budget $%v", name, budget),
		m.actor())
	m.notifier.Notify("Custom expense category added!", notify.Success)
	return nil
}

// DeleteExpense removes a custom expense category and its budget entry.
// Default categories reject with a distinct error notice. Transactions
// already tagged with the name keep their orphaned reference.
func (m *Manager) DeleteExpense(name string) error {
	if contains(model.DefaultExpenseCategories(), name) {
		m.notifier.Notify("Default categories cannot be deleted.", notify.Error)
		return fmt.Errorf("category %q: default categories cannot be deleted", name)
	}

	m.expense = remove(m.expense, name)
	delete(m.budgets, name)
	m.persistExpense()
	m.persistBudgets()

	m.log.Record("Delete Custom Expense Category",
		fmt.Sprintf("deleted category: %s", name),
		m.actor())
	m.notifier.Notify("Custom expense category removed.", notify.Success)
	return nil
}

// AddIncome appends a custom income category. Duplicate or empty names
// are rejected with a warning notice and no mutation.
func (m *Manager) AddIncome(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		m.notifier.Notify("Category name cannot be empty.", notify.Warning)
		return common.ErrEmptyName
	}
	if contains(m.income, name) {
		m.notifier.Notify("This income category already exists.", notify.Warning)
		return common.ErrDuplicateEntry
	}

	m.income = append(m.income, name)
	m.persistIncome()

	m.log.Record("Add Custom Income Category",
		fmt.Sprintf("added category: %s", name),
		m.actor())
	m.notifier.Notify("Custom income category added!", notify.Success)
	return nil
}

// DeleteIncome removes a custom income category. Default categories
// reject with a distinct error notice.
func (m *Manager) DeleteIncome(name string) error {
	if contains(model.DefaultIncomeCategories(), name) {
		m.notifier.Notify("Default income categories cannot be deleted.", notify.Error)
		return fmt.Errorf("category %q: default categories cannot be deleted", name)
	}

	m.income = remove(m.income, name)
	m.persistIncome()

	m.log.Record("Delete Custom Income Category",
		fmt.Sprintf("deleted category: %s", name),
		m.actor())
	m.notifier.Notify("Custom income category removed.", notify.Success)
	return nil
}

// SetBudgets replaces the budget map wholesale.
func (m *Manager) SetBudgets(budgets model.Budgets) {
	m.budgets = budgets.Clone()
	m.persistBudgets()

	m.log.Record("Set Category Budget Limit", "Budgets updated.", m.actor())
	m.notifier.Notify("Budgets saved successfully!", notify.Success)
}

// Reload drops in-memory state and re-derives it from the store. Used
// after a full data wipe, where it restores the defaults.
func (m *Manager) Reload() {
	m.expense = nil
	m.income = nil
	m.budgets = nil

	if !m.store.Get(storage.KeyExpenseCategories, &m.expense) || m.expense == nil {
		m.expense = model.DefaultExpenseCategories()
	}
	if !m.store.Get(storage.KeyIncomeCategories, &m.income) || m.income == nil {
		m.income = model.DefaultIncomeCategories()
	}
	if !m.store.Get(storage.KeyBudgets, &m.budgets) || m.budgets == nil {
		m.budgets = model.DefaultBudgets()
	}
}

func (m *Manager) persistExpense() {
	m.store.Set(storage.KeyExpenseCategories, m.expense)
}

func (m *Manager) persistIncome() {
	m.store.Set(storage.KeyIncomeCategories, m.income)
}

func (m *Manager) persistBudgets() {
	m.store.Set(storage.KeyBudgets, m.budgets)
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func remove(list []string, name string) []string {
	out := list[:0:0]
	for _, item := range list {
		if item != name {
			out = append(out, item)
		}
	}
	return out
}
