package model

// DefaultBudgetAmount is the budget every default expense category starts
// with on a fresh install.
const DefaultBudgetAmount = 500

// defaultExpenseCategories and defaultIncomeCategories are the fixed,
// non-deletable portion of each category set.
var (
	defaultExpenseCategories = []string{
		"Food", "Transport", "Bills", "Entertainment", "Health",
		"Shopping", "Accessories", "Rent", "Other",
	}
	defaultIncomeCategories = []string{
		"Salary", "Bonus", "Gift", "Investment", "Freelance Job",
		"Hustle", "Other",
	}
)

// DefaultExpenseCategories returns a fresh copy of the built-in expense
// category list.
func DefaultExpenseCategories() []string {
	out := make([]string, len(defaultExpenseCategories))
	copy(out, defaultExpenseCategories)
	return out
}

// DefaultIncomeCategories returns a fresh copy of the built-in income
// category list.
func DefaultIncomeCategories() []string {
	out := make([]string, len(defaultIncomeCategories))
	copy(out, defaultIncomeCategories)
	return out
}

// Budgets maps an expense category name to its spending limit. A missing
// entry means no budget (treated as 0).
type Budgets map[string]float64

// DefaultBudgets returns the budget map for a fresh install: every default
// expense category capped at DefaultBudgetAmount.
func DefaultBudgets() Budgets {
	budgets := make(Budgets, len(defaultExpenseCategories))
	for _, cat := range defaultExpenseCategories {
		budgets[cat] = DefaultBudgetAmount
	}
	return budgets
}

// Clone returns an independent copy of the budget map.
func (b Budgets) Clone() Budgets {
	out := make(Budgets, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
