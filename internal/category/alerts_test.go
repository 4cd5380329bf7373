package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolferonic/swiftbudget/internal/model"
)

func expenseTxn(category string, amount float64) model.Transaction {
	return model.Transaction{
		Type:        model.TypeExpense,
		Description: category,
		Category:    category,
		Amount:      amount,
		Date:        model.NewDate(2024, 3, 1),
	}
}

func TestBudgetAlerts_ZeroBudgetNeverAlerts(t *testing.T) {
	transactions := []model.Transaction{
		expenseTxn("Food", 85),
		expenseTxn("Rent", 500),
	}
	budgets := model.Budgets{"Food": 100, "Rent": 0}

	alerts := BudgetAlerts(transactions, budgets)

	require.Len(t, alerts, 1, "Rent is excluded because budget <= 0")
	assert.Equal(t, "Food", alerts[0].Category)
	assert.Equal(t, LevelWarning, alerts[0].Level)
	assert.InDelta(t, 85, alerts[0].Percentage, 0.001)
	assert.InDelta(t, 85, alerts[0].Spent, 0.001)
	assert.InDelta(t, 100, alerts[0].Budget, 0.001)
}

func TestBudgetAlerts_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		wantLevel AlertLevel
		spent     float64
		budget    float64
		wantAlert bool
	}{
		{name: "below threshold", spent: 79.99, budget: 100, wantAlert: false},
		{name: "at threshold", spent: 80, budget: 100, wantAlert: true, wantLevel: LevelWarning},
		{name: "just under limit", spent: 99.99, budget: 100, wantAlert: true, wantLevel: LevelWarning},
		{name: "at limit", spent: 100, budget: 100, wantAlert: true, wantLevel: LevelDanger},
		{name: "over limit", spent: 150, budget: 100, wantAlert: true, wantLevel: LevelDanger},
		{name: "negative budget", spent: 500, budget: -10, wantAlert: false},
		{name: "no spend", spent: 0, budget: 100, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transactions []model.Transaction
			if tt.spent > 0 {
				transactions = append(transactions, expenseTxn("Food", tt.spent))
			}

			alerts := BudgetAlerts(transactions, model.Budgets{"Food": tt.budget})

			if !tt.wantAlert {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.wantLevel, alerts[0].Level)
		})
	}
}

func TestBudgetAlerts_IgnoresIncomeAndOtherCategories(t *testing.T) {
	transactions := []model.Transaction{
		expenseTxn("Food", 50),
		{
			Type:        model.TypeIncome,
			Description: "refund",
			Category:    "Food",
			Amount:      1000,
			Date:        model.NewDate(2024, 3, 1),
		},
		expenseTxn("Transport", 40),
	}
	budgets := model.Budgets{"Food": 100}

	alerts := BudgetAlerts(transactions, budgets)
	assert.Empty(t, alerts, "income must not count as spend; unbudgeted categories are ignored")
}

func TestBudgetAlerts_OrderedByCategory(t *testing.T) {
	transactions := []model.Transaction{
		expenseTxn("Transport", 95),
		expenseTxn("Food", 95),
	}
	budgets := model.Budgets{"Food": 100, "Transport": 100}

	alerts := BudgetAlerts(transactions, budgets)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Food", alerts[0].Category)
	assert.Equal(t, "Transport", alerts[1].Category)
}
