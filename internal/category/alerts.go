package category

import (
	"sort"

	"github.com/wolferonic/swiftbudget/internal/model"
)

// AlertLevel grades how far over budget a category is.
type AlertLevel string

const (
	// LevelWarning fires at 80% of the budget.
	LevelWarning AlertLevel = "warning"
	// LevelDanger fires once the budget is met or exceeded.
	LevelDanger AlertLevel = "danger"
)

// alertThreshold is the spend percentage at which a category starts
// alerting.
const alertThreshold = 80

// BudgetAlert reports a category whose spending has reached the alert
// threshold of its budget.
type BudgetAlert struct {
	Category   string
	Level      AlertLevel
	Spent      float64
	Budget     float64
	Percentage float64
}

// BudgetAlerts computes threshold alerts for every budgeted category.
// Categories with budget <= 0 never alert. Pure: derived entirely from
// its inputs, ordered by category name.
func BudgetAlerts(transactions []model.Transaction, budgets model.Budgets) []BudgetAlert {
	spent := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == model.TypeExpense {
			spent[t.Category] += t.Amount
		}
	}

	names := make([]string, 0, len(budgets))
	for name := range budgets {
		names = append(names, name)
	}
	sort.Strings(names)

	var alerts []BudgetAlert
	for _, name := range names {
		budget := budgets[name]
		if budget <= 0 {
			continue
		}

		percentage := spent[name] / budget * 100
		if percentage < alertThreshold {
			continue
		}

		level := LevelWarning
		if percentage >= 100 {
			level = LevelDanger
		}

		alerts = append(alerts, BudgetAlert{
			Category:   name,
			Spent:      spent[name],
			Budget:     budget,
			Percentage: percentage,
			Level:      level,
		})
	}
	return alerts
}
