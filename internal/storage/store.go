// Package storage provides the synchronous key-value persistence layer.
// Each logical collection lives under one key as a whole JSON value, so
// the durability boundary of every mutation is a single atomic key write.
package storage

// Keys for each persisted collection. A full wipe removes every one of
// these.
const (
	KeyTransactions      = "swiftBudgetTransactions"
	KeyBudgets           = "swiftBudgetBudgets"
	KeyTheme             = "swiftBudgetTheme"
	KeyExpenseCategories = "swiftBudgetCategories"
	KeyIncomeCategories  = "swiftBudgetIncomeCategories"
	KeyLogs              = "swiftBudgetLogs"
	KeyProfile           = "swiftBudgetProfile"
	KeyCollaborators     = "swiftBudgetCollaborators"
	KeyAuthUser          = "swiftBudgetAuthUser"
	KeyUsers             = "swiftBudgetUsers"
)

// AllKeys returns every persisted collection key.
func AllKeys() []string {
	return []string{
		KeyTransactions,
		KeyBudgets,
		KeyTheme,
		KeyExpenseCategories,
		KeyIncomeCategories,
		KeyLogs,
		KeyProfile,
		KeyCollaborators,
		KeyAuthUser,
		KeyUsers,
	}
}

// Store is the persistence boundary for all application state. Every call
// is synchronous and fails silently: faults are written to the error log
// and a missing or corrupt value reads as absent. Callers therefore never
// branch on persistence errors; durability degrades quietly instead.
type Store interface {
	// Get unmarshals the value under key into out and reports whether a
	// usable value was present.
	Get(key string, out any) bool
	// Set marshals value and overwrites the collection under key.
	Set(key string, value any)
	// Remove deletes the value under key, if any.
	Remove(key string)
	// Wipe removes every persisted collection.
	Wipe()
	// Close releases the underlying resources.
	Close() error
}
