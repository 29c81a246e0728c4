package models

import "slices"

// OtherCategory is the label for transactions without a category.
const OtherCategory = "Lainnya"

var incomeCategories = []string{"Gaji", "Bonus", "Investasi", "Usaha", OtherCategory}

var expenseCategories = []string{"Makanan", "Transportasi", "Hiburan", "Tagihan", "Belanja", "Kesehatan", "Pendidikan", OtherCategory}

// IncomeCategories returns the income category names.
func IncomeCategories() []string {
	return slices.Clone(incomeCategories)
}

// ExpenseCategories returns the expense category names. These are also the
// categories budget targets are offered for.
func ExpenseCategories() []string {
	return slices.Clone(expenseCategories)
}

// CategoriesFor returns the categories offered for a transaction type.
// Transfers have no category.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return IncomeCategories()
	case TypeExpense:
		return ExpenseCategories()
	default:
		return []string{}
	}
}

// AllCategories returns the union of income and expense categories without
// duplicates, income categories first.
func AllCategories() []string {
	all := make([]string, 0, len(incomeCategories)+len(expenseCategories))
	for _, c := range slices.Concat(incomeCategories, expenseCategories) {
		if !slices.Contains(all, c) {
			all = append(all, c)
		}
	}
	return all
}

// CategoryLabel returns the category or OtherCategory if it is empty.
func CategoryLabel(category string) string {
	if category == "" {
		return OtherCategory
	}
	return category
}
