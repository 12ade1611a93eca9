package reference

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

type seedRow struct {
	typ         domain.TransactionType
	amount      int64
	currency    string
	category    string
	description string
	date        string
}

var demoRows = []seedRow{
	// April 2025
	{domain.TransactionTypeIncome, 5000, "USD", "salary", "Monthly Salary", "2025-04-01"},
	{domain.TransactionTypeIncome, 1500, "USD", "freelance", "UI Design Project", "2025-04-05"},
	{domain.TransactionTypeExpense, 800, "USD", "rent", "Monthly Rent", "2025-04-01"},
	{domain.TransactionTypeExpense, 300, "USD", "food", "Groceries", "2025-04-03"},
	{domain.TransactionTypeExpense, 150, "USD", "transport", "Gas & Maintenance", "2025-04-04"},
	{domain.TransactionTypeExpense, 200, "USD", "shopping", "Clothing", "2025-04-07"},

	// May 2025
	{domain.TransactionTypeIncome, 5000, "USD", "salary", "Monthly Salary", "2025-05-01"},
	{domain.TransactionTypeIncome, 800, "USD", "freelance", "Logo Design", "2025-05-10"},
	{domain.TransactionTypeExpense, 800, "USD", "rent", "Monthly Rent", "2025-05-01"},
	{domain.TransactionTypeExpense, 250, "USD", "food", "Groceries", "2025-05-05"},
	{domain.TransactionTypeExpense, 100, "USD", "entertainment", "Movie & Dinner", "2025-05-14"},
	{domain.TransactionTypeExpense, 120, "USD", "utilities", "Electricity Bill", "2025-05-15"},

	// June 2025
	{domain.TransactionTypeIncome, 5000, "USD", "salary", "Monthly Salary", "2025-06-01"},
	{domain.TransactionTypeIncome, 2200, "USD", "freelance", "Web Design Project", "2025-06-08"},
	{domain.TransactionTypeExpense, 800, "USD", "rent", "Monthly Rent", "2025-06-01"},
	{domain.TransactionTypeExpense, 350, "USD", "food", "Groceries & Dining", "2025-06-05"},
	{domain.TransactionTypeExpense, 180, "USD", "transport", "Car Service", "2025-06-10"},
	{domain.TransactionTypeExpense, 400, "USD", "shopping", "Electronics", "2025-06-15"},
	{domain.TransactionTypeExpense, 90, "USD", "healthcare", "Doctor Visit", "2025-06-20"},

	// July 2025
	{domain.TransactionTypeIncome, 5000, "USD", "salary", "Monthly Salary", "2025-07-01"},
	{domain.TransactionTypeIncome, 1000, "EUR", "freelance", "Website Redesign", "2025-07-12"},
	{domain.TransactionTypeExpense, 800, "USD", "rent", "Monthly Rent", "2025-07-01"},
	{domain.TransactionTypeExpense, 200, "USD", "food", "Groceries", "2025-07-03"},
	{domain.TransactionTypeExpense, 75, "USD", "transport", "Gas", "2025-07-05"},
	{domain.TransactionTypeExpense, 140, "EUR", "entertainment", "Concert Tickets", "2025-07-08"},
	{domain.TransactionTypeExpense, 95, "USD", "food", "Restaurant", "2025-07-10"},
	{domain.TransactionTypeExpense, 50, "USD", "transport", "Subway Card", "2025-07-15"},
	{domain.TransactionTypeExpense, 250, "EUR", "shopping", "Summer Clothes", "2025-07-20"},
}

// DemoTransactions returns a fresh copy of the demo ledger (April to July
// 2025, mixed USD/EUR). Ids are "1".."28" in chronological groups.
func DemoTransactions() []domain.Transaction {
	out := make([]domain.Transaction, 0, len(demoRows))
	for i, r := range demoRows {
		out = append(out, domain.Transaction{
			ID:          strconv.Itoa(i + 1),
			Type:        r.typ,
			Amount:      decimal.NewFromInt(r.amount),
			Currency:    r.currency,
			Category:    r.category,
			Description: r.description,
			Date:        r.date,
		})
	}
	return out
}
