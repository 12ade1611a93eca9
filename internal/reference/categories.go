package reference

import "github.com/iho/gobudget/internal/domain"

// DefaultCategories returns the built-in income and expense categories.
func DefaultCategories() *domain.CategoryTable {
	return domain.NewCategoryTable(
		[]domain.Category{
			{ID: "salary", Name: "Salary", Color: "#10b981", Icon: "Banknote"},
			{ID: "freelance", Name: "Freelance", Color: "#3b82f6", Icon: "Laptop"},
			{ID: "investments", Name: "Investments", Color: "#8b5cf6", Icon: "TrendingUp"},
			{ID: "business", Name: "Business", Color: "#06b6d4", Icon: "Building2"},
			{ID: "other-income", Name: "Other Income", Color: "#f59e0b", Icon: "Plus"},
		},
		[]domain.Category{
			{ID: "food", Name: "Food & Dining", Color: "#ef4444", Icon: "Utensils"},
			{ID: "transport", Name: "Transportation", Color: "#f97316", Icon: "Car"},
			{ID: "shopping", Name: "Shopping", Color: "#ec4899", Icon: "ShoppingBag"},
			{ID: "entertainment", Name: "Entertainment", Color: "#a855f7", Icon: "Music"},
			{ID: "healthcare", Name: "Healthcare", Color: "#14b8a6", Icon: "Heart"},
			{ID: "education", Name: "Education", Color: "#3b82f6", Icon: "BookOpen"},
			{ID: "utilities", Name: "Utilities", Color: "#6b7280", Icon: "Zap"},
			{ID: "rent", Name: "Rent & Housing", Color: "#0891b2", Icon: "Home"},
			{ID: "insurance", Name: "Insurance", Color: "#dc2626", Icon: "Shield"},
			{ID: "other-expense", Name: "Other Expenses", Color: "#78716c", Icon: "MoreHorizontal"},
		},
	)
}
