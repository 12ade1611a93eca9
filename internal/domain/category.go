package domain

// NeutralCategoryColor is used for category ids missing from the table.
const NeutralCategoryColor = "#64748b"

// Category is static reference data for a transaction category.
// Income and expense categories live in separate namespaces.
type Category struct {
	ID    string
	Name  string
	Color string
	Icon  string
	Type  TransactionType
}

// CategoryTable is an immutable lookup of categories partitioned by type.
type CategoryTable struct {
	income  []Category
	expense []Category
	index   map[TransactionType]map[string]Category
}

// NewCategoryTable builds a table from the two namespaces.
func NewCategoryTable(income, expense []Category) *CategoryTable {
	t := &CategoryTable{
		index: map[TransactionType]map[string]Category{
			TransactionTypeIncome:  make(map[string]Category, len(income)),
			TransactionTypeExpense: make(map[string]Category, len(expense)),
		},
	}
	for _, c := range income {
		c.Type = TransactionTypeIncome
		t.income = append(t.income, c)
		t.index[TransactionTypeIncome][c.ID] = c
	}
	for _, c := range expense {
		c.Type = TransactionTypeExpense
		t.expense = append(t.expense, c)
		t.index[TransactionTypeExpense][c.ID] = c
	}
	return t
}

// Lookup finds a category in the namespace of typ.
func (t *CategoryTable) Lookup(typ TransactionType, id string) (Category, bool) {
	c, ok := t.index[typ][id]
	return c, ok
}

// Resolve is Lookup with the display fallback applied: an unknown id is
// shown under its raw id with the neutral color. found reports whether the
// table had an entry.
func (t *CategoryTable) Resolve(typ TransactionType, id string) (c Category, found bool) {
	if c, ok := t.Lookup(typ, id); ok {
		return c, true
	}
	return Category{ID: id, Name: id, Color: NeutralCategoryColor, Type: typ}, false
}

// ByType returns the categories of one namespace in declaration order.
func (t *CategoryTable) ByType(typ TransactionType) []Category {
	switch typ {
	case TransactionTypeIncome:
		return append([]Category(nil), t.income...)
	case TransactionTypeExpense:
		return append([]Category(nil), t.expense...)
	default:
		return nil
	}
}

// All returns income categories followed by expense categories.
func (t *CategoryTable) All() []Category {
	out := make([]Category, 0, len(t.income)+len(t.expense))
	out = append(out, t.income...)
	return append(out, t.expense...)
}
