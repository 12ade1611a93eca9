package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/domain"
)

func TestDefaults(t *testing.T) {
	tables := Defaults()

	assert.Equal(t, 15, tables.Currencies.Len())
	usd, ok := tables.Currencies.Lookup(domain.BaseCurrency)
	require.True(t, ok)
	assert.True(t, usd.Rate.Equal(rate("1")), "base currency rate must be 1")

	assert.Len(t, tables.Categories.ByType(domain.TransactionTypeIncome), 5)
	assert.Len(t, tables.Categories.ByType(domain.TransactionTypeExpense), 10)
}

func TestDemoTransactionsAreValid(t *testing.T) {
	tables := Defaults()
	txs := DemoTransactions()
	require.Len(t, txs, 28)

	for _, tx := range txs {
		assert.NoError(t, tx.Validate(), tx.ID)
		assert.NoError(t, domain.ValidateCurrency(tx.Currency, tables.Currencies), tx.ID)
		_, found := tables.Categories.Lookup(tx.Type, tx.Category)
		assert.True(t, found, "category %s of %s", tx.Category, tx.ID)
	}

	// Callers get their own copy.
	txs[0].Description = "changed"
	assert.Equal(t, "Monthly Salary", DemoTransactions()[0].Description)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	tables, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, tables.Currencies.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
currencies:
  - code: USD
    symbol: "$"
    name: US Dollar
    rate: "1"
  - code: PLN
    symbol: "zł"
    name: Polish Zloty
    rate: "3.9"
categories:
  expense:
    - id: pets
      name: Pets
      color: "#123456"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, tables.Currencies.Len())
	pln, ok := tables.Currencies.Lookup("PLN")
	require.True(t, ok)
	assert.Equal(t, "3.9", pln.Rate.String())

	assert.Len(t, tables.Categories.ByType(domain.TransactionTypeExpense), 1)
	// Income section was not in the file, so built-ins remain.
	assert.Len(t, tables.Categories.ByType(domain.TransactionTypeIncome), 5)
}

func TestParse_RejectsBadRates(t *testing.T) {
	tests := map[string]string{
		"not a number": "currencies:\n  - code: USD\n    rate: abc\n",
		"zero rate":    "currencies:\n  - code: USD\n    rate: \"0\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("currencies: [unterminated"))
	assert.Error(t, err)
}
