package reference

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iho/gobudget/internal/domain"
)

// Tables bundles the reference data loaded at startup.
type Tables struct {
	Currencies *domain.CurrencyTable
	Categories *domain.CategoryTable
}

// Defaults returns the built-in tables.
func Defaults() Tables {
	return Tables{
		Currencies: DefaultCurrencies(),
		Categories: DefaultCategories(),
	}
}

type fileCurrency struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
	Rate   string `yaml:"rate"`
}

type fileCategory struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

type fileTables struct {
	Currencies []fileCurrency `yaml:"currencies"`
	Categories struct {
		Income  []fileCategory `yaml:"income"`
		Expense []fileCategory `yaml:"expense"`
	} `yaml:"categories"`
}

// Load reads tables from a YAML file. A section left empty in the file keeps
// the built-in table for that section. An empty path returns Defaults.
func Load(path string) (Tables, error) {
	tables := Defaults()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read reference data: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML reference data, see Load.
func Parse(data []byte) (Tables, error) {
	tables := Defaults()

	var raw fileTables
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Tables{}, fmt.Errorf("failed to parse reference data: %w", err)
	}

	if len(raw.Currencies) > 0 {
		currencies := make([]domain.Currency, 0, len(raw.Currencies))
		for _, c := range raw.Currencies {
			r, err := decimal.NewFromString(c.Rate)
			if err != nil {
				return Tables{}, fmt.Errorf("%w: rate %q for %s", domain.ErrInvalidCurrency, c.Rate, c.Code)
			}
			if !r.IsPositive() {
				return Tables{}, fmt.Errorf("%w: rate for %s must be positive", domain.ErrInvalidCurrency, c.Code)
			}
			currencies = append(currencies, domain.Currency{Code: c.Code, Symbol: c.Symbol, Name: c.Name, Rate: r})
		}
		tables.Currencies = domain.NewCurrencyTable(currencies)
	}

	if len(raw.Categories.Income) > 0 || len(raw.Categories.Expense) > 0 {
		income := toCategories(raw.Categories.Income)
		expense := toCategories(raw.Categories.Expense)
		if len(income) == 0 {
			income = tables.Categories.ByType(domain.TransactionTypeIncome)
		}
		if len(expense) == 0 {
			expense = tables.Categories.ByType(domain.TransactionTypeExpense)
		}
		tables.Categories = domain.NewCategoryTable(income, expense)
	}

	return tables, nil
}

func toCategories(in []fileCategory) []domain.Category {
	out := make([]domain.Category, 0, len(in))
	for _, c := range in {
		out = append(out, domain.Category{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon})
	}
	return out
}
