package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/currency"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/reference"
)

type reportOptions struct {
	file      string
	reference string
	period    string
	currency  string
	at        string
}

// report is everything one offline report needs.
type report struct {
	engine    *aggregation.Engine
	converter *currency.Converter
	txs       []domain.Transaction
	period    domain.Period
	currency  string
	at        time.Time
}

func reportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Offline reports over a transaction file",
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "YAML or JSON transaction list (built-in demo data when empty)")
	cmd.PersistentFlags().StringVar(&opts.reference, "reference", "", "YAML file overriding the currency and category tables")
	cmd.PersistentFlags().StringVarP(&opts.period, "period", "p", "monthly", "weekly, monthly or yearly")
	cmd.PersistentFlags().StringVarP(&opts.currency, "currency", "c", domain.BaseCurrency, "Display currency")
	cmd.PersistentFlags().StringVar(&opts.at, "at", "", "Reference date YYYY-MM-DD (today when empty)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "Income, expenses, balance and trends for the active window",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := opts.load(cmd)
				if err != nil {
					return err
				}
				return r.printSummary(cmd)
			},
		},
		&cobra.Command{
			Use:   "series",
			Short: "Income and expenses per week, month or year",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := opts.load(cmd)
				if err != nil {
					return err
				}
				return r.printSeries(cmd)
			},
		},
		&cobra.Command{
			Use:   "categories",
			Short: "Top expense categories of the active window",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := opts.load(cmd)
				if err != nil {
					return err
				}
				return r.printCategories(cmd)
			},
		},
	)

	return cmd
}

func (o *reportOptions) load(cmd *cobra.Command) (*report, error) {
	tables, err := reference.Load(o.reference)
	if err != nil {
		return nil, err
	}

	p, err := domain.ParsePeriod(o.period)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(o.currency))
	if err := domain.ValidateCurrency(code, tables.Currencies); err != nil {
		return nil, err
	}

	at := time.Now()
	if o.at != "" {
		if at, err = time.Parse(domain.DateLayout, o.at); err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, o.at)
		}
	}

	txs := reference.DemoTransactions()
	if o.file != "" {
		if txs, err = loadTransactions(o.file); err != nil {
			return nil, err
		}
	}

	// Fallback warnings go to stderr so they never mix with the report.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(zerolog.WarnLevel)
	converter := currency.NewConverter(tables.Currencies, logger, nil)

	return &report{
		engine:    aggregation.NewEngine(converter, tables.Categories, logger, nil),
		converter: converter,
		txs:       txs,
		period:    p,
		currency:  code,
		at:        at,
	}, nil
}

type fileTransaction struct {
	ID          string `yaml:"id"`
	Type        string `yaml:"type"`
	Amount      string `yaml:"amount"`
	Currency    string `yaml:"currency"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

// loadTransactions reads a YAML (or JSON) list of transactions. Rows
// without an id are numbered by position.
func loadTransactions(path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	var rows []fileTransaction
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for i, row := range rows {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, domain.ErrInvalidAmount)
		}

		tx := domain.Transaction{
			ID:          row.ID,
			Type:        domain.TransactionType(strings.ToLower(row.Type)),
			Amount:      amount,
			Currency:    strings.ToUpper(row.Currency),
			Category:    row.Category,
			Description: row.Description,
			Date:        row.Date,
		}
		if tx.ID == "" {
			tx.ID = strconv.Itoa(i + 1)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (r *report) printSummary(cmd *cobra.Command) error {
	s := r.engine.Summarize(r.txs, r.period, r.currency, r.at)

	asJSON, err := jsonOutput()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), dto.SummaryFromDomain(s, r.converter))
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintf(w, "PERIOD\t%s\t%s to %s\n", s.Period, s.Windows.Current.Start, s.Windows.Current.End)
	fmt.Fprintf(w, "INCOME\t%s\t%s\n", r.converter.Format(s.TotalIncome, s.Currency), s.IncomeTrend.Label)
	fmt.Fprintf(w, "EXPENSES\t%s\t%s\n", r.converter.Format(s.TotalExpense, s.Currency), s.ExpenseTrend.Label)
	fmt.Fprintf(w, "BALANCE\t%s\t\n", r.converter.Format(s.Balance, s.Currency))
	return w.Flush()
}

func (r *report) printSeries(cmd *cobra.Command) error {
	points := r.engine.Series(r.txs, r.period, r.currency, r.at)

	asJSON, err := jsonOutput()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), dto.SeriesFromDomain(points))
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "LABEL\tINCOME\tEXPENSE\tBALANCE")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Label,
			r.converter.Format(p.Income, r.currency),
			r.converter.Format(p.Expense, r.currency),
			r.converter.Format(p.Balance, r.currency))
	}
	return w.Flush()
}

func (r *report) printCategories(cmd *cobra.Command) error {
	slices := r.engine.CategoryBreakdown(r.txs, r.period, r.currency, r.at)

	asJSON, err := jsonOutput()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmd.OutOrStdout(), dto.BreakdownFromDomain(slices, r.currency, r.converter))
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
	for _, s := range slices {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", truncate(s.Name, 24), r.converter.Format(s.Value, r.currency), s.Share.StringFixed(1))
	}
	return w.Flush()
}
