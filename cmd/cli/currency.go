package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/currency"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/reference"
)

func currencyCmd() *cobra.Command {
	var referencePath string

	converter := func() (*currency.Converter, error) {
		tables, err := reference.Load(referencePath)
		if err != nil {
			return nil, err
		}
		return currency.NewConverter(tables.Currencies, zerolog.Nop(), nil), nil
	}

	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Currency conversion and formatting",
	}
	cmd.PersistentFlags().StringVar(&referencePath, "reference", "", "YAML file overriding the currency table")

	convertCmd := &cobra.Command{
		Use:     "convert AMOUNT FROM TO",
		Short:   "Convert an amount between currencies at the fixed rates",
		Example: "  budgetctl currency convert 100 USD EUR",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := converter()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[0])
			}
			from, to := strings.ToUpper(args[1]), strings.ToUpper(args[2])
			for _, code := range []string{from, to} {
				if err := domain.ValidateCurrency(code, c.Currencies()); err != nil {
					return err
				}
			}

			result := c.Convert(amount, from, to)

			asJSON, err := jsonOutput()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), dto.ConversionResponse{
					Amount: amount, From: from, To: to, Result: result, Formatted: c.Format(result, to),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", c.Format(amount, from), c.Format(result, to))
			return nil
		},
	}

	formatCmd := &cobra.Command{
		Use:     "format AMOUNT CODE",
		Short:   "Render an amount the way the dashboard shows it",
		Example: "  budgetctl currency format 1234.5 JPY",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := converter()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), c.Format(amount, strings.ToUpper(args[1])))
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List supported currencies and their rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := converter()
			if err != nil {
				return err
			}
			currencies := c.Currencies().All()

			asJSON, err := jsonOutput()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), dto.CurrenciesFromDomain(currencies))
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "CODE\tSYMBOL\tNAME\tPER USD")
			for _, cur := range currencies {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cur.Code, cur.Symbol, cur.Name, cur.Rate.String())
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(convertCmd, formatCmd, listCmd)

	return cmd
}
