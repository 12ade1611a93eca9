package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/iho/gobudget/internal/adapter/http/dto"
)

func dashboardCmd() *cobra.Command {
	var period, code, at string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Fetch the dashboard from a running budget API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if period != "" {
				q.Set("period", period)
			}
			if code != "" {
				q.Set("currency", code)
			}
			if at != "" {
				q.Set("at", at)
			}

			body, err := fetch(baseURL + "/api/v1/dashboard?" + q.Encode())
			if err != nil {
				return err
			}

			asJSON, err := jsonOutput()
			if err != nil {
				return err
			}
			if asJSON {
				_, err := cmd.OutOrStdout().Write(body)
				return err
			}

			var d dto.DashboardResponse
			if err := json.Unmarshal(body, &d); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return printDashboard(cmd.OutOrStdout(), &d)
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "", "weekly, monthly or yearly (server default when empty)")
	cmd.Flags().StringVarP(&code, "currency", "c", "", "Display currency (server default when empty)")
	cmd.Flags().StringVar(&at, "at", "", "Reference date YYYY-MM-DD")

	return cmd
}

func fetch(target string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(target)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("request failed (status %d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
		}
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printDashboard(out io.Writer, d *dto.DashboardResponse) error {
	s := d.Summary

	w := newTable(out)
	fmt.Fprintf(w, "PERIOD\t%s\t%s to %s\n", s.Period, s.Windows.Current.Start, s.Windows.Current.End)
	fmt.Fprintf(w, "INCOME\t%s\t%s\n", s.TotalIncome.Formatted, s.IncomeTrend.Label)
	fmt.Fprintf(w, "EXPENSES\t%s\t%s\n", s.TotalExpense.Formatted, s.ExpenseTrend.Label)
	fmt.Fprintf(w, "BALANCE\t%s\t\n", s.Balance.Formatted)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
	for _, c := range d.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", truncate(c.Name, 24), c.Value.Formatted, c.Share.StringFixed(1))
	}
	return w.Flush()
}
