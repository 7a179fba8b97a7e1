package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spendlog",
		Short: "Spendlog CLI tool",
		Long:  `A command line interface for interacting with the Spendlog API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Spendlog API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var (
		addCategory string
		addDate     string
		addNotes    string
	)
	addCmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a new expense",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			addExpense(args[0], args[1], addCategory, addDate, addNotes)
		},
	}
	addCmd.Flags().StringVar(&addCategory, "category", "other", "Expense category")
	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format("2006-01-02"), "Expense date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")

	var (
		listCategory  string
		listTimeRange string
		listFrom      string
		listTo        string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, most recent first",
		Run: func(cmd *cobra.Command, args []string) {
			listExpenses(listCategory, listTimeRange, listFrom, listTo)
		},
	}
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&listTimeRange, "range", "", "Time range shorthand (week|month|quarter|year|all)")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Inclusive lower date bound (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Inclusive upper date bound (YYYY-MM-DD)")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one expense",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/expenses/" + args[0])
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteExpense(args[0])
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard summary",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/summary")
		},
	}

	byCategoryCmd := &cobra.Command{
		Use:   "by-category",
		Short: "Show totals per category",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/reports/by-category")
		},
	}

	var byMonthYear int
	byMonthCmd := &cobra.Command{
		Use:   "by-month",
		Short: "Show monthly totals for a year",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/reports/by-month"
			if byMonthYear > 0 {
				path += fmt.Sprintf("?year=%d", byMonthYear)
			}
			getJSON(path)
		},
	}
	byMonthCmd.Flags().IntVar(&byMonthYear, "year", 0, "Report year (defaults to the current one)")

	var exportOut string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download expenses as CSV",
		Run: func(cmd *cobra.Command, args []string) {
			exportExpenses(exportOut)
		},
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to stdout)")

	rootCmd.AddCommand(addCmd, listCmd, getCmd, deleteCmd, summaryCmd, byCategoryCmd, byMonthCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addExpense(description, amount, category, date, notes string) {
	payload, _ := json.Marshal(map[string]string{
		"description": description,
		"amount":      amount,
		"category":    category,
		"date":        date,
		"notes":       notes,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/expenses", "application/json", bytes.NewReader(payload))
	if err != nil {
		fail("Error making request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fail("Create failed (Status: %d)\nResponse: %s", resp.StatusCode, string(body))
	}

	printJSON(body)
}

func listExpenses(category, timeRange, from, to string) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if timeRange != "" {
		query.Set("timeRange", timeRange)
	}
	if from != "" {
		query.Set("dateFrom", from)
	}
	if to != "" {
		query.Set("dateTo", to)
	}

	path := "/api/expenses"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	getJSON(path)
}

func deleteExpense(id string) {
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/api/expenses/"+id, nil)
	if err != nil {
		fail("Error building request: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fail("Error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fail("Delete failed (Status: %d)\nResponse: %s", resp.StatusCode, string(body))
	}

	fmt.Printf("Deleted expense %s\n", id)
}

func exportExpenses(out string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/expenses/export")
	if err != nil {
		fail("Error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fail("Export failed (Status: %d)\nResponse: %s", resp.StatusCode, string(body))
	}

	dest := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fail("Error creating %s: %v", out, err)
		}
		defer f.Close()
		dest = f
	}

	if _, err := io.Copy(dest, resp.Body); err != nil {
		fail("Error writing export: %v", err)
	}
	if out != "" {
		fmt.Printf("Wrote %s\n", out)
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fail("Error making request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fail("Request failed (Status: %d)\nResponse: %s", resp.StatusCode, string(body))
	}

	printJSON(body)
}

// printJSON re-indents a response body for the terminal; unparseable bodies
// print raw.
func printJSON(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}

func fail(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}
