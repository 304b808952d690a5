package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/flowtrack/internal/infrastructure/config"
	"github.com/iho/flowtrack/internal/infrastructure/postgres"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowtrack-cli",
		Short: "FlowTrack CLI tool",
		Long:  `A command line interface for interacting with the FlowTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FlowTrack API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FLOWTRACK_TOKEN"), "Bearer token for authenticated requests")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts with their balances",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts")
		},
	})
	accountsCmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Get one account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0])
		},
	})
	rootCmd.AddCommand(accountsCmd)

	// Transaction commands
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "Transaction operations",
	}
	transactionsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/transactions")
		},
	})
	var (
		txnToAccount    string
		txnDescription  string
		txnFromCurrency string
		txnFromAmount   string
		txnToCurrency   string
		txnToAmount     string
	)
	addCmd := &cobra.Command{
		Use:   "add [type] [amount] [currency] [category] [account-id]",
		Short: "Record an income, expense or transfer",
		Args:  cobra.ExactArgs(5),
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"type":        args[0],
				"amount":      args[1],
				"currency":    args[2],
				"category":    args[3],
				"accountId":   args[4],
				"description": txnDescription,
			}
			if txnToAccount != "" {
				payload["toAccountId"] = txnToAccount
			}
			if txnFromCurrency != "" {
				payload["transferDetails"] = map[string]string{
					"fromCurrency": txnFromCurrency,
					"fromAmount":   txnFromAmount,
					"toCurrency":   txnToCurrency,
					"toAmount":     txnToAmount,
				}
			}
			body, _ := json.Marshal(payload)
			doRequest(http.MethodPost, "/api/v1/transactions", body)
		},
	}
	addCmd.Flags().StringVar(&txnToAccount, "to-account", "", "Destination account for transfers")
	addCmd.Flags().StringVar(&txnDescription, "description", "", "Transaction description")
	addCmd.Flags().StringVar(&txnFromCurrency, "from-currency", "", "Transfer source currency")
	addCmd.Flags().StringVar(&txnFromAmount, "from-amount", "", "Transfer source amount")
	addCmd.Flags().StringVar(&txnToCurrency, "to-currency", "", "Transfer destination currency")
	addCmd.Flags().StringVar(&txnToAmount, "to-amount", "", "Transfer destination amount")
	transactionsCmd.AddCommand(addCmd)
	transactionsCmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a transaction, reversing its balance effects",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/transactions/"+args[0], nil)
		},
	})
	rootCmd.AddCommand(transactionsCmd)

	// Insights command
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "Show aggregated insights for the current month",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/insights")
		},
	}
	rootCmd.AddCommand(insightsCmd)

	// Auth commands
	loginCmd := &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Log in and print a token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			body, _ := json.Marshal(map[string]string{
				"email":    args[0],
				"password": args[1],
			})
			doRequest(http.MethodPost, "/api/v1/auth/login", body)
		},
	}
	rootCmd.AddCommand(loginCmd)

	// Migration commands
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration operations",
	}
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	})
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	doRequest(http.MethodGet, path, nil)
}

func doRequest(method, path string, body []byte) {
	client := &http.Client{Timeout: timeout}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		fmt.Println(string(respBody))
		return
	}

	fmt.Println(pretty.String())
}
