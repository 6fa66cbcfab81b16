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
)

var (
	baseURL string
	actorID string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wallet-cli",
		Short: "Digital wallet CLI tool",
		Long:  `A command line interface for interacting with the digital wallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the wallet API")
	rootCmd.PersistentFlags().StringVar(&actorID, "actor", "", "Actor ID to act as (sent as X-Actor-ID)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token (overrides --actor)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	registerCmd := &cobra.Command{
		Use:   "register <name> <email> <password>",
		Short: "Register a new actor",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/actors", map[string]string{
				"name":     args[0],
				"email":    args[1],
				"password": args[2],
			})
		},
	}

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Authenticate and print an access token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			post("/api/v1/auth/login", map[string]string{
				"email":    args[0],
				"password": args[1],
			})
		},
	}

	depositCmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Credit your wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			note, _ := cmd.Flags().GetString("note")
			post("/api/v1/ledger/deposit", map[string]string{"amount": args[0], "note": note})
		},
	}
	depositCmd.Flags().String("note", "", "Optional note")

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Debit your wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			note, _ := cmd.Flags().GetString("note")
			post("/api/v1/ledger/withdraw", map[string]string{"amount": args[0], "note": note})
		},
	}
	withdrawCmd.Flags().String("note", "", "Optional note")

	transferCmd := &cobra.Command{
		Use:   "transfer <counterparty-id> <amount>",
		Short: "Send funds to another actor",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			note, _ := cmd.Flags().GetString("note")
			post("/api/v1/ledger/transfer", map[string]string{
				"counterparty_id": args[0],
				"amount":          args[1],
				"note":            note,
			})
		},
	}
	transferCmd.Flags().String("note", "", "Optional note")

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show your current balance",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/ledger/balance")
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List your transactions, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/ledger/history")
		},
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Audit the ledger against the derived balances",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/ledger/consistency")
		},
	}

	rootCmd.AddCommand(registerCmd, loginCmd, depositCmd, withdrawCmd, transferCmd, balanceCmd, historyCmd, consistencyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func post(path string, payload map[string]string) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	doRequest(req)
}

func get(path string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	doRequest(req)
}

func doRequest(req *http.Request) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if actorID != "" {
		req.Header.Set("X-Actor-ID", actorID)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	printJSON(body)

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}

func printJSON(body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(pretty.String())
}
