package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minibank-cli",
		Short: "MiniBank CLI tool",
		Long:  `A command line interface for interacting with the MiniBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the MiniBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	transactionCmd := &cobra.Command{
		Use:   "transaction <client-id> <kind> <amount> <description>",
		Short: "Apply a credit or debit to a client",
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			applyTransaction(args[0], args[1], args[2], args[3])
		},
	}

	statementCmd := &cobra.Command{
		Use:   "statement <client-id>",
		Short: "Fetch a client's statement",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fetchStatement(args[0])
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check API readiness",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	rootCmd.AddCommand(transactionCmd, statementCmd, healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func applyTransaction(clientID, kind, amount, description string) {
	payload, err := transactionPayload(kind, amount, description)
	if err != nil {
		fmt.Printf("Invalid transaction: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(
		fmt.Sprintf("%s/clients/%s/transactions", baseURL, clientID),
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Transaction REJECTED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction COMMITTED\n")
	printJSON(result)
}

func fetchStatement(clientID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(fmt.Sprintf("%s/clients/%s/statement", baseURL, clientID))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Statement request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Health check PASSED\n")
}

// transactionPayload builds the request body, validating the kind and
// amount shape before anything hits the wire.
func transactionPayload(kind, amount, description string) ([]byte, error) {
	if kind != "credit" && kind != "debit" {
		return nil, fmt.Errorf("kind must be credit or debit, got %q", kind)
	}

	parsed, err := strconv.ParseInt(amount, 10, 64)
	if err != nil || parsed <= 0 {
		return nil, fmt.Errorf("amount must be a positive integer, got %q", amount)
	}

	return json.Marshal(map[string]any{
		"amount":      parsed,
		"kind":        kind,
		"description": description,
	})
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
