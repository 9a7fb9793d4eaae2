// Command apitest exercises the SDK against the paper trading API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	lemon "github.com/lemon-markets/lemon-go"
	"github.com/lemon-markets/lemon-go/internal/config"
	"github.com/lemon-markets/lemon-go/internal/version"
)

func main() {
	configPath := flag.String("config", "apitest.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	opts := []lemon.Option{
		lemon.WithEnvironment(lemon.Environment(cfg.API.Environment)),
		lemon.WithTimeout(cfg.API.Timeout),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, lemon.WithBaseURL(cfg.API.BaseURL))
	}
	client := lemon.New(cfg.API.Key, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("%s (%s environment)\n", version.String(), cfg.API.Environment)

	// Test 1: Account
	fmt.Println("\n=== Testing Account.Get ===")
	account, err := client.Account.Get(ctx)
	if err != nil {
		log.Fatalf("Account.Get failed: %v", err)
	}
	fmt.Printf("Account: %s (mode: %s)\n", account.Results.AccountID, account.Results.Mode)
	fmt.Printf("Balance: %d\n", account.Results.Balance)
	fmt.Printf("Cash to invest: %d\n", account.Results.CashToInvest)

	// Test 2: Positions (first page)
	fmt.Println("\n=== Testing Positions.List ===")
	positions, err := client.Positions.List(ctx, &lemon.ListPositionsOptions{Limit: 5})
	if err != nil {
		log.Fatalf("Positions.List failed: %v", err)
	}
	fmt.Printf("Fetched %d positions (total: %d)\n", len(positions.Results), positions.Pagination.Total)
	for i, p := range positions.Results {
		fmt.Printf("  %d. %s - %s (quantity: %d)\n", i+1, p.ISIN, p.ISINTitle, p.Quantity)
	}

	// Test 3: Orders (first page)
	fmt.Println("\n=== Testing Orders.List ===")
	orders, err := client.Orders.List(ctx, &lemon.ListOrdersOptions{Limit: 5})
	if err != nil {
		log.Fatalf("Orders.List failed: %v", err)
	}
	fmt.Printf("Fetched %d orders (total: %d)\n", len(orders.Results), orders.Pagination.Total)
	for i, o := range orders.Results {
		fmt.Printf("  %d. %s %s x%d (status: %s)\n", i+1, o.Side, o.ISIN, o.Quantity, o.Status)
	}

	// Test 4: Single order round trip
	if len(orders.Results) > 0 {
		id := orders.Results[0].ID
		fmt.Printf("\n=== Testing Orders.Get (%s) ===\n", id)
		order, err := client.Orders.Get(ctx, id)
		if err != nil {
			log.Fatalf("Orders.Get failed: %v", err)
		}
		fmt.Printf("Status: %s\n", order.Results.Status)
		fmt.Printf("Estimated price: %d\n", order.Results.EstimatedPrice)
		if order.Results.ExecutedAt != nil {
			fmt.Printf("Executed at: %s\n", order.Results.ExecutedAt)
		}
	}

	// Test 5: Bank statements with filters
	fmt.Println("\n=== Testing Account.ListBankStatements ===")
	statements, err := client.Account.ListBankStatements(ctx, &lemon.ListBankStatementsOptions{
		FromBeginning: true,
		Sorting:       lemon.NewestFirst,
		Limit:         5,
	})
	if err != nil {
		log.Fatalf("Account.ListBankStatements failed: %v", err)
	}
	fmt.Printf("Fetched %d bank statements\n", len(statements.Results))
	for i, s := range statements.Results {
		fmt.Printf("  %d. %s %d (%s)\n", i+1, s.Type, s.Amount, s.Date.Format("2006-01-02"))
	}

	fmt.Println("\n=== All API tests passed! ===")
}
