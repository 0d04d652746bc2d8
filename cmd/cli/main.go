package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	fileRepo "github.com/iho/bankmatch/internal/adapter/repository/file"
	"github.com/iho/bankmatch/internal/matching"
	"github.com/iho/bankmatch/internal/report"
	"github.com/iho/bankmatch/internal/usecase"
)

var (
	transactionsFile string
	attachmentsFile  string
	expectedFile     string
	companyName      string
	amountTolerance  string
	minConfidence    float64

	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankmatch",
		Short: "Bank transaction reconciliation tool",
		Long:  `Matches bank transactions against invoices and receipts and reports the reconciliation outcome.`,
	}

	rootCmd.PersistentFlags().StringVar(&transactionsFile, "transactions", "data/transactions.json", "Transactions fixture file")
	rootCmd.PersistentFlags().StringVar(&attachmentsFile, "attachments", "data/attachments.json", "Attachments fixture file")
	rootCmd.PersistentFlags().StringVar(&companyName, "company", "", "Own company name, excluded from counterparty comparison")
	rootCmd.PersistentFlags().StringVar(&amountTolerance, "amount-tolerance", "0.01", "Amount comparison tolerance")
	rootCmd.PersistentFlags().Float64Var(&minConfidence, "min-confidence", matching.DefaultMinConfidence, "Acceptance threshold for scored matches")

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile all transactions against all attachments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.Context())
		},
	}
	reconcileCmd.Flags().StringVar(&expectedFile, "expected", "", "Expected-pairs fixture file for grading the run")

	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "Match a single record",
	}

	var matchID string

	matchTransactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Find the attachment a transaction settles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatchTransaction(cmd.Context(), matchID)
		},
	}
	matchTransactionCmd.Flags().StringVar(&matchID, "id", "", "Transaction ID")
	matchTransactionCmd.MarkFlagRequired("id")

	matchAttachmentCmd := &cobra.Command{
		Use:   "attachment",
		Short: "Find the transaction that settles an attachment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatchAttachment(cmd.Context(), matchID)
		},
	}
	matchAttachmentCmd.Flags().StringVar(&matchID, "id", "", "Attachment ID")
	matchAttachmentCmd.MarkFlagRequired("id")

	matchCmd.AddCommand(matchTransactionCmd, matchAttachmentCmd)

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Server operations",
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check that a running server is ready",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkHealth()
		},
	}
	healthCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the matching API")
	healthCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	serverCmd.AddCommand(healthCmd)

	rootCmd.AddCommand(reconcileCmd, matchCmd, serverCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() *matching.Engine {
	cfg := matching.DefaultConfig(companyName)
	if tol, err := decimal.NewFromString(amountTolerance); err == nil {
		cfg.AmountTolerance = tol
	}
	cfg.MinConfidence = minConfidence

	return matching.NewEngine(cfg)
}

func loadRepos() (*fileRepo.TransactionRepository, *fileRepo.AttachmentRepository, error) {
	txRepo, err := fileRepo.NewTransactionRepository(transactionsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load transactions: %w", err)
	}
	attRepo, err := fileRepo.NewAttachmentRepository(attachmentsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load attachments: %w", err)
	}

	return txRepo, attRepo, nil
}

func runReconcile(ctx context.Context) error {
	txRepo, attRepo, err := loadRepos()
	if err != nil {
		return err
	}

	var expectedRepo usecase.ExpectedPairRepository
	if expectedFile != "" {
		repo, err := fileRepo.NewExpectedPairRepository(expectedFile)
		if err != nil {
			return fmt.Errorf("load expected pairs: %w", err)
		}
		expectedRepo = repo
	}

	uc := usecase.NewReconcileUseCase(txRepo, attRepo, expectedRepo, newEngine(), fileRepo.NewULIDGenerator(), nil)

	rep, err := uc.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Print(report.Render(rep))

	if rep.Summary.ExpectationsFailed > 0 {
		return fmt.Errorf("%d of %d expectations failed", rep.Summary.ExpectationsFailed, rep.Summary.ExpectationsEvaluated)
	}

	return nil
}

func runMatchTransaction(ctx context.Context, id string) error {
	txRepo, attRepo, err := loadRepos()
	if err != nil {
		return err
	}

	uc := usecase.NewMatchUseCase(txRepo, attRepo, newEngine(), nil)

	att, err := uc.MatchTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	if att == nil {
		fmt.Printf("transaction %s: no match\n", id)
		return nil
	}

	out, _ := json.MarshalIndent(att, "", "  ")
	fmt.Printf("transaction %s matched attachment %s:\n%s\n", id, att.ID, out)

	return nil
}

func runMatchAttachment(ctx context.Context, id string) error {
	txRepo, attRepo, err := loadRepos()
	if err != nil {
		return err
	}

	uc := usecase.NewMatchUseCase(txRepo, attRepo, newEngine(), nil)

	tx, err := uc.MatchAttachmentByID(ctx, id)
	if err != nil {
		return err
	}

	if tx == nil {
		fmt.Printf("attachment %s: no match\n", id)
		return nil
	}

	out, _ := json.MarshalIndent(tx, "", "  ")
	fmt.Printf("attachment %s matched transaction %s:\n%s\n", id, tx.ID, out)

	return nil
}

// checkHealth polls the server's readiness endpoint, retrying with
// exponential backoff so the command works right after server start.
func checkHealth() error {
	client := &http.Client{Timeout: timeout}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = timeout

	var body []byte

	err := backoff.Retry(func() error {
		resp, err := client.Get(baseURL + "/ready")
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, _ = io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server not ready (status %d)", resp.StatusCode)
		}

		return nil
	}, b)
	if err != nil {
		return err
	}

	fmt.Printf("server ready: %s\n", body)

	return nil
}
