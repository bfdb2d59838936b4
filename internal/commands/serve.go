package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zicku/belimbing-ledger/internal/adapter/http/controller"
	"github.com/zicku/belimbing-ledger/internal/adapter/http/router"
	"github.com/zicku/belimbing-ledger/internal/adapter/repository/memory"
	"github.com/zicku/belimbing-ledger/internal/adapter/repository/postgres"
	"github.com/zicku/belimbing-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/zicku/belimbing-ledger/internal/config"
	"github.com/zicku/belimbing-ledger/internal/logger"
	"github.com/zicku/belimbing-ledger/internal/usecase/services"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ledger HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		customerRepo    repo_interfaces.CustomerRepository
		productRepo     repo_interfaces.ProductRepository
		accountRepo     repo_interfaces.AccountRepository
		transactionRepo repo_interfaces.TransactionRepository
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		customerRepo = memory.NewCustomerRepository(store)
		productRepo = memory.NewProductRepository(store)
		accountRepo = memory.NewAccountRepository(store)
		transactionRepo = memory.NewTransactionRepository(store)
	default:
		openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		db, err := postgres.Open(openCtx, cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer db.Close()

		customerRepo = postgres.NewCustomerRepository(db)
		productRepo = postgres.NewProductRepository(db)
		accountRepo = postgres.NewAccountRepository(db)
		transactionRepo = postgres.NewTransactionRepository(db)
	}

	customerService := services.NewCustomerService(customerRepo, accountRepo)
	productService := services.NewProductService(productRepo, accountRepo)
	accountService := services.NewAccountService(accountRepo, customerRepo, productRepo, transactionRepo)
	transactionService := services.NewTransactionService(accountRepo, productRepo)
	dashboardService := services.NewDashboardService(customerRepo, productRepo, accountRepo)

	mux := router.New(
		controller.NewCustomerController(customerService),
		controller.NewProductController(productService),
		controller.NewAccountController(accountService),
		controller.NewTransactionController(transactionService),
		controller.NewDashboardController(dashboardService),
	)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{
			"addr":          cfg.ListenAddr,
			"storageDriver": cfg.StorageDriver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
