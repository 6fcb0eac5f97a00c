package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/tranvantai204/GarageBooking/internal/config"
	"github.com/tranvantai204/GarageBooking/internal/handler"
	"github.com/tranvantai204/GarageBooking/internal/middleware"
	"github.com/tranvantai204/GarageBooking/internal/notification"
	"github.com/tranvantai204/GarageBooking/internal/provider"
	"github.com/tranvantai204/GarageBooking/internal/reconciler"
	"github.com/tranvantai204/GarageBooking/internal/repository"
	"github.com/tranvantai204/GarageBooking/internal/router"
	"github.com/tranvantai204/GarageBooking/internal/scheduler"
	"github.com/tranvantai204/GarageBooking/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GarageBooking",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	ledgerRepo := repository.NewLedgerRepo(a.db)
	orderRepo := repository.NewOrderRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	rec := reconciler.New(
		bookingRepo,
		userRepo,
		orderRepo,
		ledgerRepo,
		reviewRepo,
		n,
		reconciler.Config{
			AccountNumber:   a.cfg.Payment.AccountNumber,
			BankCode:        a.cfg.Payment.BankCode,
			AmountTolerance: a.cfg.Payment.AmountTolerance,
		},
		a.log,
	)

	sepayClient := provider.NewSePayClient(provider.SePayClientConfig{
		APIBase:  a.cfg.SePay.APIBase,
		APIToken: a.cfg.SePay.APIToken,
		Timeout:  10 * time.Second,
	})
	payosClient := provider.NewPayOSClient(provider.PayOSClientConfig{
		APIBase:     a.cfg.PayOS.APIBase,
		ClientID:    a.cfg.PayOS.ClientID,
		APIKey:      a.cfg.PayOS.APIKey,
		ChecksumKey: a.cfg.PayOS.ChecksumKey,
		ReturnURL:   a.cfg.PayOS.ReturnURL,
		CancelURL:   a.cfg.PayOS.CancelURL,
		Timeout:     10 * time.Second,
	})

	paymentService := service.NewPaymentService(
		bookingRepo,
		orderRepo,
		sepayClient,
		payosClient,
		rec,
		service.MerchantAccount{
			AccountNumber: a.cfg.Payment.AccountNumber,
			BankCode:      a.cfg.Payment.BankCode,
			AccountName:   a.cfg.Payment.AccountName,
		},
		a.log,
	)
	walletService := service.NewWalletService(userRepo, ledgerRepo, a.log)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			paymentService,
			a.cfg.Scheduler.Interval,
			a.cfg.Scheduler.BatchSize,
			a.log,
		)
	}

	adapters := []provider.Adapter{
		provider.NewSePay(provider.SePayConfig{WebhookSecret: a.cfg.SePay.WebhookSecret}),
		provider.NewMoMo(provider.MoMoConfig{
			PartnerCode: a.cfg.MoMo.PartnerCode,
			AccessKey:   a.cfg.MoMo.AccessKey,
			SecretKey:   a.cfg.MoMo.SecretKey,
		}),
		provider.NewPayOS(provider.PayOSConfig{ChecksumKey: a.cfg.PayOS.ChecksumKey}),
	}

	h := handler.NewHandler(rec, paymentService, walletService, adapters, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
