package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/catalog"
	partnerapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/partner"
	reportapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/report"
	saleapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/sale"
	stockapp "github.com/salmoriadev/Sistema-CaFerri/internal/application/stock"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/config"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/event"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/logger"
	"github.com/salmoriadev/Sistema-CaFerri/internal/infrastructure/persistence"
	"github.com/salmoriadev/Sistema-CaFerri/internal/interfaces/http/handler"
	"github.com/salmoriadev/Sistema-CaFerri/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting Caferri",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	// Repositories
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(logger.Named(log, "eventbus"))
	ctx := context.Background()
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Application services
	supplierService := partnerapp.NewSupplierService(supplierRepo, eventBus)
	customerService := partnerapp.NewCustomerService(customerRepo, eventBus)
	productService := catalogapp.NewProductService(productRepo, supplierRepo, eventBus)
	stockService := stockapp.NewStockService(ledgerRepo, productRepo, logger.Named(log, "stock"))
	saleService := saleapp.NewSaleService(saleRepo, customerRepo, productRepo, stockService, eventBus)
	reportService := reportapp.NewReportService(saleRepo, productRepo, supplierRepo)

	// The ledger lives in memory; rebuild it from the last snapshot
	if err := stockService.Load(ctx); err != nil {
		log.Fatal("Failed to load stock ledger", zap.Error(err))
	}

	// A discontinued product leaves the stock ledger as well
	eventBus.Subscribe(stockapp.NewProductDiscontinuedHandler(stockService, logger.Named(log, "stock")))

	// HTTP wiring
	engine := router.NewEngine(log)
	r := router.NewRouter(engine)
	r.Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewStockHandler(stockService)).
		Register(handler.NewSaleHandler(saleService)).
		Register(handler.NewReportHandler(reportService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
