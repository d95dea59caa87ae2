package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-overtime-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-overtime-go/internal/repository/postgresql"
	overtimeService "github.com/cmlabs-hris/hris-overtime-go/internal/service/overtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rules, err := cfg.Overtime.Rules()
	if err != nil {
		slog.Error("invalid overtime rules", "error", err)
		os.Exit(1)
	}
	calculator, err := overtimeService.NewCalculator(rules)
	if err != nil {
		slog.Error("failed to build overtime calculator", "error", err)
		os.Exit(1)
	}

	summaryRepo := postgresql.NewAttendanceSummaryRepository(db)
	stampRepo := postgresql.NewTimeStampRepository(db)
	snapshotter := postgresql.NewSnapshotter(db)

	overtimeSvc := overtimeService.NewOvertimeService(snapshotter, summaryRepo, stampRepo, calculator)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.AcceptableSkew)

	router := appHTTP.NewRouter(logger, cfg.CORS, JWTService, overtimeHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.App.Port,
			"standard_end", rules.StandardEnd.String(),
			"monthly_cap_minutes", rules.MonthlyCapMinutes,
			"consistency_check", rules.ConsistencyCheck,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
