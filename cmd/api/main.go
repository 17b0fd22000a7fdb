package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "studentloan-backend/internal/adapter/http"
	mw "studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/adapter/repository/mysql"
	"studentloan-backend/internal/config"
	"studentloan-backend/internal/infrastructure/cache"
	"studentloan-backend/internal/infrastructure/db"
	"studentloan-backend/internal/infrastructure/metrics"
	"studentloan-backend/internal/logger"
	"studentloan-backend/internal/usecase/auth"
	"studentloan-backend/internal/usecase/loan"
	"studentloan-backend/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.GormLogLevel(cfg.GormLogLevel), zl)
	if err != nil {
		zl.Fatal("open mysql", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		zl.Fatal("mysql pool", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, zl)
	if err != nil {
		zl.Fatal("open redis", zap.Error(err))
	}
	defer rdb.Close()

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	if err != nil {
		zl.Fatal("token issuer", zap.Error(err))
	}

	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	loanTypes := mysql.NewLoanTypeRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	m := metrics.New()

	authUC := auth.NewUsecase(customers, tx, tokens, zl.Named("auth"))
	loanUC := loan.NewUsecase(loans, loanTypes, zl.Named("loan"))
	processor := repayment.NewProcessor(tx, payments, zl.Named("repayment"), m)

	health := httpadp.NewHandler(
		httpadp.Check{Name: "mysql", Ping: sqlDB.PingContext},
		httpadp.Check{Name: "redis", Ping: cache.Ping(rdb)},
	)
	router := &httpadp.Router{
		Health:       health,
		Auth:         httpadp.NewAuthHandler(authUC),
		Loans:        httpadp.NewLoanHandler(loanUC),
		Repayments:   httpadp.NewRepaymentHandler(processor),
		Admin:        httpadp.NewAdminHandler(loanUC, authUC),
		Authenticate: mw.Authenticate(authUC),
		RequireAdmin: mw.RequireAdmin,
		Idempotency:  mw.Idempotency(rdb, cfg.IdempotencyTTL(), zl.Named("idempotency")),
		Metrics:      m.Handler(),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return uuid.NewString() },
		}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				fields := []zap.Field{
					zap.String("request_id", v.RequestID),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
				}
				if v.Error != nil {
					zl.Error("request", append(fields, zap.Error(v.Error))...)
					return nil
				}
				zl.Info("request", fields...)
				return nil
			},
		}),
		middleware.Recover(),
		middleware.BodyLimit("64K"),
	)
	router.RegisterRoutes(e)

	addr := ":" + cfg.AppPort
	go func() {
		zl.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
