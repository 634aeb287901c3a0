package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/Gaurav-Shaw09/PenFolio/config"
	"github.com/Gaurav-Shaw09/PenFolio/internal/api/handler"
	"github.com/Gaurav-Shaw09/PenFolio/internal/api/router"
	"github.com/Gaurav-Shaw09/PenFolio/internal/cache"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/database"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracer := initTracer(cfg)
	defer shutdownTracer()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// services
	snapshots := cache.NewFollowerCache(rdb, userRepo, cfg.Redis.CacheTTL)
	accounts := service.NewAccountService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	relations := service.NewRelationshipService(db, userRepo, followRepo, fanRepo, snapshots)
	engagement := service.NewEngagementService(db, userRepo, postRepo, commentRepo, likeRepo, followRepo)
	notifications := service.NewNotificationService(notifRepo)
	chat := service.NewChatService(chatRepo, userRepo, rdb)
	otp := service.NewOTPService(rdb, logSender{}, cfg.OTP.TTL)

	// background workers
	fanout := service.NewNotificationWorker(eventRepo, notifications, cfg.Fanout.Workers, cfg.Fanout.ClaimLimit, cfg.Fanout.PollInterval)
	stopFanout := fanout.Start()
	reconciler := service.NewGraphReconciler(db, fanRepo, time.Minute)
	stopReconciler := reconciler.Start()

	h := handler.New(accounts, relations, engagement, notifications, chat, otp)
	engine := router.New(cfg, h, accounts)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: engine}
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	_ = stopFanout(ctx)
	_ = stopReconciler(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	_ = rdb.Close()
}

// logSender is the dev fallback mail transport. It writes codes to the log
// instead of sending mail.
type logSender struct{}

func (logSender) Send(ctx context.Context, to, subject, body string) error {
	logger.Info("outgoing mail", zap.String("to", to), zap.String("subject", subject), zap.String("body", body))
	return nil
}

// initTracer wires the OTLP HTTP exporter when an endpoint is configured and
// returns a shutdown func.
func initTracer(cfg *config.Config) func() {
	if cfg.Otel.Endpoint == "" {
		return func() {}
	}
	client := otlptracehttp.NewClient(otlptracehttp.WithEndpoint(cfg.Otel.Endpoint), otlptracehttp.WithInsecure())
	exp, err := otlptrace.New(context.Background(), client)
	if err != nil {
		logger.Warn("otel exporter init failed", zap.Error(err))
		return func() {}
	}
	res, _ := sdkresource.Merge(sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.Otel.Service)))
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}
}
