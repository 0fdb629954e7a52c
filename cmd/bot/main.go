package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arhansuba/tg-trading-bot/config"
	httpHandler "github.com/arhansuba/tg-trading-bot/internal/adapter/http/handler"
	"github.com/arhansuba/tg-trading-bot/internal/adapter/memory"
	"github.com/arhansuba/tg-trading-bot/internal/adapter/provider"
	pgStorage "github.com/arhansuba/tg-trading-bot/internal/adapter/storage/postgres"
	redisStorage "github.com/arhansuba/tg-trading-bot/internal/adapter/storage/redis"
	"github.com/arhansuba/tg-trading-bot/internal/adapter/telegram"
	"github.com/arhansuba/tg-trading-bot/internal/service"
	"github.com/arhansuba/tg-trading-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// Load configuration (fails fast on missing token or malformed AES key)
	cfg, err := config.Load(os.Getenv("TTB_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("network", cfg.Provider.Network).
		Msg("Starting Telegram trading bot")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close() //nolint:errcheck
	log.Info().Msg("Redis connected")

	// Initialize storage adapters
	credRepo := pgStorage.NewCredentialRepo(pool)
	addrCache := redisStorage.NewAddressCache(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	walletProvider, err := provider.NewClient(cfg.Provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize wallet provider")
	}
	credSvc := service.NewCredentialService(credRepo, encSvc, walletProvider, addrCache, cfg.Provider.Network, log)
	convStore := memory.NewConversationStore()
	tradeSvc := service.NewTradeService(convStore, credSvc, log)

	// Initialize Telegram API
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	log.Info().Str("username", api.Self.UserName).Msg("Telegram connected")

	// Operational HTTP surface (deep /health: PostgreSQL + Redis)
	router := httpHandler.SetupRouter(
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	)
	srv := &http.Server{
		Addr:    cfg.Health.Addr,
		Handler: router,
	}
	go func() {
		log.Info().Str("addr", cfg.Health.Addr).Msg("Health server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Health server failed")
		}
	}()

	// Long-poll updates until SIGINT/SIGTERM
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := api.GetUpdatesChan(updateCfg)

	bot := telegram.NewBot(api, tradeSvc, convStore, cfg.Provider.Network, log)
	bot.Run(ctx, updates)

	log.Info().Msg("Shutting down...")
	api.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Health server forced to shutdown")
	}

	log.Info().Msg("Bot exited")
}
