package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trending-board/domain/repository"
	"trending-board/infrastructure/cache"
	youtubeclient "trending-board/infrastructure/clients/youtube"
	"trending-board/infrastructure/configuration"
	"trending-board/infrastructure/logger"
	httpHandler "trending-board/interfaces/http"
	"trending-board/server"
	"trending-board/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.LoadConfig()
	app := configuration.C.App

	// Credential resolution: secrets file first, then environment. A missing
	// API key is terminal for the session.
	resolver := configuration.DefaultCredentialResolver()
	apiKey, err := resolver.APIKey()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("API key not configured; cannot start")
		os.Exit(1)
	}

	dashboardCache := initiateCache(ctx)

	callTimeout := time.Duration(configuration.C.YouTube.TimeoutMS) * time.Millisecond
	trendingClient, err := youtubeclient.NewTrendingClient(ctx, apiKey, callTimeout)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client; cannot start")
		os.Exit(1)
	}

	trendingUC := usecase.NewTrendingUseCase(trendingClient, dashboardCache).
		WithTTL(
			time.Duration(configuration.C.Cache.VideoTTLSeconds)*time.Second,
			time.Duration(configuration.C.Cache.CategoryTTLSeconds)*time.Second,
		)
	trendingHandler := httpHandler.NewTrendingHandler(trendingUC)

	tempUser, tempPass := resolver.TempCredentials()
	if configuration.C.Auth.TempUsername != "" {
		tempUser = configuration.C.Auth.TempUsername
	}
	if configuration.C.Auth.TempPassword != "" {
		tempPass = configuration.C.Auth.TempPassword
	}
	if tempUser == "" || tempPass == "" {
		logger.GetLogger().Warn("TEMP_USERNAME/TEMP_PASSWORD not set; login gate disabled until configured")
	}
	authUC := usecase.NewAuthUsecase(tempUser, tempPass, app.SecretKey)
	userHandler := httpHandler.NewUserHandler(authUC)

	router := server.InitiateRouter(userHandler, trendingHandler)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCache picks the cache backend: Redis when configured and
// reachable, in-process memory otherwise.
func initiateCache(ctx context.Context) repository.IDashboardCache {
	redisConf := configuration.C.RedisClient
	if redisConf.Host == "" {
		logger.GetLogger().Info("Redis not configured; using in-memory cache")
		return cache.NewMemoryCache()
	}

	client, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", redisConf.Host, redisConf.Port),
		redisConf.Username,
		redisConf.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable; falling back to in-memory cache")
		return cache.NewMemoryCache()
	}
	logger.GetLogger().Info("Redis cache connected")
	return cache.NewRedisCache(client)
}
