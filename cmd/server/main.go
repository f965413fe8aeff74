package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agritech/cropscan-api/internal/catalog"
	"github.com/agritech/cropscan-api/internal/chat"
	"github.com/agritech/cropscan-api/internal/classifier"
	"github.com/agritech/cropscan-api/internal/config"
	"github.com/agritech/cropscan-api/internal/handlers"
	"github.com/agritech/cropscan-api/internal/llm"
	"github.com/agritech/cropscan-api/internal/logx"
	"github.com/agritech/cropscan-api/internal/translate"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logx.Init(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The classifier is loaded once. A failure is permanent for this process:
	// the service still starts and /predict answers 503.
	var clf classifier.Classifier
	onnx, err := classifier.LoadONNX(cfg.ModelPath, cfg.MetadataPath)
	if err != nil {
		logx.Error().Err(err).Str("model", cfg.ModelPath).
			Msg("classifier failed to load, /predict will be unavailable")
	} else {
		defer onnx.Close()
		clf = onnx
		logx.Info().Int("classes", len(onnx.Classes())).Str("model", cfg.ModelPath).
			Msg("classifier loaded")
	}

	// A missing API key silently disables every remote-AI tier.
	var gen llm.Generator
	if cfg.RemoteAIEnabled() {
		gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logx.Error().Err(err).Msg("Gemini client failed to initialise, running in fallback mode")
		} else {
			gen = gemini
			logx.Info().Str("model", cfg.GeminiModel).Msg("remote AI enabled")
		}
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set, chat and translation run in fallback mode")
	}

	var cache translate.Cache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logx.Error().Err(err).Msg("invalid REDIS_URL, translation cache disabled")
		} else {
			client := redis.NewClient(opts)
			if err := client.Ping(ctx).Err(); err != nil {
				logx.Error().Err(err).Msg("Redis unreachable, translation cache disabled")
			} else {
				cache = translate.NewRedisCache(client, cfg.TranslationTTL)
				defer client.Close()
				logx.Info().Msg("translation cache enabled")
			}
		}
	}

	handler := handlers.New(
		clf,
		catalog.Default(),
		translate.NewResolver(gen, cache, cfg.TranslateTimeout),
		chat.New(gen, cfg.ChatTimeout),
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      enableCORS(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info().Int("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("server shutdown failed")
	}
}
