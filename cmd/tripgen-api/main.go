// README: Entry point; loads config, wires services, starts the HTTP server.
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

	"github.com/joho/godotenv"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	httptransport "tripgen/internal/http"
	"tripgen/internal/infra"
	"tripgen/internal/itinerary"
	"tripgen/internal/maps"
	"tripgen/internal/modules/trip"
	"tripgen/internal/modules/user"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, closeAI, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Fatalf("ai init: %v", err)
	}
	defer closeAI()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	jwtManager, err := infra.NewJWTManager(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatal(err)
	}

	var enricher trip.Enricher
	if cfg.Maps.APIKey != "" {
		enrichSvc, err := maps.NewEnrichService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		enricher = enrichSvc
	}

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore, jwtManager)

	generator := itinerary.NewService(completer)

	tripStore := trip.NewStore(dbPool)
	resultCache := trip.NewCache(redisClient, cfg.Redis.CacheTTL)
	tripSvc := trip.NewService(tripStore, generator, resultCache, enricher)

	router := httptransport.NewRouter(userSvc, tripSvc, jwtManager)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("tripgen: listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// newCompleter picks the model backend from config. The returned close func
// is a no-op for backends without a connection to release.
func newCompleter(ctx context.Context, cfg config.Config) (ai.Completer, func(), error) {
	switch cfg.AI.Provider {
	case "openai":
		provider, err := ai.NewOpenAIProvider(cfg.AI.OpenAIKey)
		if err != nil {
			return nil, nil, err
		}
		return provider, func() {}, nil
	case "gemini":
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return provider, func() { provider.Close() }, nil
	default:
		return nil, nil, errors.New("unknown AI provider: " + cfg.AI.Provider)
	}
}
