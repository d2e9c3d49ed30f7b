package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/uniquetopup/ff_info_bot/config"
	"github.com/uniquetopup/ff_info_bot/discord"
	ffClient "github.com/uniquetopup/ff_info_bot/freefire/client"
	"github.com/uniquetopup/ff_info_bot/limiter"
	"github.com/uniquetopup/ff_info_bot/logger"
	"github.com/uniquetopup/ff_info_bot/pipeline"
	"github.com/uniquetopup/ff_info_bot/session"
)

func main() {
	params, err := build()
	if err != nil {
		log.Fatal(err)
	}

	if err = run(params); err != nil {
		log.Fatal(err)
	}
}

func build() (runParams, error) {
	// Optional .env for local runs; hosted deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.LoadWithDefaults("config/config.yaml", "config/secrets.yaml")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return runParams{}, fmt.Errorf("load config: %w", err)
		}
		cfg = &config.AppConfig{}
		cfg.Logger.Level = "info"
		cfg.FreeFire.Defaults()
		cfg.Limiter.Defaults()
	}
	applyEnvOverrides(cfg)

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return runParams{}, fmt.Errorf("initialize logger: %w", err)
	}

	if cfg.Discord.Token == "" {
		return runParams{}, fmt.Errorf("DISCORD_TOKEN environment variable or discord.token config required")
	}
	if cfg.FreeFire.APIKey == "" || cfg.FreeFire.UserUID == "" {
		return runParams{}, fmt.Errorf("FF_API_KEY and FF_USER_UID environment variables or freefire config required")
	}

	sessions := session.New(session.Params{
		Timeout: cfg.Session.Timeout,
		Logger:  appLogger,
	})

	fetcher := ffClient.New(ffClient.Params{
		BaseURL:   cfg.FreeFire.BaseURL,
		UserAgent: cfg.FreeFire.UserAgent,
		Region:    cfg.FreeFire.Region,
		UserUID:   cfg.FreeFire.UserUID,
		APIKey:    cfg.FreeFire.APIKey,
		Logger:    appLogger,
	})

	rateLimiter, sqliteLimiter, err := buildLimiter(cfg.Limiter, appLogger)
	if err != nil {
		return runParams{}, fmt.Errorf("initialize rate limiter: %w", err)
	}

	commandPipeline := pipeline.New(pipeline.Params{
		Sessions: sessions,
		Limiter:  rateLimiter,
		Fetcher:  fetcher,
		Logger:   appLogger,
	})

	discordClient, err := discord.New(discord.Params{
		Config:   cfg.Discord,
		Sessions: sessions,
		Pipeline: commandPipeline,
		Logger:   appLogger,
	})
	if err != nil {
		return runParams{}, err
	}

	return runParams{
		Config:        cfg,
		Logger:        appLogger,
		DiscordClient: discordClient,
		SQLiteLimiter: sqliteLimiter,
	}, nil
}

// applyEnvOverrides layers the original deployment's env vars over the
// YAML config so either source works.
func applyEnvOverrides(cfg *config.AppConfig) {
	if v := strings.TrimSpace(os.Getenv("DISCORD_TOKEN")); v != "" {
		cfg.Discord.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("TOKEN")); v != "" && cfg.Discord.Token == "" {
		cfg.Discord.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("FF_API_KEY")); v != "" {
		cfg.FreeFire.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("FF_USER_UID")); v != "" {
		cfg.FreeFire.UserUID = v
	}
	if v := strings.TrimSpace(os.Getenv("FF_REGION")); v != "" {
		cfg.FreeFire.Region = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" && cfg.Health.Addr == "" {
		cfg.Health.Addr = ":" + v
	}
}

// buildLimiter returns the configured limiter; the sqlite backend is
// also returned concretely so run() can open and close it.
func buildLimiter(cfg limiter.Config, appLogger logger.Logger) (limiter.Limiter, *limiter.SQLite, error) {
	switch cfg.Backend {
	case "none":
		return nil, nil, nil
	case "sqlite":
		s := limiter.NewSQLite(limiter.SQLiteParams{
			Window:   cfg.Window,
			MaxUsers: cfg.MaxUsers,
			Logger:   appLogger,
		})
		return s, s, nil
	case "memory", "":
		return limiter.NewMemory(limiter.MemoryParams{
			Window:   cfg.Window,
			MaxUsers: cfg.MaxUsers,
		}), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown limiter backend %q", cfg.Backend)
	}
}

type runParams struct {
	Config        *config.AppConfig
	Logger        logger.Logger
	DiscordClient discord.Discord
	SQLiteLimiter *limiter.SQLite
}

// run starts all components and runs the application until shutdown.
func run(p runParams) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer p.Logger.Sync()

	if p.SQLiteLimiter != nil {
		if err := p.SQLiteLimiter.Open(ctx); err != nil {
			return fmt.Errorf("open rate limiter: %w", err)
		}
		defer p.SQLiteLimiter.Close()
	}

	if err := p.DiscordClient.Start(ctx); err != nil {
		return fmt.Errorf("start discord client: %w", err)
	}

	var healthServer *http.Server
	if addr := p.Config.Health.Addr; addr != "" {
		healthServer = startHealthListener(addr, p.Logger)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := p.DiscordClient.Stop(); err != nil {
		p.Logger.ErrorW("stop discord client", "error", err)
	}

	if healthServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			p.Logger.ErrorW("stop health listener", "error", err)
		}
	}

	return nil
}

// startHealthListener serves the liveness endpoint hosting platforms
// poll to keep the process alive.
func startHealthListener(addr string, appLogger logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.ErrorW("health listener failed", "error", err)
		}
	}()

	appLogger.InfoW("health listener started", "addr", addr)
	return server
}
