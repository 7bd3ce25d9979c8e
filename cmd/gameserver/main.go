package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gi2go/internal/config"
	"github.com/udisondev/gi2go/internal/data"
	"github.com/udisondev/gi2go/internal/db"
	"github.com/udisondev/gi2go/internal/dispatch"
	"github.com/udisondev/gi2go/internal/game/ability"
	"github.com/udisondev/gi2go/internal/game/talent"
	"github.com/udisondev/gi2go/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := GameConfigPath
	if p := os.Getenv("GI2GO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("gi2go server starting", "log_level", cfg.LogLevel)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Load static data: abilities first, everything else validates against them
	if err := data.LoadAbilities(); err != nil {
		return fmt.Errorf("loading abilities: %w", err)
	}
	if err := data.LoadAvatars(); err != nil {
		return fmt.Errorf("loading avatars: %w", err)
	}
	if err := data.LoadTalents(); err != nil {
		return fmt.Errorf("loading talents: %w", err)
	}

	// Reverse lookup for client-sent name hashes, built once over the
	// complete loaded configuration set
	hashIndex := ability.BuildHashIndex(data.AllAbilityConfigs())

	// Engine + orchestration
	engine := ability.NewEngine(data.Templates{})
	avatarRepo := db.NewAvatarRepository(database.Pool())
	playerRepo := db.NewPlayerRepository(database.Pool())
	talentMgr := talent.NewManager(engine, avatarRepo)

	worldInstance := world.New(hashIndex, talentMgr)
	ticker := world.NewTicker(worldInstance, time.Duration(cfg.TickIntervalMs)*time.Millisecond)

	sessions := dispatch.NewSessionManager(24 * time.Hour)
	dispatchSrv := dispatch.NewServer(database, playerRepo, sessions, cfg.BindAddress, cfg.DispatchPort, true)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting dispatch server", "port", cfg.DispatchPort)
		if err := dispatchSrv.Run(gctx); err != nil {
			return fmt.Errorf("dispatch server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := ticker.Start(gctx); err != nil {
			return fmt.Errorf("world ticker: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
