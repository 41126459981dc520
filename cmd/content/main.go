// Package main is the entry point for the rpg-content command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/config"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/redis"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
)

var (
	configPath string
	dataDir    string
	workers    int
	redisAddr  string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rpg-content",
	Short: "Game data content tools",
	Long: `rpg-content keeps the game's JSON data tidy: it regenerates weapon and
spell tooltips, orders record keys canonically, audits property names and
publishes the property index to Redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&dataDir, "data-dir", "", "game data root (default \"data\")")
	flags.IntVar(&workers, "workers", 0, "files formatted in parallel, 0 for one per CPU")
	flags.StringVar(&redisAddr, "redis-addr", "", "read properties from the Redis index at this address")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default \"info\")")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(tooltipCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(dupesCmd)
	rootCmd.AddCommand(indexCmd)
}

// setup loads the config file, applies flag overrides and installs the
// default logger
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	applyFlags(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	return nil
}

// applyFlags copies explicitly set persistent flags over the loaded config
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		c.DataDir = dataDir
	}
	if flags.Changed("workers") {
		c.Workers = workers
	}
	if flags.Changed("redis-addr") {
		c.Redis.Addr = redisAddr
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
}

func propertiesDir() string {
	return filepath.Join(cfg.DataDir, "properties")
}

// newRedisClient connects to the configured Redis and checks it responds
func newRedisClient(ctx context.Context) (redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, errors.InvalidArgument("a redis address is required, set --redis-addr or redis.addr")
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		DB:          cfg.Redis.DB,
		Password:    cfg.Redis.Password,
		DialTimeout: cfg.Redis.DialTimeout,
		UseTLS:      cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// propertyRepository returns the Redis index when an address is configured
// and an index scanned from disk otherwise. The returned func releases it.
func propertyRepository(ctx context.Context) (properties.Repository, func(), error) {
	if cfg.Redis.Addr == "" {
		repo, err := properties.BuildIndex(ctx, propertiesDir())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	client, err := newRedisClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	repo, err := properties.NewRedis(&properties.RedisConfig{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	slog.DebugContext(ctx, "reading properties from redis", "addr", cfg.Redis.Addr)
	return repo, func() { _ = client.Close() }, nil
}
