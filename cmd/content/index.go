package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Publish the property index to Redis",
	Long: `Index scans the properties directory and replaces the Redis property
index with it, so format and tooltip runs with --redis-addr resolve property
names without reading the directory.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	found, err := properties.Scan(ctx, propertiesDir())
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return errors.NotFoundf("no properties found under %s", propertiesDir())
	}

	client, err := newRedisClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	repo, err := properties.NewRedis(&properties.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	stored, err := repo.Store(ctx, properties.StoreInput{Properties: found})
	if err != nil {
		return err
	}

	for _, prop := range stored.Shadowed {
		slog.WarnContext(ctx, "property name already taken by an earlier file",
			"name", prop.Name,
			"id", prop.ID)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d properties in redis at %s\n", stored.Stored, cfg.Redis.Addr)
	return nil
}
