package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/server"
	"github.com/matzehuels/chartkit/pkg/store"
)

// Environment variables read by serve.
const (
	envAddr          = "CHARTKIT_ADDR"
	envRedisAddr     = "CHARTKIT_REDIS_ADDR"
	envRedisPassword = "CHARTKIT_REDIS_PASSWORD"
	envRedisDB       = "CHARTKIT_REDIS_DB"
	envMongoURI      = "CHARTKIT_MONGO_URI"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisAddr     string
	redisPassword string
	redisDB       int
	cachePrefix   string
	noCache       bool
	mongoURI      string
	mongoDatabase string
	renderTimeout time.Duration
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var so serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Artifacts are cached in Redis when --redis is set, otherwise in the local
file cache. Stored charts live in MongoDB when --mongo is set, otherwise in
memory. Flags fall back to CHARTKIT_ADDR, CHARTKIT_REDIS_ADDR,
CHARTKIT_REDIS_PASSWORD, CHARTKIT_REDIS_DB and CHARTKIT_MONGO_URI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), so)
		},
	}

	redisDB, _ := strconv.Atoi(envOr(envRedisDB, "0"))
	cmd.Flags().StringVar(&so.addr, "addr", envOr(envAddr, ":8080"), "listen address")
	cmd.Flags().StringVar(&so.redisAddr, "redis", envOr(envRedisAddr, ""), "Redis address for the artifact cache")
	cmd.Flags().StringVar(&so.redisPassword, "redis-password", envOr(envRedisPassword, ""), "Redis password")
	cmd.Flags().IntVar(&so.redisDB, "redis-db", redisDB, "Redis database number")
	cmd.Flags().StringVar(&so.cachePrefix, "cache-prefix", "", "prefix for cache keys")
	cmd.Flags().BoolVar(&so.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&so.mongoURI, "mongo", envOr(envMongoURI, ""), "MongoDB URI for stored charts")
	cmd.Flags().StringVar(&so.mongoDatabase, "mongo-db", store.DefaultDatabase, "MongoDB database")
	cmd.Flags().DurationVar(&so.renderTimeout, "render-timeout", 30*time.Second, "limit for a single render")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, so serveOpts) error {
	ch, err := c.serveCache(ctx, so)
	if err != nil {
		return err
	}
	st, err := c.serveStore(ctx, so)
	if err != nil {
		ch.Close()
		return err
	}

	keyer := cache.NewScopedKeyer(nil, so.cachePrefix)
	srv := server.New(server.Config{
		Runner:        pipeline.NewRunner(ch, keyer, c.Logger),
		Store:         st,
		Logger:        c.Logger,
		RenderTimeout: so.renderTimeout,
	})
	defer srv.Close()

	printSuccess("Serving on %s", so.addr)
	printKeyValue("cache", describeCache(so))
	printKeyValue("store", describeStore(so))

	return srv.ListenAndServe(ctx, so.addr)
}

func (c *CLI) serveCache(ctx context.Context, so serveOpts) (cache.Cache, error) {
	if so.noCache {
		return cache.NewNullCache(), nil
	}
	if so.redisAddr == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     so.redisAddr,
		Password: so.redisPassword,
		DB:       so.redisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect cache: %w", err)
	}
	c.Logger.Debug("connected to redis", "addr", so.redisAddr, "db", so.redisDB)
	return rc, nil
}

func (c *CLI) serveStore(ctx context.Context, so serveOpts) (store.Store, error) {
	if so.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, store.MongoOptions{URI: so.mongoURI, Database: so.mongoDatabase})
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	c.Logger.Debug("connected to mongo", "database", so.mongoDatabase)
	return ms, nil
}

func describeCache(so serveOpts) string {
	switch {
	case so.noCache:
		return "disabled"
	case so.redisAddr != "":
		return "redis " + so.redisAddr
	default:
		return "file"
	}
}

func describeStore(so serveOpts) string {
	if so.mongoURI != "" {
		return "mongo " + so.mongoDatabase
	}
	return "memory"
}
