package cli

import (
	"context"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidertrack/pkg/cache"
	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/preset"
	"github.com/matzehuels/slidertrack/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string
	redisAddr  string
	mongoURI   string
	mongoDB    string
	presetsDir string
	noCache    bool
	noPresets  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes planning, nearest-value queries, rendering and presets over HTTP.

Artifacts are cached in Redis when --redis is set, otherwise in the local
cache directory. Presets are stored in MongoDB when --mongo is set, otherwise
as files in the preset directory.

Environment variables SLIDERTRACK_REDIS and SLIDERTRACK_MONGO are used when
the matching flags are empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisAddr == "" {
				opts.redisAddr = os.Getenv("SLIDERTRACK_REDIS")
			}
			if opts.mongoURI == "" {
				opts.mongoURI = os.Getenv("SLIDERTRACK_MONGO")
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.addr, "addr", opts.addr, "listen address")
	fl.StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache")
	fl.StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for presets")
	fl.StringVar(&opts.mongoDB, "mongo-db", "", "MongoDB database (default slidertrack)")
	fl.StringVar(&opts.presetsDir, "presets-dir", "", "preset directory for file storage")
	fl.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	fl.BoolVar(&opts.noPresets, "no-presets", false, "disable preset endpoints")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	artifacts, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(artifacts, nil, logger)
	defer runner.Close()

	presets, err := c.serverPresets(ctx, opts)
	if err != nil {
		return err
	}
	if presets != nil {
		defer presets.Close()
	}

	printInfo("Serving on %s", StyleLink.Render(serveURL(opts.addr)))
	return server.New(runner, presets, logger).Serve(ctx, opts.addr)
}

func (c *CLI) serverCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		logger.Info("Using Redis cache", "addr", opts.redisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr, Prefix: appName + ":"})
	default:
		return newCache(false)
	}
}

// serverPresets returns nil when presets are disabled; the server then
// answers preset routes with an unsupported error.
func (c *CLI) serverPresets(ctx context.Context, opts serveOpts) (preset.Store, error) {
	logger := loggerFromContext(ctx)
	switch {
	case opts.noPresets:
		printWarning("Preset endpoints disabled")
		return nil, nil
	case opts.mongoURI != "":
		logger.Info("Using MongoDB presets", "database", opts.mongoDB)
		return preset.NewMongoStore(ctx, preset.MongoConfig{URI: opts.mongoURI, Database: opts.mongoDB})
	case opts.presetsDir != "":
		return preset.NewFileStore(opts.presetsDir)
	default:
		return newPresetStore()
	}
}

// serveURL turns a listen address into a URL a browser can open.
func serveURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
