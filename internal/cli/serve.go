package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/barchart/pkg/buildinfo"
	"github.com/matzehuels/barchart/pkg/cache"
	"github.com/matzehuels/barchart/pkg/observability"
	"github.com/matzehuels/barchart/pkg/pipeline"
	"github.com/matzehuels/barchart/pkg/server"
)

const defaultAddr = "127.0.0.1:8080"

type serveOpts struct {
	addr     string
	redisURL string
	noCache  bool
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendering API over HTTP",
		Long: `Serve the rendering API over HTTP.

Artifacts are cached in the local cache directory, or in redis when
--redis-url is set so several instances share one cache.`,
		Example: `  barchart serve --addr :8080
  barchart serve --redis-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "redis URL for a shared artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	hooks := observability.NewLogHooks(logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetServerHooks(hooks)
	defer observability.Reset()

	var runner *pipeline.Runner
	backend := "file"
	if opts.redisURL != "" && !opts.noCache {
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return err
		}
		keyer := cache.NewScopedKeyer(nil, buildinfo.CachePrefix())
		runner = pipeline.NewRunner(rc, keyer, logger)
		backend = "redis"
	} else {
		r, err := c.newRunner(opts.noCache)
		if err != nil {
			return err
		}
		runner = r
		if opts.noCache {
			backend = "disabled"
		}
	}
	defer runner.Close()

	printInfo("Serving on %s", StyleValue.Render("http://"+opts.addr))
	printKeyValue("cache", backend)
	printNextStep("Try", "curl http://"+opts.addr+"/healthz")
	return server.New(runner, logger).ListenAndServe(ctx, opts.addr)
}
