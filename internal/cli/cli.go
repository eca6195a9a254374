package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"interlinear/internal/cache"
	"interlinear/internal/config"
	"interlinear/internal/gloss"
	"interlinear/internal/termgraph"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "interlinear",
		Short: "Interlinear gloss renderer",
		Long: `Renders interlinear glosses (original line, aligned morpheme analysis
lines, free translation) from plain text documents into structured HTML.`,
	}

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(renderFileCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(abbrevCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <input-dir> <output-dir>",
		Short: "Render all gloss documents under a directory",
		Long: `Walks input-dir for .gloss, .md and .txt files, renders every gloss
block they contain and writes the results to output-dir, preserving
relative paths. Rendered blocks are cached when DATABASE_URL is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			return runRender(args[0], args[1], noCache)
		},
	}
	cmd.Flags().Bool("no-cache", false, "Skip the PostgreSQL render cache")
	return cmd
}

func renderFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render-file <file>",
		Short: "Render a single gloss document to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenderFile(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func abbrevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abbrev",
		Short: "Inspect and manage the abbreviation terminology",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the effective abbreviation table as TSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAbbrevList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Seed the Neo4j terminology graph with the built-in table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAbbrevSeed()
		},
	})

	add := &cobra.Command{
		Use:   "add <code> <description>",
		Short: "Insert or update a custom abbreviation in the graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			return runAbbrevAdd(args[0], args[1], category)
		},
	}
	add.Flags().String("category", "custom", "Term category")
	cmd.AddCommand(add)

	export := &cobra.Command{
		Use:   "export",
		Short: "Export the graph-backed terminology to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			return runAbbrevExport(format, output)
		},
	}
	export.Flags().String("format", "tsv", "Export format: tsv or json")
	export.Flags().String("output", "abbreviations", "Output path (without extension)")
	cmd.AddCommand(export)

	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// initCache connects the render cache. With an empty DATABASE_URL (or
// disabled caching) a memory-only cache is returned and the pool is nil.
func initCache(ctx context.Context, cfg *config.Config, disabled bool) (*cache.RenderCache, *pgxpool.Pool, error) {
	if disabled || cfg.DatabaseURL == "" {
		return cache.New(nil), nil, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}

	c := cache.New(pool)
	if err := c.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	log.Info().Msg("Connected to PostgreSQL render cache")
	return c, pool, nil
}

// initTermGraph connects the Neo4j terminology store, or returns nil when
// no NEO4J_URI is configured.
func initTermGraph(ctx context.Context, cfg *config.Config) (*termgraph.Store, neo4j.DriverWithContext, error) {
	if cfg.Neo4jURI == "" {
		return nil, nil, nil
	}

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, nil, fmt.Errorf("connect Neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}

	log.Info().Msg("Connected to Neo4j terminology graph")
	return termgraph.NewStore(driver), driver, nil
}

// requireTermGraph is initTermGraph for commands that cannot run without
// the graph.
func requireTermGraph(ctx context.Context, cfg *config.Config) (*termgraph.Store, neo4j.DriverWithContext, error) {
	store, driver, err := initTermGraph(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("NEO4J_URI is not configured")
	}
	return store, driver, nil
}

// baseOptions builds the effective base option set: defaults, extended by
// the terminology graph when one is configured. Graph failures degrade to
// the built-in table with a warning.
func baseOptions(ctx context.Context, store *termgraph.Store) *gloss.Options {
	opts := gloss.DefaultOptions()
	if store == nil {
		return opts
	}

	terms, err := store.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load terminology, using built-in table")
		return opts
	}
	return opts.Apply(gloss.Overrides{Abbreviations: terms})
}
