package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"interlinear/internal/cache"
	"interlinear/internal/config"
	"interlinear/internal/gloss"
	"interlinear/internal/parser"
	"interlinear/internal/server"
	"interlinear/internal/termgraph"
	"interlinear/internal/textutil"
	"interlinear/internal/walker"
	"interlinear/internal/worker"

	"github.com/rs/zerolog/log"
)

// runRender handles the `render` command.
func runRender(inputDir, outputDir string, noCache bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	renderCache, pool, err := initCache(ctx, cfg, noCache)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
		if err := renderCache.Preload(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to preload cache")
		}
	}

	store, driver, err := initTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	if driver != nil {
		defer driver.Close(ctx)
	}

	base := baseOptions(ctx, store)

	w := walker.NewWalker()
	entries, err := w.Walk(inputDir)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	log.Info().Int("files", len(entries)).Msg("Starting render pipeline")

	parsePool := worker.NewPool[walker.FileEntry, *parser.ParseResult](cfg.WorkerCount,
		func(ctx context.Context, entry walker.FileEntry) (*parser.ParseResult, error) {
			return entry.Parser.Parse(entry.Path)
		},
	)
	parseResults := parsePool.Execute(ctx, entries)

	inputAbs, _ := filepath.Abs(inputDir)
	outputAbs, _ := filepath.Abs(outputDir)

	files, blocks, hits := 0, 0, 0

	for _, pr := range parseResults {
		if pr.Err != nil {
			log.Error().Err(pr.Err).Str("file", pr.Input.Path).Msg("Parse failed")
			continue
		}
		if pr.Result == nil {
			continue
		}

		rendered := make(map[int]string, len(pr.Result.Blocks))
		for i, b := range pr.Result.Blocks {
			opts := base.Apply(parser.BuildOverrides(b.RawOptions))
			key := cache.Key(b.Source, opts.Fingerprint())

			if html, ok := renderCache.Get(ctx, key); ok {
				rendered[i] = html
				hits++
				continue
			}

			html := gloss.RenderHTML(b.Source, opts)
			if err := renderCache.Set(ctx, key, html); err != nil {
				log.Warn().Err(err).Str("block", textutil.Truncate(b.Source, 30)).Msg("Failed to cache rendering")
			}
			rendered[i] = html
		}
		blocks += len(pr.Result.Blocks)

		out, err := pr.Input.Parser.Render(pr.Result, rendered)
		if err != nil {
			log.Error().Err(err).Str("file", pr.Input.Path).Msg("Render failed")
			continue
		}

		relPath, err := filepath.Rel(inputAbs, pr.Input.Path)
		if err != nil {
			log.Error().Err(err).Msg("Compute relative path")
			continue
		}
		outPath := filepath.Join(outputAbs, outputName(relPath))

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			log.Error().Err(err).Str("path", outPath).Msg("Create output directory")
			continue
		}
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			log.Error().Err(err).Str("path", outPath).Msg("Write output file")
			continue
		}
		files++

		log.Info().
			Str("input", pr.Input.Path).
			Str("output", outPath).
			Int("blocks", len(pr.Result.Blocks)).
			Msg("File rendered")
	}

	log.Info().
		Int("files", files).
		Int("blocks", blocks).
		Int("cache_hits", hits).
		Str("output", outputDir).
		Msg("Render pipeline complete")

	return nil
}

// outputName maps an input path to its output name: standalone gloss files
// become .html, everything else keeps its name (HTML is spliced in place).
func outputName(relPath string) string {
	if strings.EqualFold(filepath.Ext(relPath), ".gloss") {
		return strings.TrimSuffix(relPath, filepath.Ext(relPath)) + ".html"
	}
	return relPath
}

// runRenderFile handles the `render-file` command.
func runRenderFile(path string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	store, driver, err := initTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	if driver != nil {
		defer driver.Close(ctx)
	}

	base := baseOptions(ctx, store)

	w := walker.NewWalker()
	p := w.Lookup(path)
	if p == nil {
		return fmt.Errorf("unsupported file type: %s", path)
	}

	result, err := p.Parse(path)
	if err != nil {
		return err
	}

	rendered := make(map[int]string, len(result.Blocks))
	for i, b := range result.Blocks {
		opts := base.Apply(parser.BuildOverrides(b.RawOptions))
		rendered[i] = gloss.RenderHTML(b.Source, opts)
	}

	out, err := p.Render(result, rendered)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}

// runServe handles the `serve` command.
func runServe() error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	renderCache, pool, err := initCache(ctx, cfg, false)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
		if err := renderCache.Preload(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to preload cache")
		}
	}

	store, driver, err := initTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	if driver != nil {
		defer driver.Close(ctx)
	}

	base := baseOptions(ctx, store)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.New(base, renderCache).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// runAbbrevList handles `abbrev list`.
func runAbbrevList() error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	store, driver, err := initTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	if driver != nil {
		defer driver.Close(ctx)
	}

	table := baseOptions(ctx, store).Abbreviations
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		fmt.Printf("%s\t%s\n", code, table[code])
	}
	return nil
}

// runAbbrevSeed handles `abbrev seed`.
func runAbbrevSeed() error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	store, driver, err := requireTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	return store.SeedDefaults(ctx, gloss.DefaultOptions().Abbreviations)
}

// runAbbrevAdd handles `abbrev add`.
func runAbbrevAdd(code, description, category string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	store, driver, err := requireTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	if err := store.Upsert(ctx, termgraph.Term{Code: code, Description: description, Category: category}); err != nil {
		return err
	}
	log.Info().Str("code", code).Str("description", description).Msg("Term stored")
	return nil
}

// runAbbrevExport handles `abbrev export`.
func runAbbrevExport(format, output string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	store, driver, err := requireTermGraph(ctx, cfg)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	switch format {
	case "json":
		return store.ExportJSON(ctx, output+".json")
	default:
		return store.ExportTSV(ctx, output+".tsv")
	}
}
