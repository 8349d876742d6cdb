package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"

	"avncore/internal/cache"
	"avncore/internal/cache/pqcache"
	"avncore/internal/cache/sqlitecache"
	"avncore/internal/config"
	"avncore/internal/diag"
	"avncore/internal/irprint"
	"avncore/internal/pipeline"
	"avncore/internal/sym"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "resolve":
		if err := cmdResolve(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "fixtures":
		cmdFixtures()
	case "help", "-h", "--help":
		usage()
	case "version", "-v", "--version":
		fmt.Println("avncore", version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`avncore — compiler middle-end driver

Usage:
  avncore resolve -fixture=<name> [-config=avncore.yaml] [-no-cache] [-log-level=debug] [-color=always]
  avncore fixtures
  avncore version

Commands:
  resolve   Run a fixture through name resolution and the partial evaluator
  fixtures  List the embedded toy fixtures -fixture can name
  version   Print the avncore version`)
}

func cmdFixtures() {
	names := make([]string, 0, len(pipeline.Fixtures))
	for name := range pipeline.Fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func cmdResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fixtureName := fs.String("fixture", "arithmetic", "embedded fixture to run")
	configPath := fs.String("config", "", "path to a YAML config file")
	noCache := fs.Bool("no-cache", false, "bypass the incremental resolution cache")
	logLevel := fs.String("log-level", "", "override the configured log level")
	color := fs.String("color", "", "override the configured color mode (auto|always|never)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	var disableCache *bool
	if *noCache {
		t := true
		disableCache = &t
	}
	config.ApplyFlags(opts, nil, nil, flagOrNil(*logLevel), flagOrNil(*color), nil, disableCache)

	build, ok := pipeline.Fixtures[*fixtureName]
	if !ok {
		return fmt.Errorf("resolve: unknown fixture %q (see `avncore fixtures`)", *fixtureName)
	}
	prog := build()

	logger := diag.NewLogger(opts.LogLevel)
	logger.PhaseStart("pipeline", *fixtureName)

	var store *cache.Store
	if !opts.DisableCache {
		backend, err := openCacheBackend(opts)
		if err == nil && backend != nil {
			store = cache.NewStore(backend)
			defer backend.Close()
		} else if err != nil {
			logger.Error("cache unavailable, continuing without it", "err", err)
		}
	}

	if store != nil {
		if rec, ok, err := store.Get(prog); err == nil && ok {
			printTimings(rec.Timings)
			fmt.Println("(served from cache)")
			return nil
		}
	}

	reg := sym.NewRegistry()
	rprog, result, timings, bag := pipeline.Run(prog, reg, pipeline.Options{
		Canonicalize: opts.Canonicalize,
		LogLevel:     opts.LogLevel,
	})
	logger.PhaseEnd("pipeline", *fixtureName, len(bag.Errors()))

	if bag.HasErrors() {
		bag.Render(os.Stderr, shouldColorize(opts.Color, os.Stderr))
		return fmt.Errorf("resolve: %d diagnostic(s)", len(bag.Errors()))
	}

	for ns, contents := range rprog.Namespaces {
		for _, d := range contents.Defs {
			if body, ok := result.Defs[d.Sym]; ok {
				fmt.Printf("-- %s.%s --\n", ns, d.Sym.Ident())
				irprint.Print(os.Stdout, body)
			}
		}
	}
	for _, desc := range result.Descriptors {
		fmt.Println(desc.Signature())
	}

	printTimings(timings)

	if store != nil {
		_ = store.Put(prog, &cache.Record{Program: *rprog, Timings: timings})
	}
	return nil
}

func printTimings(t pipeline.Timings) {
	fmt.Println("phase timings:")
	for _, p := range t.Phases {
		fmt.Printf("  %-14s %s\n", p.Name, humanize.Comma(p.Duration.Nanoseconds())+"ns")
	}
}

// openCacheBackend picks the cache.Backend implementation named by
// opts.CacheBackend. CacheNone returns (nil, nil): no backend, no error.
func openCacheBackend(opts *config.Options) (cache.Backend, error) {
	switch opts.CacheBackend {
	case config.CacheSQLite:
		return sqlitecache.Open(cacheDBPath())
	case config.CachePostgres:
		return pqcache.Open(opts.CacheDSN)
	case config.CacheNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.CacheBackend)
	}
}

func flagOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// shouldColorize resolves config.Options.Color's tri-state override against
// the usual isatty-based default (diag.ShouldColorize).
func shouldColorize(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return diag.ShouldColorize(f)
	}
}

func cacheDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "avncore-resolve.db"
	}
	dir := home + "/.cache/avncore"
	os.MkdirAll(dir, 0o755)
	return dir + "/resolve.db"
}
