package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"safe-printf/internal/config"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Options configures an Analyzer.
type Options struct {
	// Config selects the checked functions and matching strictness.
	// Nil means config.Default().
	Config *config.File
	// Dir is the directory package patterns are resolved in.
	Dir string
	// Tests includes test files and test packages.
	Tests bool
	// Logger receives debug progress. Nil discards.
	Logger *slog.Logger
}

// Analyzer loads Go packages and checks printf-style calls in them.
type Analyzer struct {
	opts    Options
	cfg     *config.File
	targets map[string]config.Function
	logger  *slog.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	targets := make(map[string]config.Function, len(cfg.Functions))
	for _, fn := range cfg.Functions {
		targets[fn.Name] = fn
	}

	return &Analyzer{
		opts:    opts,
		cfg:     cfg,
		targets: targets,
		logger:  logger,
	}
}

// Run loads the packages matching patterns and checks every call to a
// configured function. Patterns are standard Go package patterns
// (e.g., "./...", "safe-printf/examples/demo").
func (a *Analyzer) Run(ctx context.Context, patterns ...string) (*Result, error) {
	pkgs, err := a.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// one slot per package, no locking needed
	results := make([]packageResult, len(pkgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(pkgs))))

	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = a.checkPackage(pkg)
			a.logger.Debug("checked package",
				"path", pkg.PkgPath,
				"calls", results[i].calls,
				"skipped", results[i].skipped,
				"errors", len(results[i].diags.Errors))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	seen := make(map[string]bool)
	for _, pr := range results {
		res.merge(pr, seen)
	}

	return res, nil
}

// LoadPackages loads the specified packages with syntax and type information.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     a.opts.Dir,
		Tests:   a.opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	a.logger.Debug("loaded packages", "patterns", patterns, "count", len(pkgs))

	return pkgs, nil
}
