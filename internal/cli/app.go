package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexanderramin/devterm/internal/cooldown"
	"github.com/alexanderramin/devterm/internal/db"
	"github.com/alexanderramin/devterm/internal/intelligence"
	"github.com/alexanderramin/devterm/internal/llm"
	"github.com/alexanderramin/devterm/internal/portfolio"
	"github.com/alexanderramin/devterm/internal/repository"
	"github.com/alexanderramin/devterm/internal/terminal"
)

// Content sources selectable with --source.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceDB      = "db"
)

// App holds everything the commands need. Fields left nil are filled by
// Bootstrap; tests set them directly.
type App struct {
	Logger      *zap.Logger
	Source      portfolio.Source
	Client      llm.Client
	Flows       *intelligence.Flows
	Interpreter *terminal.Interpreter

	// OpenRepo opens the SQLite portfolio store used by `import`.
	OpenRepo func() (repository.PortfolioRepo, io.Closer, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// HistoryPath is where the shell persists history. Empty disables it.
	HistoryPath string

	closers []io.Closer
}

// Options are the global flags.
type Options struct {
	Verbose       bool
	Source        string
	PortfolioPath string
	DBPath        string
}

// LoadOptions fills unset options from the environment.
func LoadOptions(o Options) Options {
	if o.PortfolioPath == "" {
		o.PortfolioPath = os.Getenv("DEVTERM_PORTFOLIO")
	}
	if o.DBPath == "" {
		o.DBPath = os.Getenv("DEVTERM_DB")
	}
	if o.Source == "" {
		o.Source = SourceBuiltin
		if o.PortfolioPath != "" {
			o.Source = SourceYAML
		}
	}
	return o
}

// NewLogger builds the process logger. Verbose switches to debug output.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Bootstrap wires every unset dependency from opts.
func (a *App) Bootstrap(ctx context.Context, opts Options) error {
	opts = LoadOptions(opts)

	if a.Logger == nil {
		logger, err := NewLogger(opts.Verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		a.Logger = logger
	}

	if a.OpenRepo == nil {
		a.OpenRepo = func() (repository.PortfolioRepo, io.Closer, error) {
			return openRepo(opts.DBPath)
		}
	}

	if a.Source == nil {
		src, err := a.openSource(opts)
		if err != nil {
			return err
		}
		a.Source = src
	}

	if a.Client == nil {
		cfg := llm.LoadConfig()
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LogCalls {
			observer = llm.NewZapObserver(a.Logger)
		}
		a.Client = llm.NewClient(cfg, observer)
		if err := cfg.Validate(); err != nil {
			a.Logger.Warn("ai commands disabled", zap.Error(err))
		}
	}

	if a.Flows == nil {
		gate := cooldown.NewGate(cooldown.LoadConfig(intelligence.Categories...), nil)
		a.Flows = intelligence.NewFlows(a.Client, gate, a.Source, nil)
	}

	if a.Interpreter == nil {
		a.Interpreter = terminal.NewInterpreter(a.Source, a.Flows, a.Logger)
	}

	if a.HistoryPath == "" {
		a.HistoryPath = shellHistoryPath()
	}
	return nil
}

func (a *App) openSource(opts Options) (portfolio.Source, error) {
	switch opts.Source {
	case SourceBuiltin:
		return portfolio.NewStatic(portfolio.Default()), nil
	case SourceYAML:
		if opts.PortfolioPath == "" {
			return nil, errors.New("--source yaml needs --portfolio or DEVTERM_PORTFOLIO")
		}
		snap, err := portfolio.LoadFile(opts.PortfolioPath)
		if err != nil {
			return nil, err
		}
		a.Logger.Debug("loaded portfolio", zap.String("path", opts.PortfolioPath))
		return portfolio.NewStatic(snap), nil
	case SourceDB:
		repo, closer, err := a.OpenRepo()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closer)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown source %q (want builtin, yaml or db)", opts.Source)
	}
}

func openRepo(path string) (repository.PortfolioRepo, io.Closer, error) {
	if path == "" {
		path = db.DefaultPath()
	}
	conn, err := db.OpenDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return repository.NewSQLitePortfolioRepo(conn), conn, nil
}

// Close releases resources opened by Bootstrap.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return errors.Join(errs...)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
